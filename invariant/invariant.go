// SPDX-License-Identifier: MIT

package invariant

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/journalrank/citation"
	"github.com/katalvlaran/journalrank/matrix"
)

// CalibrationScale multiplies mean(P) to give the calibration target.
const CalibrationScale = 100.0

// ErrNilData indicates that Rank was called without builder output.
var ErrNilData = errors.New("invariant: nil citation data")

// System builds the (N+1)×N matrix A and the right-hand side b:
//
//	A[i][j] = (R[j][i] / T[j]) · (P[j] / P[i]) − δ(i,j)
//	A[N][i] = P[i]
//	b       = (0, …, 0, 100 · mean(P))
//
// Complexity: O(N²).
func System(d *citation.Data) (*matrix.Dense, []float64, error) {
	if d == nil {
		return nil, nil, ErrNilData
	}
	n := d.N
	a, err := matrix.NewDense(n+1, n)
	if err != nil {
		return nil, nil, err
	}
	q, err := d.Portions()
	if err != nil {
		return nil, nil, err
	}

	var coeff float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			portion, _ := q.At(j, i)
			coeff = portion * d.P[j] / d.P[i]
			if i == j {
				coeff--
			}
			if err = a.Set(i, j, coeff); err != nil {
				return nil, nil, err
			}
		}
		if err = a.Set(n, i, d.P[i]); err != nil {
			return nil, nil, err
		}
	}

	b := make([]float64, n+1)
	b[n] = CalibrationScale * stat.Mean(d.P, nil)

	return a, b, nil
}

// Rank returns the invariant score of every entity, in input order.
// The result is the raw least-squares solution; no further scaling is applied.
//
// Errors:
//   - ErrNilData for nil input.
//   - matrix.ErrSingular when the normal equations have no unique solution.
func Rank(d *citation.Data) ([]float64, error) {
	a, b, err := System(d)
	if err != nil {
		return nil, fmt.Errorf("invariant: build system: %w", err)
	}
	s, err := matrix.LeastSquares(a, b)
	if err != nil {
		return nil, fmt.Errorf("invariant: solve: %w", err)
	}

	return s, nil
}
