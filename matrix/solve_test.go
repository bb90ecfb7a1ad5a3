// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/journalrank/matrix"
)

const solveTol = 1e-9

// TestSolveLU solves a system that needs row pivoting (zero leading entry).
func TestSolveLU(t *testing.T) {
	a := mustDense(t, 2, 2, 0, 2, 3, 1)

	x, err := matrix.SolveLU(a, []float64{4, 5})
	require.NoError(t, err)
	require.InDelta(t, 1.0, x[0], solveTol)
	require.InDelta(t, 2.0, x[1], solveTol)
}

func TestSolveLUSingular(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 2, 4)

	_, err := matrix.SolveLU(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolveLUValidation(t *testing.T) {
	_, err := matrix.SolveLU(mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.SolveLU(mustDense(t, 1, 1, 1), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SolveLU(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestLeastSquaresConsistent: an overdetermined but consistent system is solved exactly.
func TestLeastSquaresConsistent(t *testing.T) {
	// x + y = 3, x - y = 1, 2x = 4  →  x = 2, y = 1
	a := mustDense(t, 3, 2, 1, 1, 1, -1, 2, 0)

	x, err := matrix.LeastSquares(a, []float64{3, 1, 4})
	require.NoError(t, err)
	require.InDelta(t, 2.0, x[0], solveTol)
	require.InDelta(t, 1.0, x[1], solveTol)
}

// TestLeastSquaresFit: fitting a constant to 1, 2, 3 yields the mean.
func TestLeastSquaresFit(t *testing.T) {
	a := mustDense(t, 3, 1, 1, 1, 1)

	x, err := matrix.LeastSquares(a, []float64{1, 2, 3})
	require.NoError(t, err)
	require.InDelta(t, 2.0, x[0], solveTol)
}

func TestLeastSquaresRankDeficient(t *testing.T) {
	a := mustDense(t, 3, 2, 1, 1, 2, 2, 3, 3)

	_, err := matrix.LeastSquares(a, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrSingular)
}
