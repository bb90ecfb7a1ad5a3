// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// toGonum copies a Dense into a gonum dense matrix (row-major, same shape).
func toGonum(m *Dense) *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// SolveLU solves the square system A·x = b with a partially pivoted LU
// factorization (gonum mat.LU).
//
// Implementation:
//   - Stage 1: validate A square, len(b) == A.Rows(), b finite.
//   - Stage 2: factorize a copy of A; an infinite condition number means an
//     exactly singular matrix.
//   - Stage 3: solve; a condition number beyond mat.ConditionTolerance is
//     reported as ErrSingular as well, since the solution carries no digits.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func SolveLU(a *Dense, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFiniteVec(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var lu mat.LU
	lu.Factorize(toGonum(a))
	if math.IsInf(lu.Cond(), 1) {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	rhs := make([]float64, n)
	copy(rhs, b)
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(n, rhs)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("condition number %g: %w", float64(cond), ErrSingular))
		}

		return nil, matrixErrorf(opSolve, err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out, nil
}

// LeastSquares returns x minimizing ‖A·x − b‖₂ by solving the normal
// equations Aᵀ·A·x = Aᵀ·b with SolveLU. A may have more rows than columns.
// A rank-deficient A yields a singular normal matrix and ErrSingular.
//
// Complexity: O(r·c² + c³).
func LeastSquares(a *Dense, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opLstSq, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opLstSq, err)
	}

	ata, err := Gram(a)
	if err != nil {
		return nil, matrixErrorf(opLstSq, err)
	}
	atb, err := TransMulVec(a, b)
	if err != nil {
		return nil, matrixErrorf(opLstSq, err)
	}
	x, err := SolveLU(ata, atb)
	if err != nil {
		return nil, matrixErrorf(opLstSq, err)
	}

	return x, nil
}
