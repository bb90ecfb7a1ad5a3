// SPDX-License-Identifier: MIT
// Package matrix: the products and reductions the rankers need.
//
// Every kernel walks the flat row-major buffer of a *Dense in a fixed order,
// so repeated calls on identical inputs are bit-for-bit identical.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opGram     = "Gram"
	opTransVec = "TransMulVec"
	opRowSums  = "RowSums"
	opColSums  = "ColSums"
	opSolve    = "SolveLU"
	opLstSq    = "LeastSquares"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Gram returns the c×c matrix G = Aᵀ·A without materializing Aᵀ.
//
// Each row a_k of A contributes the outer product a_kᵀ·a_k, so the buffer is
// read once, row by row. G is symmetric; only the upper triangle is
// accumulated and then mirrored.
//
// Complexity:
//   - Time O(r·c²), Space O(c²).
func Gram(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	c := a.c
	g, err := NewDense(c, c)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	var (
		k, p, q int
		row     []float64
		apk     float64
	)
	for k = 0; k < a.r; k++ {
		row = a.data[k*c : (k+1)*c]
		for p = 0; p < c; p++ {
			apk = row[p]
			if apk == 0 {
				continue
			}
			for q = p; q < c; q++ {
				g.data[p*c+q] += apk * row[q]
			}
		}
	}
	for p = 1; p < c; p++ {
		for q = 0; q < p; q++ {
			g.data[p*c+q] = g.data[q*c+p]
		}
	}

	return g, nil
}

// TransMulVec returns y = Aᵀ·x for len(x) == A.Rows(), again without
// materializing Aᵀ: y accumulates x[k]·a_k over the rows of A.
//
// Complexity: Time O(r·c), Space O(c).
func TransMulVec(a *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTransVec, err)
	}
	if err := ValidateVecLen(x, a.r); err != nil {
		return nil, matrixErrorf(opTransVec, err)
	}
	y := make([]float64, a.c)
	var base int
	for k, xk := range x {
		if xk == 0 {
			continue
		}
		base = k * a.c
		for j := range y {
			y[j] += a.data[base+j] * xk
		}
	}

	return y, nil
}

// RowSums returns s[i] = Σ_j m[i,j], summed left to right.
func RowSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums := make([]float64, m.r)
	m.Do(func(i, _ int, v float64) bool {
		sums[i] += v
		return true
	})

	return sums, nil
}

// ColSums returns s[j] = Σ_i m[i,j], summed top to bottom.
func ColSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	sums := make([]float64, m.c)
	m.Do(func(_, j int, v float64) bool {
		sums[j] += v
		return true
	})

	return sums, nil
}
