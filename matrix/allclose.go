// SPDX-License-Identifier: MIT

package matrix

import "math"

// Default tolerances of the "all-close" comparison. They match the
// conventional numerical defaults (rtol = 1e-5, atol = 1e-8).
const (
	DefaultRTol = 1e-5
	DefaultATol = 1e-8
)

// normalizeTol rejects non-finite tolerances and takes absolute values.
func normalizeTol(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, matrixErrorf(opAllClose, ErrNaNInf)
	}

	return math.Abs(rtol), math.Abs(atol), nil
}

// isClose reports |a-b| ≤ atol + rtol*|b|. NaN never compares close.
func isClose(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// AllCloseVec checks element-wise |a-b| ≤ atol + rtol·|b| for vectors of
// equal length. Returns (true,nil) when every element satisfies the relation.
// Time: O(n). Space: O(1). Deterministic.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|.
//   - The relation is asymmetric: b is the reference.
//
// Errors:
//   - ErrNilMatrix for a nil vector, ErrDimensionMismatch for unequal lengths,
//     ErrNaNInf for a non-finite tolerance.
func AllCloseVec(a, b []float64, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTol(rtol, atol)
	if err != nil {
		return false, err
	}
	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if len(a) != len(b) {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}

	return allCloseFlat(a, b, rtol, atol), nil
}

func allCloseFlat(a, b []float64, rtol, atol float64) bool {
	for idx := range a {
		if !isClose(a[idx], b[idx], rtol, atol) {
			return false // early-exit on first violation
		}
	}

	return true
}
