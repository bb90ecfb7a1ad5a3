// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer of journalrank.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Validators: a single source of truth for nil/shape/length checks.
//   - Kernels: Gram (Aᵀ·A), TransMulVec (Aᵀ·x), RowSums, ColSums, all
//     walking the flat row-major buffer without materializing a transpose.
//   - AllCloseVec: the element-wise |a-b| ≤ atol + rtol·|b| test used as the
//     stopping rule of iterative rankers.
//   - SolveLU / LeastSquares: direct solves backed by gonum's partially
//     pivoted LU, with singular systems reported as ErrSingular.
//
// Matrices are dense: O(r·c) memory. Every kernel walks the data in a fixed
// row-major order, so results are deterministic for identical inputs.
//
// Errors are package sentinels prefixed with "matrix:" and wrapped with an
// operation tag; match them with errors.Is.
package matrix
