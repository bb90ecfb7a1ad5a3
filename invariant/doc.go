// SPDX-License-Identifier: MIT

// Package invariant ranks entities with the invariant method.
//
// The score vector s is the least-squares solution of the fixed-point
// relation
//
//	s[i] = Σ_j (R[j][i] / T[j]) · (P[j] / P[i]) · s[j]
//
// written as the identity-subtracted homogeneous system, plus one
// calibration row Σ_i P[i]·s[i] = 100 · mean(P) that pins the scale.
// The homogeneous part alone is rank-deficient; the extra row makes the
// (N+1)×N system overdetermined, and it is solved through the normal
// equations with a pivoted LU (see matrix.LeastSquares).
//
// Complexity: O(N³) time, O(N²) memory.
package invariant
