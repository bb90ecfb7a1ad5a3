// SPDX-License-Identifier: MIT

// Package hits ranks entities with the mutual-reinforcement (HITS-style)
// method and its dual Demange weighting.
//
// Each entity carries a rank score (how strongly it is cited by heavy
// citers) and a weight (how much its citations count). A round runs
//
//  1. score phase:  scores[i]  = Σ_j portion(j,i) · weights[j] · P[j] / P[i]
//  2. rescale scores so that Σ scores[i]·P[i] = 100 · mean(P)
//  3. weight phase: weights[j] = reduce(Σ_i contribution(scores[i], portion(j,i), P[i], P[j]))
//  4. rescale weights with the same calibration
//  5. stop when scores and weights are all-close to the previous round
//
// where portion(j,i) = R[j][i] / T[j]. The variants differ only in the
// weight phase:
//
//	HITS:     contribution = portion · score · P[i] / P[j]    reduce(sum) = sum
//	Demange:  contribution = portion / (score · P[i]) · P[j]  reduce(sum) = 1 / sum
//
// The score phase always runs before the weight phase of the same round:
// the Demange weight phase divides by the scores just computed, and the
// initial score vector is all zeros.
//
// Variants form a closed set (HITS, Demange); the Variant interface cannot
// be implemented outside this package.
//
// Complexity: O(N²) per round, at most Options.MaxRounds rounds.
package hits
