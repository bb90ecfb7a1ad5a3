// SPDX-License-Identifier: MIT

// Package pipeline runs one batch ranking: citation table → citation data →
// the selected rankers → sorted report.
//
// Methods are "invariant", "hits" and "demange"; by default all three run in
// that order and the report is sorted by "invariant". Run is sequential and
// either returns the complete report or an error.
package pipeline
