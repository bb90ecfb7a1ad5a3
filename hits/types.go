// SPDX-License-Identifier: MIT

package hits

import (
	"math"

	"github.com/katalvlaran/journalrank/matrix"
)

// DefaultMaxRounds caps the number of rounds.
const DefaultMaxRounds = 10000

// CalibrationScale multiplies mean(P) to give the calibration target.
const CalibrationScale = 100.0

// InitialWeightTotal is spread evenly over the entities in round one.
const InitialWeightTotal = 100.0

// RoundState is the snapshot passed to Options.OnRound after both rescales.
// The slices are copies; the hook may keep them.
type RoundState struct {
	Round   int // 1-based
	Scores  []float64
	Weights []float64
}

// Options configures Rank.
//
// Fields:
//   - MaxRounds: upper bound on rounds (> 0).
//   - RTol, ATol: all-close tolerances of the stopping test (>= 0).
//   - OnRound: optional hook invoked after every round, before the
//     convergence check.
type Options struct {
	MaxRounds int
	RTol      float64
	ATol      float64
	OnRound   func(RoundState)
}

// DefaultOptions returns MaxRounds = 10000, RTol = 1e-5, ATol = 1e-8.
func DefaultOptions() Options {
	return Options{
		MaxRounds: DefaultMaxRounds,
		RTol:      matrix.DefaultRTol,
		ATol:      matrix.DefaultATol,
	}
}

func (o Options) validate() error {
	if o.MaxRounds <= 0 {
		return ErrBadOptions
	}
	for _, tol := range []float64{o.RTol, o.ATol} {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			return ErrBadOptions
		}
	}

	return nil
}

// Result is the outcome of Rank.
//
// Converged is false when MaxRounds was reached; Scores then holds the last
// round's scores. Callers are expected to surface that case.
type Result struct {
	Scores    []float64
	Weights   []float64
	Rounds    int
	Converged bool
}
