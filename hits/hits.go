// SPDX-License-Identifier: MIT

package hits

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/journalrank/citation"
	"github.com/katalvlaran/journalrank/matrix"
)

// Rank runs the mutual-reinforcement iteration of variant v over d.
// A nil opts means DefaultOptions().
//
// Implementation:
//   - Stage 1: validate inputs; materialize portions Q[j][i] = R[j][i] / T[j].
//   - Stage 2: weights = 100/N, scores = 0, previous round = zeros.
//   - Stage 3: per round: score phase → rescale → weight phase → rescale →
//     hook → all-close check against the previous round.
//
// Errors:
//   - ErrNilData, ErrNilVariant, ErrBadOptions.
//   - ErrUncitedEntity (Demange only), ErrDegenerate, ErrNonFinite.
//
// Non-convergence is not an error: Result.Converged is false.
//
// Complexity:
//   - Time O(N² · rounds), Space O(N²) for Q.
func Rank(d *citation.Data, v Variant, opts *Options) (*Result, error) {
	if d == nil {
		return nil, ErrNilData
	}
	if v == nil {
		return nil, ErrNilVariant
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", v.Name(), err)
	}
	if v.needsCitedEntities() {
		if err := requireCited(d); err != nil {
			return nil, fmt.Errorf("%s: %w", v.Name(), err)
		}
	}

	q, err := d.Portions()
	if err != nil {
		return nil, fmt.Errorf("%s: portions: %w", v.Name(), err)
	}
	it := &iteration{
		n:       d.N,
		q:       q,
		pubs:    d.P,
		target:  CalibrationScale * stat.Mean(d.P, nil),
		variant: v,
		scores:  make([]float64, d.N),
		weights: make([]float64, d.N),
	}
	for i := range it.weights {
		it.weights[i] = InitialWeightTotal / float64(d.N)
	}
	prevScores := make([]float64, d.N)
	prevWeights := make([]float64, d.N)

	for round := 1; round <= o.MaxRounds; round++ {
		if err = it.step(); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", v.Name(), round, err)
		}
		if o.OnRound != nil {
			o.OnRound(RoundState{
				Round:   round,
				Scores:  clone(it.scores),
				Weights: clone(it.weights),
			})
		}

		scoresClose, _ := matrix.AllCloseVec(it.scores, prevScores, o.RTol, o.ATol)
		weightsClose, _ := matrix.AllCloseVec(it.weights, prevWeights, o.RTol, o.ATol)
		if scoresClose && weightsClose {
			return it.result(round, true), nil
		}
		copy(prevScores, it.scores)
		copy(prevWeights, it.weights)
	}

	return it.result(o.MaxRounds, false), nil
}

// iteration owns the working vectors of one Rank call.
type iteration struct {
	n       int
	q       *matrix.Dense
	pubs    []float64
	target  float64
	variant Variant
	scores  []float64
	weights []float64
}

// step runs one full round. The score phase strictly precedes the weight phase.
func (it *iteration) step() error {
	if err := it.scorePhase(); err != nil {
		return err
	}
	if err := it.calibrate(it.scores); err != nil {
		return fmt.Errorf("scores: %w", err)
	}
	if err := it.weightPhase(); err != nil {
		return err
	}
	if err := it.calibrate(it.weights); err != nil {
		return fmt.Errorf("weights: %w", err)
	}

	return nil
}

// scorePhase: scores[i] = Σ_j scoreContribution(weights[j], Q[j][i], P[i], P[j]).
// Walks Q row by row; each scores[i] still accumulates over j in ascending order.
func (it *iteration) scorePhase() error {
	for i := range it.scores {
		it.scores[i] = 0
	}
	for j := 0; j < it.n; j++ {
		row, err := it.q.RowView(j)
		if err != nil {
			return err
		}
		w, pj := it.weights[j], it.pubs[j]
		for i, portion := range row {
			it.scores[i] += scoreContribution(w, portion, it.pubs[i], pj)
		}
	}

	return finite(it.scores, "score phase")
}

// weightPhase: weights[j] = reduceWeight(Σ_i weightContribution(scores[i], Q[j][i], P[i], P[j])).
func (it *iteration) weightPhase() error {
	var sum float64
	for j := 0; j < it.n; j++ {
		row, err := it.q.RowView(j)
		if err != nil {
			return err
		}
		sum = 0
		for i, portion := range row {
			sum += it.variant.weightContribution(it.scores[i], portion, it.pubs[i], it.pubs[j])
		}
		it.weights[j] = it.variant.reduceWeight(sum)
	}

	return finite(it.weights, "weight phase")
}

// calibrate scales v in place so that Σ v[i]·P[i] equals the target.
func (it *iteration) calibrate(v []float64) error {
	mass := floats.Dot(v, it.pubs)
	if mass == 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return ErrDegenerate
	}
	floats.Scale(it.target/mass, v)

	return nil
}

func (it *iteration) result(rounds int, converged bool) *Result {
	return &Result{
		Scores:    clone(it.scores),
		Weights:   clone(it.weights),
		Rounds:    rounds,
		Converged: converged,
	}
}

// requireCited fails when some column of R sums to zero.
func requireCited(d *citation.Data) error {
	incoming, err := matrix.ColSums(d.R)
	if err != nil {
		return err
	}
	for i, c := range incoming {
		if c == 0 {
			return fmt.Errorf("entity %d: %w", i, ErrUncitedEntity)
		}
	}

	return nil
}

func finite(v []float64, phase string) error {
	if err := matrix.ValidateFiniteVec(v); err != nil {
		return fmt.Errorf("%s: %w", phase, ErrNonFinite)
	}

	return nil
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
