// SPDX-License-Identifier: MIT
package hits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/journalrank/citation"
	"github.com/katalvlaran/journalrank/hits"
)

const tol = 1e-9

func build(t *testing.T, pubs []float64, refs ...[]float64) *citation.Data {
	t.Helper()
	tbl := citation.Table{}
	for j, r := range refs {
		tbl.Records = append(tbl.Records, citation.Record{
			ID:   string(rune('A' + j)),
			Pubs: pubs[j],
			Refs: r,
		})
	}
	d, err := citation.Build(tbl)
	require.NoError(t, err)

	return d
}

// TestRank_TwoJournals: both variants reach (100, 25) and stop on round 2,
// the first round that repeats its predecessor.
func TestRank_TwoJournals(t *testing.T) {
	d := build(t, []float64{10, 20}, []float64{0, 5}, []float64{5, 0})

	for _, v := range hits.Variants() {
		t.Run(v.Name(), func(t *testing.T) {
			res, err := hits.Rank(d, v, nil)
			require.NoError(t, err)
			assert.True(t, res.Converged)
			assert.Equal(t, 2, res.Rounds)
			assert.InDelta(t, 100.0, res.Scores[0], tol)
			assert.InDelta(t, 25.0, res.Scores[1], tol)
			assert.InDelta(t, 50.0, res.Weights[0], tol)
			assert.InDelta(t, 50.0, res.Weights[1], tol)
		})
	}
}

// TestRank_Asymmetric pins both variants on a field where R differs from Rᵀ.
func TestRank_Asymmetric(t *testing.T) {
	d := build(t, []float64{12, 40, 7, 25, 3},
		[]float64{3, 7, 1, 0, 2},
		[]float64{5, 20, 9, 4, 1},
		[]float64{0, 2, 1, 6, 0},
		[]float64{8, 3, 0, 10, 5},
		[]float64{1, 1, 1, 1, 0},
	)
	tests := []struct {
		variant hits.Variant
		scores  []float64
		rounds  int
	}{
		{hits.HITS, []float64{25.1660094897, 14.3900448669, 33.8190765761, 20.1997105789, 40.2265969810}, 11},
		{hits.Demange, []float64{23.1961347007, 14.0681840034, 35.5318747678, 21.9679898794, 33.6653843658}, 13},
	}
	for _, tc := range tests {
		t.Run(tc.variant.Name(), func(t *testing.T) {
			res, err := hits.Rank(d, tc.variant, nil)
			require.NoError(t, err)
			assert.True(t, res.Converged)
			assert.Equal(t, tc.rounds, res.Rounds)
			assert.InDeltaSlice(t, tc.scores, res.Scores, 1e-9)
		})
	}
}

// TestRank_Symmetric: equal entities keep equal scores.
func TestRank_Symmetric(t *testing.T) {
	d := build(t, []float64{10, 10}, []float64{0, 5}, []float64{5, 0})

	for _, v := range hits.Variants() {
		res, err := hits.Rank(d, v, nil)
		require.NoError(t, err, v.Name())
		assert.InDelta(t, 50.0, res.Scores[0], tol)
		assert.InDelta(t, 50.0, res.Scores[1], tol)
	}
}

func TestRank_SingleEntity(t *testing.T) {
	d := build(t, []float64{4}, []float64{3})

	res, err := hits.Rank(d, hits.HITS, nil)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 100.0, res.Scores[0], tol)
}

// TestRank_CalibratedEveryRound: after each round Σ s·P and Σ w·P equal 100·mean(P).
func TestRank_CalibratedEveryRound(t *testing.T) {
	pubs := []float64{3, 5, 7, 2}
	d := build(t, pubs,
		[]float64{1, 2, 1, 1},
		[]float64{4, 1, 4, 1},
		[]float64{3, 3, 1, 2},
		[]float64{1, 1, 5, 1},
	)
	target := 100 * floats.Sum(pubs) / float64(len(pubs))

	for _, v := range hits.Variants() {
		t.Run(v.Name(), func(t *testing.T) {
			var rounds []int
			opts := hits.DefaultOptions()
			opts.OnRound = func(st hits.RoundState) {
				rounds = append(rounds, st.Round)
				assert.InDelta(t, target, floats.Dot(st.Scores, pubs), 1e-6)
				assert.InDelta(t, target, floats.Dot(st.Weights, pubs), 1e-6)
			}
			res, err := hits.Rank(d, v, &opts)
			require.NoError(t, err)
			require.True(t, res.Converged)
			require.Len(t, rounds, res.Rounds)
			assert.Equal(t, 1, rounds[0])
			assert.Equal(t, res.Rounds, rounds[len(rounds)-1])
		})
	}
}

// TestRank_RoundCap: one round never compares close to the zero start.
func TestRank_RoundCap(t *testing.T) {
	d := build(t, []float64{10, 20}, []float64{0, 5}, []float64{5, 0})
	opts := hits.DefaultOptions()
	opts.MaxRounds = 1

	res, err := hits.Rank(d, hits.HITS, &opts)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Rounds)
	assert.InDelta(t, 100.0, res.Scores[0], tol)
}

// TestRank_RoundStateIsCopy: the hook may mutate its snapshot freely.
func TestRank_RoundStateIsCopy(t *testing.T) {
	d := build(t, []float64{10, 20}, []float64{0, 5}, []float64{5, 0})
	opts := hits.DefaultOptions()
	opts.OnRound = func(st hits.RoundState) {
		st.Scores[0] = -1
		st.Weights[0] = -1
	}

	res, err := hits.Rank(d, hits.HITS, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, res.Scores[0], tol)
}

// TestRank_UncitedEntity: Demange rejects a zero column, HITS tolerates it.
func TestRank_UncitedEntity(t *testing.T) {
	d := build(t, []float64{1, 1}, []float64{0, 5}, []float64{0, 5})

	_, err := hits.Rank(d, hits.Demange, nil)
	require.ErrorIs(t, err, hits.ErrUncitedEntity)

	res, err := hits.Rank(d, hits.HITS, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Scores[0])
	assert.InDelta(t, 100.0, res.Scores[1], tol)
}

func TestRank_InputErrors(t *testing.T) {
	d := build(t, []float64{1}, []float64{1})

	_, err := hits.Rank(nil, hits.HITS, nil)
	require.ErrorIs(t, err, hits.ErrNilData)

	_, err = hits.Rank(d, nil, nil)
	require.ErrorIs(t, err, hits.ErrNilVariant)

	for _, opts := range []hits.Options{
		{MaxRounds: 0},
		{MaxRounds: 10, RTol: -1},
		{MaxRounds: 10, ATol: -1e-3},
	} {
		_, err = hits.Rank(d, hits.HITS, &opts)
		require.ErrorIs(t, err, hits.ErrBadOptions)
	}
}

func TestByName(t *testing.T) {
	v, ok := hits.ByName("demange")
	require.True(t, ok)
	assert.Equal(t, hits.Demange, v)

	_, ok = hits.ByName("pagerank")
	assert.False(t, ok)
}

func BenchmarkRank(b *testing.B) {
	const n = 64
	tbl := citation.Table{}
	for j := 0; j < n; j++ {
		refs := make([]float64, n)
		for i := range refs {
			refs[i] = float64((i*7+j*3)%5 + 1)
		}
		tbl.Records = append(tbl.Records, citation.Record{ID: "J", Pubs: float64(j%9 + 1), Refs: refs})
	}
	d, err := citation.Build(tbl)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = hits.Rank(d, hits.Demange, nil); err != nil {
			b.Fatal(err)
		}
	}
}
