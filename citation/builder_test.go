// SPDX-License-Identifier: MIT
package citation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/journalrank/citation"
)

// twoJournals is the smallest table with mutual citations and unequal output.
func twoJournals() citation.Table {
	return citation.Table{
		Header: []string{"entityId", "noOfPubs", "ref_1", "ref_2"},
		Records: []citation.Record{
			{ID: "J1", Pubs: 10, Refs: []float64{0, 5}},
			{ID: "J2", Pubs: 20, Refs: []float64{5, 0}},
		},
	}
}

// TestBuild_Derived verifies N, R, T and P for a well-formed table.
func TestBuild_Derived(t *testing.T) {
	d, err := citation.Build(twoJournals())
	require.NoError(t, err)

	assert.Equal(t, 2, d.N)
	assert.Equal(t, []string{"J1", "J2"}, d.IDs)
	assert.Equal(t, []float64{5, 5}, d.T)
	assert.Equal(t, []float64{10, 20}, d.P)

	v, err := d.R.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

// TestBuild_Portions checks that Q is row-stochastic and matches Portion.
func TestBuild_Portions(t *testing.T) {
	d, err := citation.Build(citation.Table{Records: []citation.Record{
		{ID: "A", Pubs: 1, Refs: []float64{1, 3, 0}},
		{ID: "B", Pubs: 2, Refs: []float64{2, 2, 4}},
		{ID: "C", Pubs: 3, Refs: []float64{0, 0, 7}},
	}})
	require.NoError(t, err)

	q, err := d.Portions()
	require.NoError(t, err)
	for j := 0; j < d.N; j++ {
		row, err := q.RowView(j)
		require.NoError(t, err)
		var sum float64
		for i, v := range row {
			sum += v
			p, err := d.Portion(j, i)
			require.NoError(t, err)
			assert.Equal(t, p, v)
		}
		assert.InDelta(t, 1.0, sum, 1e-15)
	}
	p, err := d.Portion(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.75, p)
}

// TestBuild_Errors walks the rejection order.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name    string
		records []citation.Record
		want    error
	}{
		{"empty", nil, citation.ErrEmptyTable},
		{"too few refs", []citation.Record{
			{ID: "A", Pubs: 1, Refs: []float64{1}},
			{ID: "B", Pubs: 1, Refs: []float64{1, 1}},
		}, citation.ErrShapeMismatch},
		{"too many refs", []citation.Record{
			{ID: "A", Pubs: 1, Refs: []float64{1, 1}},
		}, citation.ErrShapeMismatch},
		{"negative count", []citation.Record{
			{ID: "A", Pubs: 1, Refs: []float64{1, -1}},
			{ID: "B", Pubs: 1, Refs: []float64{1, 1}},
		}, citation.ErrInvalidCount},
		{"nan count", []citation.Record{
			{ID: "A", Pubs: 1, Refs: []float64{math.NaN()}},
		}, citation.ErrInvalidCount},
		{"zero pubs", []citation.Record{
			{ID: "A", Pubs: 0, Refs: []float64{1, 1}},
			{ID: "B", Pubs: 1, Refs: []float64{1, 1}},
		}, citation.ErrNonPositivePubs},
		{"negative pubs", []citation.Record{
			{ID: "A", Pubs: -2, Refs: []float64{1}},
		}, citation.ErrNonPositivePubs},
		{"no outgoing refs", []citation.Record{
			{ID: "A", Pubs: 1, Refs: []float64{1, 1}},
			{ID: "B", Pubs: 1, Refs: []float64{0, 0}},
		}, citation.ErrNoOutgoingRefs},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := citation.Build(citation.Table{Records: tc.records})
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, d)
		})
	}
}

// TestBuild_ErrorNamesRow: the failing entity appears in the message.
func TestBuild_ErrorNamesRow(t *testing.T) {
	tbl := twoJournals()
	tbl.Records[1].Pubs = 0

	_, err := citation.Build(tbl)
	require.ErrorIs(t, err, citation.ErrNonPositivePubs)
	assert.Contains(t, err.Error(), "J2")
}

// TestBuild_DoesNotAlias: later edits to the table do not reach Data.
func TestBuild_DoesNotAlias(t *testing.T) {
	tbl := twoJournals()
	d, err := citation.Build(tbl)
	require.NoError(t, err)

	tbl.Records[0].Refs[1] = 99
	v, _ := d.R.At(0, 1)
	assert.Equal(t, 5.0, v)
}
