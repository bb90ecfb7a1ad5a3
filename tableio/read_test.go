// SPDX-License-Identifier: MIT
package tableio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/journalrank/tableio"
)

const twoJournalsCSV = `entityId,noOfPubs,ref_1,ref_2
J1,10,0,5
J2,20,5,0
`

func TestReadCSV(t *testing.T) {
	tbl, err := tableio.ReadCSV(strings.NewReader(twoJournalsCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"entityId", "noOfPubs", "ref_1", "ref_2"}, tbl.Header)
	require.Len(t, tbl.Records, 2)
	assert.Equal(t, "J2", tbl.Records[1].ID)
	assert.Equal(t, 20.0, tbl.Records[1].Pubs)
	assert.Equal(t, []float64{5, 0}, tbl.Records[1].Refs)
}

// TestReadCSV_Lenient: spaces around fields and decimal counts are accepted.
func TestReadCSV_Lenient(t *testing.T) {
	in := "id, pubs, a\n J1 , 2.5, 1e1\n"

	tbl, err := tableio.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "J1", tbl.Records[0].ID)
	assert.Equal(t, 2.5, tbl.Records[0].Pubs)
	assert.Equal(t, []float64{10}, tbl.Records[0].Refs)
}

// TestReadCSV_HeaderOnly yields an empty table; citation.Build rejects it later.
func TestReadCSV_HeaderOnly(t *testing.T) {
	tbl, err := tableio.ReadCSV(strings.NewReader("entityId,noOfPubs\n"))
	require.NoError(t, err)
	assert.Empty(t, tbl.Records)
}

func TestReadCSV_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", tableio.ErrNoHeader},
		{"one column", "entityId\nJ1\n", tableio.ErrTooFewColumns},
		{"ragged", "id,pubs,a\nJ1,1\n", tableio.ErrRagged},
		{"bad pubs", "id,pubs,a\nJ1,many,1\n", tableio.ErrParse},
		{"bad ref", "id,pubs,a\nJ1,1,x\n", tableio.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tableio.ReadCSV(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadCSV_ErrorHasLine(t *testing.T) {
	_, err := tableio.ReadCSV(strings.NewReader("id,pubs,a\nJ1,1,1\nJ2,1,oops\n"))
	require.ErrorIs(t, err, tableio.ErrParse)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte(twoJournalsCSV), 0o600))

	tbl, err := tableio.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, tbl.Records, 2)

	_, err = tableio.ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
