// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"sort"
)

// IDColumn is the name of the identifier column of every report.
const IDColumn = "journal"

var (
	// ErrNoColumns indicates Assemble was called without score columns.
	ErrNoColumns = errors.New("report: no score columns")

	// ErrLengthMismatch indicates a score column whose length differs from the identifiers.
	ErrLengthMismatch = errors.New("report: column length does not match entity count")

	// ErrUnknownColumn indicates a sort column that is not among the score columns.
	ErrUnknownColumn = errors.New("report: unknown column")

	// ErrDuplicateColumn indicates two score columns with the same name.
	ErrDuplicateColumn = errors.New("report: duplicate column")
)

// Column is one named score vector, indexed like the entity identifiers.
type Column struct {
	Name   string
	Scores []float64
}

// Row is one entity of the report; Scores follow Report.Columns.
type Row struct {
	ID     string
	Scores []float64
}

// Report is the assembled ranking table.
type Report struct {
	Columns []string // score column names, in the order given to Assemble
	SortBy  string   // column the rows are sorted by (descending)
	Rows    []Row
}

// Header returns the full column header, identifier first.
func (r *Report) Header() []string {
	return append([]string{IDColumn}, r.Columns...)
}

// Score returns the value of column name in row i.
func (r *Report) Score(i int, name string) (float64, error) {
	if i < 0 || i >= len(r.Rows) {
		return 0, fmt.Errorf("report: row %d out of range", i)
	}
	k := indexOf(r.Columns, name)
	if k < 0 {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}

	return r.Rows[i].Scores[k], nil
}

// Assemble builds the report and sorts it descending by sortBy.
//
// Errors:
//   - ErrNoColumns, ErrDuplicateColumn, ErrLengthMismatch, ErrUnknownColumn.
//
// Complexity: O(N·C + N log N).
func Assemble(ids []string, sortBy string, columns ...Column) (*Report, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	names := make([]string, len(columns))
	for k, c := range columns {
		if indexOf(names[:k], c.Name) >= 0 {
			return nil, fmt.Errorf("%q: %w", c.Name, ErrDuplicateColumn)
		}
		if len(c.Scores) != len(ids) {
			return nil, fmt.Errorf("%q has %d scores for %d entities: %w",
				c.Name, len(c.Scores), len(ids), ErrLengthMismatch)
		}
		names[k] = c.Name
	}
	key := indexOf(names, sortBy)
	if key < 0 {
		return nil, fmt.Errorf("sort by %q: %w", sortBy, ErrUnknownColumn)
	}

	rows := make([]Row, len(ids))
	for i, id := range ids {
		scores := make([]float64, len(columns))
		for k, c := range columns {
			scores[k] = c.Scores[i]
		}
		rows[i] = Row{ID: id, Scores: scores}
	}
	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Scores[key] > rows[b].Scores[key]
	})

	return &Report{Columns: names, SortBy: sortBy, Rows: rows}, nil
}

func indexOf(names []string, name string) int {
	for k, n := range names {
		if n == name {
			return k
		}
	}

	return -1
}
