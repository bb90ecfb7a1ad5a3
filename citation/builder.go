// SPDX-License-Identifier: MIT

package citation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/journalrank/matrix"
)

// Build derives N, R, T and P from the table.
//
// Implementation:
//   - Stage 1: reject an empty table.
//   - Stage 2: every record must carry exactly N reference counts (square block).
//   - Stage 3: copy counts row by row into R, rejecting negative or non-finite values.
//   - Stage 4: T = row sums of R; reject T[j] == 0 and P[j] <= 0.
//
// Errors (checked in that order):
//   - ErrEmptyTable, ErrShapeMismatch, ErrInvalidCount, ErrNonPositivePubs,
//     ErrNoOutgoingRefs; each wrapped with the offending row and entity.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func Build(t Table) (*Data, error) {
	n := len(t.Records)
	if n == 0 {
		return nil, ErrEmptyTable
	}
	for j, rec := range t.Records {
		if len(rec.Refs) != n {
			return nil, fmt.Errorf("row %d (%s): %d reference columns for %d entities: %w",
				j, rec.ID, len(rec.Refs), n, ErrShapeMismatch)
		}
	}

	flat := make([]float64, 0, n*n)
	for j, rec := range t.Records {
		for i, v := range rec.Refs {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d (%s), ref %d = %g: %w", j, rec.ID, i+1, v, ErrInvalidCount)
			}
		}
		flat = append(flat, rec.Refs...)
	}
	r, err := matrix.NewDenseFrom(n, n, flat)
	if err != nil {
		return nil, fmt.Errorf("citation: build reference matrix: %w", err)
	}
	totals, err := matrix.RowSums(r)
	if err != nil {
		return nil, fmt.Errorf("citation: total references: %w", err)
	}

	ids := make([]string, n)
	pubs := make([]float64, n)
	for j, rec := range t.Records {
		if !(rec.Pubs > 0) || math.IsInf(rec.Pubs, 0) {
			return nil, fmt.Errorf("row %d (%s), noOfPubs = %g: %w", j, rec.ID, rec.Pubs, ErrNonPositivePubs)
		}
		if totals[j] == 0 {
			return nil, fmt.Errorf("row %d (%s): %w", j, rec.ID, ErrNoOutgoingRefs)
		}
		ids[j] = rec.ID
		pubs[j] = rec.Pubs
	}

	return &Data{IDs: ids, N: n, R: r, T: totals, P: pubs}, nil
}
