// SPDX-License-Identifier: MIT

package citation

import "github.com/katalvlaran/journalrank/matrix"

// Record is one input row: an entity, its publication count and the
// references it makes to every entity of the table (in row order).
type Record struct {
	ID   string    // entity identifier (first column)
	Pubs float64   // noOfPubs (second column)
	Refs []float64 // ref_1 … ref_N
}

// Table is the input record set. Header is informational; columns are
// interpreted by position.
type Table struct {
	Header  []string
	Records []Record
}

// Data holds the derived, read-only inputs of the rankers.
// Rankers must not mutate R, T or P.
type Data struct {
	IDs []string      // entity identifiers in input order
	N   int           // number of entities
	R   *matrix.Dense // R[j][i] = references from j to i
	T   []float64     // T[j] = Σ_i R[j][i]
	P   []float64     // publication counts, all > 0
}

// Portion returns R[j][i] / T[j], the share of j's references that go to i.
func (d *Data) Portion(j, i int) (float64, error) {
	r, err := d.R.At(j, i)
	if err != nil {
		return 0, err
	}

	return r / d.T[j], nil
}

// Portions materializes the row-stochastic matrix Q with Q[j][i] = R[j][i] / T[j].
// Every row of Q sums to one. The result is a fresh matrix owned by the caller.
func (d *Data) Portions() (*matrix.Dense, error) {
	q, err := matrix.NewDense(d.N, d.N)
	if err != nil {
		return nil, err
	}
	var setErr error
	d.R.Do(func(j, i int, v float64) bool {
		setErr = q.Set(j, i, v/d.T[j])
		return setErr == nil
	})
	if setErr != nil {
		return nil, setErr
	}

	return q, nil
}
