// SPDX-License-Identifier: MIT

package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/journalrank/citation"
)

// minColumns is entityId + noOfPubs.
const minColumns = 2

var (
	// ErrNoHeader indicates an empty input without a header row.
	ErrNoHeader = errors.New("tableio: missing header row")

	// ErrTooFewColumns indicates a header with fewer than entityId, noOfPubs.
	ErrTooFewColumns = errors.New("tableio: table needs entityId and noOfPubs columns")

	// ErrRagged indicates a row whose field count differs from the header.
	ErrRagged = errors.New("tableio: row length differs from header")

	// ErrParse indicates a numeric field that cannot be parsed.
	ErrParse = errors.New("tableio: invalid number")
)

// ReadCSV parses a citation table from r. Columns are taken by position:
// identifier, publication count, then the reference counts.
// Shape and value checks beyond parsing belong to citation.Build.
func ReadCSV(r io.Reader) (citation.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are reported with ErrRagged below
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return citation.Table{}, ErrNoHeader
	}
	if err != nil {
		return citation.Table{}, fmt.Errorf("tableio: read header: %w", err)
	}
	if len(header) < minColumns {
		return citation.Table{}, fmt.Errorf("%d columns: %w", len(header), ErrTooFewColumns)
	}

	table := citation.Table{Header: header}
	for line := 2; ; line++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return citation.Table{}, fmt.Errorf("tableio: line %d: %w", line, err)
		}
		if len(fields) != len(header) {
			return citation.Table{}, fmt.Errorf("line %d: %d fields, header has %d: %w",
				line, len(fields), len(header), ErrRagged)
		}
		rec, err := parseRecord(fields, header)
		if err != nil {
			return citation.Table{}, fmt.Errorf("line %d: %w", line, err)
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}

// ReadFile opens path and parses it with ReadCSV.
func ReadFile(path string) (citation.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return citation.Table{}, fmt.Errorf("tableio: open input: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

func parseRecord(fields, header []string) (citation.Record, error) {
	pubs, err := parseNumber(fields[1], header[1])
	if err != nil {
		return citation.Record{}, err
	}
	refs := make([]float64, len(fields)-minColumns)
	for k := range refs {
		col := k + minColumns
		if refs[k], err = parseNumber(fields[col], header[col]); err != nil {
			return citation.Record{}, err
		}
	}

	return citation.Record{ID: strings.TrimSpace(fields[0]), Pubs: pubs, Refs: refs}, nil
}

func parseNumber(field, column string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("column %q value %q: %w", column, field, ErrParse)
	}

	return v, nil
}
