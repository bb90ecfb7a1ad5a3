// SPDX-License-Identifier: MIT

package tableio

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/journalrank/report"
)

// Format is a report serialization.
type Format string

const (
	// FormatCSV writes a header [journal, columns…] and one row per entity.
	// It is the default for unknown extensions.
	FormatCSV Format = "csv"

	// FormatJSON writes an indented document {sort_by, columns, rows}.
	FormatJSON Format = "json"

	// FormatYAML writes the same document as FormatJSON, in YAML.
	FormatYAML Format = "yaml"

	// FormatTOML writes the same document as FormatJSON, with rows as an
	// array of tables.
	FormatTOML Format = "toml"
)

// ErrUnknownFormat indicates an unsupported report format.
var ErrUnknownFormat = errors.New("tableio: unknown report format")

// FormatFromPath picks the format from the file extension; anything that is
// not .json, .yaml/.yml or .toml is written as CSV.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatCSV
	}
}

// document is the structured (JSON/YAML/TOML) form of a report.
type document struct {
	SortBy  string   `json:"sort_by" yaml:"sort_by" toml:"sort_by"`
	Columns []string `json:"columns" yaml:"columns" toml:"columns"`
	Rows    []entry  `json:"rows" yaml:"rows" toml:"rows"`
}

type entry struct {
	Rank    int                `json:"rank" yaml:"rank" toml:"rank"`
	Journal string             `json:"journal" yaml:"journal" toml:"journal"`
	Scores  map[string]float64 `json:"scores" yaml:"scores" toml:"scores"`
}

func toDocument(rep *report.Report) document {
	doc := document{SortBy: rep.SortBy, Columns: rep.Columns, Rows: make([]entry, len(rep.Rows))}
	for i, row := range rep.Rows {
		scores := make(map[string]float64, len(rep.Columns))
		for k, name := range rep.Columns {
			scores[name] = row.Scores[k]
		}
		doc.Rows[i] = entry{Rank: i + 1, Journal: row.ID, Scores: scores}
	}

	return doc
}

// Write serializes rep to w in the given format.
func Write(w io.Writer, rep *report.Report, format Format) error {
	if rep == nil {
		return errors.New("tableio: nil report")
	}
	switch format {
	case FormatCSV:
		return writeCSV(w, rep)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toDocument(rep))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(rep)); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(toDocument(rep))
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// writeCSV writes the header [journal, columns…] then one row per entity.
// Scores use the shortest representation that round-trips.
func writeCSV(w io.Writer, rep *report.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rep.Header()); err != nil {
		return err
	}
	record := make([]string, 1+len(rep.Columns))
	for _, row := range rep.Rows {
		record[0] = row.ID
		for k, v := range row.Scores {
			record[k+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteFile writes rep to path in the format implied by its extension.
// The file is replaced atomically; on error nothing is left at path.
func WriteFile(path string, rep *report.Report) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("tableio: create temp file: %w", err)
	}
	// Ensure cleanup on failure.
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("tableio: chmod temp file: %w", err)
	}
	if err = Write(tmp, rep, FormatFromPath(path)); err != nil {
		return fmt.Errorf("tableio: write report: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("tableio: close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("tableio: rename into place: %w", err)
	}

	return nil
}
