// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/journalrank/citation"
	"github.com/katalvlaran/journalrank/hits"
	"github.com/katalvlaran/journalrank/invariant"
	"github.com/katalvlaran/journalrank/report"
)

// Method names double as report column names.
const (
	MethodInvariant = "invariant"
	MethodHITS      = "hits"
	MethodDemange   = "demange"
)

// ErrUnknownMethod indicates a method name outside invariant, hits, demange.
var ErrUnknownMethod = errors.New("pipeline: unknown ranking method")

// AllMethods returns every method in default report order.
func AllMethods() []string {
	return []string{MethodInvariant, MethodHITS, MethodDemange}
}

// Options configures Run.
type Options struct {
	Methods []string     // empty means AllMethods()
	SortBy  string       // empty means the first selected method
	HITS    hits.Options // shared by hits and demange; zero MaxRounds selects hits.DefaultOptions
	Logger  *slog.Logger // nil discards diagnostics
}

// DefaultOptions runs every method with hits.DefaultOptions. SortBy is left
// empty, so the report is sorted by the first selected method (invariant
// unless Methods is narrowed).
func DefaultOptions() Options {
	return Options{
		Methods: AllMethods(),
		HITS:    hits.DefaultOptions(),
	}
}

// Run computes the report for one input table.
func Run(t citation.Table, opts Options) (*report.Report, error) {
	start := time.Now()
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	methods := opts.Methods
	if len(methods) == 0 {
		methods = AllMethods()
	}
	for _, m := range methods {
		if !known(m) {
			return nil, fmt.Errorf("%q: %w", m, ErrUnknownMethod)
		}
	}
	hopts := opts.HITS
	if hopts.MaxRounds == 0 {
		onRound := hopts.OnRound
		hopts = hits.DefaultOptions()
		hopts.OnRound = onRound
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = methods[0]
	}

	data, err := citation.Build(t)
	if err != nil {
		return nil, err
	}
	log.Info("citation data built", "entities", data.N)

	columns := make([]report.Column, 0, len(methods))
	for _, m := range methods {
		scores, err := rank(data, m, hopts, log)
		if err != nil {
			return nil, err
		}
		columns = append(columns, report.Column{Name: m, Scores: scores})
	}

	rep, err := report.Assemble(data.IDs, sortBy, columns...)
	if err != nil {
		return nil, err
	}
	log.Info("ranking complete",
		"methods", methods,
		"sort_by", sortBy,
		"duration", time.Since(start))

	return rep, nil
}

func rank(data *citation.Data, method string, hopts hits.Options, log *slog.Logger) ([]float64, error) {
	if method == MethodInvariant {
		return invariant.Rank(data)
	}
	variant, _ := hits.ByName(method)
	res, err := hits.Rank(data, variant, &hopts)
	if err != nil {
		return nil, err
	}
	if res.Converged {
		log.Info("ranking converged", "method", method, "rounds", res.Rounds)
	} else {
		log.Warn("ranking did not converge; returning last round",
			"method", method, "rounds", res.Rounds)
	}

	return res.Scores, nil
}

func known(method string) bool {
	for _, m := range AllMethods() {
		if m == method {
			return true
		}
	}

	return false
}
