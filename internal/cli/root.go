// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for journalrank.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/journalrank/internal/config"
	"github.com/katalvlaran/journalrank/pipeline"
	"github.com/katalvlaran/journalrank/tableio"
)

// Version is set at build time.
var Version = "0.1.0"

// UsageLine is printed to stderr when the positional arguments are missing.
const UsageLine = "Argument error. Usage: journalrank <path to journal references csv> <path to output csv>"

// ErrUsage indicates missing positional arguments.
var ErrUsage = errors.New("cli: input and output paths are required")

// NewRootCommand builds the journalrank command. Output goes to the given
// writers so tests can capture it.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	cmd := &cobra.Command{
		Use:   "journalrank <input.csv> <output>",
		Short: "Rank journals from a cross-citation matrix",
		Long: `journalrank reads a table of journals (entityId, noOfPubs, ref_1 … ref_N)
and writes their scores under the invariant, HITS and Demange ranking
methods, sorted descending by one of them.

The output format follows the output extension: .csv (default), .json,
.yaml/.yml or .toml.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return ErrUsage
			}
			return cobra.MaximumNArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			return run(v, args[0], args[1], stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.String("config", "", "config file (default .journalrank.{yaml,toml} if present)")
	flags.String("sort-by", "", "score column the report is sorted by (default: first of --methods)")
	flags.StringSlice("methods", pipeline.AllMethods(), "ranking methods to compute")
	flags.Int("max-rounds", 0, "round cap of the iterative methods (default 10000)")
	flags.Float64("rtol", 0, "relative tolerance of the convergence test (default 1e-5)")
	flags.Float64("atol", 0, "absolute tolerance of the convergence test (default 1e-8)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-file", "", "also append JSON logs to this file")

	// Flags only override file/env values when explicitly set.
	bind := map[string]string{
		config.KeySortBy:    "sort-by",
		config.KeyMethods:   "methods",
		config.KeyMaxRounds: "max-rounds",
		config.KeyRTol:      "rtol",
		config.KeyATol:      "atol",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFile:   "log-file",
	}
	for key, name := range bind {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return cmd
}

func run(v *viper.Viper, inPath, outPath string, stderr io.Writer) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger, cleanup := config.SetupLogger(stderr, cfg.LogFile, level)
	defer cleanup()

	table, err := tableio.ReadFile(inPath)
	if err != nil {
		return err
	}
	logger.Debug("input read", "path", inPath, "rows", len(table.Records))

	rep, err := pipeline.Run(table, cfg.PipelineOptions(logger))
	if err != nil {
		logger.Error("ranking failed", "error", err)
		return err
	}
	if err = tableio.WriteFile(outPath, rep); err != nil {
		return err
	}
	logger.Info("report written", "path", outPath, "rows", len(rep.Rows), "format", tableio.FormatFromPath(outPath))

	return nil
}

// Execute runs the command with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdout, stderr)
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(stderr, UsageLine)
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
