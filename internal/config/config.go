// SPDX-License-Identifier: MIT

// Package config holds the runtime configuration of the journalrank CLI and
// its logger setup.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/journalrank/hits"
	"github.com/katalvlaran/journalrank/matrix"
	"github.com/katalvlaran/journalrank/pipeline"
)

// EnvPrefix prefixes every environment override, e.g. JOURNALRANK_SORT_BY.
const EnvPrefix = "JOURNALRANK"

// Keys shared by flags, config files and environment variables.
const (
	KeySortBy    = "sort_by"
	KeyMethods   = "methods"
	KeyMaxRounds = "max_rounds"
	KeyRTol      = "rtol"
	KeyATol      = "atol"
	KeyLogLevel  = "log_level"
	KeyLogFile   = "log_file"
)

// Config holds all runtime configuration for one ranking run.
// Values come from defaults, an optional config file, JOURNALRANK_* env vars
// and CLI flags (highest precedence last).
type Config struct {
	SortBy    string   `mapstructure:"sort_by"`
	Methods   []string `mapstructure:"methods"`
	MaxRounds int      `mapstructure:"max_rounds"`
	RTol      float64  `mapstructure:"rtol"`
	ATol      float64  `mapstructure:"atol"`
	LogLevel  string   `mapstructure:"log_level"`
	LogFile   string   `mapstructure:"log_file"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySortBy, "") // first selected method
	v.SetDefault(KeyMethods, pipeline.AllMethods())
	v.SetDefault(KeyMaxRounds, hits.DefaultMaxRounds)
	v.SetDefault(KeyRTol, matrix.DefaultRTol)
	v.SetDefault(KeyATol, matrix.DefaultATol)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
}

// ReadFile loads an explicit config file, or an optional .journalrank.{yaml,toml}
// from the working directory when path is empty.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	}
	v.SetConfigName(".journalrank")
	v.AddConfigPath(".")
	// It's fine if no config file is found; we use defaults.
	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Load decodes v into a Config. Environment variables use EnvPrefix.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Methods = splitMethods(cfg.Methods)

	return cfg, nil
}

// splitMethods accepts both ["hits","demange"] and ["hits,demange"]
// (the form an environment variable arrives in).
func splitMethods(in []string) []string {
	var out []string
	for _, m := range in {
		for _, part := range strings.Split(m, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}

// PipelineOptions maps the configuration onto pipeline.Options.
func (c Config) PipelineOptions(logger *slog.Logger) pipeline.Options {
	return pipeline.Options{
		Methods: c.Methods,
		SortBy:  c.SortBy,
		HITS: hits.Options{
			MaxRounds: c.MaxRounds,
			RTol:      c.RTol,
			ATol:      c.ATol,
		},
		Logger: logger,
	}
}
