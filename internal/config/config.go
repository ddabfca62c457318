// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config collects the settings shared by the chart commands.
//
// Settings come from, in increasing priority, built-in defaults, a
// .env file in the working directory, the environment, and command
// line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/aclements/chartgallery/internal/theme"
)

// Config is the configuration of one chart command run.
type Config struct {
	Mode      string `env:"CHART_MODE" envDefault:"light"`
	DataDir   string `env:"CHART_DATA_DIR" envDefault:"data"`
	OutputDir string `env:"CHART_OUTPUT_DIR" envDefault:"output"`

	// Viewer is a shell-quoted command line that is run with the
	// saved chart's path appended when Show is set.
	Viewer string `env:"CHART_VIEWER"`
	Show   bool   `env:"CHART_SHOW"`

	// Input overrides the command's default input file.
	Input string

	// Table prints the loaded data instead of drawing a chart.
	Table bool
}

// Load reads dotenv, if it exists, into the environment and then
// parses the environment. An empty dotenv skips the file.
func Load(dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", dotenv, err)
		}
	}
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags defines the common flags on flags, defaulting to the
// values already in cfg.
func (cfg *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.StringVar(&cfg.Mode, "mode", cfg.Mode, "color `mode`: light or dark")
	flags.StringVar(&cfg.Input, "data", cfg.Input, "read data from `file` (default: in $CHART_DATA_DIR)")
	flags.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "write the chart to `dir`")
	flags.BoolVar(&cfg.Show, "show", cfg.Show, "open the chart with $CHART_VIEWER after saving")
	flags.BoolVar(&cfg.Table, "table", cfg.Table, "print the input table instead of a chart")
}

// InputPath returns the file to read: the -data flag if given,
// otherwise name in DataDir.
func (cfg *Config) InputPath(name string) string {
	if cfg.Input != "" {
		return cfg.Input
	}
	return filepath.Join(cfg.DataDir, name)
}

// Theme returns the theme selected by Mode.
func (cfg *Config) Theme() (*theme.Theme, error) {
	m, err := theme.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return theme.For(m), nil
}
