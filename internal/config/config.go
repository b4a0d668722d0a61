// SpaceX Launch Dashboard: launch-outcome charts over a static launch dataset

// Copyright (C) 2014 Christian Paro <christian.paro@gmail.com>,
//                                   <cparo@digitalocean.com>

// This program is free software: you can redistribute it and/or modify it under
// the terms of the GNU General Public License version 2 as published by the
// Free Software Foundation.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.

// You should have received a copy of the GNU General Public License along with
// this program. If not, see <http://www.gnu.org/licenses/>.

// Package config loads the dashboard server's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the dashboard server configuration.
type Config struct {
	// Launch dataset, read once at startup.
	DataPath string `yaml:"data_path"`

	// Address the HTTP server listens on.
	Listen string `yaml:"listen"`

	// Default size of rendered charts, in pixels.
	Chart ChartConfig `yaml:"chart"`

	// How long in-flight requests get to finish on shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	Logging LoggingConfig `yaml:"logging"`
}

// ChartConfig sets the default rendered chart size.
type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		DataPath: "spacex_launch_dash.csv",
		Listen:   ":8050",
		Chart: ChartConfig{
			Width:  800,
			Height: 450,
		},
		ShutdownTimeout: 5 * time.Second,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the configuration at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.DataPath == "":
		return errors.New("data_path must be set")
	case c.Listen == "":
		return errors.New("listen must be set")
	case c.Chart.Width <= 0 || c.Chart.Height <= 0:
		return fmt.Errorf("invalid chart size %dx%d", c.Chart.Width, c.Chart.Height)
	case c.ShutdownTimeout < 0:
		return errors.New("shutdown_timeout must not be negative")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	return nil
}
