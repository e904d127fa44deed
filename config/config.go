// SPDX-License-Identifier: MIT

// Package config loads gridpatrol settings.
//
// Precedence, highest first:
//  1. Environment variables with the GRIDPATROL_ prefix
//     (GRIDPATROL_SEARCH_WORKERS → search.workers).
//  2. A YAML file, when a path is given.
//  3. Defaults for anything still empty.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "GRIDPATROL_"

const maxConfigFileSize = 1024 * 1024

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of settings.
type Config struct {
	Search SearchConfig `koanf:"search"`
	Log    LogConfig    `koanf:"log"`
	Render RenderConfig `koanf:"render"`
}

// SearchConfig tunes the loop obstacle search.
type SearchConfig struct {
	// Workers is the pool size; 0 means one per CPU.
	Workers int `koanf:"workers"`
	// PathOnly restricts candidates to the baseline walk.
	PathOnly bool `koanf:"path_only"`
	// Timeout bounds a whole search; 0 disables it.
	Timeout time.Duration `koanf:"timeout"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// RenderConfig controls drawings.
type RenderConfig struct {
	Color bool `koanf:"color"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Search: SearchConfig{Workers: 0, PathOnly: false, Timeout: 0},
		Log:    LogConfig{Level: "info", Format: "console"},
		Render: RenderConfig{Color: false},
	}
}

// Load reads defaults, then the YAML file at path (skipped when path is
// empty), then GRIDPATROL_* environment variables, and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// GRIDPATROL_SEARCH_PATH_ONLY -> search.path_only: the first underscore
	// separates the section, the rest belongs to the field name.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		parts := strings.SplitN(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", 2)
		if len(parts) == 1 {
			return parts[0]
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Search.Workers < 0 {
		return fmt.Errorf("%w: search.workers must be >= 0 (%d)", ErrInvalidConfig, c.Search.Workers)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must be >= 0 (%s)", ErrInvalidConfig, c.Search.Timeout)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format must be json or console (%q)", ErrInvalidConfig, c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be debug, info, warn or error (%q)", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxConfigFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(content) > maxConfigFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalidConfig, path, maxConfigFileSize)
	}

	return content, nil
}

// applyDefaults fills settings left empty by the file and environment.
func applyDefaults(c *Config) {
	def := Default()
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}
