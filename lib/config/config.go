// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/socdos/socdos/lib/fstree"
)

// EnvironmentVariable names the variable Load reads the config path
// from.
const EnvironmentVariable = "SOCDOS_CONFIG"

// Config is the master configuration for socdos.
type Config struct {
	// Limits bounds the file tree.
	Limits LimitsConfig `yaml:"limits"`

	// Shell configures the interactive shell.
	Shell ShellConfig `yaml:"shell"`

	// Log configures diagnostic logging on stderr.
	Log LogConfig `yaml:"log"`
}

// LimitsConfig mirrors fstree.Limits with YAML names.
type LimitsConfig struct {
	// MaxNameLength is the longest name in bytes. Default: 12
	MaxNameLength int `yaml:"max_name_length"`

	// MaxChildren is the most directories per directory. Default: 64
	MaxChildren int `yaml:"max_children"`

	// MaxEntries is the most files per directory. Default: 64
	MaxEntries int `yaml:"max_entries"`

	// MaxEntrySize is the largest file. Default: 32 KiB
	MaxEntrySize ByteSize `yaml:"max_entry_size"`

	// MemoryBudget is the nominal memory size. It is shown, never
	// enforced. Default: 640 KiB
	MemoryBudget ByteSize `yaml:"memory_budget"`
}

// ShellConfig configures the interactive shell.
type ShellConfig struct {
	// Banner prints the limits table on startup. Default: true
	Banner bool `yaml:"banner"`

	// Color is "auto" (colour when stdout is a terminal), "always" or
	// "never". Default: auto
	Color string `yaml:"color"`

	// HighlightStyle is the chroma style used by cat. Default: monokai
	HighlightStyle string `yaml:"highlight_style"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error. Default: warn
	Level string `yaml:"level"`

	// Format is "auto" (text on a terminal, JSON otherwise), "text" or
	// "json". Default: auto
	Format string `yaml:"format"`
}

// Default returns the default configuration. A config file is
// optional; these values apply to every key it leaves out.
func Default() *Config {
	limits := fstree.DefaultLimits()
	return &Config{
		Limits: LimitsConfig{
			MaxNameLength: limits.MaxNameLength,
			MaxChildren:   limits.MaxChildren,
			MaxEntries:    limits.MaxEntries,
			MaxEntrySize:  ByteSize(limits.MaxEntrySize),
			MemoryBudget:  ByteSize(limits.MemoryBudget),
		},
		Shell: ShellConfig{
			Banner:         true,
			Color:          "auto",
			HighlightStyle: "monokai",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "auto",
		},
	}
}

// Load loads configuration from the file named by SOCDOS_CONFIG, or
// returns Default when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, on top of
// Default.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile merges a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	// JSON is a subset of YAML once comments and trailing commas are
	// gone, so one decoder serves both.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.TreeLimits().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("limits: %w", err))
	}

	colorValues := []string{"auto", "always", "never"}
	if !slices.Contains(colorValues, c.Shell.Color) {
		errs = append(errs, fmt.Errorf("shell.color must be one of: %v", colorValues))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	formatValues := []string{"auto", "text", "json"}
	if !slices.Contains(formatValues, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", formatValues))
	}

	return errors.Join(errs...)
}

// TreeLimits converts the limits section to fstree.Limits.
func (c *Config) TreeLimits() fstree.Limits {
	return fstree.Limits{
		MaxNameLength: c.Limits.MaxNameLength,
		MaxChildren:   c.Limits.MaxChildren,
		MaxEntries:    c.Limits.MaxEntries,
		MaxEntrySize:  int(c.Limits.MaxEntrySize),
		MemoryBudget:  int64(c.Limits.MemoryBudget),
	}
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: must be debug, info, warn or error", l.Level)
	}
	return level, nil
}

// ByteSize is a byte count that unmarshals from either an integer or
// a humanized size string such as "32KiB".
type ByteSize int64

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *ByteSize) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: byte size must be a scalar", value.Line)
	}
	parsed, err := humanize.ParseBytes(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid byte size %q: %w", value.Line, value.Value, err)
	}
	*b = ByteSize(parsed)
	return nil
}

// String returns the IEC-formatted size, e.g. "32 KiB".
func (b ByteSize) String() string {
	return humanize.IBytes(uint64(b))
}
