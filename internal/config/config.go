// Package config loads the optional gitok configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"gitok/internal/check"
)

// RulesConfig mirrors the [rules] table of the config file. Any list that
// is set replaces the corresponding built-in default wholesale.
type RulesConfig struct {
	Patterns         []string `toml:"patterns"`
	Extensions       []string `toml:"extensions"`
	ExcludeDirs      []string `toml:"exclude_dirs"`
	SourceExtensions []string `toml:"source_extensions"`
	SourceAllowlist  []string `toml:"source_allowlist"`
}

// Config holds the gitok configuration.
type Config struct {
	Rules RulesConfig `toml:"rules"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{}
}

// Path returns the location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gitok", "config.toml"), nil
}

// Load reads the config file from its default location. A missing file
// yields the default configuration without error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path. A missing file
// yields the default configuration without error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ClassifierRules returns the effective classification rules: built-in
// defaults with any configured list substituted.
func (c Config) ClassifierRules() check.Rules {
	rules := check.DefaultRules()
	if len(c.Rules.Patterns) > 0 {
		rules.Patterns = c.Rules.Patterns
	}
	if len(c.Rules.Extensions) > 0 {
		rules.Extensions = c.Rules.Extensions
	}
	if len(c.Rules.ExcludeDirs) > 0 {
		rules.ExcludeDirs = c.Rules.ExcludeDirs
	}
	if len(c.Rules.SourceExtensions) > 0 {
		rules.SourceExtensions = c.Rules.SourceExtensions
	}
	if len(c.Rules.SourceAllowlist) > 0 {
		rules.SourceAllowlist = c.Rules.SourceAllowlist
	}
	return rules
}
