// Package config loads the mlatu command-line configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/you-not-fish/mlatu/internal/syntax"
)

// DefaultFile is the config file looked up in the working directory when
// no path is given.
const DefaultFile = "mlatu.toml"

// Output formats understood by the parse command.
var Formats = []string{"text", "json", "yaml", "canon"}

// Config holds the complete CLI configuration.
type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Output OutputConfig `toml:"output"`
	Check  CheckConfig  `toml:"check"`
}

// ParseConfig holds parser settings.
type ParseConfig struct {
	Mode string `toml:"mode"` // term, terms, rule or rules

	// TrimFinalNewline drops one trailing "\n" or "\r\n" from file input.
	// Line breaks are control characters, not separators, so a file saved
	// by a text editor would otherwise fail at its last byte.
	TrimFinalNewline *bool `toml:"trim_final_newline"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string `toml:"format"` // text, json, yaml or canon
	Color  *bool  `toml:"color"`
}

// CheckConfig holds settings for the check command.
type CheckConfig struct {
	Jobs int `toml:"jobs"` // files parsed in parallel
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file and applies defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Discover loads path if set. Otherwise it loads DefaultFile from dir when
// present, and falls back to Default. The returned string names the file
// that was loaded, or is empty.
func Discover(path, dir string) (*Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	candidate := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), "", nil
		}
		return nil, "", err
	}
	cfg, err := Load(candidate)
	return cfg, candidate, err
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Parse.Mode == "" {
		c.Parse.Mode = syntax.RulesMode.String()
	}
	if c.Parse.TrimFinalNewline == nil {
		c.Parse.TrimFinalNewline = boolPtr(true)
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Color == nil {
		c.Output.Color = boolPtr(true)
	}
	if c.Check.Jobs <= 0 {
		c.Check.Jobs = runtime.GOMAXPROCS(0)
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := syntax.ParseMode(c.Parse.Mode); err != nil {
		return err
	}
	return CheckFormat(c.Output.Format)
}

// CheckFormat reports an error unless f is one of Formats.
func CheckFormat(f string) error {
	if !validFormat(f) {
		return fmt.Errorf("unknown output format %q (want text, json, yaml or canon)", f)
	}
	return nil
}

// ParseMode returns the configured parse mode.
func (c *Config) ParseMode() syntax.Mode {
	m, err := syntax.ParseMode(c.Parse.Mode)
	if err != nil {
		return syntax.RulesMode
	}
	return m
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

func boolPtr(b bool) *bool { return &b }
