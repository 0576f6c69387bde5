package config

import (
	"os"
	"path/filepath"

	"github.com/incredifont/incredifont/pkg/banner"
)

// CurrentVersion is the only config schema version understood.
const CurrentVersion = "1"

// Config holds the user's banner defaults. Command-line flags override it.
type Config struct {
	Version    string `yaml:"version"`
	Colors     *bool  `yaml:"colors,omitempty"`    // nil: color when stdout is a terminal
	LineLength int    `yaml:"line_length,omitempty"`
	Subtitle   string `yaml:"subtitle,omitempty"`
	Clipboard  *bool  `yaml:"clipboard,omitempty"` // nil: copy
	Log        Log    `yaml:"log,omitempty"`
}

// Log configures the diagnostic logger.
type Log struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text or json
	File   string `yaml:"file,omitempty"`   // rotated log file; empty logs to stderr
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.LineLength == 0 {
		c.LineLength = banner.DefaultLineLength
	}
	if c.Clipboard == nil {
		copyToClipboard := true
		c.Clipboard = &copyToClipboard
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// ColorsFor resolves the colors setting against whether output is a terminal.
func (c *Config) ColorsFor(isTTY bool) bool {
	if c.Colors == nil {
		return isTTY
	}
	return *c.Colors
}

// CopyToClipboard reports whether rendered banners should be copied.
func (c *Config) CopyToClipboard() bool {
	return c.Clipboard == nil || *c.Clipboard
}

// BaseDir returns the incredifont directory (~/.incredifont/).
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".incredifont")
}

// DefaultPath returns the config file read when --config is not given.
func DefaultPath() string {
	return filepath.Join(BaseDir(), "config.yaml")
}
