// Package config handles tripbook configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults used when a key is missing from the config file.
const (
	DefaultDataFile     = "tripbook.json"
	DefaultHistoryFile  = "history.db"
	DefaultHistoryLimit = 50
	DefaultExportDir    = "exports"
	DefaultLogLevel     = "warn"
)

// Config represents the tripbook configuration.
type Config struct {
	// DataFile is the catalog file. Relative paths resolve against the
	// config file's directory.
	DataFile string `toml:"data_file"`

	// Format is "json" or "yaml". Empty picks one from DataFile's extension.
	Format string `toml:"format"`

	// HistoryFile is the SQLite database holding entered commands.
	HistoryFile string `toml:"history_file"`

	// HistoryLimit caps how many lines the history command shows.
	HistoryLimit int `toml:"history_limit"`

	// ExportDir receives exported itineraries.
	ExportDir string `toml:"export_dir"`

	Log LogConfig `toml:"log"`
	UI  UIConfig  `toml:"ui"`

	// dir is the directory relative paths resolve against.
	dir string
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level"`
	// Format is "text" (coloured when stderr is a terminal) or "json".
	Format string `toml:"format"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for headers and highlights.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme is the chroma theme for code blocks in rendered help.
	CodeTheme string `toml:"code_theme"`
}

// Load loads the configuration from path, or the default location when path
// is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := &Config{dir: filepath.Dir(path)}
		cfg.applyDefaults()
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataFile == "" {
		c.DataFile = DefaultDataFile
	}
	if c.HistoryFile == "" {
		c.HistoryFile = DefaultHistoryFile
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
	if c.ExportDir == "" {
		c.ExportDir = DefaultExportDir
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Format) {
	case "", "json", "yaml", "yml":
	default:
		return fmt.Errorf("format must be json or yaml, got %q", c.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative")
	}
	return nil
}

// Resolve turns a configured path into an absolute-or-cwd-relative path:
// "~/" expands to the home directory and relative paths are taken from the
// config file's directory.
func (c *Config) Resolve(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	if filepath.IsAbs(p) || c.dir == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(c.dir, p)
}

// DataPath returns the resolved catalog file path.
func (c *Config) DataPath() string { return c.Resolve(c.DataFile) }

// HistoryPath returns the resolved history database path.
func (c *Config) HistoryPath() string { return c.Resolve(c.HistoryFile) }

// ExportPath returns the resolved export directory.
func (c *Config) ExportPath() string { return c.Resolve(c.ExportDir) }

// DefaultPath returns the default config file path.
// Checks ~/.config/tripbook/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "tripbook", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "tripbook", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

const defaultConfig = `# tripbook configuration

# Catalog file; relative paths are resolved against this file's directory.
# data_file = "tripbook.json"
# format = "json"        # or "yaml"

# Command history (SQLite) and how many lines "history" shows.
# history_file = "history.db"
# history_limit = 50

# Where "export" writes itineraries.
# export_dir = "exports"

# Diagnostics on stderr.
# [log]
# level = "warn"         # debug, info, warn, error
# format = "text"        # or "json"

# Optional UI accent color for headers in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

// CreateDefault writes a commented default config to path unless a file
// already exists there.
func CreateDefault(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
