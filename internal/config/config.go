package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/riordanpawley/taskify/internal/domain"
)

// ProjectFileName is the per-directory config file
const ProjectFileName = ".taskify.toml"

// Config represents the full Taskify configuration
type Config struct {
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// UIConfig contains display and form settings
type UIConfig struct {
	DefaultPriority string `toml:"default_priority"`
	DateFormat      string `toml:"date_format"`
	ConfirmDelete   bool   `toml:"confirm_delete"`
	ToastSeconds    int    `toml:"toast_seconds"`
}

// LogConfig contains logging settings. An empty File disables logging.
type LogConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			DefaultPriority: "Medium",
			DateFormat:      domain.DateLayout,
			ConfirmDelete:   true,
			ToastSeconds:    3,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ToastDuration returns how long toasts stay on screen. Zero turns toasts off.
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.UI.ToastSeconds) * time.Second
}

// DefaultPriority returns the parsed form default, falling back to Medium
func (c *Config) DefaultPriority() domain.Priority {
	p, err := domain.ParsePriority(c.UI.DefaultPriority)
	if err != nil {
		return domain.PriorityMedium
	}
	return p
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := domain.ParsePriority(c.UI.DefaultPriority); err != nil {
		return fmt.Errorf("ui.default_priority: %w", err)
	}
	if c.UI.ToastSeconds < 0 {
		return fmt.Errorf("ui.toast_seconds must not be negative, got %d", c.UI.ToastSeconds)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	return nil
}

// LoadFile loads configuration from an explicit TOML file.
// Keys absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfig loads configuration with priority:
// 1. .taskify.toml in dir
// 2. taskify/config.toml in the user config directory
// 3. Defaults
func LoadConfig(dir string) (*Config, error) {
	candidates := []string{filepath.Join(dir, ProjectFileName)}
	if userDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(userDir, "taskify", "config.toml"))
	}

	for _, path := range candidates {
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		return LoadFile(path)
	}

	return DefaultConfig(), nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.UI.DefaultPriority == "" {
		cfg.UI.DefaultPriority = defaults.UI.DefaultPriority
	}
	if cfg.UI.DateFormat == "" {
		cfg.UI.DateFormat = defaults.UI.DateFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
