// Package config handles YAML configuration loading, environment variable
// expansion, and structural validation for wpmock sessions.
package config

import (
	"log/slog"
	"strings"

	"github.com/flemzord/wpmock/pkg/function"
)

// Config is the top-level configuration structure.
type Config struct {
	// Version is the config format version. Currently only "1" is supported.
	Version string `yaml:"version"`

	// StrictMode turns unmatched hooks and unmocked functions into test
	// failures. It only takes effect before the first session opens.
	StrictMode bool `yaml:"strict_mode"`

	// Patching allows native functions to be mocked.
	Patching bool `yaml:"patching"`

	// LogLevel is debug, info, warn or error. Empty keeps the default logger.
	LogLevel string `yaml:"log_level,omitempty"`

	// Functions maps function names to the expectations registered for
	// them when a session opens.
	Functions map[string][]function.Options `yaml:"functions,omitempty"`

	// Echo lists functions that print their first argument.
	Echo []string `yaml:"echo,omitempty"`

	// Passthru lists functions that return their first argument.
	Passthru []string `yaml:"passthru,omitempty"`
}

// Level returns the slog level for LogLevel. ok is false when LogLevel
// is empty or unknown.
func (c *Config) Level() (level slog.Level, ok bool) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
