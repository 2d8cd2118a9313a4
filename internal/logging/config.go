// Package logging provides the unified logging system for operant.
// It supports leveled console output on stderr and per-session log files.
package logging

import (
	"os"
	"strings"
)

// Level represents log severity levels.
type Level int

const (
	// LevelDebug logs everything, including verbose debugging information.
	LevelDebug Level = iota
	// LevelInfo logs informational messages and above.
	LevelInfo
	// LevelWarn logs warnings and errors only.
	LevelWarn
	// LevelError logs only error messages.
	LevelError
)

// String returns the string representation of a log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level for console output.
	Level Level

	// LogDir is the directory for session log files.
	// Defaults to .operant/logs in the current working directory.
	LogDir string

	// Verbose enables debug-level console output.
	Verbose bool
}

// DefaultLogDir is the default directory for session logs (relative to cwd).
const DefaultLogDir = ".operant/logs"

// ConfigFromEnv creates a Config from environment variables.
//
// Environment variables:
//   - OPERANT_LOG_LEVEL: console log level (debug, info, warn, error)
//   - OPERANT_LOG_DIR: override session log directory
func ConfigFromEnv() Config {
	cfg := Config{
		Level:  LevelInfo,
		LogDir: DefaultLogDir,
	}

	if level := os.Getenv("OPERANT_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if dir := os.Getenv("OPERANT_LOG_DIR"); dir != "" {
		cfg.LogDir = dir
	}

	return cfg
}

// WithVerbose returns a copy of the config with verbose mode enabled.
func (c Config) WithVerbose(enabled bool) Config {
	c.Verbose = enabled
	if enabled {
		c.Level = LevelDebug
	}
	return c
}

// WithLevel returns a copy of the config with the specified level.
func (c Config) WithLevel(level Level) Config {
	c.Level = level
	return c
}
