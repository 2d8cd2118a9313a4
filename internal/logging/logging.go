package logging

import (
	"sync"
)

// Logger is the main logging interface.
// It writes to the console (level-filtered) and the session log file (all levels).
type Logger struct {
	config  Config
	console *ConsoleWriter
	file    *FileWriter

	// Current component prefix (e.g., "agent", "inference", "store")
	prefix string
}

// global logger instance
var (
	globalLogger *Logger
	globalMu     sync.RWMutex
)

// Init initializes the global logger with the given configuration.
// This should be called early in main() before any logging occurs.
func Init(cfg Config) (*Logger, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	logger := New(cfg)
	globalLogger = logger
	return logger, nil
}

// New creates a new Logger instance.
func New(cfg Config) *Logger {
	consoleLevel := cfg.Level
	if cfg.Verbose {
		consoleLevel = LevelDebug
	}

	return &Logger{
		config:  cfg,
		console: NewConsoleWriter(consoleLevel),
		file:    NewFileWriter(cfg.LogDir),
	}
}

// Global returns the global logger instance.
// Returns nil if Init has not been called.
func Global() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// WithPrefix returns a new logger with the given prefix.
// The prefix appears in log output as [prefix].
func (l *Logger) WithPrefix(prefix string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		config:  l.config,
		console: l.console,
		file:    l.file,
		prefix:  prefix,
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...Field) {
	if l == nil {
		return
	}
	l.log(LevelDebug, msg, fields...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, fields ...Field) {
	if l == nil {
		return
	}
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...Field) {
	if l == nil {
		return
	}
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...Field) {
	if l == nil {
		return
	}
	l.log(LevelError, msg, fields...)
}

// log writes to console and file.
func (l *Logger) log(level Level, msg string, fields ...Field) {
	l.console.Write(level, l.prefix, msg, fields...)
	_ = l.file.Write(level, l.prefix, msg, fields...)
}

// IsDebugEnabled returns true if debug logging is enabled.
func (l *Logger) IsDebugEnabled() bool {
	if l == nil {
		return false
	}
	return l.console.Enabled(LevelDebug)
}

// SetLevel sets the console log level.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.console.SetLevel(level)
}

// Close closes the logger and its file writer.
// This should be called on application exit.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	return l.file.Close()
}

// Package-level convenience functions using the global logger

// Debug logs a debug message to the global logger.
func Debug(msg string, fields ...Field) {
	if l := Global(); l != nil {
		l.Debug(msg, fields...)
	}
}

// Info logs an informational message to the global logger.
func Info(msg string, fields ...Field) {
	if l := Global(); l != nil {
		l.Info(msg, fields...)
	}
}

// Warn logs a warning message to the global logger.
func Warn(msg string, fields ...Field) {
	if l := Global(); l != nil {
		l.Warn(msg, fields...)
	}
}

// LogError logs an error message to the global logger.
func LogError(msg string, fields ...Field) {
	if l := Global(); l != nil {
		l.Error(msg, fields...)
	}
}

// Close closes the global logger.
func Close() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger != nil {
		err := globalLogger.Close()
		globalLogger = nil
		return err
	}
	return nil
}
