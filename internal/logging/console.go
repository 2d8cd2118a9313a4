package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ConsoleWriter writes human-readable log messages to stderr.
// It respects log level filtering.
type ConsoleWriter struct {
	mu       sync.Mutex
	output   io.Writer
	minLevel Level
}

// NewConsoleWriter creates a new console writer with the given minimum level.
func NewConsoleWriter(minLevel Level) *ConsoleWriter {
	return &ConsoleWriter{
		output:   os.Stderr,
		minLevel: minLevel,
	}
}

// SetOutput sets the output destination (mainly for testing).
func (c *ConsoleWriter) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.output = w
}

// SetLevel sets the minimum log level.
func (c *ConsoleWriter) SetLevel(level Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minLevel = level
}

// Enabled reports whether the given level would be written.
func (c *ConsoleWriter) Enabled(level Level) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return level >= c.minLevel
}

// Write writes a log message if the level meets the minimum. The prefix is
// per call so concurrent loggers sharing the writer cannot stamp each other's
// lines.
// Format: "15:04:05 LEVEL [prefix] message key=value key=value"
func (c *ConsoleWriter) Write(level Level, prefix, msg string, fields ...Field) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if level < c.minLevel {
		return
	}

	timestamp := time.Now().Format("15:04:05")

	var sb strings.Builder
	sb.WriteString(timestamp)
	sb.WriteString(" ")

	// Level with fixed width for alignment
	sb.WriteString(fmt.Sprintf("%-5s", level.String()))
	sb.WriteString(" ")

	if prefix != "" {
		sb.WriteString("[")
		sb.WriteString(prefix)
		sb.WriteString("] ")
	}

	sb.WriteString(msg)

	for _, f := range fields {
		sb.WriteString(" ")
		sb.WriteString(f.Key)
		sb.WriteString("=")
		sb.WriteString(formatValue(f.Value))
	}

	sb.WriteString("\n")

	_, _ = c.output.Write([]byte(sb.String()))
}

// formatValue formats a value for log output.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		// Quote strings that contain spaces
		if strings.ContainsAny(val, " \t\n") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case error:
		if val == nil {
			return "<nil>"
		}
		return fmt.Sprintf("%q", val.Error())
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%v", val)
	}
}
