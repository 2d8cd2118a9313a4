package logging

import (
	"time"
)

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field with the given key and value.
// This is a shorthand for creating Field{Key: k, Value: v}.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Common field constructors for frequently used fields.

// SessionID creates a session ID field.
func SessionID(id string) Field {
	return F("session_id", id)
}

// RecordID creates an action record ID field.
func RecordID(id string) Field {
	return F("record_id", id)
}

// Command creates a command field, truncating if too long.
func Command(line string) Field {
	if len(line) > 200 {
		line = line[:197] + "..."
	}
	return F("command", line)
}

// Action creates an action counter field.
func Action(n int) Field {
	return F("action", n)
}

// Duration creates a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return F("duration_ms", d.Milliseconds())
}

// DurationSince creates a duration field from a start time.
func DurationSince(start time.Time) Field {
	return Duration(time.Since(start))
}

// Model creates a model name field.
func Model(name string) Field {
	return F("model", name)
}

// Path creates a file path field.
func Path(p string) Field {
	return F("path", p)
}

// Error creates an error field.
func Error(err error) Field {
	if err == nil {
		return F("error", nil)
	}
	return F("error", err.Error())
}

// Count creates a count field.
func Count(n int) Field {
	return F("count", n)
}

// From creates a "from" field for state transitions.
func From(value string) Field {
	return F("from", value)
}

// To creates a "to" field for state transitions.
func To(value string) Field {
	return F("to", value)
}

// Reason creates a reason field.
func Reason(r string) Field {
	return F("reason", r)
}
