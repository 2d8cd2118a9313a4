package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileWriter writes log messages to a session log file.
// It always logs all levels regardless of console settings.
type FileWriter struct {
	mu       sync.Mutex
	file     *os.File
	logDir   string
	logPath  string
	initOnce sync.Once
	initErr  error
}

// NewFileWriter creates a new file writer.
// Initialization is lazy - the file is only created on first write.
func NewFileWriter(logDir string) *FileWriter {
	return &FileWriter{
		logDir: logDir,
	}
}

// init initializes the file writer lazily on first use.
func (f *FileWriter) init() error {
	f.initOnce.Do(func() {
		f.initErr = f.doInit()
	})
	return f.initErr
}

func (f *FileWriter) doInit() error {
	logDir := f.logDir
	if !filepath.IsAbs(logDir) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		logDir = filepath.Join(cwd, f.logDir)
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logPath := filepath.Join(logDir, fmt.Sprintf("session_%s.log", timestamp))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}

	f.file = file
	f.logPath = logPath

	_, _ = fmt.Fprintf(file, "=== Log started at %s ===\n", time.Now().Format("2006-01-02 15:04:05"))

	// Keep a stable pointer to the most recent log
	latestPath := filepath.Join(logDir, "latest.log")
	_ = os.Remove(latestPath)
	_ = os.Symlink(filepath.Base(logPath), latestPath)

	return nil
}

// Write appends a log line to the session file.
func (f *FileWriter) Write(level Level, prefix, msg string, fields ...Field) error {
	if err := f.init(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	sb.WriteString(" ")
	sb.WriteString(fmt.Sprintf("%-5s", level.String()))
	sb.WriteString(" ")
	if prefix != "" {
		sb.WriteString("[")
		sb.WriteString(prefix)
		sb.WriteString("] ")
	}
	sb.WriteString(msg)
	for _, fl := range fields {
		sb.WriteString(" ")
		sb.WriteString(fl.Key)
		sb.WriteString("=")
		sb.WriteString(formatValue(fl.Value))
	}
	sb.WriteString("\n")

	_, err := f.file.WriteString(sb.String())
	return err
}

// Path returns the active log file path, or empty if not yet initialized.
func (f *FileWriter) Path() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logPath
}

// Close closes the log file.
func (f *FileWriter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}
	_, _ = fmt.Fprintf(f.file, "=== Log closed at %s ===\n", time.Now().Format("2006-01-02 15:04:05"))
	err := f.file.Close()
	f.file = nil
	return err
}
