package clog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// sink holds the outputs and level shared by a logger and its children.
type sink struct {
	mu         sync.Mutex
	level      Level     // minimum level to log
	fileWriter io.Writer // receives every line at or above level
	errWriter  io.Writer // receives warn/error unless quiet
	quiet      bool      // when true, errWriter is ignored
}

// Logger handles leveled logging with support for multiple outputs.
// Loggers derived with With share the parent's outputs and level.
type Logger struct {
	sink   *sink
	prefix string
}

// NewLogger creates a new logger with default settings.
// By default, warnings and errors go to stderr and the level is Info.
func NewLogger() *Logger {
	return &Logger{
		sink: &sink{
			level:     LevelInfo,
			errWriter: os.Stderr,
		},
	}
}

// With returns a child logger that prefixes every message with field.
func (l *Logger) With(field string) *Logger {
	prefix := field
	if l.prefix != "" {
		prefix = l.prefix + " " + field
	}
	return &Logger{sink: l.sink, prefix: prefix}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

// Level returns the minimum log level.
func (l *Logger) Level() Level {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.level
}

// SetFileOutput sets the file writer for log output.
// Pass nil to disable file logging.
func (l *Logger) SetFileOutput(w io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.fileWriter = w
}

// SetErrOutput sets the stderr writer for warn/error output.
// Pass nil to disable stderr logging.
func (l *Logger) SetErrOutput(w io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.errWriter = w
}

// SetQuiet enables or disables quiet mode.
// In quiet mode, logs only go to the file writer, not stderr.
func (l *Logger) SetQuiet(quiet bool) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.quiet = quiet
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...any) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.level {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		msg = l.prefix + " " + msg
	}

	if s.fileWriter != nil {
		timestamp := time.Now().UTC().Format(time.RFC3339)
		_, _ = fmt.Fprintf(s.fileWriter, "%s [%s] %s\n", timestamp, level, msg)
	}

	// stderr gets a shorter line without timestamp
	if !s.quiet && s.errWriter != nil && level >= LevelWarn {
		_, _ = fmt.Fprintf(s.errWriter, "[%s] %s\n", level, msg)
	}
}

// Close closes the file writer if it implements io.Closer and stops file
// logging.
func (l *Logger) Close() error {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	closer, ok := l.sink.fileWriter.(io.Closer)
	l.sink.fileWriter = nil
	if ok {
		return closer.Close()
	}
	return nil
}

// OpenLogFile opens a log file for appending, creating parent directories if needed.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// DefaultLogPath returns $XDG_STATE_HOME/coderun/coderun.log, falling back to
// ~/.local/state when XDG_STATE_HOME is unset.
func DefaultLogPath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "coderun", "coderun.log")
}
