package clog

import (
	"io"
	"sync"
)

var (
	stdMu sync.RWMutex
	std   = NewLogger()
)

// Default returns the global logger.
func Default() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// Configure sets up the global logger.
// An empty logPath disables file logging. Quiet disables stderr output.
func Configure(logPath string, level Level, quiet bool) error {
	l := Default()
	l.SetLevel(level)
	l.SetQuiet(quiet)

	if logPath != "" {
		f, err := OpenLogFile(logPath)
		if err != nil {
			return err
		}
		l.SetFileOutput(f)
	}
	return nil
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// SetFileOutput sets the file writer for the global logger.
func SetFileOutput(w io.Writer) {
	Default().SetFileOutput(w)
}

// SetErrOutput sets the stderr writer for the global logger.
func SetErrOutput(w io.Writer) {
	Default().SetErrOutput(w)
}

// Debug logs a debug message using the global logger.
func Debug(format string, args ...any) {
	Default().Debug(format, args...)
}

// Info logs an informational message using the global logger.
func Info(format string, args ...any) {
	Default().Info(format, args...)
}

// Warn logs a warning message using the global logger.
func Warn(format string, args ...any) {
	Default().Warn(format, args...)
}

// Error logs an error message using the global logger.
func Error(format string, args ...any) {
	Default().Error(format, args...)
}

// Close closes the global logger's file output.
func Close() error {
	return Default().Close()
}

// Reset replaces the global logger with a fresh default one.
// Primarily useful for testing.
func Reset() {
	ReplaceGlobal(NewLogger())
}

// Discard silences the global logger.
func Discard() {
	l := Default()
	l.SetFileOutput(nil)
	l.SetErrOutput(nil)
}

// TestLogger returns a debug-level logger that writes every line to w.
func TestLogger(w io.Writer) *Logger {
	l := NewLogger()
	l.SetFileOutput(w)
	l.SetErrOutput(nil)
	l.SetLevel(LevelDebug)
	return l
}

// ReplaceGlobal replaces the global logger and returns the previous one.
func ReplaceGlobal(l *Logger) *Logger {
	stdMu.Lock()
	defer stdMu.Unlock()
	old := std
	std = l
	return old
}
