// Package audit records fragment executions as structured log lines.
// Entries follow a key=value format suitable for parsing and analysis.
package audit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// EventType represents the type of execution event.
type EventType string

// Event types for fragment executions.
const (
	EventStart     EventType = "START"
	EventSkip      EventType = "SKIP"
	EventComplete  EventType = "COMPLETE"
	EventInterrupt EventType = "INTERRUPT"
)

// Event represents an execution audit log entry.
type Event struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time

	// Type is the event type (START, COMPLETE, etc.)
	Type EventType

	// ID is the execution ID. Empty for SKIP events, where nothing ran.
	ID string

	// Source is where the fragment was read from ("-" for stdin).
	Source string

	// Evaluator describes the fragment's evaluator.
	Evaluator string

	// Cmd is the resolved command line.
	Cmd string

	// Status is the terminal status (for COMPLETE events).
	Status string

	// Duration is the time from launch to the event (for COMPLETE and
	// INTERRUPT events).
	Duration time.Duration
}

// Format returns the log entry as a formatted string.
// Format: 2024-01-15T14:32:05Z EXEC START id=1b4e28ba source="demo.sh" evaluator="shell" cmd="sh"
func (e *Event) Format() string {
	var b strings.Builder

	b.WriteString(e.Timestamp.UTC().Format(time.RFC3339))
	b.WriteString(" EXEC ")
	b.WriteString(string(e.Type))

	if e.ID != "" {
		b.WriteString(" id=")
		b.WriteString(e.ID)
	}
	writeOptionalField(&b, "source", e.Source)
	writeOptionalField(&b, "evaluator", e.Evaluator)
	writeOptionalField(&b, "cmd", e.Cmd)

	switch e.Type {
	case EventComplete:
		b.WriteString(" status=")
		b.WriteString(e.Status)
		b.WriteString(" duration=")
		b.WriteString(formatDuration(e.Duration))
	case EventInterrupt:
		b.WriteString(" duration=")
		b.WriteString(formatDuration(e.Duration))
	}

	return b.String()
}

// writeOptionalField appends " key=quoted_value" to the builder if value is non-empty.
func writeOptionalField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString("=")
	b.WriteString(fmt.Sprintf("%q", value))
}

// formatDuration formats a duration as a human-readable string (e.g., "2.3s", "1m30s").
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return d.Round(time.Second).String()
}

// Logger writes audit events to an io.Writer. A nil Logger discards events.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewLogger creates a new audit logger that writes to the given writer.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w, now: time.Now}
}

// Open returns a Logger appending to path, creating the file and its parent
// directory if needed. The returned closer closes the file.
func Open(path string) (*Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create audit log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open audit log: %w", err)
	}
	return NewLogger(f), f, nil
}

// Log writes an event to the audit log. A zero Timestamp is set to now.
func (l *Logger) Log(e *Event) error {
	if l == nil || l.w == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Timestamp.IsZero() {
		e.Timestamp = l.now()
	}
	if _, err := io.WriteString(l.w, e.Format()+"\n"); err != nil {
		return fmt.Errorf("write audit event: %w", err)
	}
	return nil
}

// LogStart logs an EXEC START event.
func (l *Logger) LogStart(id, source, evaluator, cmd string) error {
	return l.Log(&Event{
		Type:      EventStart,
		ID:        id,
		Source:    source,
		Evaluator: evaluator,
		Cmd:       cmd,
	})
}

// LogSkip logs an EXEC SKIP event for a fragment the user declined to run.
func (l *Logger) LogSkip(source, evaluator, cmd string) error {
	return l.Log(&Event{
		Type:      EventSkip,
		Source:    source,
		Evaluator: evaluator,
		Cmd:       cmd,
	})
}

// LogComplete logs an EXEC COMPLETE event.
func (l *Logger) LogComplete(id, status string, duration time.Duration) error {
	return l.Log(&Event{
		Type:     EventComplete,
		ID:       id,
		Status:   status,
		Duration: duration,
	})
}

// LogInterrupt logs an EXEC INTERRUPT event for an execution the CLI stopped
// following before it finished.
func (l *Logger) LogInterrupt(id string, duration time.Duration) error {
	return l.Log(&Event{
		Type:     EventInterrupt,
		ID:       id,
		Duration: duration,
	})
}
