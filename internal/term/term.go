// Package term provides user-facing terminal output for the coderun CLI.
// This is distinct from operational logging (see internal/clog).
//
// Output functions:
//   - Print/Printf/Println: normal output to stdout (suppressed with --silent)
//   - OutputLine/ErrorLine: echo of a fragment's captured lines to stdout and
//     stderr (both suppressed with --silent)
//   - Warn/Error: messages to stderr (never suppressed)
package term

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	silent bool
)

// SetSilent enables or disables silent mode.
func SetSilent(s bool) {
	mu.Lock()
	defer mu.Unlock()
	silent = s
}

// IsSilent returns whether silent mode is enabled.
func IsSilent() bool {
	mu.Lock()
	defer mu.Unlock()
	return silent
}

// SetOutput sets the writer for stdout output. Nil restores os.Stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	stdout = w
}

// SetErrOutput sets the writer for stderr output. Nil restores os.Stderr.
func SetErrOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	stderr = w
}

// write sends text to w unless it is quiet output in silent mode.
func write(w *io.Writer, quiet bool, text string) {
	mu.Lock()
	defer mu.Unlock()
	if quiet && silent {
		return
	}
	_, _ = io.WriteString(*w, text)
}

// Print formats and writes to stdout.
func Print(a ...any) {
	write(&stdout, true, fmt.Sprint(a...))
}

// Printf formats according to a format specifier and writes to stdout.
func Printf(format string, a ...any) {
	write(&stdout, true, fmt.Sprintf(format, a...))
}

// Println formats and writes to stdout with a trailing newline.
func Println(a ...any) {
	write(&stdout, true, fmt.Sprintln(a...))
}

// OutputLine echoes one captured stdout line of a fragment.
func OutputLine(line string) {
	write(&stdout, true, line+"\n")
}

// ErrorLine echoes one captured stderr line of a fragment, unprefixed.
func ErrorLine(line string) {
	write(&stderr, true, line+"\n")
}

// Warn writes a warning message to stderr with "Warning: " prefix.
func Warn(format string, a ...any) {
	write(&stderr, false, "Warning: "+fmt.Sprintf(format, a...)+"\n")
}

// Error writes an error message to stderr with "Error: " prefix.
func Error(format string, a ...any) {
	write(&stderr, false, "Error: "+fmt.Sprintf(format, a...)+"\n")
}

// Stdout returns the current stdout writer, or io.Discard when silent.
// Useful for libraries that need an io.Writer (e.g., tabwriter).
func Stdout() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	if silent {
		return io.Discard
	}
	return stdout
}

// Stderr returns the current stderr writer.
func Stderr() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stderr
}

// Reset restores the default writers and disables silent mode.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	stdout = os.Stdout
	stderr = os.Stderr
	silent = false
}

// Discard sends all output to io.Discard.
func Discard() {
	mu.Lock()
	defer mu.Unlock()
	stdout = io.Discard
	stderr = io.Discard
}
