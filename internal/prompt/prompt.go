// Package prompt asks the user questions on the terminal. The Prompter
// interface has a mock implementation so commands can be tested without one.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompter presents numbered options and returns the user's selection.
type Prompter interface {
	// Prompt returns the zero-based index of the selected option, or
	// defaultIdx when the user just presses Enter.
	Prompt(prompt string, options []string, defaultIdx int) (int, error)
}

// ErrNotTerminal is returned when an interactive prompt is required but
// stdin is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// StdinPrompter implements Prompter on a reader and writer.
type StdinPrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewStdinPrompter creates a StdinPrompter that reads from r and writes to w.
func NewStdinPrompter(r io.Reader, w io.Writer) *StdinPrompter {
	return &StdinPrompter{In: r, Out: w}
}

// Prompt displays the prompt followed by 1-indexed options and reads one line.
func (p *StdinPrompter) Prompt(prompt string, options []string, defaultIdx int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options provided")
	}
	if defaultIdx < 0 || defaultIdx >= len(options) {
		return 0, fmt.Errorf("default index %d out of range [0, %d)", defaultIdx, len(options))
	}

	// Show the question
	_, _ = fmt.Fprintln(p.Out, prompt)

	// Numbered options, 1-indexed for the user
	for i, opt := range options {
		suffix := ""
		if i == defaultIdx {
			suffix = " (default)"
		}
		_, _ = fmt.Fprintf(p.Out, "  %d. %s%s\n", i+1, opt, suffix)
	}
	_, _ = fmt.Fprintf(p.Out, "Enter selection [%d]: ", defaultIdx+1)

	// Read one line; EOF counts as an empty answer
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	// Empty input selects the default
	input := strings.TrimSpace(line)
	if input == "" {
		return defaultIdx, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid selection %q: must be a number", input)
	}
	// Back to 0-indexed
	idx := selection - 1
	if idx < 0 || idx >= len(options) {
		return 0, fmt.Errorf("selection %d out of range (1-%d)", selection, len(options))
	}
	return idx, nil
}

// Confirm asks question with the options "Run" and "Skip", defaulting to Skip.
// It reports whether the user chose Run.
func Confirm(p Prompter, question string) (bool, error) {
	idx, err := p.Prompt(question, []string{"Run", "Skip"}, 1)
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

// MockPrompter implements Prompter for tests, returning queued responses.
type MockPrompter struct {
	// Responses are returned in order, one per call.
	Responses []int
	// Errors are returned instead of the response at the same position when non-nil.
	Errors []error
	// Calls records every call to Prompt.
	Calls []MockPrompterCall

	callIndex int
}

// MockPrompterCall records a single call to Prompt.
type MockPrompterCall struct {
	Prompt     string
	Options    []string
	DefaultIdx int
}

// NewMockPrompter creates a MockPrompter with the given responses.
func NewMockPrompter(responses ...int) *MockPrompter {
	return &MockPrompter{Responses: responses}
}

// Prompt returns the next queued response or error, or defaultIdx once the
// queue is exhausted.
func (m *MockPrompter) Prompt(prompt string, options []string, defaultIdx int) (int, error) {
	// Record the call
	m.Calls = append(m.Calls, MockPrompterCall{
		Prompt:     prompt,
		Options:    options,
		DefaultIdx: defaultIdx,
	})

	i := m.callIndex
	m.callIndex++

	// Queued error wins over a queued response
	if i < len(m.Errors) && m.Errors[i] != nil {
		return 0, m.Errors[i]
	}
	if i < len(m.Responses) {
		return m.Responses[i], nil
	}
	// Queue exhausted
	return defaultIdx, nil
}
