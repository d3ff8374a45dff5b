package prompt

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestStdinPrompter_SelectsOption(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultIdx int
		wantIdx    int
		wantErr    string
	}{
		{name: "select first", input: "1\n", defaultIdx: 1, wantIdx: 0},
		{name: "select second", input: "2\n", defaultIdx: 0, wantIdx: 1},
		{name: "empty input returns default", input: "\n", defaultIdx: 1, wantIdx: 1},
		{name: "whitespace returns default", input: "   \n", defaultIdx: 0, wantIdx: 0},
		{name: "eof without newline", input: "1", defaultIdx: 1, wantIdx: 0},
		{name: "eof with no input returns default", input: "", defaultIdx: 1, wantIdx: 1},
		{name: "not a number", input: "run\n", wantErr: "must be a number"},
		{name: "out of range", input: "3\n", wantErr: "out of range (1-2)"},
		{name: "zero", input: "0\n", wantErr: "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewStdinPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Prompt("Run it?", []string{"Run", "Skip"}, tt.defaultIdx)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Prompt() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Prompt() error = %v", err)
			}
			if got != tt.wantIdx {
				t.Errorf("Prompt() = %d, want %d", got, tt.wantIdx)
			}
		})
	}
}

func TestStdinPrompter_DisplaysOptions(t *testing.T) {
	var out bytes.Buffer
	p := NewStdinPrompter(strings.NewReader("\n"), &out)

	_, err := p.Prompt("Run demo.sh with shell?", []string{"Run", "Skip"}, 1)
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}

	want := "Run demo.sh with shell?\n  1. Run\n  2. Skip (default)\nEnter selection [2]: "
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestStdinPrompter_ValidationErrors(t *testing.T) {
	p := NewStdinPrompter(strings.NewReader("1\n"), &bytes.Buffer{})

	if _, err := p.Prompt("q", nil, 0); err == nil {
		t.Error("expected error for empty options")
	}
	if _, err := p.Prompt("q", []string{"a"}, 1); err == nil {
		t.Error("expected error for default index out of range")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		response int
		want     bool
	}{
		{name: "run", response: 0, want: true},
		{name: "skip", response: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockPrompter(tt.response)

			got, err := Confirm(m, "Run it?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if len(m.Calls) != 1 || m.Calls[0].DefaultIdx != 1 || m.Calls[0].Prompt != "Run it?" {
				t.Errorf("unexpected calls: %+v", m.Calls)
			}
		})
	}
}

func TestConfirm_DefaultIsSkip(t *testing.T) {
	got, err := Confirm(NewStdinPrompter(strings.NewReader("\n"), &bytes.Buffer{}), "Run it?")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if got {
		t.Error("Confirm() = true for empty input, want false")
	}
}

func TestConfirm_PropagatesError(t *testing.T) {
	want := errors.New("read failed")
	m := &MockPrompter{Errors: []error{want}}

	if _, err := Confirm(m, "Run it?"); !errors.Is(err, want) {
		t.Errorf("Confirm() error = %v, want %v", err, want)
	}
}

func TestMockPrompter_ReturnsDefaultWhenExhausted(t *testing.T) {
	m := NewMockPrompter(0)

	first, _ := m.Prompt("a", []string{"x", "y"}, 1)
	second, _ := m.Prompt("b", []string{"x", "y"}, 1)

	if first != 0 || second != 1 {
		t.Errorf("responses = %d, %d; want 0, 1", first, second)
	}
	if len(m.Calls) != 2 || m.Calls[1].Prompt != "b" {
		t.Errorf("calls not recorded: %+v", m.Calls)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("IsTerminal(nil) = true")
	}

	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if IsTerminal(f) {
		t.Error("IsTerminal() = true for a regular file")
	}
}
