package term

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	t.Cleanup(Reset)
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	SetOutput(out)
	SetErrOutput(errOut)
	return out, errOut
}

func TestPrintFunctions(t *testing.T) {
	tests := []struct {
		name  string
		print func()
		want  string
	}{
		{name: "Print", print: func() { Print("hello") }, want: "hello"},
		{name: "Printf", print: func() { Printf("count: %d", 42) }, want: "count: 42"},
		{name: "Println", print: func() { Println("hello", "world") }, want: "hello world\n"},
		{name: "OutputLine", print: func() { OutputLine("captured") }, want: "captured\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := capture(t)
			tt.print()
			if out.String() != tt.want {
				t.Errorf("%s wrote %q, want %q", tt.name, out.String(), tt.want)
			}
		})
	}
}

func TestStderrFunctions(t *testing.T) {
	tests := []struct {
		name  string
		print func()
		want  string
	}{
		{name: "Warn", print: func() { Warn("failed to load %s", "config") }, want: "Warning: failed to load config\n"},
		{name: "Error", print: func() { Error("failed with code %d", 42) }, want: "Error: failed with code 42\n"},
		{name: "ErrorLine", print: func() { ErrorLine("ls: cannot access") }, want: "ls: cannot access\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := capture(t)
			tt.print()
			if errOut.String() != tt.want {
				t.Errorf("%s wrote %q to stderr, want %q", tt.name, errOut.String(), tt.want)
			}
			if out.Len() != 0 {
				t.Errorf("%s wrote %q to stdout", tt.name, out.String())
			}
		})
	}
}

func TestSilentMode(t *testing.T) {
	out, errOut := capture(t)
	SetSilent(true)

	Print("print")
	Println("println")
	OutputLine("output")
	ErrorLine("captured stderr")
	Warn("warning")
	Error("error")

	if out.Len() > 0 {
		t.Errorf("stdout should be suppressed in silent mode, got: %q", out.String())
	}
	if strings.Contains(errOut.String(), "captured stderr") {
		t.Errorf("ErrorLine should be suppressed in silent mode")
	}
	if !strings.Contains(errOut.String(), "Warning: warning") || !strings.Contains(errOut.String(), "Error: error") {
		t.Errorf("Warn and Error should not be suppressed, got: %q", errOut.String())
	}
}

func TestIsSilent(t *testing.T) {
	t.Cleanup(Reset)

	if IsSilent() {
		t.Errorf("IsSilent() should be false by default")
	}
	SetSilent(true)
	if !IsSilent() {
		t.Errorf("IsSilent() should be true after SetSilent(true)")
	}
}

func TestStdout_Silent(t *testing.T) {
	out, _ := capture(t)

	_, _ = Stdout().Write([]byte("visible"))
	SetSilent(true)
	_, _ = Stdout().Write([]byte("hidden"))

	if out.String() != "visible" {
		t.Errorf("Stdout() wrote %q, want %q", out.String(), "visible")
	}
}

func TestStderr(t *testing.T) {
	_, errOut := capture(t)

	_, _ = Stderr().Write([]byte("test"))

	if errOut.String() != "test" {
		t.Errorf("Stderr() writer = %q, want %q", errOut.String(), "test")
	}
}

func TestSetOutput_Nil(t *testing.T) {
	t.Cleanup(Reset)

	SetOutput(nil)
	SetErrOutput(nil)
	Discard()

	// Should not panic
	Print("test")
	Warn("test")
}

func TestReset(t *testing.T) {
	SetSilent(true)
	SetOutput(&bytes.Buffer{})

	Reset()

	if IsSilent() {
		t.Errorf("Reset() should clear silent mode")
	}
}
