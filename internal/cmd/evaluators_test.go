package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xdg/coderun/internal/config"
	"github.com/xdg/coderun/internal/executor"
	"github.com/xdg/coderun/internal/term"
)

func TestEvaluators_Defaults(t *testing.T) {
	testEnv(t)

	stdout, _, err := executeCommand(t, "", "evaluators")
	if err != nil {
		t.Fatalf("evaluators error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[0], "COMMAND") {
		t.Errorf("header = %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); len(fields) != 2 || fields[0] != "shell" || fields[1] != "sh" {
		t.Errorf("first row = %q, want shell first", lines[1])
	}
	if !strings.Contains(stdout, "python3 -u") {
		t.Errorf("output missing default python evaluator:\n%s", stdout)
	}
}

func TestEvaluators_Sorted(t *testing.T) {
	path := testEnv(t)
	writeTestConfig(t, path, "evaluators:\n  aaa: [awk, -f]\n  zzz: [zsh]\n")

	stdout, _, err := executeCommand(t, "", "evaluators")
	if err != nil {
		t.Fatalf("evaluators error = %v", err)
	}

	var names []string
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n")[2:] {
		names = append(names, strings.Fields(line)[0])
	}
	if names[0] != "aaa" || names[len(names)-1] != "zzz" {
		t.Errorf("evaluators not sorted: %v", names)
	}
	if !strings.Contains(stdout, "awk -f") {
		t.Errorf("output missing awk -f:\n%s", stdout)
	}
}

func TestEvaluators_EmptyShellFallsBack(t *testing.T) {
	orig := loaded
	t.Cleanup(func() {
		loaded = orig
		term.Reset()
	})
	loaded = &config.Config{}

	var out bytes.Buffer
	term.SetOutput(&out)

	if err := runEvaluators(evaluatorsCmd, nil); err != nil {
		t.Fatalf("runEvaluators() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("output = %q, want header and shell row", out.String())
	}
	if fields := strings.Fields(lines[1]); len(fields) != 2 || fields[1] != executor.DefaultShell {
		t.Errorf("shell row = %q, want command %q", lines[1], executor.DefaultShell)
	}
}
