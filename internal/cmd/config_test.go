package cmd

import (
	"os"
	"strings"
	"testing"
)

func TestConfigShow(t *testing.T) {
	path := testEnv(t)
	writeTestConfig(t, path, "poll_interval: 75ms\n")

	stdout, _, err := executeCommand(t, "", "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"poll_interval: 75ms", "shell: sh", "evaluators:"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config show missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigPath(t *testing.T) {
	path := testEnv(t)

	stdout, _, err := executeCommand(t, "", "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(stdout) != path {
		t.Errorf("config path = %q, want %q", stdout, path)
	}

	stdout, _, err = executeCommand(t, "", "--config", "/etc/coderun.yaml", "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(stdout) != "/etc/coderun.yaml" {
		t.Errorf("config path with --config = %q", stdout)
	}
}

func TestConfigInit(t *testing.T) {
	path := testEnv(t)

	stdout, _, err := executeCommand(t, "", "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(stdout, "Created "+path) {
		t.Errorf("config init output = %q", stdout)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	stdout, _, err = executeCommand(t, "", "config", "init")
	if err != nil {
		t.Fatalf("second config init error = %v", err)
	}
	if !strings.Contains(stdout, "already exists") {
		t.Errorf("second config init output = %q", stdout)
	}
}

func TestConfigEdit(t *testing.T) {
	path := testEnv(t)
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "true")

	if _, _, err := executeCommand(t, "", "config", "edit"); err != nil {
		t.Fatalf("config edit error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config edit did not create %s: %v", path, err)
	}
}
