package cmd

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xdg/coderun/internal/clog"
	"github.com/xdg/coderun/internal/config"
	"github.com/xdg/coderun/internal/term"
)

// testEnv points the config and state directories at temp dirs and returns
// the config file path coderun will read.
func testEnv(t *testing.T) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv(config.PathEnvVar, "")
	return filepath.Join(configHome, "coderun", "config.yaml")
}

// writeTestConfig writes content to the config path returned by testEnv.
func writeTestConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// writeFragment writes a fragment source file and returns its path.
func writeFragment(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fragment.txt")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

// resetFlags restores every flag of c and its subcommands to its default.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command with args and stdin, capturing
// everything written to stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() {
		term.Reset()
		clog.Reset()
	})

	var out, errOut bytes.Buffer
	term.SetOutput(&out)
	term.SetErrOutput(&errOut)
	clog.Discard()

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	// Execute leaves its canceled signal context on rootCmd; every run
	// starts from a live one.
	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
