package config

import (
	"errors"
	"fmt"
	"os"
)

// defaultConfigTemplate is written by WriteDefault. Every setting is shown
// with its default value so the file documents itself.
const defaultConfigTemplate = `# coderun configuration
#
# Values set here are merged over the built-in defaults.

# Interpreter used by "coderun run --shell". Resolved through PATH.
shell: sh

# How often "coderun run" polls a running fragment for new output.
poll_interval: 50ms

# How captured output is drained from the child process:
#   sequential: stdout to end of stream, then stderr
#   concurrent: both streams at once
drain: sequential

# Directory for temporary source files. Empty uses the system default.
# temp_dir: ~/tmp

# Named evaluators for "coderun run --evaluator NAME". Each entry is the
# command line to run; the source file path is appended as the last argument.
evaluators:
  bash: [bash]
  python: [python3, -u]
  node: [node]
  ruby: [ruby]
  perl: [perl]

# Execution audit log: one line per started, skipped or finished fragment.
# Empty disables it.
# audit_file: ~/.local/state/coderun/audit.log

log:
  # Log file path. Empty disables file logging.
  # file: ~/.local/state/coderun/coderun.log
  # One of: debug, info, warn, error
  level: info
`

// WriteDefault creates a commented default configuration file at path, or at
// Path() when path is empty. It reports whether a file was written; an
// existing file is never overwritten. The file is created with 0600
// permissions.
func WriteDefault(path string) (bool, error) {
	if path == "" {
		path = Path()
	}

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := ensureParentDir(path); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o600); err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}
	return true, nil
}
