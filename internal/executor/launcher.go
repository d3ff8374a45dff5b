package executor

import (
	"fmt"
	"os"
	"os/exec"
	"slices"

	"github.com/google/uuid"

	"github.com/xdg/coderun/internal/clog"
)

// DrainMode controls how the collector reads the two output pipes.
type DrainMode int

const (
	// DrainSequential reads stdout to end-of-stream, then stderr.
	DrainSequential DrainMode = iota
	// DrainConcurrent reads stdout and stderr at the same time.
	DrainConcurrent
)

// String returns "sequential" or "concurrent".
func (m DrainMode) String() string {
	if m == DrainConcurrent {
		return "concurrent"
	}
	return "sequential"
}

// ParseDrainMode parses "sequential" or "concurrent". Empty means sequential.
func ParseDrainMode(s string) (DrainMode, error) {
	switch s {
	case "", "sequential":
		return DrainSequential, nil
	case "concurrent":
		return DrainConcurrent, nil
	default:
		return DrainSequential, fmt.Errorf("unknown drain mode %q", s)
	}
}

type options struct {
	shell   string
	tempDir string
	drain   DrainMode
	logger  *clog.Logger
}

// Option configures a single Execute call.
type Option func(*options)

// WithShell sets the interpreter used for ShellEvaluator fragments.
// An empty value keeps DefaultShell.
func WithShell(shell string) Option {
	return func(o *options) {
		if shell != "" {
			o.shell = shell
		}
	}
}

// WithTempDir sets the directory where the fragment's source file is written.
// An empty value uses the OS temporary directory.
func WithTempDir(dir string) Option {
	return func(o *options) {
		o.tempDir = dir
	}
}

// WithDrainMode sets how stdout and stderr are drained.
func WithDrainMode(mode DrainMode) Option {
	return func(o *options) {
		o.drain = mode
	}
}

// WithLogger sets the logger for launch and collector events.
func WithLogger(l *clog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Execute launches fragment and returns without waiting for any output.
//
// The process runs "<command tokens> <source file>" with an empty stdin and
// piped stdout and stderr. Resolution failures are returned before anything
// touches the filesystem; temp file and spawn failures leave no file behind.
func Execute(fragment Fragment, registry Registry, opts ...Option) (*Handle, error) {
	o := options{shell: DefaultShell}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = clog.Default()
	}

	command, err := resolve(fragment.Evaluator, registry, o.shell)
	if err != nil {
		return nil, err
	}
	if len(command) == 0 {
		return nil, &SpawnError{Command: command, Err: errEmptyCommand}
	}

	source, err := writeSource(o.tempDir, fragment.Contents)
	if err != nil {
		return nil, &TempFileError{Err: err}
	}

	cmd := exec.Command(command[0], append(slices.Clone(command[1:]), source)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		_ = os.Remove(source)
		return nil, &SpawnError{Command: command, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		_ = os.Remove(source)
		return nil, &SpawnError{Command: command, Err: err}
	}
	if err := cmd.Start(); err != nil {
		_ = os.Remove(source)
		return nil, &SpawnError{Command: command, Err: err}
	}

	id := uuid.NewString()
	log := o.logger.With("exec=" + id)
	log.Debug("started pid %d: %s %s", cmd.Process.Pid, command, source)

	state := &sharedState{}
	c := &collector{
		cmd:    cmd,
		stdout: stdout,
		stderr: stderr,
		source: source,
		state:  state,
		drain:  o.drain,
		log:    log,
		done:   make(chan struct{}),
	}
	go c.run()

	return &Handle{id: id, state: state, done: c.done}, nil
}

// writeSource stores contents in a new temporary file and returns its path.
// The file is synced and closed before returning.
func writeSource(dir, contents string) (string, error) {
	f, err := os.CreateTemp(dir, "coderun-*")
	if err != nil {
		return "", err
	}
	path := f.Name()

	if _, err := f.WriteString(contents); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
