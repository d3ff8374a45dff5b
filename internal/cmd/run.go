package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/xdg/coderun/internal/audit"
	"github.com/xdg/coderun/internal/clog"
	"github.com/xdg/coderun/internal/executor"
	"github.com/xdg/coderun/internal/pathutil"
	"github.com/xdg/coderun/internal/prompt"
	"github.com/xdg/coderun/internal/term"
)

var (
	runShell     bool
	runEvaluator string
	runConfirm   bool
	runInterval  time.Duration
)

// Overridable for tests.
var (
	interruptGrace  = 2 * time.Second
	newPrompter     = func() prompt.Prompter { return prompt.NewStdinPrompter(os.Stdin, term.Stderr()) }
	stdinIsTerminal = func() bool { return prompt.IsTerminal(os.Stdin) }
)

var runCmd = &cobra.Command{
	Use:   "run [FILE]",
	Short: "Run a code fragment",
	Long: `Run a code fragment and print its output while it runs.

The fragment is read from FILE, or from stdin when FILE is "-" or omitted.
It must be marked for execution with either --shell, which runs it with the
configured shell, or --evaluator NAME, which runs it with a configured
evaluator. The source is written to a temporary file whose path is passed as
the last argument to the interpreter; the file is removed afterwards.

Captured stdout lines are printed to stdout and stderr lines to stderr.
By default stdout is drained before stderr (see 'drain' in the config).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runShell, "shell", false, "run the fragment with the configured shell")
	runCmd.Flags().StringVarP(&runEvaluator, "evaluator", "e", "", "run the fragment with the named evaluator")
	runCmd.Flags().BoolVar(&runConfirm, "confirm", false, "ask before running the fragment")
	runCmd.Flags().DurationVar(&runInterval, "interval", 0, "output polling interval (default from config)")
	runCmd.MarkFlagsMutuallyExclusive("shell", "evaluator")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	source := "-"
	if len(args) == 1 {
		source = args[0]
	}

	interval := loaded.PollDuration()
	if cmd.Flags().Changed("interval") {
		if runInterval <= 0 {
			return fmt.Errorf("--interval must be positive, got %s", runInterval)
		}
		interval = runInterval
	}

	if runConfirm {
		if source == "-" {
			return fmt.Errorf("--confirm reads the answer from stdin; pass the fragment as FILE")
		}
		if !stdinIsTerminal() {
			return fmt.Errorf("--confirm: %w", prompt.ErrNotTerminal)
		}
	}

	tempDir, err := pathutil.ResolveDir(loaded.TempDir)
	if err != nil {
		return fmt.Errorf("temp_dir: %w", err)
	}
	opts := append(loaded.LaunchOptions(), executor.WithTempDir(tempDir))

	contents, err := readFragment(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}
	fragment := executor.Fragment{Contents: contents, Evaluator: selectedEvaluator()}
	command, err := describeCommand(fragment.Evaluator)
	if err != nil {
		return launchError(err)
	}

	auditLog, closeAudit := openAudit()
	defer closeAudit()

	if runConfirm {
		ok, err := prompt.Confirm(newPrompter(), fmt.Sprintf("Run %s with %s?", source, command))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			logAudit(auditLog.LogSkip(source, fragment.Evaluator.String(), command.String()))
			term.Println("Skipped.")
			return nil
		}
	}

	started := time.Now()
	handle, err := executor.Execute(fragment, loaded.Registry(), opts...)
	if err != nil {
		return launchError(err)
	}
	clog.Info("execution %s started for %s (%s)", handle.ID(), source, fragment.Evaluator)
	logAudit(auditLog.LogStart(handle.ID(), source, fragment.Evaluator.String(), command.String()))

	state, err := follow(cmd.Context(), handle, interval)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logAudit(auditLog.LogInterrupt(handle.ID(), time.Since(started)))
			// The interrupt also reaches the child; give it a moment to exit
			// so the collector can remove the source file.
			if state = settle(handle, interval, interruptGrace); state.Status.IsFinished() {
				term.Warn("interrupted; execution %s ended: %s", handle.ID(), state.Status)
			} else {
				term.Warn("interrupted; execution %s was still running", handle.ID())
			}
			return NewExitCodeError(130)
		}
		return err
	}
	clog.Info("execution %s finished: %s", handle.ID(), state.Status)
	logAudit(auditLog.LogComplete(handle.ID(), state.Status.String(), time.Since(started)))

	if state.Status != executor.StatusSuccess {
		return NewExitCodeError(1)
	}
	return nil
}

// openAudit opens the configured audit log. A nil Logger is returned when
// auditing is disabled or the file cannot be opened.
func openAudit() (*audit.Logger, func()) {
	if loaded.AuditFile == "" {
		return nil, func() {}
	}
	l, closer, err := audit.Open(loaded.AuditFile)
	if err != nil {
		clog.Warn("audit log disabled: %v", err)
		return nil, func() {}
	}
	return l, func() { _ = closer.Close() }
}

func logAudit(err error) {
	if err != nil {
		clog.Warn("%v", err)
	}
}

func selectedEvaluator() executor.Evaluator {
	switch {
	case runShell:
		return executor.ShellEvaluator()
	case runEvaluator != "":
		return executor.CustomEvaluator(runEvaluator)
	default:
		return executor.NoEvaluator()
	}
}

// settle polls h every interval until it finishes or grace has passed and
// returns the last state seen.
func settle(h *executor.Handle, interval, grace time.Duration) executor.State {
	deadline := time.Now().Add(grace)
	state := h.State()
	for !state.Status.IsFinished() && time.Now().Before(deadline) {
		time.Sleep(interval)
		state = h.State()
	}
	return state
}

// describeCommand returns the command line ev runs with the loaded config.
func describeCommand(ev executor.Evaluator) (executor.CommandLine, error) {
	if ev.Kind() == executor.EvaluatorShell && loaded.Shell != "" {
		return executor.CommandLine{loaded.Shell}, nil
	}
	return executor.Resolve(ev, loaded.Registry())
}

func readFragment(stdin io.Reader, source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read fragment from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read fragment: %w", err)
	}
	return string(data), nil
}

// follow polls h every interval and prints lines captured since the previous
// poll until the execution reaches a terminal status or ctx is done.
func follow(ctx context.Context, h *executor.Handle, interval time.Duration) (executor.State, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var seenOut, seenErr int
	for {
		state := h.State()
		for _, line := range state.Output[seenOut:] {
			term.OutputLine(line)
		}
		for _, line := range state.ErrorOutput[seenErr:] {
			term.ErrorLine(line)
		}
		seenOut, seenErr = len(state.Output), len(state.ErrorOutput)

		if state.Status.IsFinished() {
			return state, nil
		}

		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case <-ticker.C:
		}
	}
}
