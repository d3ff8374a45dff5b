package executor

import (
	"bufio"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/xdg/coderun/internal/clog"
)

// collector owns a spawned process, its pipes and its source file until the
// process exits. State is the only thing it shares.
type collector struct {
	cmd    *exec.Cmd
	stdout io.Reader
	stderr io.Reader
	source string
	state  *sharedState
	drain  DrainMode
	log    *clog.Logger
	done   chan struct{}
}

func (c *collector) run() {
	defer close(c.done)

	c.drainOutput()
	status := c.wait()

	// The source file is gone before any reader can observe a terminal status.
	if err := os.Remove(c.source); err != nil && !errors.Is(err, os.ErrNotExist) {
		c.log.Warn("failed to remove source file %s: %v", c.source, err)
	}
	c.state.finish(status)
}

// drainOutput returns once both pipes reached end-of-stream or failed.
//
// In DrainSequential mode stderr is only read after stdout is closed, so a
// process that fills the stderr pipe while stdout is still open blocks
// until it exits or closes stdout. DrainConcurrent reads both at once.
func (c *collector) drainOutput() {
	switch c.drain {
	case DrainConcurrent:
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.collect("stdout", c.stdout, c.state.appendOutput)
		}()
		go func() {
			defer wg.Done()
			c.collect("stderr", c.stderr, c.state.appendErrorOutput)
		}()
		wg.Wait()
	default:
		c.collect("stdout", c.stdout, c.state.appendOutput)
		c.collect("stderr", c.stderr, c.state.appendErrorOutput)
	}
}

func (c *collector) collect(stream string, r io.Reader, appendLine func(string)) {
	if err := readLines(r, appendLine); err != nil {
		c.log.Debug("stopped reading %s: %v", stream, err)
	}
}

// wait reaps the process. Anything but a clean zero exit is a failure.
func (c *collector) wait() Status {
	err := c.cmd.Wait()
	if err == nil {
		c.log.Debug("process exited with code 0")
		return StatusSuccess
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		c.log.Debug("process exited with code %d", exitErr.ExitCode())
	} else {
		c.log.Debug("exit status unavailable: %v", err)
	}
	return StatusFailure
}

// readLines calls appendLine for every line of r, in order, without the line
// terminator. A final line without a newline still counts. It returns nil at
// end-of-stream and the read error otherwise.
func readLines(r io.Reader, appendLine func(string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			appendLine(line)
		}
		if err != nil {
			return nil
		}
	}
}
