package executor

import (
	"slices"
	"sync"
)

// Status is the lifecycle state of an execution.
type Status int

// Status constants. StatusSuccess and StatusFailure are terminal.
const (
	StatusRunning Status = iota
	StatusSuccess
	StatusFailure
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// IsFinished reports whether the process has exited.
func (s Status) IsFinished() bool {
	return s == StatusSuccess || s == StatusFailure
}

// State is a snapshot of an execution's captured output and status.
type State struct {
	Output      []string
	ErrorOutput []string
	Status      Status
}

// sharedState is written by the collector and read by any number of handles.
type sharedState struct {
	mu    sync.Mutex
	state State
}

func (s *sharedState) appendOutput(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Output = append(s.state.Output, line)
}

func (s *sharedState) appendErrorOutput(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ErrorOutput = append(s.state.ErrorOutput, line)
}

// finish records a terminal status. Only the first terminal status sticks.
func (s *sharedState) finish(status Status) {
	if !status.IsFinished() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status.IsFinished() {
		return
	}
	s.state.Status = status
}

// snapshot returns a copy that shares no memory with the live state.
func (s *sharedState) snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Output:      slices.Clone(s.state.Output),
		ErrorOutput: slices.Clone(s.state.ErrorOutput),
		Status:      s.state.Status,
	}
}
