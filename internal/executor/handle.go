package executor

// Handle observes one execution started by Execute.
// Dropping a Handle does not stop the process.
type Handle struct {
	id    string
	state *sharedState
	done  <-chan struct{} // closed once the collector has exited
}

// ID returns the unique identifier of this execution.
func (h *Handle) ID() string {
	return h.id
}

// State returns a copy of the output captured so far and the current status.
// It never waits on the process and is safe for concurrent use.
func (h *Handle) State() State {
	return h.state.snapshot()
}
