// Package executor runs code fragments as external processes.
//
// Execute writes a fragment's text to a temporary file, spawns the resolved
// evaluator against it and returns a Handle right away. A collector goroutine
// owns the process, its pipes and the temporary file; it appends each output
// line to a shared State and sets the terminal status once both streams are
// drained and the process has exited. Callers poll Handle.State until
// State.Status.IsFinished reports true.
package executor

import "fmt"

// EvaluatorKind identifies how the command line for a fragment is chosen.
type EvaluatorKind int

const (
	// EvaluatorNone marks a fragment that was never made runnable.
	EvaluatorNone EvaluatorKind = iota
	// EvaluatorShell runs the fragment with the built-in shell.
	EvaluatorShell
	// EvaluatorCustom runs the fragment with a named entry of a Registry.
	EvaluatorCustom
)

// Evaluator selects the command line used to run a fragment.
// The zero value selects no evaluator.
type Evaluator struct {
	kind EvaluatorKind
	name string
}

// NoEvaluator returns the selector for a fragment that cannot be executed.
func NoEvaluator() Evaluator {
	return Evaluator{}
}

// ShellEvaluator returns the selector for the built-in shell.
func ShellEvaluator() Evaluator {
	return Evaluator{kind: EvaluatorShell}
}

// CustomEvaluator returns the selector for the registry entry called name.
func CustomEvaluator(name string) Evaluator {
	return Evaluator{kind: EvaluatorCustom, name: name}
}

// Kind returns the selector kind.
func (e Evaluator) Kind() EvaluatorKind {
	return e.kind
}

// Name returns the registry name for custom evaluators and "" otherwise.
func (e Evaluator) Name() string {
	return e.name
}

// String returns "none", "shell" or "evaluator <name>".
func (e Evaluator) String() string {
	switch e.kind {
	case EvaluatorShell:
		return "shell"
	case EvaluatorCustom:
		return fmt.Sprintf("evaluator %q", e.name)
	default:
		return "none"
	}
}

// Fragment is a unit of source text together with the evaluator that runs it.
type Fragment struct {
	Contents  string
	Evaluator Evaluator
}
