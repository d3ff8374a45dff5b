package executor

import (
	"slices"
	"strings"
)

// DefaultShell is the interpreter used by ShellEvaluator unless WithShell
// overrides it.
const DefaultShell = "sh"

// Registry maps custom evaluator names to their command tokens.
// The fragment's temporary file path is appended to the tokens at launch.
type Registry map[string][]string

// CommandLine is an interpreter followed by its fixed arguments.
type CommandLine []string

// String joins the tokens with spaces.
func (c CommandLine) String() string {
	return strings.Join(c, " ")
}

// Resolve returns the command line selected by evaluator.
// It fails with ErrNotExecutable when no evaluator is attached and with an
// *EvaluatorNotDefinedError when a custom name is missing from registry.
func Resolve(evaluator Evaluator, registry Registry) (CommandLine, error) {
	return resolve(evaluator, registry, DefaultShell)
}

func resolve(evaluator Evaluator, registry Registry, shell string) (CommandLine, error) {
	switch evaluator.Kind() {
	case EvaluatorShell:
		return CommandLine{shell}, nil
	case EvaluatorCustom:
		tokens, ok := registry[evaluator.Name()]
		if !ok {
			return nil, &EvaluatorNotDefinedError{Name: evaluator.Name()}
		}
		// Copy so a registry edit cannot reach a launch in progress.
		return CommandLine(slices.Clone(tokens)), nil
	default:
		return nil, ErrNotExecutable
	}
}
