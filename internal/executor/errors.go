package executor

import (
	"errors"
	"fmt"
)

// ErrNotExecutable is returned when a fragment has no evaluator attached.
var ErrNotExecutable = errors.New("code is not marked for execution")

// ErrEvaluatorNotDefined matches every *EvaluatorNotDefinedError.
var ErrEvaluatorNotDefined = errors.New("evaluator not defined")

// ErrTempFile matches every *TempFileError.
var ErrTempFile = errors.New("temporary file error")

// ErrSpawn matches every *SpawnError.
var ErrSpawn = errors.New("spawn error")

// errEmptyCommand is wrapped in a SpawnError when a registry entry has no tokens.
var errEmptyCommand = errors.New("evaluator has no command tokens")

// EvaluatorNotDefinedError is returned when a custom evaluator name is not in
// the registry.
type EvaluatorNotDefinedError struct {
	Name string
}

func (e *EvaluatorNotDefinedError) Error() string {
	return fmt.Sprintf("evaluator %q is not defined", e.Name)
}

// Is reports whether target is ErrEvaluatorNotDefined.
func (e *EvaluatorNotDefinedError) Is(target error) bool {
	return target == ErrEvaluatorNotDefined
}

// TempFileError wraps a failure to create or write the fragment's source file.
type TempFileError struct {
	Err error
}

func (e *TempFileError) Error() string {
	return fmt.Sprintf("error creating temporary file: %v", e.Err)
}

func (e *TempFileError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTempFile.
func (e *TempFileError) Is(target error) bool {
	return target == ErrTempFile
}

// SpawnError wraps a failure to start the evaluator process.
type SpawnError struct {
	Command CommandLine
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("error spawning process %q: %v", e.Command.String(), e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSpawn.
func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawn
}
