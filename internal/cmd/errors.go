package cmd

import (
	"errors"
	"fmt"

	"github.com/xdg/coderun/internal/executor"
)

// ExitCodeError reports that the command finished without an error message
// but the process must exit with Code.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError returns an ExitCodeError for code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// launchError turns an executor launch error into a user-facing message.
func launchError(err error) error {
	var notDefined *executor.EvaluatorNotDefinedError
	switch {
	case errors.Is(err, executor.ErrNotExecutable):
		return fmt.Errorf("fragment is not marked for execution; pass --shell or --evaluator NAME")
	case errors.As(err, &notDefined):
		return fmt.Errorf("evaluator %q is not defined; add it under 'evaluators' in %s or see 'coderun evaluators'", notDefined.Name, configFile())
	case errors.Is(err, executor.ErrSpawn):
		return fmt.Errorf("failed to start fragment: %w", err)
	case errors.Is(err, executor.ErrTempFile):
		return fmt.Errorf("failed to prepare fragment: %w", err)
	}
	return err
}
