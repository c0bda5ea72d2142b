package query

import "fmt"

// InvalidPromptError reports a prompt that cannot form a sensible invocation.
type InvalidPromptError struct {
	Reason string
}

func (invalidErr *InvalidPromptError) Error() string {
	return fmt.Sprintf("invalid prompt: %s", invalidErr.Reason)
}

// ExecutableNotFoundError reports that the provider's CLI is not installed.
type ExecutableNotFoundError struct {
	Executable string
}

func (notFoundErr *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("%s CLI not found in PATH; install it first", notFoundErr.Executable)
}

// ExitError reports that the external tool ran but failed. Code carries the
// external exit status so the CLI boundary can propagate it.
type ExitError struct {
	Code   int
	Stderr string
}

func (exitErr *ExitError) Error() string {
	if exitErr.Stderr == "" {
		return fmt.Sprintf("external command exited with code %d", exitErr.Code)
	}
	return fmt.Sprintf("external command exited with code %d: %s", exitErr.Code, exitErr.Stderr)
}
