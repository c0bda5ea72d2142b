package askai

import (
	"errors"

	"github.com/arbiter1elegantiae/askai/internal/config"
	"github.com/arbiter1elegantiae/askai/internal/provider"
	"github.com/arbiter1elegantiae/askai/internal/query"
)

// Process exit codes. User errors, environment errors, and delegated
// failures stay distinguishable so callers can script against them.
const (
	exitSuccess             = 0
	exitGenericFailure      = 1
	exitUnknownProvider     = 2
	exitUnknownModel        = 3
	exitInvalidPrompt       = 4
	exitProviderUnavailable = 5
	exitConfigInvalid       = 6
	exitExecutableNotFound  = 7
)

// ExitCode maps an error returned by Execute to the process exit code. A
// non-zero exit of the external tool propagates that tool's own code.
func ExitCode(executionErr error) int {
	if executionErr == nil {
		return exitSuccess
	}

	var unknownProviderErr *provider.UnknownProviderError
	if errors.As(executionErr, &unknownProviderErr) {
		return exitUnknownProvider
	}
	var unknownModelErr *provider.UnknownModelError
	if errors.As(executionErr, &unknownModelErr) {
		return exitUnknownModel
	}
	var invalidPromptErr *query.InvalidPromptError
	if errors.As(executionErr, &invalidPromptErr) {
		return exitInvalidPrompt
	}
	var unavailableErr *provider.ProviderUnavailableError
	if errors.As(executionErr, &unavailableErr) {
		return exitProviderUnavailable
	}
	var configInvalidErr *config.InvalidError
	if errors.As(executionErr, &configInvalidErr) {
		return exitConfigInvalid
	}
	var notFoundErr *query.ExecutableNotFoundError
	if errors.As(executionErr, &notFoundErr) {
		return exitExecutableNotFound
	}
	var exitErr *query.ExitError
	if errors.As(executionErr, &exitErr) {
		if exitErr.Code > 0 {
			return exitErr.Code
		}
		return exitGenericFailure
	}
	return exitGenericFailure
}
