package query

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result captures one external invocation. Display is set only for dry runs.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Display  string
}

// ProcessRunner executes an argument vector verbatim, with no shell
// interpretation, and reports the classified outcome.
type ProcessRunner interface {
	Run(ctx context.Context, name string, args []string) (Result, error)
}

// Invoker runs built commands through a ProcessRunner.
type Invoker struct {
	runner ProcessRunner
}

// NewInvoker constructs an invoker backed by os/exec.
func NewInvoker() Invoker {
	return Invoker{runner: execRunner{}}
}

// NewInvokerWithRunner injects a custom runner, used mainly for tests.
func NewInvokerWithRunner(runner ProcessRunner) Invoker {
	return Invoker{runner: runner}
}

// Run executes the spec and waits for completion. In dry-run mode no process
// is created; the result only carries the display rendering.
func (invoker Invoker) Run(ctx context.Context, spec Spec, dryRun bool) (Result, error) {
	if dryRun {
		return Result{Display: spec.Display()}, nil
	}
	return invoker.runner.Run(ctx, spec.executable, spec.args)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args []string) (Result, error) {
	command := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	runErr := command.Run()
	if runErr == nil {
		return Result{Stdout: stdout.String(), Stderr: stderr.String()}, nil
	}

	if errors.Is(runErr, exec.ErrNotFound) {
		return Result{}, &ExecutableNotFoundError{Executable: name}
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		result := Result{ExitCode: exitErr.ExitCode(), Stdout: stdout.String(), Stderr: stderr.String()}
		return result, &ExitError{Code: exitErr.ExitCode(), Stderr: strings.TrimSpace(stderr.String())}
	}
	return Result{}, fmt.Errorf("run %s: %w", name, runErr)
}
