package askai

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/arbiter1elegantiae/askai/internal/config"
	"github.com/arbiter1elegantiae/askai/internal/provider"
	"github.com/arbiter1elegantiae/askai/internal/query"
)

const (
	testConfigPath      = "/home/tester/.config/askai/config.json"
	claudeHaikuModelID  = "claude-haiku-4-5-20251001"
	claudeSonnetModelID = "claude-sonnet-4-5-20250929"
	sampleQuestion      = "What is 2+2?"
)

type recordingRunner struct {
	calls    int
	lastName string
	lastArgs []string
	result   query.Result
	err      error
}

func (runner *recordingRunner) Run(ctx context.Context, name string, args []string) (query.Result, error) {
	runner.calls++
	runner.lastName = name
	runner.lastArgs = append([]string(nil), args...)
	return runner.result, runner.err
}

func newTestDependencies(runner *recordingRunner) dependencies {
	return dependencies{
		registry: provider.NewRegistry(),
		store:    config.NewStore(afero.NewMemMapFs(), testConfigPath),
		invoker:  query.NewInvokerWithRunner(runner),
		lookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
	}
}

func executeCommand(t *testing.T, deps dependencies, args ...string) (string, string, error) {
	t.Helper()
	command := newRootCommand(deps)
	var outBuffer bytes.Buffer
	var errBuffer bytes.Buffer
	command.SetOut(&outBuffer)
	command.SetErr(&errBuffer)
	command.SetArgs(args)
	executionErr := command.Execute()
	return outBuffer.String(), errBuffer.String(), executionErr
}

func TestAskResolvesAliasAndIsolatesPrompt(t *testing.T) {
	runner := &recordingRunner{result: query.Result{Stdout: "4\n"}}
	deps := newTestDependencies(runner)

	stdout, _, executionErr := executeCommand(t, deps, "-m", "haiku-4-5", sampleQuestion)
	if executionErr != nil {
		t.Fatalf("execute: %v", executionErr)
	}
	if runner.calls != 1 {
		t.Fatalf("expected one invocation, got %d", runner.calls)
	}
	if runner.lastName != "claude" {
		t.Fatalf("expected claude executable, got %s", runner.lastName)
	}
	if runner.lastArgs[len(runner.lastArgs)-1] != sampleQuestion {
		t.Fatalf("expected question as final argument, got %q", runner.lastArgs[len(runner.lastArgs)-1])
	}
	modelSeen := false
	for _, argument := range runner.lastArgs {
		if argument == claudeHaikuModelID {
			modelSeen = true
		}
	}
	if !modelSeen {
		t.Fatalf("expected canonical model %s in arguments %v", claudeHaikuModelID, runner.lastArgs)
	}
	if !strings.Contains(stdout, "4") {
		t.Fatalf("expected answer on stdout, got %q", stdout)
	}
}

func TestAskModelFlagWinsOverPersistedDefault(t *testing.T) {
	runner := &recordingRunner{}
	deps := newTestDependencies(runner)
	persisted := config.Settings{
		DefaultProvider:  "claude",
		DefaultModels:    map[string]string{"claude": "haiku"},
		MaxResponseWords: 100,
	}
	if saveErr := deps.store.Save(persisted); saveErr != nil {
		t.Fatalf("save settings: %v", saveErr)
	}

	_, _, executionErr := executeCommand(t, deps, "-m", "sonnet", sampleQuestion)
	if executionErr != nil {
		t.Fatalf("execute: %v", executionErr)
	}
	modelSeen := false
	for _, argument := range runner.lastArgs {
		if argument == claudeSonnetModelID {
			modelSeen = true
		}
	}
	if !modelSeen {
		t.Fatalf("expected flag model %s to win, got arguments %v", claudeSonnetModelID, runner.lastArgs)
	}
}

func TestAskDryRunSkipsExecution(t *testing.T) {
	runner := &recordingRunner{}
	deps := newTestDependencies(runner)

	_, stderr, executionErr := executeCommand(t, deps, "--dry-run", sampleQuestion)
	if executionErr != nil {
		t.Fatalf("execute: %v", executionErr)
	}
	if runner.calls != 0 {
		t.Fatalf("expected no process creation in dry-run mode, got %d calls", runner.calls)
	}
	if !strings.Contains(stderr, "Command: claude") {
		t.Fatalf("expected command rendering on stderr, got %q", stderr)
	}
}

func TestAskVerboseEchoesCommand(t *testing.T) {
	runner := &recordingRunner{result: query.Result{Stdout: "answer"}}
	deps := newTestDependencies(runner)

	_, stderr, executionErr := executeCommand(t, deps, "-v", sampleQuestion)
	if executionErr != nil {
		t.Fatalf("execute: %v", executionErr)
	}
	if runner.calls != 1 {
		t.Fatalf("expected one invocation, got %d", runner.calls)
	}
	if !strings.Contains(stderr, "Command: claude") {
		t.Fatalf("expected command rendering on stderr, got %q", stderr)
	}
}

func TestAskPassesThroughExternalStderr(t *testing.T) {
	runner := &recordingRunner{result: query.Result{Stdout: "fine", Stderr: "model warning\n"}}
	deps := newTestDependencies(runner)

	stdout, stderr, executionErr := executeCommand(t, deps, sampleQuestion)
	if executionErr != nil {
		t.Fatalf("execute: %v", executionErr)
	}
	if !strings.Contains(stderr, "model warning") {
		t.Fatalf("expected external stderr passthrough, got %q", stderr)
	}
	if !strings.Contains(stdout, "fine") {
		t.Fatalf("expected answer on stdout, got %q", stdout)
	}
}

func TestAskFailures(t *testing.T) {
	testCases := []struct {
		name         string
		args         []string
		runnerErr    error
		expectedCode int
		expectSpawn  bool
	}{
		{name: "UnknownProvider", args: []string{"-p", "cohere", sampleQuestion}, expectedCode: exitUnknownProvider},
		{name: "UnavailableProvider", args: []string{"-p", "gemini", sampleQuestion}, expectedCode: exitProviderUnavailable},
		{name: "UnknownModel", args: []string{"-m", "turbo", sampleQuestion}, expectedCode: exitUnknownModel},
		{name: "WhitespacePrompt", args: []string{"   "}, expectedCode: exitInvalidPrompt},
		{
			name:         "ExecutableNotFound",
			args:         []string{sampleQuestion},
			runnerErr:    &query.ExecutableNotFoundError{Executable: "claude"},
			expectedCode: exitExecutableNotFound,
			expectSpawn:  true,
		},
		{
			name:         "ExternalExitCodePropagates",
			args:         []string{sampleQuestion},
			runnerErr:    &query.ExitError{Code: 9, Stderr: "query failed"},
			expectedCode: 9,
			expectSpawn:  true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(testingT *testing.T) {
			runner := &recordingRunner{err: testCase.runnerErr}
			deps := newTestDependencies(runner)

			_, _, executionErr := executeCommand(testingT, deps, testCase.args...)
			if executionErr == nil {
				testingT.Fatalf("expected execution error")
			}
			if got := ExitCode(executionErr); got != testCase.expectedCode {
				testingT.Fatalf("expected exit code %d, got %d (%v)", testCase.expectedCode, got, executionErr)
			}
			if !testCase.expectSpawn && runner.calls != 0 {
				testingT.Fatalf("expected no process creation, got %d calls", runner.calls)
			}
		})
	}
}

func TestAskQuestionRequired(t *testing.T) {
	runner := &recordingRunner{}
	deps := newTestDependencies(runner)

	_, _, executionErr := executeCommand(t, deps)
	if executionErr == nil {
		t.Fatalf("expected error without a question")
	}
	if !strings.Contains(executionErr.Error(), questionRequiredMessage) {
		t.Fatalf("expected question-required message, got %q", executionErr.Error())
	}
	if runner.calls != 0 {
		t.Fatalf("expected no process creation, got %d calls", runner.calls)
	}
}
