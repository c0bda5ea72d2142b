package askai

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/arbiter1elegantiae/askai/internal/config"
)

func TestListProviders(t *testing.T) {
	deps := newTestDependencies(&recordingRunner{})

	stdout, _, executionErr := executeCommand(t, deps, "--list-providers")
	if executionErr != nil {
		t.Fatalf("execute: %v", executionErr)
	}
	if !strings.Contains(stdout, availableProviderMark+" claude") {
		t.Fatalf("expected claude marked available, got %q", stdout)
	}
	if !strings.Contains(stdout, "gemini") || !strings.Contains(stdout, strings.TrimSpace(futureReleaseSuffix)) {
		t.Fatalf("expected unavailable providers flagged as future releases, got %q", stdout)
	}
}

func TestListProvidersMissingExecutable(t *testing.T) {
	deps := newTestDependencies(&recordingRunner{})
	deps.lookPath = func(file string) (string, error) { return "", errors.New("not found") }

	stdout, _, executionErr := executeCommand(t, deps, "--list-providers")
	if executionErr != nil {
		t.Fatalf("execute: %v", executionErr)
	}
	if !strings.Contains(stdout, unavailableProviderMark+" claude") {
		t.Fatalf("expected claude marked unavailable without its CLI, got %q", stdout)
	}
}

func TestListModels(t *testing.T) {
	deps := newTestDependencies(&recordingRunner{})

	stdout, _, executionErr := executeCommand(t, deps, "--list-models", "claude")
	if executionErr != nil {
		t.Fatalf("execute: %v", executionErr)
	}
	if !strings.Contains(stdout, "haiku") || !strings.Contains(stdout, claudeHaikuModelID) {
		t.Fatalf("expected haiku with canonical identifier, got %q", stdout)
	}
	if !strings.Contains(stdout, "haiku → "+claudeHaikuModelID+defaultModelSuffix) {
		t.Fatalf("expected default marker on haiku, got %q", stdout)
	}
}

func TestListModelsUnknownProvider(t *testing.T) {
	deps := newTestDependencies(&recordingRunner{})

	_, _, executionErr := executeCommand(t, deps, "--list-models", "cohere")
	if executionErr == nil {
		t.Fatalf("expected error for unknown provider")
	}
	if got := ExitCode(executionErr); got != exitUnknownProvider {
		t.Fatalf("expected exit code %d, got %d", exitUnknownProvider, got)
	}
}

func TestConfigPath(t *testing.T) {
	deps := newTestDependencies(&recordingRunner{})

	stdout, _, executionErr := executeCommand(t, deps, "--config-path")
	if executionErr != nil {
		t.Fatalf("execute: %v", executionErr)
	}
	if !strings.Contains(stdout, testConfigPath) {
		t.Fatalf("expected configuration path %s, got %q", testConfigPath, stdout)
	}
}

func TestConfigResetThenShowYieldsDefaults(t *testing.T) {
	deps := newTestDependencies(&recordingRunner{})
	customized := config.Settings{
		DefaultProvider:  "gemini",
		DefaultModels:    map[string]string{"claude": "opus"},
		MaxResponseWords: 7,
	}
	if saveErr := deps.store.Save(customized); saveErr != nil {
		t.Fatalf("save settings: %v", saveErr)
	}

	resetOut, _, resetErr := executeCommand(t, deps, "--config-reset")
	if resetErr != nil {
		t.Fatalf("reset: %v", resetErr)
	}
	if !strings.Contains(resetOut, configResetConfirmation) {
		t.Fatalf("expected reset confirmation, got %q", resetOut)
	}

	showOut, _, showErr := executeCommand(t, deps, "--config-show")
	if showErr != nil {
		t.Fatalf("show: %v", showErr)
	}
	var shown config.Settings
	if unmarshalErr := json.Unmarshal([]byte(showOut), &shown); unmarshalErr != nil {
		t.Fatalf("decode shown configuration: %v (output %q)", unmarshalErr, showOut)
	}
	if !reflect.DeepEqual(shown, config.DefaultSettings()) {
		t.Fatalf("expected default settings after reset, got %+v", shown)
	}
}

func TestDryRunRejectedWithConfigFlags(t *testing.T) {
	deps := newTestDependencies(&recordingRunner{})

	_, _, executionErr := executeCommand(t, deps, "--dry-run", "--config-show")
	if executionErr == nil {
		t.Fatalf("expected error combining --dry-run with configuration flags")
	}
	if !strings.Contains(executionErr.Error(), dryRunWithConfigFlagsMessage) {
		t.Fatalf("expected message %q, got %q", dryRunWithConfigFlagsMessage, executionErr.Error())
	}
}
