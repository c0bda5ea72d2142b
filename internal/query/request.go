// Package query turns user input and persisted settings into a validated,
// injection-safe invocation of an external provider CLI.
package query

import (
	"github.com/arbiter1elegantiae/askai/internal/config"
	"github.com/arbiter1elegantiae/askai/internal/provider"
)

const (
	fallbackProviderKey      = "claude"
	fallbackMaxResponseWords = 100
)

// Overrides carries the explicit CLI flags for one invocation. Empty strings
// mean the flag was not given.
type Overrides struct {
	Provider string
	Model    string
	Prompt   string
	Verbose  bool
	DryRun   bool
}

// Request is the fully resolved invocation: provider, canonical model, prompt
// and options. It lives for one CLI run.
type Request struct {
	Provider         provider.Provider
	ModelID          string
	Prompt           string
	MaxResponseWords int
	Verbose          bool
	DryRun           bool
}

// Merger combines CLI overrides with persisted settings. Precedence, highest
// first: explicit flags, persisted defaults, the hard-coded fallback
// (provider claude, the provider's own default model).
type Merger struct {
	Registry *provider.Registry
}

// Resolve validates the merged provider and model and produces a Request.
func (merger Merger) Resolve(overrides Overrides, settings config.Settings) (Request, error) {
	providerKey := overrides.Provider
	if providerKey == "" {
		providerKey = settings.DefaultProvider
	}
	if providerKey == "" {
		providerKey = fallbackProviderKey
	}

	entry, getErr := merger.Registry.Get(providerKey)
	if getErr != nil {
		return Request{}, getErr
	}
	if !entry.Available {
		return Request{}, &provider.ProviderUnavailableError{Key: entry.Key}
	}

	modelInput := overrides.Model
	if modelInput == "" {
		if persisted, found := settings.DefaultModelFor(entry.Key); found {
			modelInput = persisted
		}
	}
	if modelInput == "" {
		modelInput = entry.DefaultModel
	}
	modelID, resolveErr := provider.ResolveModel(entry, modelInput)
	if resolveErr != nil {
		return Request{}, resolveErr
	}

	maxWords := settings.MaxResponseWords
	if maxWords <= 0 {
		maxWords = fallbackMaxResponseWords
	}

	return Request{
		Provider:         entry,
		ModelID:          modelID,
		Prompt:           overrides.Prompt,
		MaxResponseWords: maxWords,
		Verbose:          overrides.Verbose,
		DryRun:           overrides.DryRun,
	}, nil
}
