// Package provider holds the fixed catalog of supported LLM CLI backends
// and resolves user-supplied model names against it.
package provider

const (
	// ModelPlaceholder marks the template slot that receives the canonical model identifier.
	ModelPlaceholder = "{model}"
	// InstructionPlaceholder marks the template slot that receives the response-bounding instruction.
	InstructionPlaceholder = "{instruction}"

	claudeProviderKey = "claude"
	geminiProviderKey = "gemini"
	openaiProviderKey = "openai"
)

// Model pairs a short user-facing name with the canonical identifier the
// provider's CLI expects.
type Model struct {
	Name string
	ID   string
}

// Template describes how to invoke a provider's CLI: the executable name and
// a fixed argument list containing whole-token placeholders. The user prompt
// is never part of the template; the command builder appends it as the final,
// separate argument.
type Template struct {
	Executable string
	Args       []string
}

// Provider is one entry of the catalog. Providers are defined at build time
// and never created or destroyed at runtime.
type Provider struct {
	Key          string
	Models       []Model
	DefaultModel string
	Template     Template
	Available    bool
	Aliases      map[string]string
}

// Registry is the immutable catalog of known providers.
type Registry struct {
	providers map[string]Provider
	order     []string
}

// NewRegistry builds the catalog. Only claude is executable today; gemini and
// openai are declared so users get a "coming in a future release" message
// instead of an unknown-provider error.
func NewRegistry() *Registry {
	registry := &Registry{providers: map[string]Provider{}}
	registry.add(Provider{
		Key: claudeProviderKey,
		Models: []Model{
			{Name: "haiku", ID: "claude-haiku-4-5-20251001"},
			{Name: "sonnet", ID: "claude-sonnet-4-5-20250929"},
			{Name: "opus", ID: "claude-opus-4-1-20250805"},
		},
		DefaultModel: "haiku",
		Template: Template{
			Executable: "claude",
			Args:       []string{"--print", "--model", ModelPlaceholder, "--append-system-prompt", InstructionPlaceholder},
		},
		Available: true,
		Aliases: map[string]string{
			"haiku-4":    "haiku",
			"haiku-4-5":  "haiku",
			"4-5-haiku":  "haiku",
			"sonnet-4":   "sonnet",
			"sonnet-4-5": "sonnet",
			"4-5-sonnet": "sonnet",
			"opus-4":     "opus",
			"opus-4-1":   "opus",
			"4-1-opus":   "opus",
		},
	})
	registry.add(Provider{
		Key: geminiProviderKey,
		Models: []Model{
			{Name: "gemini-flash", ID: "gemini-2.5-flash"},
			{Name: "gemini-pro", ID: "gemini-2.5-pro"},
		},
		DefaultModel: "gemini-flash",
		Template: Template{
			Executable: "gemini",
			Args:       []string{"--model", ModelPlaceholder},
		},
		Available: false,
		Aliases: map[string]string{
			"flash": "gemini-flash",
			"pro":   "gemini-pro",
		},
	})
	registry.add(Provider{
		Key: openaiProviderKey,
		Models: []Model{
			{Name: "gpt-mini", ID: "gpt-5-mini"},
			{Name: "gpt", ID: "gpt-5"},
		},
		DefaultModel: "gpt-mini",
		Template: Template{
			Executable: "codex",
			Args:       []string{"exec", "--model", ModelPlaceholder},
		},
		Available: false,
		Aliases: map[string]string{
			"mini": "gpt-mini",
		},
	})
	return registry
}

func (registry *Registry) add(entry Provider) {
	registry.providers[entry.Key] = entry
	registry.order = append(registry.order, entry.Key)
}

// List returns all providers in declaration order.
func (registry *Registry) List() []Provider {
	listed := make([]Provider, 0, len(registry.order))
	for _, providerKey := range registry.order {
		listed = append(listed, registry.providers[providerKey])
	}
	return listed
}

// Get returns the provider for the given key. Unavailable providers are
// returned too; callers that intend to execute must check Available and
// report ProviderUnavailableError.
func (registry *Registry) Get(providerKey string) (Provider, error) {
	entry, found := registry.providers[providerKey]
	if !found {
		return Provider{}, &UnknownProviderError{Key: providerKey, Known: registry.order}
	}
	return entry, nil
}

// Models returns the ordered canonical model list for the given provider key.
func (registry *Registry) Models(providerKey string) ([]Model, error) {
	entry, getErr := registry.Get(providerKey)
	if getErr != nil {
		return nil, getErr
	}
	models := make([]Model, len(entry.Models))
	copy(models, entry.Models)
	return models, nil
}

// ModelNames returns the provider's short model names in declaration order.
func (entry Provider) ModelNames() []string {
	names := make([]string, 0, len(entry.Models))
	for _, model := range entry.Models {
		names = append(names, model.Name)
	}
	return names
}

func (entry Provider) modelByName(name string) (Model, bool) {
	for _, model := range entry.Models {
		if model.Name == name {
			return model, true
		}
	}
	return Model{}, false
}
