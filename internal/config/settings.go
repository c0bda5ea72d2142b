// Package config persists user defaults for askai as a JSON file under the
// per-user configuration directory.
package config

const (
	defaultProviderKey      = "claude"
	defaultClaudeModel      = "haiku"
	defaultGeminiModel      = "gemini-flash"
	defaultMaxResponseWords = 100
)

// Settings is the persisted configuration record. Absent fields fall back to
// DefaultSettings values when loaded.
type Settings struct {
	DefaultProvider  string            `json:"default_provider" mapstructure:"default_provider"`
	DefaultModels    map[string]string `json:"default_models" mapstructure:"default_models"`
	MaxResponseWords int               `json:"max_response_words" mapstructure:"max_response_words"`
}

// DefaultSettings returns the hard-coded configuration used for first runs
// and for resets.
func DefaultSettings() Settings {
	return Settings{
		DefaultProvider: defaultProviderKey,
		DefaultModels: map[string]string{
			defaultProviderKey: defaultClaudeModel,
			"gemini":           defaultGeminiModel,
		},
		MaxResponseWords: defaultMaxResponseWords,
	}
}

// DefaultModelFor returns the persisted default model for a provider, if any.
func (settings Settings) DefaultModelFor(providerKey string) (string, bool) {
	model, found := settings.DefaultModels[providerKey]
	return model, found
}
