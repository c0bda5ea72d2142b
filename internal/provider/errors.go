package provider

import (
	"fmt"
	"strings"
)

// UnknownProviderError reports a provider key that is not in the catalog.
type UnknownProviderError struct {
	Key   string
	Known []string
}

func (unknownErr *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q (available: %s)", unknownErr.Key, strings.Join(unknownErr.Known, ", "))
}

// ProviderUnavailableError reports a provider that is declared in the catalog
// but not implemented yet.
type ProviderUnavailableError struct {
	Key string
}

func (unavailableErr *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("provider %q is coming in a future release", unavailableErr.Key)
}

// UnknownModelError reports a model string that resolved to nothing for the
// selected provider. Suggestions carry the provider's model names so the user
// sees what would have worked.
type UnknownModelError struct {
	ProviderKey string
	Input       string
	Suggestions []string
}

func (unknownErr *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown model %q for provider %q (available: %s)", unknownErr.Input, unknownErr.ProviderKey, strings.Join(unknownErr.Suggestions, ", "))
}
