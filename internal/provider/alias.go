package provider

import "strings"

// ResolveModel maps user input to a canonical model identifier for the given
// provider. Input is trimmed and lowercased. Canonical identifiers win over
// short names, which win over aliases; unresolved input is always an error,
// never a silent default.
func ResolveModel(entry Provider, userModel string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(userModel))
	if normalized == "" {
		return "", &UnknownModelError{ProviderKey: entry.Key, Input: userModel, Suggestions: entry.ModelNames()}
	}

	for _, model := range entry.Models {
		if normalized == strings.ToLower(model.ID) {
			return model.ID, nil
		}
	}
	if model, found := entry.modelByName(normalized); found {
		return model.ID, nil
	}
	if shortName, found := entry.Aliases[normalized]; found {
		if model, known := entry.modelByName(shortName); known {
			return model.ID, nil
		}
	}

	return "", &UnknownModelError{ProviderKey: entry.Key, Input: strings.TrimSpace(userModel), Suggestions: entry.ModelNames()}
}
