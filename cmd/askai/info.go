package askai

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func runListProviders(command *cobra.Command, deps dependencies) error {
	writer := command.OutOrStdout()
	if _, writeErr := fmt.Fprintln(writer, "Available providers:"); writeErr != nil {
		return writeErr
	}
	for _, entry := range deps.registry.List() {
		mark := unavailableProviderMark
		suffix := ""
		switch {
		case !entry.Available:
			suffix = futureReleaseSuffix
		default:
			if _, lookErr := deps.lookPath(entry.Template.Executable); lookErr == nil {
				mark = availableProviderMark
			}
		}
		_, writeErr := fmt.Fprintf(writer, "  %s %s (default: %s)%s\n", mark, entry.Key, entry.DefaultModel, suffix)
		if writeErr != nil {
			return writeErr
		}
	}
	return nil
}

func runListModels(command *cobra.Command, deps dependencies, providerKey string) error {
	entry, getErr := deps.registry.Get(providerKey)
	if getErr != nil {
		return getErr
	}

	writer := command.OutOrStdout()
	if _, writeErr := fmt.Fprintf(writer, "Available models for %s:\n", entry.Key); writeErr != nil {
		return writeErr
	}
	for _, model := range entry.Models {
		suffix := ""
		if model.Name == entry.DefaultModel {
			suffix = defaultModelSuffix
		}
		if _, writeErr := fmt.Fprintf(writer, "  - %s → %s%s\n", model.Name, model.ID, suffix); writeErr != nil {
			return writeErr
		}
	}
	return nil
}

func runConfigPath(command *cobra.Command, deps dependencies) error {
	_, writeErr := fmt.Fprintf(command.OutOrStdout(), "Configuration file: %s\n", deps.store.Path())
	return writeErr
}

func runConfigShow(command *cobra.Command, deps dependencies) error {
	settings, loadErr := deps.store.Load()
	if loadErr != nil {
		return loadErr
	}
	return printSettings(command, settings)
}

func runConfigReset(command *cobra.Command, deps dependencies) error {
	settings, resetErr := deps.store.Reset()
	if resetErr != nil {
		return resetErr
	}
	if _, writeErr := fmt.Fprintln(command.OutOrStdout(), configResetConfirmation); writeErr != nil {
		return writeErr
	}
	return printSettings(command, settings)
}

func printSettings(command *cobra.Command, settings any) error {
	encoded, marshalErr := json.MarshalIndent(settings, "", "  ")
	if marshalErr != nil {
		return fmt.Errorf("encode configuration: %w", marshalErr)
	}
	_, writeErr := fmt.Fprintln(command.OutOrStdout(), string(encoded))
	return writeErr
}
