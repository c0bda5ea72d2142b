package askai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbiter1elegantiae/askai/internal/query"
	"github.com/arbiter1elegantiae/askai/internal/render"
)

func runAsk(command *cobra.Command, question string, options rootCommandOptions, deps dependencies) error {
	settings, loadErr := deps.store.Load()
	if loadErr != nil {
		return loadErr
	}

	merger := query.Merger{Registry: deps.registry}
	request, resolveErr := merger.Resolve(query.Overrides{
		Provider: options.providerKey,
		Model:    options.modelName,
		Prompt:   question,
		Verbose:  options.verbose,
		DryRun:   options.dryRun,
	}, settings)
	if resolveErr != nil {
		return resolveErr
	}

	spec, buildErr := query.BuildCommand(request)
	if buildErr != nil {
		return buildErr
	}

	if request.Verbose || request.DryRun {
		if _, writeErr := fmt.Fprintf(command.ErrOrStderr(), commandEchoFormat, spec.Display()); writeErr != nil {
			return writeErr
		}
	}

	result, runErr := deps.invoker.Run(command.Context(), spec, request.DryRun)
	if runErr != nil {
		return runErr
	}
	if request.DryRun {
		return nil
	}

	if result.Stderr != "" {
		if _, writeErr := fmt.Fprint(command.ErrOrStderr(), result.Stderr); writeErr != nil {
			return writeErr
		}
	}

	outWriter := command.OutOrStdout()
	answer := render.Answer(result.Stdout, render.TerminalWidth(outWriter), render.IsTerminal(outWriter))
	if answer == "" {
		return nil
	}
	_, writeErr := fmt.Fprintln(outWriter, answer)
	return writeErr
}
