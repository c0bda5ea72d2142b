// Package askai implements the askai command-line interface.
package askai

import (
	"errors"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arbiter1elegantiae/askai/internal/config"
	"github.com/arbiter1elegantiae/askai/internal/provider"
	"github.com/arbiter1elegantiae/askai/internal/query"
)

type rootCommandOptions struct {
	providerKey   string
	modelName     string
	verbose       bool
	dryRun        bool
	listProviders bool
	listModelsFor string
	configShow    bool
	configPath    bool
	configReset   bool
}

// dependencies groups the external collaborators so tests can substitute an
// in-memory store, a fake invoker, and a fake PATH lookup.
type dependencies struct {
	registry *provider.Registry
	store    config.Store
	invoker  query.Invoker
	lookPath func(file string) (string, error)
}

func defaultDependencies() dependencies {
	return dependencies{
		registry: provider.NewRegistry(),
		store:    config.NewDefaultStore(),
		invoker:  query.NewInvoker(),
		lookPath: exec.LookPath,
	}
}

// Execute runs the askai root command against the real collaborators.
func Execute() error {
	return newRootCommand(defaultDependencies()).Execute()
}

func newRootCommand(deps dependencies) *cobra.Command {
	options := &rootCommandOptions{}

	command := &cobra.Command{
		Use:          rootCommandUse,
		Short:        rootCommandShort,
		Long:         rootCommandLong,
		Version:      versionString,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			question := ""
			if len(args) > 0 {
				question = args[0]
			}
			return runRootCommand(cmd, question, *options, deps)
		},
	}

	command.Flags().StringVarP(&options.providerKey, providerFlagName, providerFlagShorthand, "", providerFlagUsage)
	command.Flags().StringVarP(&options.modelName, modelFlagName, modelFlagShorthand, "", modelFlagUsage)
	command.Flags().BoolVarP(&options.verbose, verboseFlagName, verboseFlagShorthand, false, verboseFlagUsage)
	command.Flags().Var(newYesNoValue(&options.dryRun), dryRunFlagName, dryRunFlagUsage)
	configureNoOptDefault(command.Flags().Lookup(dryRunFlagName))
	command.Flags().BoolVar(&options.listProviders, listProvidersFlagName, false, listProvidersFlagUsage)
	command.Flags().StringVar(&options.listModelsFor, listModelsFlagName, "", listModelsFlagUsage)
	command.Flags().BoolVar(&options.configShow, configShowFlagName, false, configShowFlagUsage)
	command.Flags().BoolVar(&options.configPath, configPathFlagName, false, configPathFlagUsage)
	command.Flags().BoolVar(&options.configReset, configResetFlagName, false, configResetFlagUsage)

	return command
}

func configureNoOptDefault(flag *pflag.Flag) {
	if flag == nil {
		return
	}
	flag.NoOptDefVal = "true"
	flag.DefValue = "false"
}

func runRootCommand(command *cobra.Command, question string, options rootCommandOptions, deps dependencies) error {
	if validationErr := validateOptions(question, options); validationErr != nil {
		return validationErr
	}

	switch {
	case options.listProviders:
		return runListProviders(command, deps)
	case options.listModelsFor != "":
		return runListModels(command, deps, options.listModelsFor)
	case options.configPath:
		return runConfigPath(command, deps)
	case options.configShow:
		return runConfigShow(command, deps)
	case options.configReset:
		return runConfigReset(command, deps)
	}

	return runAsk(command, question, options, deps)
}

func validateOptions(question string, options rootCommandOptions) error {
	anyConfigFlag := options.configShow || options.configPath || options.configReset
	anyInfoFlag := anyConfigFlag || options.listProviders || options.listModelsFor != ""

	if options.dryRun && anyConfigFlag {
		return errors.New(dryRunWithConfigFlagsMessage)
	}
	if !anyInfoFlag && question == "" {
		return errors.New(questionRequiredMessage)
	}
	return nil
}
