package askai

const (
	rootCommandUse   = "askai [question]"
	rootCommandShort = "Context-free, one-shot LLM queries with concise answers"
	rootCommandLong  = `askai turns a single question into one non-interactive invocation of an
external LLM CLI and prints a concise answer.

Examples:
  askai "what is python?"                    # Use default provider/model
  askai -p claude "what is rust?"            # Specify provider
  askai -m sonnet "explain async/await"      # Specify model
  askai -p claude -m opus "complex question" # Both provider and model
  askai --list-providers                     # List available providers
  askai --list-models claude                 # List models for a provider
  askai --config-path                        # Show config file location

Default provider and models are stored in ~/.config/askai/config.json.`

	versionString = "0.2.0"

	providerFlagName       = "provider"
	providerFlagShorthand  = "p"
	providerFlagUsage      = "LLM provider to use (default: from config or 'claude')"
	modelFlagName          = "model"
	modelFlagShorthand     = "m"
	modelFlagUsage         = "Model to use (name, alias, or canonical identifier)"
	verboseFlagName        = "verbose"
	verboseFlagShorthand   = "v"
	verboseFlagUsage       = "Show the command being executed"
	dryRunFlagName         = "dry-run"
	dryRunFlagUsage        = "Show the command that would be executed without running it"
	listProvidersFlagName  = "list-providers"
	listProvidersFlagUsage = "List available providers and exit"
	listModelsFlagName     = "list-models"
	listModelsFlagUsage    = "List available models for a provider and exit"
	configShowFlagName     = "config-show"
	configShowFlagUsage    = "Show current configuration and exit"
	configPathFlagName     = "config-path"
	configPathFlagUsage    = "Show configuration file path and exit"
	configResetFlagName    = "config-reset"
	configResetFlagUsage   = "Reset configuration to defaults and exit"

	availableProviderMark   = "✓"
	unavailableProviderMark = "✗"
	defaultModelSuffix      = " (default)"
	futureReleaseSuffix     = " (coming in a future release)"

	questionRequiredMessage      = "a question is required unless an information flag is given"
	dryRunWithConfigFlagsMessage = "--dry-run cannot be used with configuration flags"
	commandEchoFormat            = "Command: %s\n"
	configResetConfirmation      = "Configuration reset to defaults"
)
