package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arbiter1elegantiae/askai/internal/provider"
)

const (
	maxPromptBytes        = 32768
	instructionFormat     = "Answer concisely in under %d words."
	displayUnsafeCharset  = " \t\n\r\"'`\\$;&|<>*?()[]{}~#"
	emptyPromptReason     = "prompt is empty"
	oversizedPromptReason = "prompt exceeds %d bytes"
)

// Spec is an ordered argument vector for one external invocation. The
// arguments are opaque tokens handed to the process verbatim; nothing in
// this package can collapse them into a shell line before execution.
type Spec struct {
	executable string
	args       []string
}

// Executable returns the external program name.
func (spec Spec) Executable() string { return spec.executable }

// Args returns a copy of the argument vector, excluding the executable.
func (spec Spec) Args() []string {
	args := make([]string, len(spec.args))
	copy(args, spec.args)
	return args
}

// Display returns a human-readable rendering of the command. It is for
// display only and is never re-parsed or executed.
func (spec Spec) Display() string {
	rendered := make([]string, 0, len(spec.args)+1)
	rendered = append(rendered, spec.executable)
	for _, argument := range spec.args {
		rendered = append(rendered, quoteForDisplay(argument))
	}
	return strings.Join(rendered, " ")
}

func quoteForDisplay(argument string) string {
	if argument == "" || strings.ContainsAny(argument, displayUnsafeCharset) {
		return strconv.Quote(argument)
	}
	return argument
}

// BuildCommand produces the argument vector for a resolved request. The
// model identifier and the word-limit instruction replace whole-token
// placeholders in the provider template; the prompt always occupies exactly
// one final argument, whatever characters it contains.
func BuildCommand(request Request) (Spec, error) {
	if strings.TrimSpace(request.Prompt) == "" {
		return Spec{}, &InvalidPromptError{Reason: emptyPromptReason}
	}
	if len(request.Prompt) > maxPromptBytes {
		return Spec{}, &InvalidPromptError{Reason: fmt.Sprintf(oversizedPromptReason, maxPromptBytes)}
	}

	instruction := fmt.Sprintf(instructionFormat, request.MaxResponseWords)
	template := request.Provider.Template
	args := make([]string, 0, len(template.Args)+1)
	for _, templateArg := range template.Args {
		switch templateArg {
		case provider.ModelPlaceholder:
			args = append(args, request.ModelID)
		case provider.InstructionPlaceholder:
			args = append(args, instruction)
		default:
			args = append(args, templateArg)
		}
	}
	args = append(args, request.Prompt)

	return Spec{executable: template.Executable, args: args}, nil
}
