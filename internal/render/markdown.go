// Package render formats answers for the terminal.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const fallbackWidth = 100

// Answer renders text as terminal markdown when enabled, falling back to the
// plain trimmed text if rendering fails or is disabled.
func Answer(text string, width int, enabled bool) string {
	clean := strings.TrimSpace(text)
	if clean == "" || !enabled {
		return clean
	}
	if width <= 0 {
		width = fallbackWidth
	}

	renderer, rendererErr := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if rendererErr != nil {
		return clean
	}
	rendered, renderErr := renderer.Render(clean)
	if renderErr != nil {
		return clean
	}
	return rendered
}

// IsTerminal reports whether the writer is attached to a terminal.
func IsTerminal(writer io.Writer) bool {
	descriptor, ok := writer.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(descriptor.Fd()))
}

// TerminalWidth probes the writer's terminal width, with a fallback for
// non-terminal writers.
func TerminalWidth(writer io.Writer) int {
	descriptor, ok := writer.(interface{ Fd() uintptr })
	if !ok {
		return fallbackWidth
	}
	fd := int(descriptor.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	width, _, sizeErr := term.GetSize(fd)
	if sizeErr != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
