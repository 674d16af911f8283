// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/themewalker/themewalker/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon shown before the title.
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion is a suggested command with description.
type Suggestion struct {
	Command     string
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Try:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// EmptyThemes is shown when the themes directory has no theme folders.
func EmptyThemes(root string) EmptyState {
	return EmptyState{
		Icon:     "📭",
		Title:    fmt.Sprintf("No themes found in %s", root),
		Subtitle: "Each theme is a directory; install one with your package manager.",
		Suggestions: []Suggestion{
			{Command: "themewalker --themes-dir <path>", Description: "scan a different directory"},
			{Command: "q", Description: "quit"},
		},
	}
}
