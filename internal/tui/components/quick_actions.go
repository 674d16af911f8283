package components

import (
	"fmt"
	"strings"

	"github.com/themewalker/themewalker/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // e.g. "Y", "Enter"
	Label   string
	Enabled bool
}

// RenderQuickActionBar renders a horizontal bar of enabled actions.
// Format: "Y:Apply  N:Back"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		part := fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), styleSet.Muted.Render(action.Label))
		parts = append(parts, part)
	}
	return strings.Join(parts, "  ")
}

// ConfirmActions lists the keys available in the confirmation dialog.
func ConfirmActions() []QuickAction {
	return []QuickAction{
		{Key: "Y/Enter", Label: "Apply", Enabled: true},
		{Key: "N/Q/Esc", Label: "Back", Enabled: true},
	}
}
