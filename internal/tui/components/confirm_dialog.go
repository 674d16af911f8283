package components

import (
	"strings"

	"github.com/themewalker/themewalker/internal/theme"
	"github.com/themewalker/themewalker/internal/tui/styles"
)

// ConfirmDialog asks whether to apply a theme.
type ConfirmDialog struct {
	Theme      theme.Theme
	ConfigPath string
}

// Render draws the dialog box.
func (d ConfirmDialog) Render(styleSet styles.Styles) string {
	lines := []string{
		styleSet.DialogTitle.Render("Confirm"),
		"",
		styleSet.Text.Render("Apply theme ") + styleSet.Active.Render(d.Theme.ID) + styleSet.Text.Render("?"),
	}
	if d.Theme.Author != "" {
		lines = append(lines, styleSet.Muted.Render("by "+d.Theme.Author))
	}
	if d.ConfigPath != "" {
		lines = append(lines, "", styleSet.Muted.Render("Writes "+d.ConfigPath))
	}
	lines = append(lines, "", RenderQuickActionBar(styleSet, ConfirmActions()))
	return styleSet.Dialog.Render(strings.Join(lines, "\n"))
}
