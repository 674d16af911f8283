package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/themewalker/themewalker/internal/theme"
	"github.com/themewalker/themewalker/internal/tui/styles"
)

const activeBadge = "● active"

// ThemeRow is one line of the theme list.
type ThemeRow struct {
	Theme       theme.Theme
	Highlighted bool
	Active      bool
}

// Render draws the row padded to width. Long labels are truncated.
func (r ThemeRow) Render(styleSet styles.Styles, width int) string {
	cursor := "  "
	if r.Highlighted {
		cursor = "> "
	}

	badge := ""
	if r.Active {
		badge = " " + activeBadge
	}

	label := r.Theme.Label()
	room := width - lipgloss.Width(cursor) - lipgloss.Width(badge)
	if width > 0 && room > 0 {
		label = truncate(label, room)
	}
	line := cursor + label

	if r.Highlighted {
		style := styleSet.Highlight
		if width > 0 {
			style = style.Copy().Width(max(width-lipgloss.Width(badge), 0))
		}
		return style.Render(line) + styleSet.Active.Render(badge)
	}
	return styleSet.Text.Render(line) + styleSet.Active.Render(badge)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
