// Package styles turns palette tokens into lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from palette tokens.
type Styles struct {
	Palette     Palette
	Title       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Panel       lipgloss.Style
	Highlight   lipgloss.Style
	Active      lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
}

// DefaultStyles builds styles from the default palette.
func DefaultStyles() Styles {
	return BuildStyles(DefaultPalette)
}

// BuildStyles converts palette tokens into lipgloss styles.
func BuildStyles(palette Palette) Styles {
	tokens := palette.Tokens

	return Styles{
		Palette:     palette,
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)).Bold(true),
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:       lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Highlight)).Bold(true),
		Active:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Active)).Bold(true),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Dialog:      lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Warning)).Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)).Bold(true),
	}
}
