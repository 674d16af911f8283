package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/themewalker/themewalker/internal/sddm"
)

const (
	colorGreen  = "2"
	colorYellow = "3"
	colorCyan   = "6"
)

var colorEnabled = term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""

func colorize(text, color string) string {
	if !colorEnabled || color == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}

// formatApplyStatus is the one-line outcome printed after an apply.
func formatApplyStatus(res sddm.WriteResult) string {
	label, color, detail := statusLabelForWrite(res)
	return colorize(formatStatusLabel(label, detail), color)
}

func statusLabelForWrite(res sddm.WriteResult) (string, string, string) {
	switch {
	case res.Unchanged:
		return "OK", colorCyan, fmt.Sprintf("theme '%s' is already active", res.Theme)
	case res.Created:
		return "OK", colorGreen, "created " + res.Path
	case res.Escalated:
		return "OK", colorGreen, "written with elevated privileges"
	default:
		return "OK", colorGreen, "written"
	}
}

func formatWarning(msg string) string {
	return colorize(formatStatusLabel("WARN", msg), colorYellow)
}

func formatStatusLabel(label, status string) string {
	normalized := strings.TrimSpace(status)
	if normalized == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, normalized)
}
