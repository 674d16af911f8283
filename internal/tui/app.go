// Package tui implements the themewalker terminal user interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/themewalker/themewalker/internal/picker"
	"github.com/themewalker/themewalker/internal/theme"
	"github.com/themewalker/themewalker/internal/tui/components"
	"github.com/themewalker/themewalker/internal/tui/styles"
)

// Options configure the picker UI.
type Options struct {
	Catalog    theme.Catalog
	Current    string
	ConfigPath string
	ThemesDir  string
	Wrap       bool
	Palette    string
}

// Run shows the picker on the alternate screen and returns once the user
// confirms a theme or quits. The terminal is restored before Run returns,
// including when the program fails or panics.
func Run(ctx context.Context, opts Options) (picker.Result, error) {
	program := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return picker.Result{Outcome: picker.OutcomeCancelled}, nil
		}
		return picker.Result{Outcome: picker.OutcomeNone}, err
	}
	m, ok := final.(model)
	if !ok {
		return picker.Result{Outcome: picker.OutcomeNone}, fmt.Errorf("unexpected model type %T", final)
	}
	return m.state.Result(), nil
}

type model struct {
	width  int
	height int
	styles styles.Styles
	keys   keyMap
	help   help.Model

	state      *picker.State
	configPath string
	themesDir  string
}

const (
	minWidth  = 40
	minHeight = 10

	// header (title, config line, blank) + panel borders + footer lines
	chromeHeight = 8
)

func newModel(opts Options) model {
	palette, _ := styles.PaletteByName(opts.Palette)
	return model{
		styles:     styles.BuildStyles(palette),
		keys:       defaultKeyMap(),
		help:       help.New(),
		state:      picker.New(opts.Catalog, opts.Current, picker.Options{Wrap: opts.Wrap}),
		configPath: opts.ConfigPath,
		themesDir:  opts.ThemesDir,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.state.Apply(m.keys.action(m.state.Mode(), msg))
		if m.state.Done() {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m model) View() string {
	if m.state.Done() {
		return ""
	}
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return joinLines(m.smallViewLines()) + "\n"
		}
	}

	body := joinLines([]string{
		m.headerView(),
		m.listView(),
		m.footerView(),
	})

	if pending, ok := m.state.Pending(); ok {
		dialog := components.ConfirmDialog{Theme: pending, ConfigPath: m.configPath}.Render(m.styles)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
		}
		return body + "\n\n" + dialog
	}
	return body
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	keys := "Press q to quit."
	if pending, ok := m.state.Pending(); ok {
		keys = fmt.Sprintf("Apply %s? Press y to apply, n or q to go back.", pending.ID)
	}

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render(keys),
	}
}

func (m model) headerView() string {
	current := m.state.Current()
	if current == "" {
		current = "(none)"
	}
	config := m.configPath
	if config == "" {
		config = "(unknown)"
	}
	return joinLines([]string{
		m.styles.Title.Render("SDDM Theme Picker"),
		m.styles.Muted.Render("Config: "+config) + "   " + m.styles.Active.Render("Current: "+current),
		"",
	})
}

func (m model) listView() string {
	themes := m.state.Themes()
	innerWidth := 0
	if m.width > 0 {
		innerWidth = m.width - 2
	}

	var content string
	if len(themes) == 0 {
		content = components.EmptyThemes(m.themesDir).Render(m.styles)
	} else {
		start, end := visibleRange(len(themes), m.state.Index(), m.listHeight())
		rows := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			rows = append(rows, components.ThemeRow{
				Theme:       themes[i],
				Highlighted: i == m.state.Index(),
				Active:      themes[i].ID == m.state.Current(),
			}.Render(m.styles, innerWidth))
		}
		content = joinLines(rows)
	}

	panel := m.styles.Panel
	if innerWidth > 0 {
		panel = panel.Copy().Width(innerWidth)
	}
	title := m.styles.Accent.Render(fmt.Sprintf("Installed themes (%d)", len(themes)))
	return title + "\n" + panel.Render(content)
}

func (m model) footerView() string {
	lines := []string{m.help.View(browseHelp{m.keys})}
	if h, ok := m.state.Highlighted(); ok && h.Author != "" {
		lines = append([]string{m.styles.Muted.Render("Author: " + h.Author)}, lines...)
	}
	return joinLines(lines)
}

// listHeight is how many rows fit; 0 means unbounded.
func (m model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-chromeHeight, 1)
}

// visibleRange returns the window [start, end) of rows that keeps index visible.
func visibleRange(total, index, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := index - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
