package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/themewalker/themewalker/internal/picker"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Select  key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Abort   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
		Confirm: key.NewBinding(key.WithKeys("enter", "y", "Y"), key.WithHelp("y/enter", "apply")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "n", "N", "q"), key.WithHelp("n/q/esc", "back")),
		Abort:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// action decodes a key press for the given mode.
func (k keyMap) action(mode picker.Mode, msg tea.KeyMsg) picker.Action {
	if key.Matches(msg, k.Abort) {
		return picker.ActionQuit
	}
	switch mode {
	case picker.ModeBrowsing:
		switch {
		case key.Matches(msg, k.Up):
			return picker.ActionUp
		case key.Matches(msg, k.Down):
			return picker.ActionDown
		case key.Matches(msg, k.Top):
			return picker.ActionTop
		case key.Matches(msg, k.Bottom):
			return picker.ActionBottom
		case key.Matches(msg, k.Select):
			return picker.ActionSelect
		case key.Matches(msg, k.Quit):
			return picker.ActionQuit
		}
	case picker.ModeConfirming:
		switch {
		case key.Matches(msg, k.Confirm):
			return picker.ActionConfirm
		case key.Matches(msg, k.Cancel):
			return picker.ActionCancel
		}
	}
	return picker.ActionNone
}

// browseHelp adapts the map to help.KeyMap for the browsing footer.
type browseHelp struct{ keyMap }

func (h browseHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Up, h.Down, h.Top, h.Bottom, h.Select, h.Quit}
}

func (h browseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
