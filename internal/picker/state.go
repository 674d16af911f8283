// Package picker holds the navigation state of the theme picker.
//
// State is a small machine with three modes:
//
//	Browsing   --select-->  Confirming(pending)
//	Browsing   --quit---->  Exiting(Cancelled)
//	Confirming --confirm->  Exiting(Selected(pending))
//	Confirming --cancel-->  Browsing
//
// Exiting is terminal. All transitions are synchronous and never block.
package picker

import "github.com/themewalker/themewalker/internal/theme"

// Mode is the current phase of the picker.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeConfirming
	ModeExiting
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeConfirming:
		return "confirming"
	case ModeExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Outcome is how the picker ended.
type Outcome int

const (
	// OutcomeNone is the result before the picker exits.
	OutcomeNone Outcome = iota
	OutcomeCancelled
	OutcomeSelected
)

// Result is the final decision read by the driver once Mode is ModeExiting.
type Result struct {
	Outcome Outcome
	Theme   theme.Theme
}

// Selected reports whether a theme was confirmed.
func (r Result) Selected() bool {
	return r.Outcome == OutcomeSelected
}

// Options configure cursor behavior.
type Options struct {
	// Wrap moves from the last entry to the first (and back) instead of
	// stopping at the ends.
	Wrap bool
}

// State is the picker's navigation state.
type State struct {
	themes  theme.Catalog
	current string
	opts    Options

	index   int // -1 when the catalog is empty
	mode    Mode
	pending int // catalog index while confirming, else -1
	result  Result
}

// New creates a state positioned on current when it is in the catalog.
func New(themes theme.Catalog, current string, opts Options) *State {
	s := &State{
		themes:  themes,
		current: current,
		opts:    opts,
		index:   -1,
		pending: -1,
	}
	if len(themes) > 0 {
		s.index = 0
		if i := themes.Index(current); i >= 0 {
			s.index = i
		}
	}
	return s
}

// Themes returns the catalog.
func (s *State) Themes() theme.Catalog { return s.themes }

// Current is the theme active in the config when the picker started.
func (s *State) Current() string { return s.current }

// Mode returns the current mode.
func (s *State) Mode() Mode { return s.mode }

// Index returns the highlighted position, or -1 for an empty catalog.
func (s *State) Index() int { return s.index }

// Highlighted returns the theme under the cursor.
func (s *State) Highlighted() (theme.Theme, bool) {
	if s.index < 0 || s.index >= len(s.themes) {
		return theme.Theme{}, false
	}
	return s.themes[s.index], true
}

// Pending returns the theme awaiting confirmation.
func (s *State) Pending() (theme.Theme, bool) {
	if s.mode != ModeConfirming || s.pending < 0 {
		return theme.Theme{}, false
	}
	return s.themes[s.pending], true
}

// Result returns the outcome. Valid once Mode is ModeExiting.
func (s *State) Result() Result { return s.result }

// Done reports whether the picker reached its terminal mode.
func (s *State) Done() bool { return s.mode == ModeExiting }

// MoveUp moves the cursor one entry up.
func (s *State) MoveUp() {
	if s.mode != ModeBrowsing || len(s.themes) == 0 {
		return
	}
	switch {
	case s.index > 0:
		s.index--
	case s.opts.Wrap:
		s.index = len(s.themes) - 1
	}
}

// MoveDown moves the cursor one entry down.
func (s *State) MoveDown() {
	if s.mode != ModeBrowsing || len(s.themes) == 0 {
		return
	}
	switch {
	case s.index < len(s.themes)-1:
		s.index++
	case s.opts.Wrap:
		s.index = 0
	}
}

// Top jumps to the first entry.
func (s *State) Top() {
	if s.mode != ModeBrowsing || len(s.themes) == 0 {
		return
	}
	s.index = 0
}

// Bottom jumps to the last entry.
func (s *State) Bottom() {
	if s.mode != ModeBrowsing || len(s.themes) == 0 {
		return
	}
	s.index = len(s.themes) - 1
}

// Select asks for confirmation of the highlighted theme. No-op without one.
func (s *State) Select() {
	if s.mode != ModeBrowsing || s.index < 0 {
		return
	}
	s.pending = s.index
	s.mode = ModeConfirming
}

// Confirm accepts the pending theme and ends the picker.
func (s *State) Confirm() {
	if s.mode != ModeConfirming || s.pending < 0 {
		return
	}
	s.result = Result{Outcome: OutcomeSelected, Theme: s.themes[s.pending]}
	s.pending = -1
	s.mode = ModeExiting
}

// Cancel drops the pending theme and returns to browsing.
func (s *State) Cancel() {
	if s.mode != ModeConfirming {
		return
	}
	s.pending = -1
	s.mode = ModeBrowsing
}

// Quit ends the picker without a selection.
func (s *State) Quit() {
	if s.mode == ModeExiting {
		return
	}
	s.pending = -1
	s.result = Result{Outcome: OutcomeCancelled}
	s.mode = ModeExiting
}
