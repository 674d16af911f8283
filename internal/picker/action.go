package picker

// Action is a navigation event.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionTop
	ActionBottom
	ActionSelect
	ActionConfirm
	ActionCancel
	ActionQuit
)

// Apply performs an action. Actions that do not fit the current mode are
// ignored.
func (s *State) Apply(a Action) {
	switch a {
	case ActionUp:
		s.MoveUp()
	case ActionDown:
		s.MoveDown()
	case ActionTop:
		s.Top()
	case ActionBottom:
		s.Bottom()
	case ActionSelect:
		s.Select()
	case ActionConfirm:
		s.Confirm()
	case ActionCancel:
		s.Cancel()
	case ActionQuit:
		s.Quit()
	}
}
