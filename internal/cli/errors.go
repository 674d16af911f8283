package cli

import "strings"

// PreflightError is returned when a command cannot start. Hint and NextStep
// are printed under the message by the entrypoint.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

// Details renders the hint and next step lines, if any.
func (e *PreflightError) Details() string {
	var lines []string
	if e.Hint != "" {
		lines = append(lines, "Hint: "+e.Hint)
	}
	if e.NextStep != "" {
		lines = append(lines, "Try: "+e.NextStep)
	}
	return strings.Join(lines, "\n")
}
