package domain

import "fmt"

// Action is the workflow operation an intent asks for.
type Action string

const (
	ActionCheck   Action = "check"
	ActionRequest Action = "request"
	ActionCancel  Action = "cancel"
	ActionView    Action = "view"
)

// ParseAction parses an extracted action name. An unknown action is an
// extraction failure, not a coercible value.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionCheck, ActionRequest, ActionCancel, ActionView:
		return Action(s), nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrExtractionFailure, s)
	}
}

// Intent is the structured reading of one user message. Zero values mark
// fields the message never mentioned: an empty LeaveTypes slice, a zero
// NumDays and an empty StartDate all mean "not specified".
type Intent struct {
	Action     Action
	LeaveTypes []LeaveType
	NumDays    int
	StartDate  string
}
