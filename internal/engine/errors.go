package engine

import "fmt"

// RejectionError reports a refused request. Nothing was changed and the
// message is meant for the user.
type RejectionError struct {
	Action string
	Reason string
}

func (e RejectionError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Action, e.Reason)
}

// LockedError indicates a shrine item is locked behind a shrine level.
type LockedError struct {
	ItemID        string
	RequiredLevel int
}

func (e LockedError) Error() string {
	return fmt.Sprintf("shrine item '%s' unlocks at shrine level %d", e.ItemID, e.RequiredLevel)
}
