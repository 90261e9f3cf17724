package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform samples at most one key per frame (the most
// recent press), so game logic sees a single action per tick rather
// than a buffered queue.
type Action int

const (
	ActionNone  Action = iota
	ActionFlap         // Space - flap upward
	ActionStart        // P - start game / play again
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
