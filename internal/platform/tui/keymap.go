package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexgladd/flappy-dragon/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. forceQuit is true
// for ctrl+c, which terminates the loop at the platform level; plain Q
// is routed to the game and only acts in the Menu and End modes.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, forceQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "q", "Q":
		return core.ActionQuit, false
	case " ":
		return core.ActionFlap, false
	case "p", "P":
		return core.ActionStart, false
	}

	return core.ActionNone, false
}
