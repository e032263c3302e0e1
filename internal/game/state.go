// Package game provides the editor loop and session state.
package game

// Control selects what the direction keys move.
type Control int

const (
	// ControlPlayer moves the player, gated by walkability.
	ControlPlayer Control = iota
	// ControlCursor moves the editing cursor anywhere on the board.
	ControlCursor
)

// String returns a human-readable control name.
func (c Control) String() string {
	switch c {
	case ControlPlayer:
		return "player"
	case ControlCursor:
		return "cursor"
	default:
		return "unknown"
	}
}

// Toggle returns the other control.
func (c Control) Toggle() Control {
	if c == ControlPlayer {
		return ControlCursor
	}
	return ControlPlayer
}
