package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonboard/internal/world"
)

// ActionKind identifies what a key press asks for.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionSelectBrush
	ActionToggleControl
	ActionPaint
	ActionQuit
)

// Action is a decoded key press.
type Action struct {
	Kind   ActionKind
	DR, DC int        // ActionMove: single-axis delta
	Tile   world.Tile // ActionSelectBrush
}

var (
	moveUp    = Action{Kind: ActionMove, DR: -1}
	moveDown  = Action{Kind: ActionMove, DR: 1}
	moveLeft  = Action{Kind: ActionMove, DC: -1}
	moveRight = Action{Kind: ActionMove, DC: 1}
)

// runeActions maps character keys. Movement has two letter schemes:
// wasd and vi-style hjkl.
var runeActions = map[rune]Action{
	'w': moveUp,
	'k': moveUp,
	's': moveDown,
	'j': moveDown,
	'a': moveLeft,
	'h': moveLeft,
	'd': moveRight,
	'l': moveRight,

	'1': {Kind: ActionSelectBrush, Tile: world.TileVoid},
	'v': {Kind: ActionSelectBrush, Tile: world.TileVoid},
	'2': {Kind: ActionSelectBrush, Tile: world.TileWalkable},
	'f': {Kind: ActionSelectBrush, Tile: world.TileWalkable},
	'3': {Kind: ActionSelectBrush, Tile: world.TileSolid},
	'x': {Kind: ActionSelectBrush, Tile: world.TileSolid},

	'c': {Kind: ActionToggleControl},
	'p': {Kind: ActionPaint},
	' ': {Kind: ActionPaint},

	'q': {Kind: ActionQuit},
	'Q': {Kind: ActionQuit},
}

// KeyAction decodes a key event. Unmapped keys yield ActionNone.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyUp:
		return moveUp
	case tcell.KeyDown:
		return moveDown
	case tcell.KeyLeft:
		return moveLeft
	case tcell.KeyRight:
		return moveRight
	case tcell.KeyTab:
		return Action{Kind: ActionToggleControl}
	case tcell.KeyEnter:
		return Action{Kind: ActionPaint}
	case tcell.KeyRune:
		if a, ok := runeActions[ev.Rune()]; ok {
			return a
		}
	}
	return Action{}
}
