package world

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity is a named, positioned object drawn on the board.
// The player is an entity too: the first one on every board.
type Entity struct {
	ID          uuid.UUID // Unique identifier for logs and traces
	Glyph       rune      // Display symbol
	Description string    // Human-readable name (e.g., "player")
	Pos         Position  // Current cell
}

const (
	// PlayerIndex is the entity list index of the player.
	PlayerIndex = 0

	// PlayerGlyph is the player's display symbol.
	PlayerGlyph = '@'
	// PlayerDescription is the player's description.
	PlayerDescription = "player"
)

// NewEntity creates an entity at the given position with a fresh ID.
func NewEntity(glyph rune, description string, pos Position) Entity {
	return Entity{
		ID:          uuid.New(),
		Glyph:       glyph,
		Description: description,
		Pos:         pos,
	}
}

// DumpLine renders the entity in the exit-time dump format.
func (e Entity) DumpLine() string {
	return fmt.Sprintf(`"%c";"%s";at(%d;%d)`, e.Glyph, e.Description, e.Pos.Row, e.Pos.Col)
}
