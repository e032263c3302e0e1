package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonboard/internal/world"
)

// EntityDef defines a predefined entity placed on every new board.
type EntityDef struct {
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "*")
	Description string `json:"description"` // Name written to the dump (e.g., "star")
	Color       string `json:"color"`       // Hex color code
	Row         int    `json:"row"`         // Starting row
	Col         int    `json:"col"`         // Starting column
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EntityDef) GlyphRune() rune {
	return firstRune(e.Glyph)
}

// Position returns the starting cell.
func (e *EntityDef) Position() world.Position {
	return world.Position{Row: e.Row, Col: e.Col}
}

// TCellColor returns the color as a tcell.Color.
func (e *EntityDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EntitiesFile represents the structure of entities.json.
type EntitiesFile struct {
	Entities []EntityDef `json:"entities"`
}

// LoadEntities loads entity definitions from the embedded entities.json file.
func LoadEntities() ([]EntityDef, error) {
	file, err := Load[EntitiesFile]("entities.json")
	if err != nil {
		return nil, err
	}
	return file.Entities, nil
}
