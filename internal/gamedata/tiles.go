package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonboard/internal/world"
)

// TileDef defines how a tile type is drawn, loaded from JSON.
type TileDef struct {
	Tile  string `json:"tile"`  // Tile type name (e.g., "walkable")
	Glyph string `json:"glyph"` // Single character for rendering (e.g., ".")
	Color string `json:"color"` // Hex color code (e.g., "#A8A8A8")
	Label string `json:"label"` // Short name shown in the status panel (e.g., "floor")
}

// Type parses the tile type name.
func (d *TileDef) Type() (world.Tile, error) {
	return world.ParseTile(d.Tile)
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	return firstRune(d.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (d *TileDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}

// firstRune returns the first rune of s, or '?' if s is empty.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
