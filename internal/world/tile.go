// Package world provides the board model: tiles, positions and entities.
package world

import "fmt"

// Tile represents a single board cell's terrain.
type Tile int

const (
	// TileVoid is empty space. It is the zero value of a fresh board.
	TileVoid Tile = iota
	// TileWalkable is floor the player and entities may stand on.
	TileWalkable
	// TileSolid is an impassable wall.
	TileSolid
)

// Tiles lists every tile type in declaration order.
var Tiles = []Tile{TileVoid, TileWalkable, TileSolid}

// IsWalkable returns true if the tile can be walked on.
func (t Tile) IsWalkable() bool {
	return t == TileWalkable
}

// String returns the tile's configuration name.
func (t Tile) String() string {
	switch t {
	case TileVoid:
		return "void"
	case TileWalkable:
		return "walkable"
	case TileSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// ParseTile converts a configuration name back into a Tile.
func ParseTile(name string) (Tile, error) {
	for _, t := range Tiles {
		if t.String() == name {
			return t, nil
		}
	}
	return TileVoid, fmt.Errorf("unknown tile type %q", name)
}

// Glyphs maps each tile type to the character used to draw it.
type Glyphs map[Tile]rune

// DefaultGlyphs returns the built-in glyph table.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		TileVoid:     ' ',
		TileWalkable: '.',
		TileSolid:    '#',
	}
}

// Rune returns the glyph for t, falling back to the default table.
func (g Glyphs) Rune(t Tile) rune {
	if r, ok := g[t]; ok {
		return r
	}
	if r, ok := DefaultGlyphs()[t]; ok {
		return r
	}
	return '?'
}
