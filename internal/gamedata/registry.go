package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungeonboard/internal/world"
)

// Catalog holds the loaded board data: the glyph table, the predefined
// entities and the starter layout.
type Catalog struct {
	tiles    map[world.Tile]*TileDef
	entities []EntityDef
	layout   LayoutFile
}

// NewCatalog creates a catalog from loaded definitions.
func NewCatalog(tiles []TileDef, entities []EntityDef, layout LayoutFile) (*Catalog, error) {
	c := &Catalog{
		tiles:    make(map[world.Tile]*TileDef, len(tiles)),
		entities: entities,
		layout:   layout,
	}
	for i := range tiles {
		t, err := tiles[i].Type()
		if err != nil {
			return nil, fmt.Errorf("tile definition %d: %w", i, err)
		}
		c.tiles[t] = &tiles[i]
	}
	for _, t := range world.Tiles {
		if c.tiles[t] == nil {
			return nil, fmt.Errorf("no definition for tile %q", t)
		}
	}
	return c, nil
}

// LoadCatalog loads and creates a catalog from the embedded JSON files.
func LoadCatalog() (*Catalog, error) {
	tiles, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	entities, err := LoadEntities()
	if err != nil {
		return nil, err
	}
	layout, err := LoadLayout()
	if err != nil {
		return nil, err
	}
	return NewCatalog(tiles, entities, layout)
}

// MustLoadCatalog loads a catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Tile returns the definition for a tile type, or nil if not found.
func (c *Catalog) Tile(t world.Tile) *TileDef {
	return c.tiles[t]
}

// Glyphs returns the tile glyph table.
func (c *Catalog) Glyphs() world.Glyphs {
	glyphs := make(world.Glyphs, len(c.tiles))
	for t, def := range c.tiles {
		glyphs[t] = def.GlyphRune()
	}
	return glyphs
}

// Entities returns the predefined entity definitions.
func (c *Catalog) Entities() []EntityDef {
	return c.entities
}

// EntityByGlyph returns the definition with the given glyph, or nil if not found.
func (c *Catalog) EntityByGlyph(glyph rune) *EntityDef {
	for i := range c.entities {
		if c.entities[i].GlyphRune() == glyph {
			return &c.entities[i]
		}
	}
	return nil
}

// Populate paints the starter layout on b and adds the predefined
// entities in order. Entities that do not fit on the board are skipped
// and their descriptions returned.
func (c *Catalog) Populate(b *world.Board) (skipped []string, err error) {
	if _, err := c.layout.Apply(b); err != nil {
		return nil, err
	}
	for i := range c.entities {
		def := &c.entities[i]
		if _, err := b.AddEntity(def.GlyphRune(), def.Description, def.Position()); err != nil {
			if errors.Is(err, world.ErrOutOfBounds) {
				skipped = append(skipped, def.Description)
				continue
			}
			return skipped, err
		}
	}
	return skipped, nil
}
