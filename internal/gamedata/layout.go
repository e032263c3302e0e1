package gamedata

import (
	"fmt"

	"github.com/samdwyer/dungeonboard/internal/world"
)

// FillDef paints a rectangle of one tile type on a new board.
type FillDef struct {
	Tile string `json:"tile"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

// Rect returns the area covered by the fill.
func (f *FillDef) Rect() world.Rect {
	return world.Rect{Row: f.Row, Col: f.Col, Rows: f.Rows, Cols: f.Cols}
}

// LayoutFile represents the structure of layout.json.
// Fills are applied in order, so later fills win.
type LayoutFile struct {
	Fills []FillDef `json:"fills"`
}

// LoadLayout loads the starter layout from the embedded layout.json file.
func LoadLayout() (LayoutFile, error) {
	return Load[LayoutFile]("layout.json")
}

// Apply paints every fill onto the board, clipped to its bounds, and
// returns how many cells were written.
func (l LayoutFile) Apply(b *world.Board) (int, error) {
	written := 0
	for i := range l.Fills {
		tile, err := world.ParseTile(l.Fills[i].Tile)
		if err != nil {
			return written, fmt.Errorf("layout fill %d: %w", i, err)
		}
		written += b.FillRect(l.Fills[i].Rect(), tile)
	}
	return written, nil
}
