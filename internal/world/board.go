package world

import (
	"errors"
	"fmt"
)

const (
	// Default board dimensions
	DefaultRows = 4
	DefaultCols = 8

	// minSize is the smallest accepted row or column count.
	minSize = 2
)

var (
	// ErrInvalidSize is returned when a board is requested with fewer than two rows or columns.
	ErrInvalidSize = errors.New("board needs at least 2 rows and 2 columns")
	// ErrOutOfBounds is returned when a coordinate lies outside the board.
	ErrOutOfBounds = errors.New("position is outside the board")
	// ErrBlocked is returned when a move targets a tile that cannot be walked on.
	ErrBlocked = errors.New("tile is not walkable")
	// ErrDiagonal is returned when a step changes both row and column.
	ErrDiagonal = errors.New("step must change a single axis")
	// ErrNoEntity is returned for an entity index that does not exist.
	ErrNoEntity = errors.New("no such entity")
)

// Board is the editable map: a fixed-size tile grid, a cursor and the
// entities standing on it. The player is the entity at PlayerIndex.
type Board struct {
	rows     int
	cols     int
	tiles    [][]Tile
	cursor   Position
	entities []Entity
}

// NewBoard creates a board filled with void tiles. The player starts at
// (0,0) together with the cursor.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < minSize || cols < minSize {
		return nil, fmt.Errorf("new board %dx%d: %w", rows, cols, ErrInvalidSize)
	}

	tiles := make([][]Tile, rows)
	for r := range tiles {
		tiles[r] = make([]Tile, cols)
	}

	return &Board{
		rows:  rows,
		cols:  cols,
		tiles: tiles,
		entities: []Entity{
			NewEntity(PlayerGlyph, PlayerDescription, Position{}),
		},
	}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Bounds returns the rectangle covered by the board.
func (b *Board) Bounds() Rect {
	return Rect{Rows: b.rows, Cols: b.cols}
}

// IsInside returns true if the given cell lies within the board.
func (b *Board) IsInside(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// IsWalkable returns true if the given cell is inside and walkable.
func (b *Board) IsWalkable(r, c int) bool {
	if !b.IsInside(r, c) {
		return false
	}
	return b.tiles[r][c].IsWalkable()
}

// TileAt returns the tile at the given cell.
func (b *Board) TileAt(r, c int) (Tile, error) {
	if !b.IsInside(r, c) {
		return TileVoid, outOfBounds(r, c)
	}
	return b.tiles[r][c], nil
}

// SetTileAt writes a tile type at the given cell.
func (b *Board) SetTileAt(r, c int, t Tile) error {
	if !b.IsInside(r, c) {
		return outOfBounds(r, c)
	}
	b.tiles[r][c] = t
	return nil
}

// SetTileAtCursor writes a tile type under the cursor.
func (b *Board) SetTileAtCursor(t Tile) error {
	return b.SetTileAt(b.cursor.Row, b.cursor.Col, t)
}

// FillRect paints the part of rect that overlaps the board and returns
// the number of cells written.
func (b *Board) FillRect(rect Rect, t Tile) int {
	area := rect.Intersect(b.Bounds())
	if area.Empty() {
		return 0
	}
	for r := area.Row; r < area.Row+area.Rows; r++ {
		for c := area.Col; c < area.Col+area.Cols; c++ {
			b.tiles[r][c] = t
		}
	}
	return area.Rows * area.Cols
}

// Player returns the player's position.
func (b *Board) Player() Position {
	return b.entities[PlayerIndex].Pos
}

// MovePlayerTo moves the player onto a walkable cell.
func (b *Board) MovePlayerTo(r, c int) error {
	return b.MoveEntityTo(PlayerIndex, r, c)
}

// MovePlayerBy moves the player one straight step by the given delta.
func (b *Board) MovePlayerBy(dr, dc int) error {
	return b.MoveEntityBy(PlayerIndex, dr, dc)
}

// Cursor returns the cursor position.
func (b *Board) Cursor() Position {
	return b.cursor
}

// MoveCursorTo places the cursor on any cell inside the board,
// regardless of its tile type.
func (b *Board) MoveCursorTo(r, c int) error {
	if !b.IsInside(r, c) {
		return outOfBounds(r, c)
	}
	b.cursor = Position{Row: r, Col: c}
	return nil
}

// MoveCursorBy moves the cursor one straight step by the given delta.
func (b *Board) MoveCursorBy(dr, dc int) error {
	if dr != 0 && dc != 0 {
		return fmt.Errorf("cursor step (%d,%d): %w", dr, dc, ErrDiagonal)
	}
	target := b.cursor.Add(dr, dc)
	return b.MoveCursorTo(target.Row, target.Col)
}

// AddEntity appends an entity to the board. Entities are never removed.
func (b *Board) AddEntity(glyph rune, description string, pos Position) (Entity, error) {
	if !b.IsInside(pos.Row, pos.Col) {
		return Entity{}, fmt.Errorf("add entity %q: %w", description, outOfBounds(pos.Row, pos.Col))
	}
	e := NewEntity(glyph, description, pos)
	b.entities = append(b.entities, e)
	return e, nil
}

// Entities returns a copy of the entity list in insertion order.
func (b *Board) Entities() []Entity {
	out := make([]Entity, len(b.entities))
	copy(out, b.entities)
	return out
}

// EntityCount returns the number of entities, player included.
func (b *Board) EntityCount() int {
	return len(b.entities)
}

// Entity returns the entity at index i.
func (b *Board) Entity(i int) (Entity, error) {
	if i < 0 || i >= len(b.entities) {
		return Entity{}, fmt.Errorf("entity %d: %w", i, ErrNoEntity)
	}
	return b.entities[i], nil
}

// MoveEntityTo moves entity i onto a walkable cell.
func (b *Board) MoveEntityTo(i, r, c int) error {
	if i < 0 || i >= len(b.entities) {
		return fmt.Errorf("entity %d: %w", i, ErrNoEntity)
	}
	if !b.IsInside(r, c) {
		return outOfBounds(r, c)
	}
	if !b.tiles[r][c].IsWalkable() {
		return fmt.Errorf("(%d,%d) is %s: %w", r, c, b.tiles[r][c], ErrBlocked)
	}
	b.entities[i].Pos = Position{Row: r, Col: c}
	return nil
}

// MoveEntityBy moves entity i one straight step by the given delta.
func (b *Board) MoveEntityBy(i, dr, dc int) error {
	if i < 0 || i >= len(b.entities) {
		return fmt.Errorf("entity %d: %w", i, ErrNoEntity)
	}
	if dr != 0 && dc != 0 {
		return fmt.Errorf("entity %d step (%d,%d): %w", i, dr, dc, ErrDiagonal)
	}
	target := b.entities[i].Pos.Add(dr, dc)
	return b.MoveEntityTo(i, target.Row, target.Col)
}

// outOfBounds wraps ErrOutOfBounds with the offending coordinate.
func outOfBounds(r, c int) error {
	return fmt.Errorf("(%d,%d): %w", r, c, ErrOutOfBounds)
}
