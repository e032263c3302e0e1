package world

// Position is a (row, column) cell coordinate.
type Position struct {
	Row, Col int
}

// Add returns the position shifted by the given delta.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Rect is a rectangular block of cells.
type Rect struct {
	Row, Col   int // Top-left corner
	Rows, Cols int // Dimensions
}

// Contains returns true if the given cell is inside the rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Row+r.Rows && col >= r.Col && col < r.Col+r.Cols
}

// Intersect returns the overlap of two rectangles. The result has zero
// size if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	top := max(r.Row, other.Row)
	left := max(r.Col, other.Col)
	bottom := min(r.Row+r.Rows, other.Row+other.Rows)
	right := min(r.Col+r.Cols, other.Col+other.Cols)
	if bottom <= top || right <= left {
		return Rect{Row: top, Col: left}
	}
	return Rect{Row: top, Col: left, Rows: bottom - top, Cols: right - left}
}

// Empty returns true if the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Rows <= 0 || r.Cols <= 0
}
