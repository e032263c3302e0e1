package world

import "testing"

func TestTileString(t *testing.T) {
	tests := []struct {
		tile     Tile
		expected string
	}{
		{TileVoid, "void"},
		{TileWalkable, "walkable"},
		{TileSolid, "solid"},
		{Tile(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.tile.String()
		if got != tt.expected {
			t.Errorf("Tile(%d).String() = %q, want %q", tt.tile, got, tt.expected)
		}
	}
}

func TestParseTile(t *testing.T) {
	for _, tile := range Tiles {
		got, err := ParseTile(tile.String())
		if err != nil {
			t.Fatalf("ParseTile(%q) returned error: %v", tile.String(), err)
		}
		if got != tile {
			t.Errorf("ParseTile(%q) = %v, want %v", tile.String(), got, tile)
		}
	}

	if _, err := ParseTile("lava"); err == nil {
		t.Error("ParseTile(\"lava\") should fail")
	}
}

func TestTileIsWalkable(t *testing.T) {
	if TileVoid.IsWalkable() {
		t.Error("void should not be walkable")
	}
	if !TileWalkable.IsWalkable() {
		t.Error("walkable should be walkable")
	}
	if TileSolid.IsWalkable() {
		t.Error("solid should not be walkable")
	}
}

func TestGlyphsFallback(t *testing.T) {
	g := Glyphs{TileSolid: 'X'}

	if got := g.Rune(TileSolid); got != 'X' {
		t.Errorf("Rune(solid) = %q, want 'X'", got)
	}
	if got := g.Rune(TileWalkable); got != '.' {
		t.Errorf("Rune(walkable) = %q, want default '.'", got)
	}
	if got := g.Rune(Tile(42)); got != '?' {
		t.Errorf("Rune(42) = %q, want '?'", got)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{Row: 0, Col: 0, Rows: 4, Cols: 4}

	got := a.Intersect(Rect{Row: 2, Col: 3, Rows: 10, Cols: 10})
	want := Rect{Row: 2, Col: 3, Rows: 2, Cols: 1}
	if got != want {
		t.Errorf("Intersect() = %+v, want %+v", got, want)
	}

	if !a.Intersect(Rect{Row: 4, Col: 0, Rows: 1, Cols: 1}).Empty() {
		t.Error("touching rectangles should not overlap")
	}
	if !a.Contains(3, 3) || a.Contains(4, 3) {
		t.Error("Contains() disagrees with rectangle bounds")
	}
}
