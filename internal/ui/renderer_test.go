package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonboard/internal/gamedata"
	"github.com/samdwyer/dungeonboard/internal/world"
)

func newSimScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(screen.Close)
	return screen
}

func newPopulatedBoard(t *testing.T) *world.Board {
	t.Helper()
	b, err := world.NewBoard(world.DefaultRows, world.DefaultCols)
	if err != nil {
		t.Fatalf("NewBoard() error: %v", err)
	}
	if _, err := gamedata.MustLoadCatalog().Populate(b); err != nil {
		t.Fatalf("Populate() error: %v", err)
	}
	return b
}

// rowText returns the runes of a screen row between x0 and x1.
func rowText(s *Screen, y, x0, x1 int) string {
	var sb strings.Builder
	for x := x0; x < x1; x++ {
		r, _ := s.Content(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestRenderBoard(t *testing.T) {
	screen := newSimScreen(t)
	board := newPopulatedBoard(t)
	renderer := NewRenderer(screen, NewTheme(gamedata.MustLoadCatalog()))

	renderer.Render(board, Status{Control: "player", Brush: world.TileSolid})

	ox, oy := CellOrigin()
	want := []string{
		"@...    ",
		"..#.    ",
		"....* # ",
		"        ",
	}
	for row, line := range want {
		if got := rowText(screen, oy+row, ox, ox+board.Cols()); got != line {
			t.Errorf("board row %d = %q, want %q", row, got, line)
		}
	}

	if r, _ := screen.Content(ox-1, oy-1); r != tcell.RuneULCorner {
		t.Errorf("frame corner = %q, want %q", r, tcell.RuneULCorner)
	}
}

func TestRenderCursorIsReversed(t *testing.T) {
	screen := newSimScreen(t)
	board := newPopulatedBoard(t)
	renderer := NewRenderer(screen, NewTheme(gamedata.MustLoadCatalog()))

	if err := board.MoveCursorTo(1, 2); err != nil {
		t.Fatalf("MoveCursorTo() error: %v", err)
	}
	renderer.Render(board, Status{Control: "cursor"})

	ox, oy := CellOrigin()
	r, style := screen.Content(ox+2, oy+1)
	if r != '#' {
		t.Errorf("cursor cell rune = %q, want '#'", r)
	}
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Error("cursor cell should be drawn in reverse video")
	}

	_, style = screen.Content(ox, oy)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse != 0 {
		t.Error("player cell should not be reversed once the cursor moved away")
	}
}

func TestRenderPanel(t *testing.T) {
	screen := newSimScreen(t)
	board := newPopulatedBoard(t)
	renderer := NewRenderer(screen, NewTheme(gamedata.MustLoadCatalog()))

	renderer.Render(board, Status{
		Control:   "cursor",
		PaintMode: true,
		Brush:     world.TileWalkable,
		Message:   "blocked",
	})

	_, height := screen.Size()
	var text strings.Builder
	for y := 0; y < height; y++ {
		text.WriteString(rowText(screen, y, 0, 80))
		text.WriteByte('\n')
	}
	out := text.String()

	for _, want := range []string{
		"player [0 ; 0]",
		"control: cursor",
		"brush: floor",
		"paint: on",
		"blocked",
		HelpLines[0],
	} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q", want)
		}
	}
}
