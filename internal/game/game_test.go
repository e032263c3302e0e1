package game

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/smartystreets/goconvey/convey"

	"github.com/samdwyer/dungeonboard/internal/world"
)

type countingSound struct {
	bumps int
}

func (s *countingSound) Bump() { s.bumps++ }

func newTestGame(t *testing.T, cfg Config) (*Game, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	g, err := NewWithScreen(cfg, sim)
	if err != nil {
		t.Fatalf("NewWithScreen() error: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(g.Close)
	return g, sim
}

func press(g *Game, keys ...rune) {
	ctx := context.Background()
	for _, k := range keys {
		g.handleKeyEvent(ctx, runeKey(k))
	}
}

func TestNewWithScreenRejectsTinyBoards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0

	_, err := NewWithScreen(cfg, tcell.NewSimulationScreen(""))
	if err == nil {
		t.Fatal("NewWithScreen() should fail for a zero-row board")
	}
}

func TestEditingSession(t *testing.T) {
	convey.Convey("Given the default board", t, func() {
		g, _ := newTestGame(t, DefaultConfig())
		sound := &countingSound{}
		g.SetSound(sound)
		board := g.Board()

		convey.So(board.Player(), convey.ShouldResemble, world.Position{})
		convey.So(g.Control(), convey.ShouldEqual, ControlPlayer)

		convey.Convey("the player walks across floor", func() {
			press(g, 'l', 'j')
			convey.So(board.Player(), convey.ShouldResemble, world.Position{Row: 1, Col: 1})
			convey.So(g.Message(), convey.ShouldBeEmpty)

			convey.Convey("and stops at the wall", func() {
				press(g, 'd')
				convey.So(board.Player(), convey.ShouldResemble, world.Position{Row: 1, Col: 1})
				convey.So(g.Message(), convey.ShouldStartWith, "blocked")
				convey.So(sound.bumps, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("the player cannot leave the board", func() {
			press(g, 'k', 'h')
			convey.So(board.Player(), convey.ShouldResemble, world.Position{})
			convey.So(sound.bumps, convey.ShouldEqual, 2)
		})

		convey.Convey("switching to the cursor leaves the player alone", func() {
			press(g, 'c', 'l', 'l', 'l', 'l', 'l')
			convey.So(g.Control(), convey.ShouldEqual, ControlCursor)
			convey.So(board.Cursor(), convey.ShouldResemble, world.Position{Row: 0, Col: 5})
			convey.So(board.Player(), convey.ShouldResemble, world.Position{})
			convey.So(sound.bumps, convey.ShouldEqual, 0)

			convey.Convey("and committing a paint writes the brush", func() {
				press(g, 'p')
				convey.So(board.IsWalkable(0, 5), convey.ShouldBeTrue)
			})

			convey.Convey("and paint mode paints every step", func() {
				press(g, 'x', 'j', 'j')
				convey.So(g.PaintMode(), convey.ShouldBeTrue)
				convey.So(g.Brush(), convey.ShouldEqual, world.TileSolid)
				for _, p := range []world.Position{{Row: 1, Col: 5}, {Row: 2, Col: 5}} {
					tile, err := board.TileAt(p.Row, p.Col)
					convey.So(err, convey.ShouldBeNil)
					convey.So(tile, convey.ShouldEqual, world.TileSolid)
				}
				tile, _ := board.TileAt(0, 5)
				convey.So(tile, convey.ShouldEqual, world.TileVoid)

				convey.Convey("until the same brush is picked again", func() {
					press(g, 'x', 'j')
					convey.So(g.PaintMode(), convey.ShouldBeFalse)
					tile, _ := board.TileAt(3, 5)
					convey.So(tile, convey.ShouldEqual, world.TileVoid)
				})
			})

			convey.Convey("and the cursor stops at the edge", func() {
				press(g, 'l', 'l', 'l')
				convey.So(board.Cursor(), convey.ShouldResemble, world.Position{Row: 0, Col: 7})
				convey.So(g.Message(), convey.ShouldStartWith, "cursor")
			})
		})

		convey.Convey("painting floor opens a new path for the player", func() {
			press(g, 'c', 'j', 'j', 'f', 'j', 'c', 'j', 'j', 'j')
			convey.So(board.Player(), convey.ShouldResemble, world.Position{Row: 3, Col: 0})
		})
	})
}

func TestRunUntilQuit(t *testing.T) {
	g, sim := newTestGame(t, DefaultConfig())

	for _, r := range "ljq" {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if g.Running() {
		t.Error("Running() = true after quit")
	}
	if got := g.Board().Player(); got != (world.Position{Row: 1, Col: 1}) {
		t.Errorf("Player() = %+v, want (1,1)", got)
	}
}

func TestWriteDumpOnExit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DumpGrid = true
	g, _ := newTestGame(t, cfg)

	press(g, 'l', 'l', 'l', 'j', 'j', 'q')

	var buf bytes.Buffer
	if err := g.WriteDump(context.Background(), &buf); err != nil {
		t.Fatalf("WriteDump() error: %v", err)
	}

	want := strings.Join([]string{
		`"@";"player";at(2;3)`,
		`"*";"star";at(2;4)`,
		"....    ",
		"..#.    ",
		"..... # ",
		"        ",
		"2 3",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteDump() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteDumpEntitiesOnly(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig())

	var buf bytes.Buffer
	if err := g.WriteDump(context.Background(), &buf); err != nil {
		t.Fatalf("WriteDump() error: %v", err)
	}

	want := "\"@\";\"player\";at(0;0)\n\"*\";\"star\";at(2;4)\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteDump() = %q, want %q", got, want)
	}
}
