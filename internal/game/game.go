package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeonboard/internal/audio"
	"github.com/samdwyer/dungeonboard/internal/gamedata"
	"github.com/samdwyer/dungeonboard/internal/logger"
	"github.com/samdwyer/dungeonboard/internal/telemetry"
	"github.com/samdwyer/dungeonboard/internal/ui"
	"github.com/samdwyer/dungeonboard/internal/world"
)

// Game holds the entire editor state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	catalog  *gamedata.Catalog
	board    *world.Board
	sound    audio.Player

	control   Control
	paintMode bool
	brush     world.Tile
	message   string
	running   bool
}

// New creates an editor on the terminal.
func New(cfg Config) (*Game, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(cfg, s)
}

// NewWithScreen creates an editor drawing to s, which is initialized here.
// The board is built and populated before the screen is touched so that
// configuration errors leave the terminal alone.
func NewWithScreen(cfg Config, s tcell.Screen) (*Game, error) {
	if cfg.DataDir != "" {
		gamedata.SetSource(os.DirFS(cfg.DataDir))
	}
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load board data: %w", err)
	}

	board, err := world.NewBoard(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	skipped, err := catalog.Populate(board)
	if err != nil {
		return nil, fmt.Errorf("populate board: %w", err)
	}
	for _, name := range skipped {
		logger.Log.WithField("entity", name).Warn("entity does not fit on the board, skipped")
	}

	screen, err := ui.NewScreenFrom(s)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, ui.NewTheme(catalog)),
		catalog:  catalog,
		board:    board,
		sound:    audio.Silent{},
		control:  ControlPlayer,
		brush:    world.TileWalkable,
		running:  true,
	}, nil
}

// SetSound replaces the feedback sound player.
func (g *Game) SetSound(p audio.Player) {
	if p == nil {
		p = audio.Silent{}
	}
	g.sound = p
}

// Board returns the board being edited.
func (g *Game) Board() *world.Board { return g.board }

// Control returns what the direction keys currently move.
func (g *Game) Control() Control { return g.control }

// PaintMode reports whether cursor moves paint the brush.
func (g *Game) PaintMode() bool { return g.paintMode }

// Brush returns the selected tile type.
func (g *Game) Brush() world.Tile { return g.brush }

// Message returns the last status message.
func (g *Game) Message() string { return g.message }

// Running reports whether the loop should keep going.
func (g *Game) Running() bool { return g.running }

// Status returns the state shown in the text panel.
func (g *Game) Status() ui.Status {
	return ui.Status{
		Control:   g.control.String(),
		PaintMode: g.paintMode,
		Brush:     g.brush,
		Message:   g.message,
	}
}

// Run executes the main loop until the user quits. The screen is closed
// on return, so the terminal is usable again for WriteDump.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("board.rows", g.board.Rows()),
		attribute.Int("board.cols", g.board.Cols()),
		attribute.Int("board.entities", g.board.EntityCount()),
	)
	initSpan.End()

	defer g.Close()

	for g.running {
		g.renderer.Render(g.board, g.Status())
		g.handleInput(ctx)
	}
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized underneath us.
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	g.Apply(ctx, KeyAction(ev))
}

// Apply performs a decoded action on the session.
func (g *Game) Apply(ctx context.Context, a Action) {
	switch a.Kind {
	case ActionMove:
		g.step(ctx, a.DR, a.DC)
	case ActionSelectBrush:
		g.selectBrush(a.Tile)
	case ActionToggleControl:
		g.control = g.control.Toggle()
		g.message = "controlling " + g.control.String()
	case ActionPaint:
		g.paint(ctx)
	case ActionQuit:
		g.running = false
	}
}

// step moves whatever is under control by the given delta.
func (g *Game) step(ctx context.Context, dr, dc int) {
	fields := logrus.Fields{"control": g.control.String(), "dr": dr, "dc": dc}

	if g.control == ControlCursor {
		if err := g.board.MoveCursorBy(dr, dc); err != nil {
			g.message = "cursor: " + err.Error()
			logger.Log.WithFields(fields).WithError(err).Debug("cursor move refused")
			return
		}
		g.message = ""
		if g.paintMode {
			g.paint(ctx)
		}
		return
	}

	if err := g.board.MovePlayerBy(dr, dc); err != nil {
		g.message = "blocked: " + err.Error()
		if errors.Is(err, world.ErrBlocked) || errors.Is(err, world.ErrOutOfBounds) {
			g.sound.Bump()
		}
		logger.Log.WithFields(fields).WithError(err).Debug("player move refused")
		return
	}
	g.message = ""
	p := g.board.Player()
	logger.Log.WithFields(fields).WithFields(logrus.Fields{"row": p.Row, "col": p.Col}).Debug("player moved")
}

// selectBrush picks a tile type. Picking the active brush again turns
// paint mode off.
func (g *Game) selectBrush(t world.Tile) {
	if g.paintMode && g.brush == t {
		g.paintMode = false
		g.message = "paint mode off"
		return
	}
	g.brush = t
	g.paintMode = true
	g.message = "paint mode on: " + t.String()
}

// paint writes the brush under the cursor.
func (g *Game) paint(ctx context.Context) {
	cursor := g.board.Cursor()

	_, span := telemetry.Tracer("world").Start(ctx, "board.paint")
	defer span.End()
	span.SetAttributes(
		attribute.Int("cursor.row", cursor.Row),
		attribute.Int("cursor.col", cursor.Col),
		attribute.String("tile", g.brush.String()),
	)

	if err := g.board.SetTileAtCursor(g.brush); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "paint failed")
		g.message = "paint: " + err.Error()
		logger.Log.WithError(err).Warn("paint failed")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"row":  cursor.Row,
		"col":  cursor.Col,
		"tile": g.brush.String(),
	}).Debug("tile painted")
}

// WriteDump writes the exit-time dump of the board to w.
func (g *Game) WriteDump(ctx context.Context, w io.Writer) error {
	_, span := telemetry.Tracer("game").Start(ctx, "session.dump")
	defer span.End()
	span.SetAttributes(
		attribute.Int("board.entities", g.board.EntityCount()),
		attribute.Bool("dump.grid", g.cfg.DumpGrid),
	)

	if err := g.board.WriteDump(w, g.catalog.Glyphs(), g.cfg.DumpGrid); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dump failed")
		return err
	}
	return nil
}

// Close cleans up editor resources. It is safe to call more than once.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
