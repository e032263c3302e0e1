package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonboard/internal/gamedata"
	"github.com/samdwyer/dungeonboard/internal/world"
)

const (
	// Top-left corner of the board frame.
	boardTop  = 2
	boardLeft = 2

	// Offset of the text panel from the bottom of the frame.
	panelGap  = 1
	panelLeft = 4
)

// HelpLines is the key reference shown under the board.
var HelpLines = []string{
	"q quit   arrows/wasd/hjkl move   c toggle player/cursor",
	"1/v void  2/f floor  3/x wall: toggle paint   p/space paint at cursor",
}

// Status is the session state shown in the text panel.
type Status struct {
	Control   string // "player" or "cursor"
	PaintMode bool
	Brush     world.Tile
	Message   string
}

// Theme maps board content to glyphs and styles.
type Theme struct {
	Glyphs      world.Glyphs
	TileStyles  map[world.Tile]tcell.Style
	TileLabels  map[world.Tile]string
	EntityStyle map[rune]tcell.Style
	PlayerStyle tcell.Style
}

// NewTheme builds a theme from the loaded board data.
func NewTheme(catalog *gamedata.Catalog) Theme {
	theme := Theme{
		Glyphs:      catalog.Glyphs(),
		TileStyles:  make(map[world.Tile]tcell.Style),
		TileLabels:  make(map[world.Tile]string),
		EntityStyle: make(map[rune]tcell.Style),
		PlayerStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
	for _, t := range world.Tiles {
		def := catalog.Tile(t)
		if def == nil {
			continue
		}
		theme.TileStyles[t] = tcell.StyleDefault.Foreground(def.TCellColor())
		theme.TileLabels[t] = def.Label
	}
	for _, def := range catalog.Entities() {
		theme.EntityStyle[def.GlyphRune()] = tcell.StyleDefault.Foreground(def.TCellColor())
	}
	return theme
}

// label returns the display name of a tile type.
func (t Theme) label(tile world.Tile) string {
	if l, ok := t.TileLabels[tile]; ok && l != "" {
		return l
	}
	return tile.String()
}

// Renderer handles drawing the board to the screen.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// CellOrigin returns the screen coordinates of board cell (0,0).
func CellOrigin() (x, y int) {
	return boardLeft + 1, boardTop + 1
}

// Render draws the board, its entities, the cursor and the status panel.
func (r *Renderer) Render(board *world.Board, status Status) {
	r.screen.Clear()

	r.drawText(0, 0, "dungeonboard", tcell.StyleDefault.Bold(true))
	r.drawFrame(boardLeft, boardTop, board.Cols()+2, board.Rows()+2)

	ox, oy := CellOrigin()

	// Tiles
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			tile, _ := board.TileAt(row, col)
			r.screen.SetContent(ox+col, oy+row, r.theme.Glyphs.Rune(tile), r.theme.TileStyles[tile])
		}
	}

	// Entities, then the player on top
	entities := board.Entities()
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		style, ok := r.theme.EntityStyle[e.Glyph]
		if i == world.PlayerIndex {
			style, ok = r.theme.PlayerStyle, true
		}
		if !ok {
			style = tcell.StyleDefault
		}
		r.screen.SetContent(ox+e.Pos.Col, oy+e.Pos.Row, e.Glyph, style)
	}

	// Cursor keeps whatever is under it, in reverse video
	cursor := board.Cursor()
	cx, cy := ox+cursor.Col, oy+cursor.Row
	under, style := r.screen.Content(cx, cy)
	r.screen.SetContent(cx, cy, under, style.Reverse(true))

	r.renderPanel(board, status)
	r.screen.Show()
}

// renderPanel draws the help text and state lines below the board.
func (r *Renderer) renderPanel(board *world.Board, status Status) {
	y := boardTop + board.Rows() + 2 + panelGap
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for _, line := range HelpLines {
		r.drawText(panelLeft, y, line, plain)
		y++
	}
	y++

	player, cursor := board.Player(), board.Cursor()
	r.drawText(panelLeft, y, fmt.Sprintf("player [%d ; %d]   cursor [%d ; %d]",
		player.Row, player.Col, cursor.Row, cursor.Col), plain)
	y++

	paint := "off"
	if status.PaintMode {
		paint = "on"
	}
	r.drawText(panelLeft, y, fmt.Sprintf("control: %s   brush: %s   paint: %s",
		status.Control, r.theme.label(status.Brush), paint), plain)
	y++

	if status.Message != "" {
		r.drawText(panelLeft, y, status.Message, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
}

// drawFrame draws a box border of the given outer size.
func (r *Renderer) drawFrame(x, y, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := 1; i < w-1; i++ {
		r.screen.SetContent(x+i, y, tcell.RuneHLine, style)
		r.screen.SetContent(x+i, y+h-1, tcell.RuneHLine, style)
	}
	for j := 1; j < h-1; j++ {
		r.screen.SetContent(x, y+j, tcell.RuneVLine, style)
		r.screen.SetContent(x+w-1, y+j, tcell.RuneVLine, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, style)
	r.screen.SetContent(x+w-1, y, tcell.RuneURCorner, style)
	r.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, style)
	r.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, style)
}

// drawText writes a single line of text starting at (x, y).
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(x+i, y, ch, style)
		i++
	}
}
