package world

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDump writes one line per entity in insertion order. With withGrid
// it then writes every row of the board using glyphs, followed by the
// player's row and column.
func (b *Board) WriteDump(w io.Writer, glyphs Glyphs, withGrid bool) error {
	bw := bufio.NewWriter(w)

	for _, e := range b.entities {
		bw.WriteString(e.DumpLine())
		bw.WriteByte('\n')
	}

	if withGrid {
		for r := 0; r < b.rows; r++ {
			for c := 0; c < b.cols; c++ {
				bw.WriteRune(glyphs.Rune(b.tiles[r][c]))
			}
			bw.WriteByte('\n')
		}
		player := b.Player()
		bw.WriteString(strconv.Itoa(player.Row))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(player.Col))
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write board dump: %w", err)
	}
	return nil
}
