package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/stalemate/board"
	"github.com/daystram/stalemate/position"
)

var (
	colorLabel     = color.New(color.Bold)
	colorCellDark  = color.New(color.FgBlack, color.BgGreen)
	colorCellLight = color.New(color.FgBlack, color.BgHiWhite)
	colorCellLast  = color.New(color.FgBlack, color.BgHiYellow)
)

// draw renders b with coloured squares, highlighting the squares of last.
func draw(b *board.Board, last *board.Move) string {
	builder := strings.Builder{}
	for y := position.Pos(board.Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < board.Width; x++ {
			pos := position.NewPos(x, y)
			s, p := b.GetSideAndPiece(pos)
			sym := p.SymbolUnicode(s, false)
			if p == board.PieceUnknown {
				sym = " "
			}

			c := colorCellLight
			switch {
			case last != nil && (last.From == pos || last.To == pos):
				c = colorCellLast
			case x%2^y%2 == 0:
				c = colorCellDark
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < board.Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
