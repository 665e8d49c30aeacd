package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/tempo/position"
)

var (
	colorLabel     = color.New(color.Bold)
	colorCellDark  = color.New(color.FgBlack, color.BgGreen)
	colorCellLight = color.New(color.FgBlack, color.BgHiWhite)
)

// Dump renders the board as plain text, rank 8 on top.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			c := b.cells[position.NewPos(x, y)]
			sym := c.Piece.SymbolFEN(c.Side)
			if c.IsEmpty() {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the board with coloured squares and Unicode pieces. Colours
// are dropped when the output is not a terminal.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			c := b.cells[position.NewPos(x, y)]
			sym := c.Piece.SymbolUnicode(c.Side, false)
			if c.IsEmpty() {
				sym = " "
			}
			cell := colorCellLight
			if x%2^y%2 == 0 {
				cell = colorCellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("fen:  %s\nhash: %s\nply:  %4d\nhalf: %4d\nfull: %4d\nstat: %s",
		b.FEN(), b.Hash(), b.ply, b.halfMoveClock, b.fullMoveClock, b.GetGameOutcome())
}
