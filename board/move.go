package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/tempo/position"
)

var (
	ErrInvalidMove = errors.New("invalid move")
)

// Move describes a piece relocation. Utility is only assigned by search.
type Move struct {
	From, To  position.Pos
	IsPromote Piece

	Utility float64
}

// ParseMove parses the human two-square form, e.g. ParseMove("e2", "e4").
func ParseMove(from, to string) (Move, error) {
	f, err := position.NewPosFromNotation(strings.ToLower(from))
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	t, err := position.NewPosFromNotation(strings.ToLower(to))
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	return Move{From: f, To: t}, nil
}

// ParseXBoardMove parses the coordinate protocol form, e.g. "e2e4" or "e7e8q".
func ParseXBoardMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: bad length %q", ErrInvalidMove, s)
	}
	mv, err := ParseMove(s[0:2], s[2:4])
	if err != nil {
		return Move{}, err
	}
	if len(s) == 5 {
		p, _, ok := PieceFromSymbol(rune(s[4]))
		if !ok || p == PiecePawn || p == PieceKing {
			return Move{}, fmt.Errorf("%w: bad promotion %q", ErrInvalidMove, s[4:])
		}
		mv.IsPromote = p
	}
	return mv, nil
}

// Equals compares source and destination only.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To
}

func (m Move) IsNull() bool {
	return m.From == m.To
}

func (m Move) String() string {
	nt := m.From.Notation() + " " + m.To.Notation()
	if m.IsPromote != PieceUnknown {
		nt += "=" + m.IsPromote.SymbolFEN(SideWhite)
	}
	return nt
}

func (m Move) XBoard() string {
	return m.From.Notation() + m.To.Notation() + m.IsPromote.SymbolFEN(SideBlack)
}

// FindMove looks mv up in mvs. A move without a promotion kind matches the
// Queen promotion.
func FindMove(mvs []Move, mv Move) (Move, bool) {
	for _, candidate := range mvs {
		if !candidate.Equals(mv) {
			continue
		}
		if candidate.IsPromote == mv.IsPromote ||
			(mv.IsPromote == PieceUnknown && candidate.IsPromote == PieceQueen) {
			return candidate, true
		}
	}
	return Move{}, false
}

// IsCapture reports whether mv takes a piece, including en passant.
func (b *Board) IsCapture(mv Move) bool {
	return !b.cells[mv.To].IsEmpty() || b.IsEnPassant(mv)
}

func (b *Board) IsEnPassant(mv Move) bool {
	return b.cells[mv.From].Piece == PiecePawn && mv.From.X() != mv.To.X() && b.cells[mv.To].IsEmpty()
}

func (b *Board) IsCastle(mv Move) bool {
	return b.cells[mv.From].Piece == PieceKing && abs(mv.To.X()-mv.From.X()) == 2
}
