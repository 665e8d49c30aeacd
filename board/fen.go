package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/tempo/position"
)

// UnmarshalFEN loads fen into b. Kings and Rooks are marked as moved unless a
// castling right names them; an en passant square marks the pawn in front of
// it as having just double stepped.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Fields(fen)
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	placements := make([]Placement, 0, TotalCells/2)
	for y := position.Pos(0); y < Height; y++ {
		row := rows[Height-y-1]
		x := position.Pos(0)
		for _, sym := range row {
			if x >= Width {
				return fmt.Errorf("%w: extra cells", ErrInvalidFEN)
			}
			if sym != '0' && unicode.IsDigit(sym) {
				skip := position.Pos(sym - '0')
				if x+skip > Width {
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				x += skip
				continue
			}
			p, s, ok := PieceFromSymbol(sym)
			if !ok {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(sym))
			}
			c := NewCell(p, s)
			if p == PieceKing || p == PieceRook {
				c.Moved = true
			}
			if p == PiecePawn && y != s.PawnRank() {
				c.Moved = true
			}
			placements = append(placements, Placement{Pos: position.NewPos(x, y), Cell: c})
			x++
		}
		if x != Width {
			return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	b.Setup(placements, turn)
	if _, ok := b.FindKing(SideWhite); !ok {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}
	if _, ok := b.FindKing(SideBlack); !ok {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		var d CastleDirection
		switch e {
		case 'K':
			d = CastleDirectionWhiteRight
		case 'k':
			d = CastleDirectionBlackRight
		case 'Q':
			d = CastleDirectionWhiteLeft
		case 'q':
			d = CastleDirectionBlackLeft
		default:
			if i == 0 && e == '-' {
				break crLoop
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
		if !b.setCastleRight(d) {
			return fmt.Errorf("%w: castling right %s without pieces", ErrInvalidFEN, d)
		}
	}

	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: %v", fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN), err)
		}
		// the pawn that just moved stands one rank past the skipped square
		mover := turn.Opposite()
		victim, ok := pos.Offset(0, mover.Forward())
		if !ok || pos.Y() != mover.PawnRank()+mover.Forward() || !b.cells[victim].isPawnOf(mover) {
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		b.cells[victim].DoubleStep = true
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	b.halfMoveClock = uint16(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	b.fullMoveClock = uint16(fullMoveClock)

	b.invalidate()
	return nil
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	var skip uint8
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && b.cells[position.NewPos(x, y)].IsEmpty(); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				c := b.cells[position.NewPos(x, y)]
				_ = builder.WriteByte(c.Piece.symbol(c.Side))
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideBlack {
		_, _ = builder.WriteString(" b ")
	} else {
		_, _ = builder.WriteString(" w ")
	}

	rights := 0
	for _, d := range [4]CastleDirection{
		CastleDirectionWhiteRight, CastleDirectionWhiteLeft,
		CastleDirectionBlackRight, CastleDirectionBlackLeft,
	} {
		if !b.canCastle(d) {
			continue
		}
		sym := byte('Q')
		if d.IsRight() {
			sym = 'K'
		}
		if !d.IsWhite() {
			sym |= 0x20
		}
		_ = builder.WriteByte(sym)
		rights++
	}
	if rights == 0 {
		_, _ = builder.WriteRune('-')
	}
	_, _ = builder.WriteRune(' ')

	_, _ = builder.WriteString(b.enPassantTarget())

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String(), nil
}

// FEN is MarshalFEN for a valid board.
func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}

// enPassantTarget returns the square behind an opponent pawn capturable en
// passant by the side to move, or "-".
func (b *Board) enPassantTarget() string {
	mover := b.turn.Opposite()
	y := mover.PawnRank() + 2*mover.Forward()
	for x := position.Pos(0); x < Width; x++ {
		pos := position.NewPos(x, y)
		if b.isEnPassantVictim(pos, mover) {
			target, _ := pos.Offset(0, -mover.Forward())
			return target.Notation()
		}
	}
	return "-"
}

func (c Cell) isPawnOf(s Side) bool {
	return c.Piece == PiecePawn && c.Side == s
}
