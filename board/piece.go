package board

// Piece is the kind discriminant of a piece. Per-kind movement rules are
// looked up by it, see rules.
type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Piece{PieceBishop, PieceKnight, PieceRook, PieceQueen}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// Value returns the material value of the piece. The King has none.
func (p Piece) Value() float64 {
	return materialPieceValue[p]
}

// IsSlider reports whether the piece moves along rays.
func (p Piece) IsSlider() bool {
	return p == PieceBishop || p == PieceRook || p == PieceQueen
}

func (p Piece) SymbolFEN(s Side) string {
	if sym := p.symbol(s); sym != 0 {
		return string(sym)
	}
	return ""
}

func (p Piece) symbol(s Side) byte {
	var sym byte
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return 0
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return sym
}

// PieceFromSymbol parses a FEN piece letter.
func PieceFromSymbol(sym rune) (Piece, Side, bool) {
	s := SideWhite
	if sym >= 'a' && sym <= 'z' {
		s = SideBlack
		sym -= 0x20
	}
	switch sym {
	case 'P':
		return PiecePawn, s, true
	case 'B':
		return PieceBishop, s, true
	case 'N':
		return PieceKnight, s, true
	case 'R':
		return PieceRook, s, true
	case 'Q':
		return PieceQueen, s, true
	case 'K':
		return PieceKing, s, true
	default:
		return PieceUnknown, SideUnknown, false
	}
}

func (p Piece) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// Cell is one board slot. The zero value is an empty square.
type Cell struct {
	Piece Piece
	Side  Side

	// Moved is cleared for a piece that has never left its square. Only King
	// and Rook read it, for castling and the position hash.
	Moved bool

	// DoubleStep marks a pawn that advanced two squares on its side's last
	// turn and may be captured en passant.
	DoubleStep bool
}

// NewCell returns a never-moved piece.
func NewCell(p Piece, s Side) Cell {
	return Cell{Piece: p, Side: s}
}

func (c Cell) IsEmpty() bool {
	return c.Piece == PieceUnknown
}

func (c Cell) String() string {
	if c.IsEmpty() {
		return "."
	}
	return c.Piece.SymbolFEN(c.Side)
}
