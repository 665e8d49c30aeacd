package board

import "github.com/daystram/tempo/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

func (d CastleDirection) Side() Side {
	if d == CastleDirectionUnknown {
		return SideUnknown
	}
	if d.IsWhite() {
		return SideWhite
	}
	return SideBlack
}

// passing returns the square the King crosses on its way.
func (d CastleDirection) passing() position.Pos {
	return (posCastling[d][PieceKing][0] + posCastling[d][PieceKing][1]) / 2
}

func castleDirections(s Side) [2]CastleDirection {
	if s == SideBlack {
		return [2]CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft}
	}
	return [2]CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft}
}

// castleDirectionByKingMove resolves a two-file King move to its castling direction.
func castleDirectionByKingMove(from, to position.Pos) CastleDirection {
	for d := CastleDirectionWhiteRight; d <= CastleDirectionBlackLeft; d++ {
		if posCastling[d][PieceKing][0] == from && posCastling[d][PieceKing][1] == to {
			return d
		}
	}
	return CastleDirectionUnknown
}

// canCastle reports whether s still holds the right to castle in direction d:
// King and Rook on their home squares and never moved.
func (b *Board) canCastle(d CastleDirection) bool {
	s := d.Side()
	k, r := b.cells[posCastling[d][PieceKing][0]], b.cells[posCastling[d][PieceRook][0]]
	return k.Piece == PieceKing && k.Side == s && !k.Moved &&
		r.Piece == PieceRook && r.Side == s && !r.Moved
}

// setCastleRight clears the never-moved flags backing direction d.
func (b *Board) setCastleRight(d CastleDirection) bool {
	s := d.Side()
	k, r := &b.cells[posCastling[d][PieceKing][0]], &b.cells[posCastling[d][PieceRook][0]]
	if k.Piece != PieceKing || k.Side != s || r.Piece != PieceRook || r.Side != s {
		return false
	}
	k.Moved, r.Moved = false, false
	return true
}
