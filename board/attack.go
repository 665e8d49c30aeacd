package board

import "github.com/daystram/tempo/position"

// IsCheck reports whether the King of side s is attacked, regardless of whose
// turn it is. A board without that King is never in check.
func (b *Board) IsCheck(s Side) bool {
	kingPos, ok := b.FindKing(s)
	if !ok {
		return false
	}
	return b.isAttacked(kingPos, s.Opposite())
}

// isAttacked projects attack patterns outwards from pos and tests whether the
// first piece hit is an attacker of side by.
func (b *Board) isAttacked(pos position.Pos, by Side) bool {
	if b.firstOnRays(pos, dirDiagonals, by, PieceBishop) ||
		b.firstOnRays(pos, dirLaterals, by, PieceRook) {
		return true
	}
	for bm := maskKnight[pos]; bm != 0; {
		c := b.cells[bm.PopLS1B()]
		if c.Piece == PieceKnight && c.Side == by {
			return true
		}
	}
	// an adjacent King attacks too, so Kings never end up side by side
	for bm := maskKing[pos]; bm != 0; {
		c := b.cells[bm.PopLS1B()]
		if c.Piece == PieceKing && c.Side == by {
			return true
		}
	}
	// pawns of side by attacking pos stand one rank behind it from their view
	for _, dx := range [2]position.Pos{-1, 1} {
		from, ok := pos.Offset(dx, -by.Forward())
		if !ok {
			continue
		}
		if c := b.cells[from]; c.Piece == PiecePawn && c.Side == by {
			return true
		}
	}
	return false
}

func (b *Board) firstOnRays(pos position.Pos, dirs [][2]position.Pos, by Side, slider Piece) bool {
	for _, d := range dirs {
		for to, ok := pos.Offset(d[0], d[1]); ok; to, ok = to.Offset(d[0], d[1]) {
			c := b.cells[to]
			if c.IsEmpty() {
				continue
			}
			if c.Side == by && (c.Piece == slider || c.Piece == PieceQueen) {
				return true
			}
			break
		}
	}
	return false
}
