package board

import "github.com/daystram/tempo/position"

// rule is the behaviour of one piece kind.
type rule interface {
	// destinations appends the pseudo-legal destinations of the piece on from.
	destinations(b *Board, from position.Pos, dst []position.Pos) []position.Pos

	// onMove runs after the piece was relocated by mv. captured is the
	// previous occupant of mv.To.
	onMove(b *Board, mv Move, captured Cell)

	// onNewTurn resets one-shot state at the start of the piece's side's turn.
	onNewTurn(c *Cell)
}

var rules = [6 + 1]rule{
	PieceUnknown: noRule{},
	PiecePawn:    pawnRule{},
	PieceBishop:  slideRule{dirs: dirDiagonals},
	PieceKnight:  jumpRule{masks: &maskKnight},
	PieceRook:    slideRule{dirs: dirLaterals},
	PieceQueen:   slideRule{dirs: dirAll},
	PieceKing:    kingRule{jumpRule{masks: &maskKing}},
}

type noRule struct{}

func (noRule) destinations(_ *Board, _ position.Pos, dst []position.Pos) []position.Pos {
	return dst
}

func (noRule) onMove(*Board, Move, Cell) {}

func (noRule) onNewTurn(*Cell) {}

// baseRule marks the piece as moved.
type baseRule struct{}

func (baseRule) onMove(b *Board, mv Move, _ Cell) {
	b.cells[mv.To].Moved = true
}

func (baseRule) onNewTurn(*Cell) {}

type slideRule struct {
	baseRule
	dirs [][2]position.Pos
}

func (r slideRule) destinations(b *Board, from position.Pos, dst []position.Pos) []position.Pos {
	s := b.cells[from].Side
	for _, d := range r.dirs {
		for to, ok := from.Offset(d[0], d[1]); ok; to, ok = to.Offset(d[0], d[1]) {
			c := b.cells[to]
			if c.IsEmpty() {
				dst = append(dst, to)
				continue
			}
			if c.Side != s {
				dst = append(dst, to)
			}
			break
		}
	}
	return dst
}

type jumpRule struct {
	baseRule
	masks *[TotalCells]bitmap
}

func (r jumpRule) destinations(b *Board, from position.Pos, dst []position.Pos) []position.Pos {
	s := b.cells[from].Side
	for bm := r.masks[from]; bm != 0; {
		to := bm.PopLS1B()
		if b.cells[to].Side != s {
			dst = append(dst, to)
		}
	}
	return dst
}

type kingRule struct {
	jumpRule
}

func (r kingRule) destinations(b *Board, from position.Pos, dst []position.Pos) []position.Pos {
	dst = r.jumpRule.destinations(b, from, dst)

	s := b.cells[from].Side
	for _, d := range castleDirections(s) {
		if posCastling[d][PieceKing][0] != from || !b.canCastle(d) {
			continue
		}
		if b.occupied()&maskCastling[d] != 0 {
			continue
		}
		// the destination square is left to the legality filter
		if b.isAttacked(from, s.Opposite()) || b.isAttacked(d.passing(), s.Opposite()) {
			continue
		}
		dst = append(dst, posCastling[d][PieceKing][1])
	}
	return dst
}

func (kingRule) onMove(b *Board, mv Move, _ Cell) {
	b.cells[mv.To].Moved = true
	if abs(mv.To.X()-mv.From.X()) != 2 {
		return
	}
	d := castleDirectionByKingMove(mv.From, mv.To)
	if d == CastleDirectionUnknown {
		return
	}
	rookFrom, rookTo := posCastling[d][PieceRook][0], posCastling[d][PieceRook][1]
	b.cells[rookTo] = b.cells[rookFrom]
	b.cells[rookTo].Moved = true
	b.cells[rookFrom] = Cell{}
}

type pawnRule struct{}

func (pawnRule) destinations(b *Board, from position.Pos, dst []position.Pos) []position.Pos {
	s := b.cells[from].Side
	fwd := s.Forward()
	if one, ok := from.Offset(0, fwd); ok && b.cells[one].IsEmpty() {
		dst = append(dst, one)
		if from.Y() == s.PawnRank() {
			if two, ok := one.Offset(0, fwd); ok && b.cells[two].IsEmpty() {
				dst = append(dst, two)
			}
		}
	}
	for _, dx := range [2]position.Pos{-1, 1} {
		to, ok := from.Offset(dx, fwd)
		if !ok {
			continue
		}
		target := b.cells[to]
		if !target.IsEmpty() {
			if target.Side != s {
				dst = append(dst, to)
			}
			continue
		}
		if b.isEnPassantVictim(position.NewPos(to.X(), from.Y()), s.Opposite()) {
			dst = append(dst, to)
		}
	}
	return dst
}

func (pawnRule) onMove(b *Board, mv Move, captured Cell) {
	c := &b.cells[mv.To]
	if mv.From.X() != mv.To.X() && captured.IsEmpty() {
		// en passant
		b.cells[position.NewPos(mv.To.X(), mv.From.Y())] = Cell{}
	}
	c.Moved = true
	if abs(mv.To.Y()-mv.From.Y()) == 2 {
		c.DoubleStep = true
	}
	if mv.To.Y() == c.Side.PromotionRank() {
		p := mv.IsPromote
		if p == PieceUnknown {
			p = PieceQueen
		}
		*c = Cell{Piece: p, Side: c.Side, Moved: true}
	}
}

func (pawnRule) onNewTurn(c *Cell) {
	c.DoubleStep = false
}

// isEnPassantVictim reports whether pos holds a pawn of side s that may be
// captured en passant.
func (b *Board) isEnPassantVictim(pos position.Pos, s Side) bool {
	c := b.cells[pos]
	return c.Piece == PiecePawn && c.Side == s && c.DoubleStep
}
