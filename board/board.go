package board

import (
	"errors"
	"strings"

	"github.com/daystram/tempo/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// Board is an 8x8 grid of Cell values. Copying the grid copies every piece, so
// a Clone is independent of its parent.
type Board struct {
	// grid data
	cells [TotalCells]Cell

	// meta
	turn          Side
	ply           uint32
	halfMoveClock uint16
	fullMoveClock uint16

	// cache
	cacheMoves []Move
	cachePly   uint32
	cacheOK    bool
}

// Placement puts a piece on a square, see WithPlacements.
type Placement struct {
	Pos  position.Pos
	Cell Cell
}

type boardConfig struct {
	fen           string
	usePlacements bool
	placements    []Placement
	turn          Side
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
		cfg.usePlacements = false
		cfg.placements = nil
	}
}

// WithPlacements sets up the board from an explicit piece list with turn to
// move. No legality checks are made.
func WithPlacements(placements []Placement, turn Side) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = ""
		cfg.usePlacements = true
		cfg.placements = placements
		cfg.turn = turn
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if cfg.usePlacements {
		b.Setup(cfg.placements, cfg.turn)
		return b, nil
	}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Turn() Side {
	return b.turn
}

// Ply is the turn counter, advanced by NewTurn.
func (b *Board) Ply() uint32 {
	return b.ply
}

func (b *Board) HalfMoveClock() uint16 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

// GetPiece returns the piece on pos, and false if the square is empty.
func (b *Board) GetPiece(pos position.Pos) (Cell, bool) {
	c := b.cells[pos]
	return c, !c.IsEmpty()
}

func (b *Board) Set(pos position.Pos, c Cell) {
	b.cells[pos] = c
	b.invalidate()
}

func (b *Board) Clear() {
	b.cells = [TotalCells]Cell{}
	b.invalidate()
}

// Setup replaces the board contents with placements and resets the clocks.
func (b *Board) Setup(placements []Placement, turn Side) {
	b.Clear()
	for _, p := range placements {
		b.cells[p.Pos] = p.Cell
	}
	b.turn = turn
	b.ply = 0
	b.halfMoveClock = 0
	b.fullMoveClock = 1
}

// DoMove relocates the piece on mv.From to mv.To, capturing any occupant, and
// applies the moved kind's side effects. The move is not validated: only moves
// returned by GetMoves keep the board consistent.
func (b *Board) DoMove(mv Move) {
	c := b.cells[mv.From]
	if c.IsEmpty() {
		return
	}
	captured := b.cells[mv.To]
	b.cells[mv.To] = c
	b.cells[mv.From] = Cell{}
	rules[c.Piece].onMove(b, mv, captured)

	if c.Piece == PiecePawn || !captured.IsEmpty() {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	b.invalidate()
}

// NewTurn hands the move to the other side, advancing the turn counter. The
// one-shot flags of the side now to move expire, so an opponent pawn's double
// step stays capturable for exactly one turn.
func (b *Board) NewTurn() {
	if b.turn == SideBlack {
		b.fullMoveClock++
	}
	b.ply++
	b.turn = b.turn.Opposite()
	for pos := range b.cells {
		c := &b.cells[pos]
		if c.Side == b.turn {
			rules[c.Piece].onNewTurn(c)
		}
	}
	b.invalidate()
}

// GetMoves returns the legal moves of the side to move. The list is computed
// once per turn; callers must not modify it.
func (b *Board) GetMoves() []Move {
	if b.cacheOK && b.cachePly == b.ply {
		return b.cacheMoves
	}
	b.cacheMoves = b.GenerateMoves(b.turn)
	b.cachePly = b.ply
	b.cacheOK = true
	return b.cacheMoves
}

// GenerateMoves returns the legal moves of s without touching the cache.
func (b *Board) GenerateMoves(s Side) []Move {
	var buf [32]position.Pos
	mvs := make([]Move, 0, 48)
	for _, from := range scanOrder {
		c := b.cells[from]
		if c.Side != s || c.IsEmpty() {
			continue
		}
		for _, to := range rules[c.Piece].destinations(b, from, buf[:0]) {
			mv := Move{From: from, To: to}
			if !b.isLegal(mv, s) {
				continue
			}
			// see if promotion is expected
			if c.Piece == PiecePawn && to.Y() == s.PromotionRank() {
				for _, prom := range PawnPromoteCandidates {
					mv.IsPromote = prom
					mvs = append(mvs, mv)
				}
				continue
			}
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

// isLegal tries mv in place and reports whether it leaves s out of check.
// Only the touched slots are restored, no copy of the board is made.
func (b *Board) isLegal(mv Move, s Side) bool {
	from, to := b.cells[mv.From], b.cells[mv.To]
	victimPos := position.Pos(-1)
	var victim Cell
	if from.Piece == PiecePawn && mv.From.X() != mv.To.X() && to.IsEmpty() {
		victimPos = position.NewPos(mv.To.X(), mv.From.Y())
		victim = b.cells[victimPos]
		b.cells[victimPos] = Cell{}
	}
	b.cells[mv.To] = from
	b.cells[mv.From] = Cell{}

	isCheck := b.IsCheck(s)

	b.cells[mv.From] = from
	b.cells[mv.To] = to
	if victimPos >= 0 {
		b.cells[victimPos] = victim
	}
	return !isCheck
}

// GetGameOutcome classifies the position for the side to move.
func (b *Board) GetGameOutcome() Outcome {
	return ClassifyOutcome(len(b.GetMoves()) != 0, b.IsCheck(b.turn))
}

// CountTargetedSquares counts the pseudo-legal destinations of s's pieces. It
// is a mobility signal: moves leaving the King in check are included.
func (b *Board) CountTargetedSquares(s Side) int {
	var buf [32]position.Pos
	count := 0
	for pos, c := range b.cells {
		if c.Side != s || c.IsEmpty() {
			continue
		}
		count += len(rules[c.Piece].destinations(b, position.Pos(pos), buf[:0]))
	}
	return count
}

func (b *Board) FindKing(s Side) (position.Pos, bool) {
	for pos, c := range b.cells {
		if c.Piece == PieceKing && c.Side == s {
			return position.Pos(pos), true
		}
	}
	return 0, false
}

// GetMaterialBalance returns the total material value of each side.
func (b *Board) GetMaterialBalance() (float64, float64) {
	var white, black float64
	for _, c := range b.cells {
		switch c.Side {
		case SideWhite:
			white += c.Piece.Value()
		case SideBlack:
			black += c.Piece.Value()
		}
	}
	return white, black
}

// Hash fingerprints the position: one character per square file by file
// ('.' when empty, the FEN letter otherwise, followed by ' for a never-moved
// King or Rook), then '_' and the side to move. DoubleStep is not part of the
// hash: positions differing only in a pending en passant share cache entries.
func (b *Board) Hash() string {
	builder := strings.Builder{}
	builder.Grow(2*int(TotalCells) + 8)
	for _, pos := range scanOrder {
		c := b.cells[pos]
		if c.IsEmpty() {
			_ = builder.WriteByte('.')
			continue
		}
		_ = builder.WriteByte(c.Piece.symbol(c.Side))
		if (c.Piece == PieceKing || c.Piece == PieceRook) && !c.Moved {
			_ = builder.WriteByte('\'')
		}
	}
	_ = builder.WriteByte('_')
	_, _ = builder.WriteString(b.turn.Name())
	return builder.String()
}

// Clone returns an independent copy. The move cache is not carried over.
func (b *Board) Clone() *Board {
	bb := *b
	bb.cacheMoves = nil
	bb.cacheOK = false
	return &bb
}

func (b *Board) occupied() bitmap {
	var bm bitmap
	for pos, c := range b.cells {
		if !c.IsEmpty() {
			bm |= maskCell[pos]
		}
	}
	return bm
}

func (b *Board) invalidate() {
	b.cacheOK = false
}
