package board

import (
	"testing"

	"github.com/daystram/tempo/position"
)

const startHash = "R'P....pr'" + "NP....pn" + "BP....pb" + "QP....pq" +
	"K'P....pk'" + "BP....pb" + "NP....pn" + "R'P....pr'" + "_white"

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := NewBoard(WithFEN(fen))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return b
}

func movesFrom(mvs []Move, from position.Pos) []Move {
	var out []Move
	for _, mv := range mvs {
		if mv.From == from {
			out = append(out, mv)
		}
	}
	return out
}

func hasMove(mvs []Move, from, to position.Pos) bool {
	_, ok := FindMove(mvs, Move{From: from, To: to})
	return ok
}

func TestNewBoard(t *testing.T) {
	t.Parallel()

	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := b.Turn(); got != SideWhite {
		t.Errorf("unexpected turn: got=%s want=%s", got, SideWhite)
	}
	if got := b.Ply(); got != 0 {
		t.Errorf("unexpected ply: got=%d want=%d", got, 0)
	}
	if got := len(b.GetMoves()); got != 20 {
		t.Errorf("unexpected move count: got=%d want=%d", got, 20)
	}
	if got := b.Hash(); got != startHash {
		t.Errorf("unexpected hash: got=%s want=%s", got, startHash)
	}
	if got := b.FEN(); got != DefaultStartingPositionFEN {
		t.Errorf("unexpected FEN: got=%s want=%s", got, DefaultStartingPositionFEN)
	}
	white, black := b.GetMaterialBalance()
	if white != 39 || black != 39 {
		t.Errorf("unexpected material: got=%v/%v want=%v/%v", white, black, 39, 39)
	}
	if got := b.CountTargetedSquares(SideWhite); got != 20 {
		t.Errorf("unexpected targeted squares: got=%d want=%d", got, 20)
	}
}

func TestWithPlacements(t *testing.T) {
	t.Parallel()

	b, err := NewBoard(WithPlacements([]Placement{
		{Pos: position.E4, Cell: NewCell(PieceKing, SideWhite)},
		{Pos: position.E5, Cell: NewCell(PieceKing, SideBlack)},
		{Pos: position.A1, Cell: NewCell(PieceRook, SideWhite)},
	}, SideBlack))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := b.Turn(); got != SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", got, SideBlack)
	}
	c, ok := b.GetPiece(position.A1)
	if !ok || c.Piece != PieceRook || c.Side != SideWhite {
		t.Errorf("unexpected piece: got=%v want=%v", c, NewCell(PieceRook, SideWhite))
	}
	if _, ok := b.GetPiece(position.A2); ok {
		t.Error("unexpected piece on empty square")
	}
	// adjacent kings attack each other
	if !b.IsCheck(SideWhite) || !b.IsCheck(SideBlack) {
		t.Errorf("unexpected check: got=%v/%v want=%v/%v", b.IsCheck(SideWhite), b.IsCheck(SideBlack), true, true)
	}
}

func TestSetAndClear(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	_ = b.GetMoves()
	b.Set(position.E2, Cell{})
	if got := len(b.GetMoves()); got != 29 {
		t.Errorf("unexpected move count after Set: got=%d want=%d", got, 29)
	}

	b.Clear()
	if got := len(b.GetMoves()); got != 0 {
		t.Errorf("unexpected move count after Clear: got=%d want=%d", got, 0)
	}
	if b.IsCheck(SideWhite) || b.IsCheck(SideBlack) {
		t.Error("unexpected check on empty board")
	}
	if _, ok := b.FindKing(SideWhite); ok {
		t.Error("unexpected king on empty board")
	}
}

func TestGetMovesIdempotent(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	first, second := b.GetMoves(), b.GetMoves()
	if len(first) != len(second) || &first[0] != &second[0] {
		t.Error("unexpected recomputation of move list")
	}

	mv, _ := FindMove(first, Move{From: position.E2, To: position.E4})
	b.DoMove(mv)
	b.NewTurn()
	third := b.GetMoves()
	if len(third) != 20 {
		t.Errorf("unexpected move count: got=%d want=%d", len(third), 20)
	}
	for _, mv := range third {
		if c, _ := b.GetPiece(mv.From); c.Side != SideBlack {
			t.Errorf("unexpected mover for %s: got=%s want=%s", mv, c.Side, SideBlack)
		}
	}
}

func TestHash(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	if b.Hash() != b.Hash() {
		t.Error("unexpected unstable hash")
	}
	if got := b.Clone().Hash(); got != startHash {
		t.Errorf("unexpected clone hash: got=%s want=%s", got, startHash)
	}

	b.DoMove(Move{From: position.E2, To: position.E4})
	b.NewTurn()
	want := "R'P....pr'" + "NP....pn" + "BP....pb" + "QP....pq" +
		"K'..P..pk'" + "BP....pb" + "NP....pn" + "R'P....pr'" + "_black"
	if got := b.Hash(); got != want {
		t.Errorf("unexpected hash: got=%s want=%s", got, want)
	}

	// a King that moved and came back differs from a never-moved one
	b = mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	before := b.Hash()
	b.DoMove(Move{From: position.E1, To: position.D1})
	b.DoMove(Move{From: position.D1, To: position.E1})
	if after := b.Hash(); after == before {
		t.Errorf("unexpected equal hash after king moved: got=%s", after)
	}

	// a pending en passant does not change the hash
	withEP := mustBoard(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	withoutEP := mustBoard(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	if withEP.Hash() != withoutEP.Hash() {
		t.Errorf("unexpected hash mismatch: got=%s want=%s", withEP.Hash(), withoutEP.Hash())
	}
}

func TestKingsNeverAdjacent(t *testing.T) {
	t.Parallel()

	// d2 e2 and f2 touch the black King
	b := mustBoard(t, "8/8/8/8/8/4k3/8/4K3 w - - 0 1")
	for _, mv := range b.GetMoves() {
		if mv.To.Y() != 0 {
			t.Errorf("unexpected move next to the King: got=%s", mv)
		}
	}
	if got, want := len(b.GetMoves()), 2; got != want {
		t.Errorf("unexpected move count: got=%d want=%d", got, want)
	}
}

func TestNewTurn(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	b.NewTurn()
	if got := b.Turn(); got != SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", got, SideBlack)
	}
	if got := b.Ply(); got != 1 {
		t.Errorf("unexpected ply: got=%d want=%d", got, 1)
	}
	b.NewTurn()
	if got := b.FullMoveClock(); got != 2 {
		t.Errorf("unexpected full move clock: got=%d want=%d", got, 2)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	bb := b.Clone()
	bb.DoMove(Move{From: position.G1, To: position.F3})
	bb.NewTurn()
	if got := b.Hash(); got != startHash {
		t.Errorf("unexpected parent hash: got=%s want=%s", got, startHash)
	}
	if got := b.Turn(); got != SideWhite {
		t.Errorf("unexpected parent turn: got=%s want=%s", got, SideWhite)
	}
	if _, ok := b.GetPiece(position.G1); !ok {
		t.Error("unexpected empty parent square")
	}
}

func TestLegality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fen       string
		wantMoves int
		wantCheck bool
		outcome   Outcome
	}{
		{
			name:      "pinned bishop",
			fen:       "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
			wantMoves: 4,
			outcome:   OutcomeInProgress,
		},
		{
			name:      "fool's mate",
			fen:       "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			wantMoves: 0,
			wantCheck: true,
			outcome:   OutcomeCheckmate,
		},
		{
			name:      "stalemate",
			fen:       "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			wantMoves: 0,
			outcome:   OutcomeDraw,
		},
		{
			name:      "check with escapes",
			fen:       "4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
			wantMoves: 3,
			wantCheck: true,
			outcome:   OutcomeInProgress,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := mustBoard(t, tt.fen)
			s := b.Turn()
			mvs := b.GetMoves()
			if len(mvs) != tt.wantMoves {
				t.Errorf("unexpected move count: got=%d want=%d", len(mvs), tt.wantMoves)
			}
			if got := b.IsCheck(s); got != tt.wantCheck {
				t.Errorf("unexpected check: got=%v want=%v", got, tt.wantCheck)
			}
			if got := b.GetGameOutcome(); got != tt.outcome {
				t.Errorf("unexpected outcome: got=%s want=%s", got, tt.outcome)
			}
			for _, mv := range mvs {
				bb := b.Clone()
				bb.DoMove(mv)
				if bb.IsCheck(s) {
					t.Errorf("unexpected own check after %s", mv)
				}
			}
		})
	}
}

func TestCountTargetedSquares(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	// the pinned bishop still targets its nine squares
	if got := b.CountTargetedSquares(SideWhite); got != 13 {
		t.Errorf("unexpected targeted squares: got=%d want=%d", got, 13)
	}
}

func TestCastling(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mvs := b.GetMoves()
	if !hasMove(mvs, position.E1, position.G1) || !hasMove(mvs, position.E1, position.C1) {
		t.Fatal("castling moves missing")
	}
	if !b.IsCastle(Move{From: position.E1, To: position.G1}) {
		t.Error("unexpected castle detection")
	}

	b.DoMove(Move{From: position.E1, To: position.G1})
	king, _ := b.GetPiece(position.G1)
	rook, _ := b.GetPiece(position.F1)
	if king.Piece != PieceKing || !king.Moved {
		t.Errorf("unexpected king: got=%+v", king)
	}
	if rook.Piece != PieceRook || !rook.Moved {
		t.Errorf("unexpected rook: got=%+v", rook)
	}
	for _, pos := range []position.Pos{position.E1, position.H1} {
		if _, ok := b.GetPiece(pos); ok {
			t.Errorf("unexpected piece on %s", pos)
		}
	}
	b.NewTurn()
	if got, want := b.FEN(), "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}

	tests := []struct {
		name      string
		fen       string
		wantRight bool
		wantLeft  bool
	}{
		{name: "passing square attacked", fen: "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", wantRight: false, wantLeft: true},
		{name: "destination attacked", fen: "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", wantRight: false, wantLeft: true},
		{name: "in check", fen: "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1", wantRight: false, wantLeft: false},
		{name: "path blocked", fen: "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1", wantRight: false, wantLeft: false},
		{name: "rook moved", fen: "4k3/8/8/8/8/8/8/R3K2R w K - 0 1", wantRight: true, wantLeft: false},
		{name: "b-file attacked only", fen: "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", wantRight: true, wantLeft: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mvs := mustBoard(t, tt.fen).GetMoves()
			if got := hasMove(mvs, position.E1, position.G1); got != tt.wantRight {
				t.Errorf("unexpected 0-0: got=%v want=%v", got, tt.wantRight)
			}
			if got := hasMove(mvs, position.E1, position.C1); got != tt.wantLeft {
				t.Errorf("unexpected 0-0-0: got=%v want=%v", got, tt.wantLeft)
			}
		})
	}
}

func TestEnPassant(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	b.DoMove(Move{From: position.D7, To: position.D5})
	b.NewTurn()
	if got, want := b.FEN(), "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}

	capture := Move{From: position.E5, To: position.D6}
	if !hasMove(b.GetMoves(), capture.From, capture.To) {
		t.Fatal("en passant move missing")
	}
	if !b.IsEnPassant(capture) || !b.IsCapture(capture) {
		t.Error("unexpected en passant detection")
	}

	// the window lasts one turn
	bb := b.Clone()
	bb.DoMove(Move{From: position.E1, To: position.E2})
	bb.NewTurn()
	bb.DoMove(Move{From: position.E8, To: position.F8})
	bb.NewTurn()
	if hasMove(bb.GetMoves(), capture.From, capture.To) {
		t.Error("unexpected en passant after window closed")
	}

	b.DoMove(capture)
	if _, ok := b.GetPiece(position.D5); ok {
		t.Error("unexpected en passant victim left on board")
	}
	if c, _ := b.GetPiece(position.D6); c.Piece != PiecePawn || c.Side != SideWhite {
		t.Errorf("unexpected capturer: got=%+v", c)
	}
}

func TestEnPassantExposingKing(t *testing.T) {
	t.Parallel()

	// capturing would clear the fifth rank between rook and king
	b := mustBoard(t, "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1")
	if hasMove(b.GetMoves(), position.E5, position.D6) {
		t.Error("unexpected en passant exposing king")
	}
}

func TestPromotion(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	mvs := movesFrom(b.GetMoves(), position.E7)
	if len(mvs) != len(PawnPromoteCandidates) {
		t.Fatalf("unexpected promotion count: got=%d want=%d", len(mvs), len(PawnPromoteCandidates))
	}
	for i, mv := range mvs {
		if mv.IsPromote != PawnPromoteCandidates[i] {
			t.Errorf("unexpected promotion kind: got=%s want=%s", mv.IsPromote, PawnPromoteCandidates[i])
		}
	}

	bb := b.Clone()
	bb.DoMove(Move{From: position.E7, To: position.E8, IsPromote: PieceKnight})
	if c, _ := bb.GetPiece(position.E8); c.Piece != PieceKnight || c.Side != SideWhite {
		t.Errorf("unexpected promoted piece: got=%+v", c)
	}

	b.DoMove(Move{From: position.E7, To: position.E8})
	if c, _ := b.GetPiece(position.E8); c.Piece != PieceQueen {
		t.Errorf("unexpected default promotion: got=%s want=%s", c.Piece, PieceQueen)
	}
}

func TestDoMoveEmptySource(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	b.DoMove(Move{From: position.E4, To: position.E5})
	if got := b.Hash(); got != startHash {
		t.Errorf("unexpected hash: got=%s want=%s", got, startHash)
	}
}

func TestClassifyOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hasMoves, isCheck bool
		want              Outcome
	}{
		{hasMoves: true, isCheck: true, want: OutcomeInProgress},
		{hasMoves: true, isCheck: false, want: OutcomeInProgress},
		{hasMoves: false, isCheck: true, want: OutcomeCheckmate},
		{hasMoves: false, isCheck: false, want: OutcomeDraw},
	}
	for _, tt := range tests {
		if got := ClassifyOutcome(tt.hasMoves, tt.isCheck); got != tt.want {
			t.Errorf("unexpected outcome for %v/%v: got=%s want=%s", tt.hasMoves, tt.isCheck, got, tt.want)
		}
	}
	if !OutcomeInProgress.IsRunning() || OutcomeDraw.IsRunning() {
		t.Error("unexpected running state")
	}
}

func TestDraw(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	if got := b.Draw(); got == "" {
		t.Error("unexpected empty drawing")
	}
	if got := b.Dump(); got == "" {
		t.Error("unexpected empty dump")
	}
}
