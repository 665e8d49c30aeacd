package engine

import (
	"math"
	"sort"

	"github.com/daystram/tempo/board"
)

// ComputeUtility annotates the legal moves of side with their minimax utility
// depth plies past the move, using eval at the leaves and cache to skip
// subtrees seen before. b is not modified.
//
// Utilities are from White's point of view, use Best to pick side's move.
// Moves are returned captures first. A node stops at the first move proving
// the parent already holds a better line, and only the moves processed so far
// are returned from it; the root bound never triggers, so the root list always
// holds every legal move.
func ComputeUtility(b *board.Board, side board.Side, depth int, eval Evaluator, cache *Cache) []board.Move {
	bb := b.Clone()
	if bb.Turn() != side {
		bb.NewTurn()
	}
	return computeUtility(bb, side, max(depth, 0), multiplier(side)*math.Inf(1), eval, cache, bb.GetMoves())
}

// computeUtility annotates mvs in place. theirBest is the best utility the
// parent has secured so far for the opponent.
func computeUtility(
	parent *board.Board,
	me board.Side,
	depth int,
	theirBest float64,
	eval Evaluator,
	cache *Cache,
	mvs []board.Move,
) []board.Move {
	them := me.Opposite()
	myBest := multiplier(them) * math.Inf(1)
	orderCapturesFirst(parent, mvs)

	n := 0
	for i := range mvs {
		mv := &mvs[i]
		bb := parent.Clone()
		bb.DoMove(*mv)
		bb.NewTurn()

		hash := bb.Hash()
		if u, ok := cache.Get(hash, depth, them); ok {
			mv.Utility = u
		} else {
			// bb is scratch, its cached move list may be reordered and annotated
			theirMoves := bb.GetMoves()
			outcome := board.ClassifyOutcome(len(theirMoves) != 0, bb.IsCheck(them))
			if depth == 0 || !outcome.IsRunning() {
				mv.Utility = eval(bb, outcome, me)
			} else {
				theirMoves = computeUtility(bb, them, depth-1, myBest, eval, cache, theirMoves)
				best, _ := Best(theirMoves, them)
				mv.Utility = best.Utility
			}
			cache.Set(hash, depth, them, mv.Utility)
		}

		if IsUtilityBetter(mv.Utility, myBest, me) {
			myBest = mv.Utility
		}
		n++
		if IsUtilityBetter(theirBest, mv.Utility, them) {
			break
		}
	}
	return mvs[:n]
}

// orderCapturesFirst moves captures ahead of quiet moves, most valuable
// victim first. En passant counts as quiet.
func orderCapturesFirst(b *board.Board, mvs []board.Move) {
	victim := func(mv board.Move) float64 {
		c, ok := b.GetPiece(mv.To)
		if !ok {
			return -1
		}
		return c.Piece.Value()
	}
	sort.SliceStable(mvs, func(i, j int) bool {
		return victim(mvs[i]) > victim(mvs[j])
	})
}
