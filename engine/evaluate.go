package engine

import (
	"math"

	"github.com/daystram/tempo/board"
)

const mobilityWeight = 0.1

// Evaluator scores a position from White's point of view: positive favours
// White. attacker is the side that made the last move.
type Evaluator func(b *board.Board, outcome board.Outcome, attacker board.Side) float64

var evaluators = map[string]Evaluator{
	"materialistic": Materialistic,
	"smart":         Smart,
}

// EvaluatorByName resolves "materialistic" or "smart".
func EvaluatorByName(name string) (Evaluator, bool) {
	eval, ok := evaluators[name]
	return eval, ok
}

// Materialistic is the signed material sum.
func Materialistic(b *board.Board, outcome board.Outcome, attacker board.Side) float64 {
	if u, ok := terminal(outcome, attacker); ok {
		return u
	}
	white, black := b.GetMaterialBalance()
	return white - black
}

// Smart scales the material sum by the attacker's mobility and by the square
// root of its material ratio over the opponent.
func Smart(b *board.Board, outcome board.Outcome, attacker board.Side) float64 {
	if u, ok := terminal(outcome, attacker); ok {
		return u
	}
	white, black := b.GetMaterialBalance()
	mine, theirs := white, black
	if attacker == board.SideBlack {
		mine, theirs = black, white
	}

	u := (white - black) * mobilityWeight * float64(b.CountTargetedSquares(attacker))
	ratio := materialRatio(mine, theirs)
	if math.IsInf(ratio, 1) {
		// never multiply 0 by +Inf
		if u == 0 {
			return 0
		}
		return sign(u) * math.Inf(1)
	}
	return u * ratio
}

// materialRatio is sqrt(mine/theirs). Two bare Kings give 1, a bare opponent
// against any material gives +Inf.
func materialRatio(mine, theirs float64) float64 {
	switch {
	case theirs == 0 && mine == 0:
		return 1
	case theirs == 0:
		return math.Inf(1)
	default:
		return math.Sqrt(mine / theirs)
	}
}

func terminal(outcome board.Outcome, attacker board.Side) (float64, bool) {
	switch outcome {
	case board.OutcomeCheckmate:
		return multiplier(attacker) * math.Inf(1), true
	case board.OutcomeDraw:
		return 0, true
	default:
		return 0, false
	}
}
