package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/daystram/tempo/board"
)

// multiplier is the sign a side applies to utilities: White maximises,
// Black minimises.
func multiplier(s board.Side) float64 {
	if s == board.SideWhite {
		return 1
	}
	return -1
}

// IsUtilityBetter reports whether a is strictly better than b for side s.
func IsUtilityBetter(a, b float64, s board.Side) bool {
	m := multiplier(s)
	return a*m > b*m
}

// Best returns the first move with the highest utility for side s.
func Best(mvs []board.Move, s board.Side) (board.Move, bool) {
	if len(mvs) == 0 {
		return board.Move{}, false
	}
	best := mvs[0]
	for _, mv := range mvs[1:] {
		if IsUtilityBetter(mv.Utility, best.Utility, s) {
			best = mv
		}
	}
	return best, true
}

// SortByUtility orders mvs from worst to best for side s, keeping the
// relative order of equal utilities.
func SortByUtility(mvs []board.Move, s board.Side) {
	m := multiplier(s)
	sort.SliceStable(mvs, func(i, j int) bool {
		return mvs[i].Utility*m < mvs[j].Utility*m
	})
}

// DumpMoves lists mvs with their utilities, one per line.
func DumpMoves(mvs []board.Move, prefix string) string {
	builder := strings.Builder{}
	for i, mv := range mvs {
		_, _ = builder.WriteString(fmt.Sprintf("%s%-8s %s", prefix, mv, FormatUtility(mv.Utility)))
		if i < len(mvs)-1 {
			_, _ = builder.WriteRune('\n')
		}
	}
	return builder.String()
}

func FormatUtility(u float64) string {
	switch {
	case math.IsInf(u, 1):
		return "+inf"
	case math.IsInf(u, -1):
		return "-inf"
	case u > 0:
		return fmt.Sprintf("+%.2f", u)
	case u < 0:
		return fmt.Sprintf("%.2f", u)
	default:
		return "0"
	}
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func sign[T constraints.Signed | constraints.Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
