package board

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/daystram/tempo/position"
)

type bitmap uint64

func ShiftNW(bm bitmap) bitmap {
	return bm << 7
}

func ShiftN(bm bitmap) bitmap {
	return bm << 8
}

func ShiftNE(bm bitmap) bitmap {
	return bm << 9
}

func ShiftE(bm bitmap) bitmap {
	return bm << 1
}

func ShiftSE(bm bitmap) bitmap {
	return bm >> 7
}

func ShiftS(bm bitmap) bitmap {
	return bm >> 8
}

func ShiftSW(bm bitmap) bitmap {
	return bm >> 9
}

func ShiftW(bm bitmap) bitmap {
	return bm >> 1
}

// LS1B returns the least significant set bit.
func (bm bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

// PopLS1B clears and returns the least significant set bit.
func (bm *bitmap) PopLS1B() position.Pos {
	pos := bm.LS1B()
	*bm &= *bm - 1
	return pos
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return x * -1
	}
	return x
}
