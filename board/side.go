package board

import "github.com/daystram/tempo/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

// Name returns the lowercase side name used in board hashes.
func (s Side) Name() string {
	switch s {
	case SideWhite:
		return "white"
	case SideBlack:
		return "black"
	default:
		return "unknown"
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the rank direction this side's pawns advance in.
func (s Side) Forward() position.Pos {
	if s == SideBlack {
		return -1
	}
	return 1
}

// BackRank is the rank this side's pieces start on.
func (s Side) BackRank() position.Pos {
	if s == SideBlack {
		return position.Rank8
	}
	return position.Rank1
}

// PawnRank is the rank this side's pawns start on.
func (s Side) PawnRank() position.Pos {
	if s == SideBlack {
		return position.Rank7
	}
	return position.Rank2
}

// PromotionRank is the last rank for this side's pawns.
func (s Side) PromotionRank() position.Pos {
	return s.Opposite().BackRank()
}
