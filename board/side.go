package board

import "github.com/daystram/stalemate/position"

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

// Forward returns the rank step a pawn of this side advances by.
func (s Side) Forward() position.Pos {
	if s == SideBlack {
		return -1
	}
	return 1
}

// HomeRank returns the rank the King and Rooks start on.
func (s Side) HomeRank() position.Pos {
	if s == SideBlack {
		return position.Rank8
	}
	return position.Rank1
}

// PawnRank returns the rank Pawns start on and may double push from.
func (s Side) PawnRank() position.Pos {
	if s == SideBlack {
		return position.Rank7
	}
	return position.Rank2
}

// PromotionRank returns the far rank on which Pawns promote.
func (s Side) PromotionRank() position.Pos {
	if s == SideBlack {
		return position.Rank1
	}
	return position.Rank8
}
