package board

import "github.com/daystram/stalemate/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White O-O"
	case CastleDirectionWhiteLeft:
		return "White O-O-O"
	case CastleDirectionBlackRight:
		return "Black O-O"
	case CastleDirectionBlackLeft:
		return "Black O-O-O"
	default:
		return ""
	}
}

// Algebra returns the castling notation without check suffix.
func (d CastleDirection) Algebra() string {
	switch {
	case d == CastleDirectionUnknown:
		return ""
	case d.IsRight():
		return "O-O"
	default:
		return "O-O-O"
	}
}

func (d CastleDirection) Side() Side {
	switch d {
	case CastleDirectionWhiteRight, CastleDirectionWhiteLeft:
		return SideWhite
	case CastleDirectionBlackRight, CastleDirectionBlackLeft:
		return SideBlack
	default:
		return SideUnknown
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

// IsRight reports King-side castling.
func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

// KingHops returns the King's origin and destination.
func (d CastleDirection) KingHops() (position.Pos, position.Pos) {
	h := posCastling[d][PieceKing]
	return h[0], h[1]
}

// RookHops returns the Rook's origin and destination.
func (d CastleDirection) RookHops() (position.Pos, position.Pos) {
	h := posCastling[d][PieceRook]
	return h[0], h[1]
}

// CastleDirections returns the King-side then Queen-side direction of a side.
func CastleDirections(s Side) [2]CastleDirection {
	if s == SideBlack {
		return [2]CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft}
	}
	return [2]CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft}
}

// CastleRights is a value; setters return the updated rights.
type CastleRights uint8

func (c CastleRights) Set(d CastleDirection, allow bool) CastleRights {
	if allow {
		return c | maskCastleRights[d]
	}
	return c &^ maskCastleRights[d]
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteLeft]|maskCastleRights[CastleDirectionWhiteRight]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackLeft]|maskCastleRights[CastleDirectionBlackRight]) != 0
}

// RevokeSide clears both directions of a side.
func (c CastleRights) RevokeSide(s Side) CastleRights {
	for _, d := range CastleDirections(s) {
		c = c.Set(d, false)
	}
	return c
}

// String returns the FEN castling field.
func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	var out []byte
	for _, e := range []struct {
		d   CastleDirection
		sym byte
	}{
		{CastleDirectionWhiteRight, 'K'},
		{CastleDirectionWhiteLeft, 'Q'},
		{CastleDirectionBlackRight, 'k'},
		{CastleDirectionBlackLeft, 'q'},
	} {
		if c.IsAllowed(e.d) {
			out = append(out, e.sym)
		}
	}
	return string(out)
}
