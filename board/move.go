package board

import (
	"errors"
	"fmt"

	"github.com/daystram/stalemate/position"
)

var ErrInvalidMove = errors.New("invalid move")

type Move struct {
	From, To position.Pos
	Piece    Piece

	IsTurn      Side
	IsCapture   bool
	IsCastle    CastleDirection
	IsEnPassant bool
	IsPromote   Piece
}

// NewMoveFromUCI parses coordinate notation such as "e2e4" or "e7e8q". Only
// From, To and IsPromote are populated; match it against generated moves to
// recover the remaining flags.
func NewMoveFromUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := position.NewPosFromNotation(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
	}
	to, err := position.NewPosFromNotation(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
	}
	mv := Move{From: from, To: to}
	if len(s) == 5 {
		_, p := NewPieceFromSymbol(rune(s[4]))
		switch p {
		case PieceQueen, PieceRook, PieceBishop, PieceKnight:
			mv.IsPromote = p
		default:
			return Move{}, fmt.Errorf("%w: %q: bad promotion", ErrInvalidMove, s)
		}
	}
	return mv, nil
}

func (m Move) String() string {
	return m.UCI()
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.IsPromote.SymbolAlgebra(SideBlack)
}

// Equals compares the identity of two moves: origin, destination and promotion.
func (m Move) Equals(n Move) bool {
	return m.From == n.From && m.To == n.To && m.IsPromote == n.IsPromote
}

func (m Move) IsNull() bool {
	return m.From == m.To
}

// FindMove returns the move in mvs matching candidate by identity.
func FindMove(mvs []Move, candidate Move) (Move, bool) {
	for _, mv := range mvs {
		if mv.Equals(candidate) {
			return mv, true
		}
	}
	return Move{}, false
}
