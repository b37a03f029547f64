package board

import (
	"fmt"

	"github.com/daystram/stalemate/position"
)

// Apply returns the board resulting from playing mv. The receiver is left
// untouched. The move is trusted to be legal; only an empty origin square is
// rejected, with ErrEmptySource.
func (b *Board) Apply(mv Move) (*Board, error) {
	s, p := b.GetSideAndPiece(mv.From)
	if p == PieceUnknown {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, mv.From)
	}
	return b.apply(mv, s, p), nil
}

func (b *Board) apply(mv Move, s Side, p Piece) *Board {
	bb := *b
	captured := b.Cell(mv.To)

	// remove from
	bb.cells[mv.From] = CellEmpty

	// remove Pawn captured by enPassant, one rank behind the destination
	if mv.IsEnPassant {
		if pos := mv.To.Offset(0, -s.Forward()); pos.IsValid() {
			bb.cells[pos] = CellEmpty
		}
	}

	// relocate Rook
	if mv.IsCastle != CastleDirectionUnknown {
		rookFrom, rookTo := mv.IsCastle.RookHops()
		bb.cells[rookFrom] = CellEmpty
		bb.cells[rookTo] = NewCell(s, PieceRook)
	}

	// place to
	if mv.IsPromote == PieceUnknown {
		bb.cells[mv.To] = NewCell(s, p)
	} else {
		bb.cells[mv.To] = NewCell(s, mv.IsPromote)
	}

	// update castleRights
	if p == PieceKing {
		bb.castleRights = bb.castleRights.RevokeSide(s)
	}
	if p == PieceRook {
		bb.castleRights = revokeRookCorner(bb.castleRights, mv.From, s)
	}
	if captured.Piece() == PieceRook {
		bb.castleRights = revokeRookCorner(bb.castleRights, mv.To, captured.Side())
	}

	// update enPassant
	bb.enPassant = position.Invalid
	if p == PiecePawn && abs(mv.To.Y()-mv.From.Y()) == 2 {
		bb.enPassant = mv.From.Offset(0, s.Forward())
	}

	// update half move clock
	if p == PiecePawn || mv.IsCapture || !captured.IsEmpty() {
		bb.halfMoveClock = 0
	} else {
		bb.halfMoveClock++
	}

	// update full move clock
	if s == SideBlack {
		bb.fullMoveClock++
	}

	// update turn
	bb.turn = b.turn.Opposite()

	return &bb
}

// revokeRookCorner clears the right tied to a Rook of side s leaving or being
// captured on pos, if pos is one of that side's home corners.
func revokeRookCorner(c CastleRights, pos position.Pos, s Side) CastleRights {
	for _, d := range CastleDirections(s) {
		if rookFrom, _ := d.RookHops(); rookFrom == pos {
			c = c.Set(d, false)
		}
	}
	return c
}
