package board

import "strings"

// Algebra formats mv in standard algebraic notation (SAN). b is the position
// before the move and legal holds its legal moves, used for disambiguation.
func Algebra(b *Board, mv Move, legal []Move, isCheck, isMate bool) string {
	if mv.IsCastle != CastleDirectionUnknown {
		return mv.IsCastle.Algebra() + checkSuffix(isCheck, isMate)
	}
	s, p := b.GetSideAndPiece(mv.From)

	builder := strings.Builder{}
	if p == PiecePawn {
		if mv.IsCapture {
			_, _ = builder.WriteString(mv.From.X().NotationComponentX())
		}
	} else {
		_, _ = builder.WriteString(p.SymbolAlgebra(SideWhite)) // SideWhite because it returns capital symbols
		_, _ = builder.WriteString(disambiguate(b, mv, s, p, legal))
	}
	if mv.IsCapture {
		_, _ = builder.WriteRune('x')
	}
	_, _ = builder.WriteString(mv.To.Notation())
	_, _ = builder.WriteString(promoteSuffix(mv))
	_, _ = builder.WriteString(checkSuffix(isCheck, isMate))
	return builder.String()
}

// LongAlgebra formats mv with an explicit origin square, e.g. "e7e8=Q+".
func LongAlgebra(mv Move, isCheck, isMate bool) string {
	if mv.IsCastle != CastleDirectionUnknown {
		return mv.IsCastle.Algebra() + checkSuffix(isCheck, isMate)
	}
	nt := mv.From.Notation()
	if mv.IsCapture {
		nt += "x"
	}
	return nt + mv.To.Notation() + promoteSuffix(mv) + checkSuffix(isCheck, isMate)
}

// Annotate reports whether playing mv gives check, and whether that check is mate.
func (b *Board) Annotate(mv Move) (isCheck, isMate bool) {
	bb, err := b.Apply(mv)
	if err != nil {
		return false, false
	}
	if !bb.IsKingChecked(bb.turn) {
		return false, false
	}
	return true, len(bb.GenerateMoves()) == 0
}

// SAN formats a legal move of this position in standard algebraic notation.
func (b *Board) SAN(mv Move) string {
	isCheck, isMate := b.Annotate(mv)
	return Algebra(b, mv, b.GenerateMoves(), isCheck, isMate)
}

func disambiguate(b *Board, mv Move, s Side, p Piece, legal []Move) string {
	var similar, sameFile, sameRank bool
	for _, other := range legal {
		if other.From == mv.From || other.To != mv.To {
			continue
		}
		if os, op := b.GetSideAndPiece(other.From); os != s || op != p {
			continue
		}
		similar = true
		sameFile = sameFile || other.From.X() == mv.From.X()
		sameRank = sameRank || other.From.Y() == mv.From.Y()
	}
	switch {
	case !similar:
		return ""
	case !sameFile:
		return mv.From.X().NotationComponentX()
	case !sameRank:
		return mv.From.Y().NotationComponentY()
	default:
		return mv.From.Notation()
	}
}

func promoteSuffix(mv Move) string {
	if mv.IsPromote == PieceUnknown {
		return ""
	}
	return "=" + mv.IsPromote.SymbolAlgebra(SideWhite)
}

func checkSuffix(isCheck, isMate bool) string {
	switch {
	case isMate:
		return "#"
	case isCheck:
		return "+"
	default:
		return ""
	}
}
