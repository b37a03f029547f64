package board

import "github.com/daystram/stalemate/position"

// GenerateMoves returns the legal moves of the side to move, in board scan
// order (a1, b1, ..., h8 by origin). Each pseudo-legal candidate is applied and
// dropped if it leaves the mover's own King in check.
func (b *Board) GenerateMoves() []Move {
	pseudo := b.GeneratePseudoLegalMoves()
	mvs := pseudo[:0]
	for _, mv := range pseudo {
		if b.IsLegal(mv) {
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

// IsLegal reports whether a generated move keeps the mover's King safe.
func (b *Board) IsLegal(mv Move) bool {
	s, p := b.GetSideAndPiece(mv.From)
	if p == PieceUnknown {
		return false
	}
	return !b.apply(mv, s, p).IsKingChecked(s)
}

// GeneratePseudoLegalMoves returns moves obeying piece geometry for the side
// to move, without checking the safety of its own King.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	var mvs []Move
	for from := position.Pos(0); from < TotalCells; from++ {
		c := b.cells[from]
		if c.IsEmpty() || c.Side() != b.turn {
			continue
		}
		mvs = b.genPieceMoves(mvs, from, c.Side(), c.Piece())
	}
	return mvs
}

func (b *Board) genPieceMoves(mvs []Move, from position.Pos, s Side, p Piece) []Move {
	switch p {
	case PiecePawn:
		return b.genPawnMoves(mvs, from, s)
	case PieceKnight:
		return b.genStepMoves(mvs, from, s, p, deltaKnight[:])
	case PieceBishop:
		return b.genSlidingMoves(mvs, from, s, p, deltaDiagonals)
	case PieceRook:
		return b.genSlidingMoves(mvs, from, s, p, deltaLaterals)
	case PieceQueen:
		return b.genSlidingMoves(mvs, from, s, p, deltaAll)
	case PieceKing:
		mvs = b.genStepMoves(mvs, from, s, p, deltaKing[:])
		return b.genCastleMoves(mvs, s)
	default:
		return mvs
	}
}

func (b *Board) genPawnMoves(mvs []Move, from position.Pos, s Side) []Move {
	dir := s.Forward()
	if one := from.Offset(0, dir); one.IsValid() && b.cells[one].IsEmpty() {
		mvs = appendPawnMove(mvs, Move{From: from, To: one, Piece: PiecePawn, IsTurn: s})
		if two := from.Offset(0, 2*dir); from.Y() == s.PawnRank() && b.cells[two].IsEmpty() {
			mvs = append(mvs, Move{From: from, To: two, Piece: PiecePawn, IsTurn: s})
		}
	}
	for _, dx := range []position.Pos{-1, 1} {
		to := from.Offset(dx, dir)
		if !to.IsValid() {
			continue
		}
		if c := b.cells[to]; !c.IsEmpty() && c.Side() != s {
			mvs = appendPawnMove(mvs, Move{From: from, To: to, Piece: PiecePawn, IsTurn: s, IsCapture: true})
		} else if to == b.enPassant {
			mvs = append(mvs, Move{From: from, To: to, Piece: PiecePawn, IsTurn: s, IsCapture: true, IsEnPassant: true})
		}
	}
	return mvs
}

// appendPawnMove expands a move onto the far rank into its promotion variants.
func appendPawnMove(mvs []Move, mv Move) []Move {
	if mv.To.Y() != mv.IsTurn.PromotionRank() {
		return append(mvs, mv)
	}
	for _, prom := range PawnPromoteCandidates {
		mv.IsPromote = prom
		mvs = append(mvs, mv)
	}
	return mvs
}

func (b *Board) genStepMoves(mvs []Move, from position.Pos, s Side, p Piece, deltas [][2]position.Pos) []Move {
	for _, d := range deltas {
		to := from.Offset(d[0], d[1])
		if !to.IsValid() {
			continue
		}
		c := b.cells[to]
		if c.IsEmpty() || c.Side() != s {
			mvs = append(mvs, Move{From: from, To: to, Piece: p, IsTurn: s, IsCapture: !c.IsEmpty()})
		}
	}
	return mvs
}

func (b *Board) genSlidingMoves(mvs []Move, from position.Pos, s Side, p Piece, deltas [][2]position.Pos) []Move {
	for _, d := range deltas {
		for to := from.Offset(d[0], d[1]); to.IsValid(); to = to.Offset(d[0], d[1]) {
			c := b.cells[to]
			if c.IsEmpty() {
				mvs = append(mvs, Move{From: from, To: to, Piece: p, IsTurn: s})
				continue
			}
			if c.Side() != s {
				mvs = append(mvs, Move{From: from, To: to, Piece: p, IsTurn: s, IsCapture: true})
			}
			break
		}
	}
	return mvs
}

func (b *Board) genCastleMoves(mvs []Move, s Side) []Move {
	if !b.castleRights.IsSideAllowed(s) {
		return mvs
	}
	opponent := s.Opposite()
directionLoop:
	for _, d := range CastleDirections(s) {
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		kingFrom, kingTo := d.KingHops()
		rookFrom, _ := d.RookHops()
		if b.cells[kingFrom] != NewCell(s, PieceKing) || b.cells[rookFrom] != NewCell(s, PieceRook) {
			continue
		}
		for _, pos := range posCastlingEmpty[d] {
			if !b.cells[pos].IsEmpty() {
				continue directionLoop
			}
		}
		for _, pos := range posCastlingSafe[d] {
			if b.IsSquareAttacked(pos, opponent) {
				continue directionLoop
			}
		}
		mvs = append(mvs, Move{From: kingFrom, To: kingTo, Piece: PieceKing, IsTurn: s, IsCastle: d})
	}
	return mvs
}
