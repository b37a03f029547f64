package board

import "github.com/daystram/stalemate/position"

// IsSquareAttacked reports whether any piece of side s attacks target.
func (b *Board) IsSquareAttacked(target position.Pos, s Side) bool {
	if !target.IsValid() {
		return false
	}
	for from := position.Pos(0); from < TotalCells; from++ {
		c := b.cells[from]
		if c.IsEmpty() || c.Side() != s {
			continue
		}
		if b.attacks(from, target, s, c.Piece()) {
			return true
		}
	}
	return false
}

// IsKingChecked reports whether the King of side s is attacked. A side without
// a King is never in check.
func (b *Board) IsKingChecked(s Side) bool {
	pos, ok := b.KingPos(s)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(pos, s.Opposite())
}

func (b *Board) attacks(from, target position.Pos, s Side, p Piece) bool {
	dx, dy := target.X()-from.X(), target.Y()-from.Y()
	switch p {
	case PiecePawn:
		return dy == s.Forward() && abs(dx) == 1
	case PieceKnight:
		return (abs(dx) == 2 && abs(dy) == 1) || (abs(dx) == 1 && abs(dy) == 2)
	case PieceBishop:
		return dx != 0 && abs(dx) == abs(dy) && b.isPathClear(from, target)
	case PieceRook:
		return (dx == 0) != (dy == 0) && b.isPathClear(from, target)
	case PieceQueen:
		return (dx != 0 || dy != 0) && (abs(dx) == abs(dy) || dx == 0 || dy == 0) && b.isPathClear(from, target)
	case PieceKing:
		return max(abs(dx), abs(dy)) == 1
	default:
		return false
	}
}

// isPathClear checks the squares strictly between two aligned positions.
func (b *Board) isPathClear(from, target position.Pos) bool {
	stepX, stepY := sign(target.X()-from.X()), sign(target.Y()-from.Y())
	for pos := from.Offset(stepX, stepY); pos != target; pos = pos.Offset(stepX, stepY) {
		if !pos.IsValid() {
			return false
		}
		if !b.cells[pos].IsEmpty() {
			return false
		}
	}
	return true
}

func abs(x position.Pos) position.Pos {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b position.Pos) position.Pos {
	if a > b {
		return a
	}
	return b
}

func sign(x position.Pos) position.Pos {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
