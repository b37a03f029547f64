package engine

import (
	"github.com/daystram/stalemate/board"
	"github.com/daystram/stalemate/position"
)

var (
	scorePiece = [6 + 1]int32{
		board.PiecePawn:   100,
		board.PieceKnight: 300,
		board.PieceBishop: 300,
		board.PieceRook:   500,
		board.PieceQueen:  900,
		board.PieceKing:   0, // handled by mate detection
	}

	// Indexed by position, rank 1 first. The table is symmetric for both sides.
	scoreCenter = [64]int32{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	scoreCastleRight int32 = 10
	scoreCastledKing int32 = 30

	posCastledKing = [2 + 1][2]position.Pos{
		board.SideWhite: {position.G1, position.C1},
		board.SideBlack: {position.G8, position.C8},
	}
)

// Evaluate returns the static score of b in centipawns, positive when
// perspective is better off. It combines material, central occupation and
// castling safety, each mirrored for the opponent.
func Evaluate(b *board.Board, perspective board.Side) int32 {
	var score int32
	cells := b.Snapshot()
	for pos, c := range cells {
		if c.IsEmpty() {
			continue
		}
		s, p := c.Side(), c.Piece()
		v := scorePiece[p] + scoreCenter[pos]
		if p == board.PieceKing {
			v += scoreCastledKingAt(s, position.Pos(pos))
		}
		if s == perspective {
			score += v
		} else {
			score -= v
		}
	}

	rights := b.CastleRights()
	for _, s := range []board.Side{board.SideWhite, board.SideBlack} {
		var v int32
		for _, d := range board.CastleDirections(s) {
			if rights.IsAllowed(d) {
				v += scoreCastleRight
			}
		}
		if s == perspective {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

func scoreCastledKingAt(s board.Side, pos position.Pos) int32 {
	for _, castled := range posCastledKing[s] {
		if pos == castled {
			return scoreCastledKing
		}
	}
	return 0
}
