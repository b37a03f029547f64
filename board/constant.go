package board

import (
	"github.com/daystram/stalemate/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	posCastling = [4 + 1][6 + 1][2]position.Pos{
		CastleDirectionWhiteRight: {
			PieceKing: {position.E1, position.G1},
			PieceRook: {position.H1, position.F1},
		},
		CastleDirectionWhiteLeft: {
			PieceKing: {position.E1, position.C1},
			PieceRook: {position.A1, position.D1},
		},
		CastleDirectionBlackRight: {
			PieceKing: {position.E8, position.G8},
			PieceRook: {position.H8, position.F8},
		},
		CastleDirectionBlackLeft: {
			PieceKing: {position.E8, position.C8},
			PieceRook: {position.A8, position.D8},
		},
	}
	// squares between King and Rook that must be empty
	posCastlingEmpty = [4 + 1][]position.Pos{
		CastleDirectionWhiteRight: {position.F1, position.G1},
		CastleDirectionWhiteLeft:  {position.D1, position.C1, position.B1},
		CastleDirectionBlackRight: {position.F8, position.G8},
		CastleDirectionBlackLeft:  {position.D8, position.C8, position.B8},
	}
	// squares the King stands on, passes through and lands on
	posCastlingSafe = [4 + 1][]position.Pos{
		CastleDirectionWhiteRight: {position.E1, position.F1, position.G1},
		CastleDirectionWhiteLeft:  {position.E1, position.D1, position.C1},
		CastleDirectionBlackRight: {position.E8, position.F8, position.G8},
		CastleDirectionBlackLeft:  {position.E8, position.D8, position.C8},
	}

	maskCastleRights = [4 + 1]CastleRights{
		CastleDirectionWhiteRight: 0b1000,
		CastleDirectionWhiteLeft:  0b0100,
		CastleDirectionBlackRight: 0b0010,
		CastleDirectionBlackLeft:  0b0001,
	}

	deltaKnight = [8][2]position.Pos{
		{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	deltaKing = [8][2]position.Pos{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	deltaDiagonals = [][2]position.Pos{
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	deltaLaterals = [][2]position.Pos{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
	deltaAll = append(append([][2]position.Pos{}, deltaLaterals...), deltaDiagonals...)
)
