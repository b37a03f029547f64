package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/stalemate/position"
)

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrEmptySource = errors.New("no piece at source")
)

// Board is an immutable position: 64 cells in little-endian rank-file (LERF)
// order plus the FEN metadata. Every transition returns a new Board, so a
// *Board may be shared freely once handed out.
type Board struct {
	// grid data
	cells [TotalCells]Cell

	// meta
	turn          Side
	castleRights  CastleRights
	enPassant     position.Pos
	halfMoveClock uint32
	fullMoveClock uint32
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard builds the standard starting position, or the position given by WithFEN.
// A malformed FEN yields an error wrapping ErrInvalidFEN.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

// MustNewBoard is like NewBoard but panics on a malformed FEN.
func MustNewBoard(opts ...BoardOption) *Board {
	b, err := NewBoard(opts...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassant returns the square passed over by the last double Pawn push, if any.
func (b *Board) EnPassant() (position.Pos, bool) {
	return b.enPassant, b.enPassant != position.Invalid
}

func (b *Board) HalfMoveClock() uint32 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint32 {
	return b.fullMoveClock
}

// GetSideAndPiece returns the content of a square. Empty or off-board squares
// return SideUnknown and PieceUnknown.
func (b *Board) GetSideAndPiece(pos position.Pos) (Side, Piece) {
	c := b.Cell(pos)
	return c.Side(), c.Piece()
}

func (b *Board) Cell(pos position.Pos) Cell {
	if !pos.IsValid() {
		return CellEmpty
	}
	return b.cells[pos]
}

// With returns a copy of the board with one square replaced. Metadata is kept as is.
func (b *Board) With(pos position.Pos, s Side, p Piece) *Board {
	bb := *b
	if pos.IsValid() {
		bb.cells[pos] = NewCell(s, p)
	}
	return &bb
}

// Snapshot returns a copy of all 64 cells for scanning.
func (b *Board) Snapshot() [TotalCells]Cell {
	return b.cells
}

// KingPos locates the King of a side.
func (b *Board) KingPos(s Side) (position.Pos, bool) {
	king := NewCell(s, PieceKing)
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.cells[pos] == king {
			return pos, true
		}
	}
	return position.Invalid, false
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			sym := b.cells[y*Width+x].String()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	ep := "-"
	if pos, ok := b.EnPassant(); ok {
		ep = pos.Notation()
	}
	return fmt.Sprintf("turn: %s\ncast: %s\nenps: %s\nhalf: %4d\nfull: %4d", b.turn, b.castleRights, ep, b.halfMoveClock, b.fullMoveClock)
}
