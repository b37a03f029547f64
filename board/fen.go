package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/stalemate/position"
)

func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var cells [TotalCells]Cell
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := position.Pos(0); y < Height; y++ {
		ptrX, ptrY := -1, Height-y-1
		for x := position.Pos(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			cell := rune(rows[ptrY][ptrX])
			s, p := NewPieceFromSymbol(cell)
			if p == PieceUnknown {
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Pos(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			cells[y*Width+x] = NewCell(s, p)
		}
		if ptrX != len(rows[ptrY])-1 {
			return fmt.Errorf("%w: excess cells", ErrInvalidFEN)
		}
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	var castleRights CastleRights
	if len(segments[2]) > 4 || len(segments[2]) == 0 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	if segments[2] != "-" {
		for _, e := range segments[2] {
			switch e {
			case 'K':
				castleRights = castleRights.Set(CastleDirectionWhiteRight, true)
			case 'k':
				castleRights = castleRights.Set(CastleDirectionBlackRight, true)
			case 'Q':
				castleRights = castleRights.Set(CastleDirectionWhiteLeft, true)
			case 'q':
				castleRights = castleRights.Set(CastleDirectionBlackLeft, true)
			default:
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
		}
	}

	enPassant := position.Invalid
	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if pos.Y() != position.Rank3 && pos.Y() != position.Rank6 {
			return fmt.Errorf("%w: invalid enpassant position: %s", ErrInvalidFEN, pos)
		}
		enPassant = pos
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}

	*b = Board{
		cells:         cells,
		turn:          turn,
		castleRights:  castleRights,
		enPassant:     enPassant,
		halfMoveClock: uint32(halfMoveClock),
		fullMoveClock: uint32(fullMoveClock),
	}
	if _, ok := b.KingPos(SideWhite); !ok {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}
	if _, ok := b.KingPos(SideBlack); !ok {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}
	return nil
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	return fmt.Sprintf("%s %d %d", b.PositionKey(), b.halfMoveClock, b.fullMoveClock), nil
}

func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}

// PositionKey identifies a position for repetition purposes: the first four
// FEN fields (placement, turn, castling rights, en passant), without clocks.
func (b *Board) PositionKey() string {
	builder := strings.Builder{}
	var skip uint8
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && b.cells[y*Width+x].IsEmpty(); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				_, _ = builder.WriteString(b.cells[y*Width+x].String())
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(b.castleRights.String())
	_, _ = builder.WriteRune(' ')

	if pos, ok := b.EnPassant(); ok {
		_, _ = builder.WriteString(pos.Notation())
	} else {
		_, _ = builder.WriteRune('-')
	}

	return builder.String()
}
