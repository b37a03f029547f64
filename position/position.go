package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// Invalid marks the absence of a position, e.g. no en passant target.
	Invalid Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square index in little-endian rank-file order: file + rank*8.
type Pos int8

func NewPos(x, y Pos) Pos {
	if x < 0 || x >= MaxComponentScalar || y < 0 || y >= MaxComponentScalar {
		return Invalid
	}
	return MaxComponentScalar*y + x
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return 0, err
	}
	return MaxComponentScalar*y + x, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) IsValid() bool {
	return p >= 0 && p < MaxComponentScalar*MaxComponentScalar
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return p.X().NotationComponentX() + p.Y().NotationComponentY()
}

// X returns the file, 0 being the a-file.
func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

// Y returns the rank, 0 being the first rank.
func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

// Offset returns the position dx files and dy ranks away, or Invalid when it falls off the board.
func (p Pos) Offset(dx, dy Pos) Pos {
	if !p.IsValid() {
		return Invalid
	}
	return NewPos(p.X()+dx, p.Y()+dy)
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if x < 'a' || x >= 'a'+byte(MaxComponentScalar) {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'a'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || y >= '1'+byte(MaxComponentScalar) {
		return 0, ErrInvalidNotation
	}
	return Pos(y - '1'), nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('1' + p))
}
