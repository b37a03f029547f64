package game

import "github.com/daystram/stalemate/board"

// EndStatus is the terminal status of a game. The zero value means the game
// is still in progress.
type EndStatus uint8

const (
	// EndStatusNone is when the game is in progress.
	EndStatusNone EndStatus = iota

	// EndStatusCheckmateWhite is when White King is in checkmate.
	EndStatusCheckmateWhite

	// EndStatusCheckmateBlack is when Black King is in checkmate.
	EndStatusCheckmateBlack

	// EndStatusStalemate is when the side to move has no legal move and its King is not in check.
	EndStatusStalemate

	// EndStatusThreefoldRepetition is when the same position has occurred three times.
	EndStatusThreefoldRepetition
)

func (s EndStatus) IsEnded() bool {
	return s != EndStatusNone
}

func (s EndStatus) IsCheckmate() bool {
	switch s {
	case EndStatusCheckmateWhite, EndStatusCheckmateBlack:
		return true
	default:
		return false
	}
}

func (s EndStatus) IsDraw() bool {
	switch s {
	case EndStatusStalemate, EndStatusThreefoldRepetition:
		return true
	default:
		return false
	}
}

// Winner returns the side that delivered mate, or SideUnknown.
func (s EndStatus) Winner() board.Side {
	switch s {
	case EndStatusCheckmateWhite:
		return board.SideBlack
	case EndStatusCheckmateBlack:
		return board.SideWhite
	default:
		return board.SideUnknown
	}
}

func (s EndStatus) String() string {
	switch s {
	case EndStatusNone:
		return "EndStatusNone"
	case EndStatusCheckmateWhite:
		return "EndStatusCheckmateWhite"
	case EndStatusCheckmateBlack:
		return "EndStatusCheckmateBlack"
	case EndStatusStalemate:
		return "EndStatusStalemate"
	case EndStatusThreefoldRepetition:
		return "EndStatusThreefoldRepetition"
	default:
		return ""
	}
}

// Result returns the PGN result tag of a status.
func (s EndStatus) Result() string {
	switch {
	case s.Winner() == board.SideWhite:
		return "1-0"
	case s.Winner() == board.SideBlack:
		return "0-1"
	case s.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// EndInput holds the facts about the position reached after a move.
type EndInput struct {
	IsMate          bool
	InCheck         bool
	NoLegalMoves    bool
	Mover           board.Side
	RepetitionCount int
}

// ClassifyEnd decides the status of the position reached by a move. Mate
// takes precedence over stalemate, which takes precedence over repetition.
func ClassifyEnd(in EndInput) EndStatus {
	switch {
	case in.IsMate:
		if in.Mover == board.SideWhite {
			return EndStatusCheckmateBlack
		}
		return EndStatusCheckmateWhite
	case in.NoLegalMoves && !in.InCheck:
		return EndStatusStalemate
	case in.RepetitionCount >= 3:
		return EndStatusThreefoldRepetition
	default:
		return EndStatusNone
	}
}
