package game

import "errors"

var (
	ErrGameEnded     = errors.New("game has ended")
	ErrIllegalMove   = errors.New("illegal move")
	ErrNoPiece       = errors.New("no piece to move")
	ErrNoMovesToUndo = errors.New("no moves to undo")
)
