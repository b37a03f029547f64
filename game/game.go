package game

import (
	"fmt"
	"strings"

	"github.com/daystram/stalemate/board"
)

// Notation selects how played moves are written into the history.
type Notation uint8

const (
	// NotationStandard is standard algebraic notation, e.g. "Nbd2".
	NotationStandard Notation = iota

	// NotationLong is long algebraic notation with an explicit origin, e.g. "b1d2".
	NotationLong
)

// MoveRecord is one entry of the game history.
type MoveRecord struct {
	Move      board.Move
	Notation  string
	EndStatus EndStatus
}

// PlayResult describes a successfully played move.
type PlayResult struct {
	Notation  string
	EndStatus EndStatus
}

type gameConfig struct {
	fen      string
	notation Notation
}

type GameOption func(*gameConfig)

func WithFEN(fen string) GameOption {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

func WithNotation(n Notation) GameOption {
	return func(cfg *gameConfig) {
		cfg.notation = n
	}
}

// Game owns the current board, the move history, the boards preceding each
// move for undo, and the repetition counts. It is not safe for concurrent use.
type Game struct {
	notation Notation

	initial    *board.Board
	board      *board.Board
	history    []MoveRecord
	previous   []*board.Board
	repetition *RepetitionTracker
	endStatus  EndStatus
}

// NewGame starts a game from the standard position or the one given by WithFEN.
// A malformed FEN yields an error wrapping board.ErrInvalidFEN.
func NewGame(opts ...GameOption) (*Game, error) {
	g := &Game{}
	if err := g.Reset(opts...); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset reinitialises the game. Options not given keep their previous value,
// except the FEN which falls back to the standard starting position. On error
// the game is left untouched.
func (g *Game) Reset(opts ...GameOption) error {
	cfg := &gameConfig{
		fen:      board.DefaultStartingPositionFEN,
		notation: g.notation,
	}
	for _, f := range opts {
		f(cfg)
	}

	b, err := board.NewBoard(board.WithFEN(cfg.fen))
	if err != nil {
		return err
	}

	g.notation = cfg.notation
	g.initial = b
	g.board = b
	g.history = nil
	g.previous = nil
	g.endStatus = EndStatusNone
	if g.repetition == nil {
		g.repetition = NewRepetitionTracker(b)
	} else {
		g.repetition.Reset(b)
	}
	return nil
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []board.Move {
	return g.board.GenerateMoves()
}

// PlayMove plays the legal move matching the origin, destination and
// promotion of candidate. The remaining fields of candidate are ignored.
func (g *Game) PlayMove(candidate board.Move) (PlayResult, error) {
	if g.endStatus.IsEnded() {
		return PlayResult{}, ErrGameEnded
	}

	legal := g.board.GenerateMoves()
	mv, ok := board.FindMove(legal, candidate)
	if !ok {
		return PlayResult{}, fmt.Errorf("%w: %s", ErrIllegalMove, candidate)
	}
	s, p := g.board.GetSideAndPiece(mv.From)
	if p == board.PieceUnknown {
		return PlayResult{}, fmt.Errorf("%w: %s", ErrNoPiece, mv.From)
	}

	next, err := g.board.Apply(mv)
	if err != nil {
		return PlayResult{}, fmt.Errorf("%w: %v", ErrNoPiece, err)
	}
	inCheck := next.IsKingChecked(next.Turn())
	noLegalMoves := len(next.GenerateMoves()) == 0
	isMate := inCheck && noLegalMoves

	var notation string
	switch g.notation {
	case NotationLong:
		notation = board.LongAlgebra(mv, inCheck, isMate)
	default:
		notation = board.Algebra(g.board, mv, legal, inCheck, isMate)
	}

	count := g.repetition.Record(next)
	status := ClassifyEnd(EndInput{
		IsMate:          isMate,
		InCheck:         inCheck,
		NoLegalMoves:    noLegalMoves,
		Mover:           s,
		RepetitionCount: count,
	})

	g.previous = append(g.previous, g.board)
	g.board = next
	g.history = append(g.history, MoveRecord{Move: mv, Notation: notation, EndStatus: status})
	g.endStatus = status

	return PlayResult{Notation: notation, EndStatus: status}, nil
}

// PlayUCI parses a move in coordinate notation, e.g. "e7e8q", and plays it.
func (g *Game) PlayUCI(s string) (PlayResult, error) {
	mv, err := board.NewMoveFromUCI(s)
	if err != nil {
		return PlayResult{}, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	return g.PlayMove(mv)
}

// Undo takes back the latest move and reopens the game.
func (g *Game) Undo() error {
	if len(g.history) == 0 || len(g.previous) == 0 {
		return ErrNoMovesToUndo
	}
	g.board = g.previous[len(g.previous)-1]
	g.previous = g.previous[:len(g.previous)-1]
	g.history = g.history[:len(g.history)-1]
	g.repetition.Undo()
	g.endStatus = EndStatusNone
	return nil
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Turn() board.Side {
	return g.board.Turn()
}

// History returns a copy of the played moves, oldest first.
func (g *Game) History() []MoveRecord {
	return append([]MoveRecord(nil), g.history...)
}

func (g *Game) LatestMove() (MoveRecord, bool) {
	if len(g.history) == 0 {
		return MoveRecord{}, false
	}
	return g.history[len(g.history)-1], true
}

func (g *Game) EndStatus() EndStatus {
	return g.endStatus
}

// Ply returns the number of moves played since the last reset.
func (g *Game) Ply() int {
	return len(g.history)
}

func (g *Game) FEN() string {
	return g.board.FEN()
}

// RepetitionCount returns how often the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.repetition.Count(g.board)
}

// MoveText writes the history as numbered movetext, e.g. "1. e4 e5 2. Nf3",
// followed by the result once the game has ended.
func (g *Game) MoveText() string {
	builder := strings.Builder{}
	num, turn := g.initial.FullMoveClock(), g.initial.Turn()
	for i, rec := range g.history {
		if i > 0 {
			_, _ = builder.WriteRune(' ')
		}
		if turn == board.SideWhite {
			_, _ = builder.WriteString(fmt.Sprintf("%d. ", num))
		} else if i == 0 {
			_, _ = builder.WriteString(fmt.Sprintf("%d... ", num))
		}
		_, _ = builder.WriteString(rec.Notation)
		if turn == board.SideBlack {
			num++
		}
		turn = turn.Opposite()
	}
	if g.endStatus.IsEnded() {
		if builder.Len() > 0 {
			_, _ = builder.WriteRune(' ')
		}
		_, _ = builder.WriteString(g.endStatus.Result())
	}
	return builder.String()
}
