package game

import (
	"errors"
	"testing"

	"github.com/daystram/stalemate/board"
	"github.com/daystram/stalemate/position"
)

func newTestGame(t *testing.T, opts ...GameOption) *Game {
	t.Helper()
	g, err := NewGame(opts...)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return g
}

func playAll(t *testing.T, g *Game, moves ...string) []PlayResult {
	t.Helper()
	var results []PlayResult
	for _, uci := range moves {
		res, err := g.PlayUCI(uci)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", uci, err)
		}
		results = append(results, res)
	}
	return results
}

func TestNewGame(t *testing.T) {
	t.Parallel()
	g := newTestGame(t)
	if got := len(g.LegalMoves()); got != 20 {
		t.Errorf("unexpected legal move count: got=%d want=20", got)
	}
	if got := g.Turn(); got != board.SideWhite {
		t.Errorf("unexpected turn: got=%s want=%s", got, board.SideWhite)
	}
	if got := g.FEN(); got != board.DefaultStartingPositionFEN {
		t.Errorf("unexpected FEN: got=%s want=%s", got, board.DefaultStartingPositionFEN)
	}
	if _, ok := g.LatestMove(); ok {
		t.Error("unexpected latest move on a new game")
	}
	if got := g.RepetitionCount(); got != 1 {
		t.Errorf("unexpected repetition count: got=%d want=1", got)
	}
}

func TestNewGameInvalidFEN(t *testing.T) {
	t.Parallel()
	_, err := NewGame(WithFEN("8/8/8/8/8/8/8/8 w - - 0 1"))
	if !errors.Is(err, board.ErrInvalidFEN) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrInvalidFEN)
	}
}

func TestFoolsMate(t *testing.T) {
	t.Parallel()
	g := newTestGame(t)
	results := playAll(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	last := results[len(results)-1]
	if last.Notation != "Qh4#" {
		t.Errorf("unexpected notation: got=%s want=Qh4#", last.Notation)
	}
	if last.EndStatus != EndStatusCheckmateWhite {
		t.Errorf("unexpected end status: got=%s want=%s", last.EndStatus, EndStatusCheckmateWhite)
	}
	if got := g.EndStatus().Winner(); got != board.SideBlack {
		t.Errorf("unexpected winner: got=%s want=%s", got, board.SideBlack)
	}
	if got := g.MoveText(); got != "1. f3 e5 2. g4 Qh4# 0-1" {
		t.Errorf("unexpected movetext: got=%s", got)
	}

	_, err := g.PlayUCI("e1f2")
	if !errors.Is(err, ErrGameEnded) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrGameEnded)
	}
}

func TestCastleThroughGame(t *testing.T) {
	t.Parallel()
	g := newTestGame(t)
	results := playAll(t, g, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1")

	if got := results[len(results)-1].Notation; got != "O-O" {
		t.Errorf("unexpected notation: got=%s want=O-O", got)
	}
	b := g.Board()
	if s, p := b.GetSideAndPiece(position.G1); s != board.SideWhite || p != board.PieceKing {
		t.Errorf("unexpected g1 content: got=%s %s", s, p)
	}
	if s, p := b.GetSideAndPiece(position.F1); s != board.SideWhite || p != board.PieceRook {
		t.Errorf("unexpected f1 content: got=%s %s", s, p)
	}
	if b.CastleRights().IsSideAllowed(board.SideWhite) {
		t.Errorf("white castling rights not cleared: %s", b.CastleRights())
	}
	if got := b.CastleRights().String(); got != "kq" {
		t.Errorf("unexpected castling rights: got=%s want=kq", got)
	}
}

func TestStalemate(t *testing.T) {
	t.Parallel()
	g := newTestGame(t, WithFEN("5Q1k/8/6K1/8/8/8/8/8 w - - 0 1"))
	res := playAll(t, g, "f8f7")[0]
	if res.EndStatus != EndStatusStalemate {
		t.Errorf("unexpected end status: got=%s want=%s", res.EndStatus, EndStatusStalemate)
	}
	if res.EndStatus.IsCheckmate() || !res.EndStatus.IsDraw() {
		t.Errorf("stalemate classified as %s", res.EndStatus)
	}
	if res.Notation != "Qf7" {
		t.Errorf("unexpected notation: got=%s want=Qf7", res.Notation)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	t.Parallel()
	g := newTestGame(t)
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for i, uci := range shuffle {
		res, err := g.PlayUCI(uci)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", uci, err)
		}
		want := EndStatusNone
		if i == len(shuffle)-1 {
			want = EndStatusThreefoldRepetition
		}
		if res.EndStatus != want {
			t.Errorf("ply %d: unexpected end status: got=%s want=%s", i+1, res.EndStatus, want)
		}
	}
	if got := g.RepetitionCount(); got != 3 {
		t.Errorf("unexpected repetition count: got=%d want=3", got)
	}
}

func TestPlayMoveErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		move    board.Move
		wantErr error
	}{
		{name: "empty square", move: board.Move{From: position.E4, To: position.E5}, wantErr: ErrIllegalMove},
		{name: "wrong geometry", move: board.Move{From: position.E2, To: position.E5}, wantErr: ErrIllegalMove},
		{name: "opponent piece", move: board.Move{From: position.E7, To: position.E5}, wantErr: ErrIllegalMove},
		{name: "promotion on non promoting move", move: board.Move{From: position.E2, To: position.E4, IsPromote: board.PieceQueen}, wantErr: ErrIllegalMove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newTestGame(t)
			_, err := g.PlayMove(tt.move)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if g.Ply() != 0 || g.FEN() != board.DefaultStartingPositionFEN {
				t.Error("failed move changed the game")
			}
		})
	}
}

func TestPlayUCIMalformed(t *testing.T) {
	t.Parallel()
	g := newTestGame(t)
	_, err := g.PlayUCI("e2")
	if !errors.Is(err, ErrIllegalMove) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrIllegalMove)
	}
}

func TestPlayIgnoresCandidateFlags(t *testing.T) {
	t.Parallel()
	g := newTestGame(t, WithFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"))
	res, err := g.PlayMove(board.Move{From: position.E1, To: position.G1})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if res.Notation != "O-O" {
		t.Errorf("unexpected notation: got=%s want=O-O", res.Notation)
	}
	rec, _ := g.LatestMove()
	if rec.Move.IsCastle != board.CastleDirectionWhiteRight {
		t.Errorf("unexpected recorded move flags: %+v", rec.Move)
	}
}

func TestUndoRestores(t *testing.T) {
	t.Parallel()
	g := newTestGame(t)
	playAll(t, g, "f2f3", "e7e5", "g2g4")

	fen := g.FEN()
	history := g.History()
	count := g.RepetitionCount()
	replen := g.repetition.Len()

	playAll(t, g, "d8h4")
	if !g.EndStatus().IsEnded() {
		t.Fatal("game not ended after mate")
	}
	if err := g.Undo(); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if got := g.FEN(); got != fen {
		t.Errorf("unexpected FEN: got=%s want=%s", got, fen)
	}
	if got := g.History(); len(got) != len(history) || got[len(got)-1] != history[len(history)-1] {
		t.Errorf("unexpected history: got=%v want=%v", got, history)
	}
	if got := g.RepetitionCount(); got != count {
		t.Errorf("unexpected repetition count: got=%d want=%d", got, count)
	}
	if got := g.repetition.Len(); got != replen {
		t.Errorf("unexpected tracked keys: got=%d want=%d", got, replen)
	}
	if got := g.EndStatus(); got != EndStatusNone {
		t.Errorf("unexpected end status: got=%s want=%s", got, EndStatusNone)
	}
	if _, err := g.PlayUCI("d8h4"); err != nil {
		t.Errorf("unexpected error replaying: %v", err)
	}
}

func TestUndoClearsRepetition(t *testing.T) {
	t.Parallel()
	g := newTestGame(t)
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	playAll(t, g, shuffle...)
	if err := g.Undo(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := g.Undo(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	res := playAll(t, g, "f3g1", "f6g8")
	if got := res[1].EndStatus; got != EndStatusThreefoldRepetition {
		t.Errorf("unexpected end status: got=%s want=%s", got, EndStatusThreefoldRepetition)
	}
}

func TestUndoEmpty(t *testing.T) {
	t.Parallel()
	g := newTestGame(t)
	if err := g.Undo(); !errors.Is(err, ErrNoMovesToUndo) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrNoMovesToUndo)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	g := newTestGame(t, WithNotation(NotationLong))
	playAll(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	if err := g.Reset(WithFEN("k7/4P3/8/8/8/8/8/K7 w - - 0 1")); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if g.Ply() != 0 || g.EndStatus() != EndStatusNone {
		t.Errorf("game not reset: ply=%d status=%s", g.Ply(), g.EndStatus())
	}
	if got := g.repetition.Len(); got != 1 {
		t.Errorf("unexpected tracked keys: got=%d want=1", got)
	}
	res := playAll(t, g, "e7e8q")[0]
	if res.Notation != "e7e8=Q+" {
		t.Errorf("notation style not kept across reset: got=%s want=e7e8=Q+", res.Notation)
	}
}

func TestResetInvalidFEN(t *testing.T) {
	t.Parallel()
	g := newTestGame(t)
	playAll(t, g, "e2e4")
	fen := g.FEN()

	if err := g.Reset(WithFEN("not a fen")); !errors.Is(err, board.ErrInvalidFEN) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrInvalidFEN)
	}
	if g.FEN() != fen || g.Ply() != 1 {
		t.Error("failed reset changed the game")
	}
}

func TestNotationStyle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation Notation
		want     string
	}{
		{name: "standard", notation: NotationStandard, want: "e8=Q+"},
		{name: "long", notation: NotationLong, want: "e7e8=Q+"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newTestGame(t, WithFEN("k7/4P3/8/8/8/8/8/K7 w - - 0 1"), WithNotation(tt.notation))
			res := playAll(t, g, "e7e8q")[0]
			if res.Notation != tt.want {
				t.Errorf("unexpected notation: got=%s want=%s", res.Notation, tt.want)
			}
		})
	}
}

func TestMoveTextFromBlack(t *testing.T) {
	t.Parallel()
	g := newTestGame(t, WithFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"))
	playAll(t, g, "e7e5", "g1f3")
	if got := g.MoveText(); got != "1... e5 2. Nf3" {
		t.Errorf("unexpected movetext: got=%s want=1... e5 2. Nf3", got)
	}
}
