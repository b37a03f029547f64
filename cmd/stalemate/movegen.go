package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/stalemate/board"
)

func movegen(fen string, drawApplied bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(draw(b, nil))
	fmt.Println(b.DebugString())
	dumpMoves(b)

	if drawApplied {
		for _, mv := range b.GenerateMoves() {
			bb, err := b.Apply(mv)
			if err != nil {
				return err
			}
			mv := mv
			fmt.Println(mv)
			fmt.Println(draw(bb, &mv))
			fmt.Println(bb.FEN())
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GenerateMoves()
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v) (cas=%s) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), b.SAN(mv), mv.IsTurn, mv.Piece, mv.From, mv.To, mv.IsCapture, mv.IsEnPassant, mv.IsCastle, mv.IsPromote)
	}
}
