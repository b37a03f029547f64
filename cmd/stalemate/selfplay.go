package main

import (
	"fmt"
	"log"

	"github.com/daystram/stalemate/board"
	"github.com/daystram/stalemate/engine"
	"github.com/daystram/stalemate/game"
)

// selfplay lets the engine play White against the chosen opponent until the
// game ends or steps plies have been played.
func selfplay(fen string, depth int, opponent string, steps int) error {
	g, err := game.NewGame(game.WithFEN(fen))
	if err != nil {
		return err
	}

	var white engine.Bot = engine.NewEngine(&engine.EngineConfig{Depth: depth, Debug: true})
	var black engine.Bot
	switch opponent {
	case "engine":
		black = engine.NewEngine(&engine.EngineConfig{Depth: depth, Debug: true})
	case "first":
		black = engine.FirstMoveBot{}
	default:
		return fmt.Errorf("unknown opponent: %s", opponent)
	}
	log.Printf("============ selfplay: %s vs %s\n", white.Name(), black.Name())
	fmt.Println(draw(g.Board(), nil))
	fmt.Println(g.FEN())

	for step := 0; step < steps && !g.EndStatus().IsEnded(); step++ {
		bot := white
		if g.Turn() == board.SideBlack {
			bot = black
		}
		mv, ok := bot.SelectMove(g)
		if !ok {
			break
		}
		res, err := g.PlayMove(mv)
		if err != nil {
			return err
		}

		fmt.Printf("\n>>> %s: %s\n", mv.IsTurn, res.Notation)
		fmt.Println(draw(g.Board(), &mv))
		fmt.Println(g.FEN())
	}

	log.Println("=============== game ended:", g.EndStatus())
	fmt.Println(g.MoveText())
	return nil
}
