package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/stalemate/board"
	"github.com/daystram/stalemate/uci"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	perftDepth  = flag.Int("perft", 0, "run perft mode to the given depth")
	perftSerial = flag.Bool("perft.serial", false, "explore root moves sequentially in perft mode")

	selfplayRun      = flag.Bool("selfplay", false, "run selfplay mode")
	selfplayDepth    = flag.Int("selfplay.depth", 0, "search depth in selfplay mode")
	selfplayOpponent = flag.String("selfplay.opponent", "engine", "black player in selfplay mode: engine or first")
	selfplaySteps    = flag.Int("selfplay.steps", 200, "maximum plies in selfplay mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

// realMain dispatches on the mode flags. Remaining arguments form the FEN.
func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen, *movegenDraw)
	}
	if *perftDepth > 0 {
		return perft(*perftDepth, fen, !*perftSerial)
	}
	if *selfplayRun {
		return selfplay(fen, *selfplayDepth, *selfplayOpponent, *selfplaySteps)
	}

	return runUCI()
}

func runUCI() error {
	return uci.NewInterface(os.Stdin, os.Stdout).Run()
}
