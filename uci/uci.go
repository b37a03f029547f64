package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daystram/stalemate/bench"
	"github.com/daystram/stalemate/board"
	"github.com/daystram/stalemate/engine"
	"github.com/daystram/stalemate/game"
)

var (
	EngineName   = "Stalemate"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		debug:         false,
		depth:         engine.DefaultDepth,
		parallelPerft: true,
	}
)

const maxDepth = 8

type options struct {
	debug         bool
	depth         int
	parallelPerft bool
}

// Interface speaks a line-oriented subset of the Universal Chess Interface
// over r and w. Commands are served one at a time; a search runs to
// completion before the next line is read.
type Interface struct {
	r io.Reader
	w io.Writer

	game    *game.Game
	engine  *engine.Engine
	options options
}

func NewInterface(r io.Reader, w io.Writer) *Interface {
	return &Interface{
		r:       r,
		w:       w,
		options: defaultOptions,
	}
}

// Run serves commands until "quit" or the end of input.
func (i *Interface) Run() error {
	if err := i.reset(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(i.r)
	for scanner.Scan() {
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "uci":
			i.commandUCI()
		case "ucinewgame":
			_ = i.reset()
		case "isready":
			i.commandReady()
		case "setoption":
			i.commandSetOption(args[1:])
		case "position":
			i.commandPosition(args[1:])
		case "d":
			i.commandDraw()
		case "undo":
			i.commandUndo()
		case "history":
			i.println(i.game.MoveText())
		case "go":
			i.commandGo(args[1:])
		case "quit":
			return nil
		default:
			i.println(fmt.Sprintf("info string unknown command: %s", args[0]))
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI() {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option name Depth type spin default %d min 1 max %d", defaultOptions.depth, maxDepth))
	i.println("uciok")
}

func (i *Interface) commandReady() {
	if i.game != nil && i.engine != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "debug":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return
		}
		i.options.debug = value
	case "depth":
		value, err := strconv.Atoi(valueStr)
		if err != nil || value < 1 || value > maxDepth {
			return
		}
		i.options.depth = value
	default:
		return
	}
	i.newEngine()
}

// commandPosition handles "position [startpos | fen <fen>] [moves <move>...]".
// The current game is kept when the position or any move is rejected.
func (i *Interface) commandPosition(args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	var mvs []string
	if idx := indexOf(args, "moves"); idx >= 0 {
		mvs = args[idx+1:]
		args = args[:idx]
	}
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		return
	}

	g, err := game.NewGame(game.WithFEN(fen))
	if err != nil {
		i.println(fmt.Sprintf("info string %v", err))
		return
	}
	for _, mv := range mvs {
		if _, err := g.PlayUCI(mv); err != nil {
			i.println(fmt.Sprintf("info string %s: %v", mv, err))
			return
		}
	}
	i.game = g
}

func (i *Interface) commandDraw() {
	i.println(i.game.Board().Dump())
	i.println(fmt.Sprintf("Fen: %s", i.game.FEN()))
	if rec, ok := i.game.LatestMove(); ok {
		i.println(fmt.Sprintf("Last: %s", rec.Notation))
	}
	if status := i.game.EndStatus(); status.IsEnded() {
		i.println(fmt.Sprintf("Status: %s %s", status, status.Result()))
	}
}

func (i *Interface) commandUndo() {
	if err := i.game.Undo(); err != nil {
		i.println(fmt.Sprintf("info string %v", err))
	}
}

func (i *Interface) commandGo(args []string) {
	if len(args) > 0 {
		switch mode := args[0]; mode {
		case "perft":
			if len(args) != 2 {
				return
			}
			depth, err := strconv.Atoi(args[1])
			if err != nil || depth < 0 {
				return
			}

			out := make(chan string, 64)
			done := make(chan struct{})
			go func() {
				defer close(done)
				for s := range out {
					i.println(s)
				}
			}()

			_ = bench.Perft(depth, i.game.FEN(), i.options.parallelPerft, true, out)
			close(out)
			<-done
			return

		case "depth":
			if len(args) != 2 {
				return
			}
			depth, err := strconv.Atoi(args[1])
			if err != nil || depth < 1 || depth > maxDepth {
				return
			}
			i.search(engine.NewEngine(&engine.EngineConfig{
				Depth:  depth,
				Debug:  i.options.debug,
				Logger: i.println,
			}))
			return
		}
	}

	i.search(i.engine)
}

func (i *Interface) search(bot engine.Bot) {
	mv, ok := bot.SelectMove(i.game)
	if !ok {
		i.println("bestmove (none)")
		return
	}
	i.println(fmt.Sprintf("bestmove %s", mv.UCI()))
}

func (i *Interface) reset() error {
	g, err := game.NewGame()
	if err != nil {
		return err
	}
	i.game = g
	i.newEngine()
	return nil
}

func (i *Interface) newEngine() {
	i.engine = engine.NewEngine(&engine.EngineConfig{
		Depth:  i.options.depth,
		Debug:  i.options.debug,
		Logger: i.println,
	})
}

func (i *Interface) println(a ...any) {
	_, _ = fmt.Fprintln(i.w, a...)
}

func indexOf(args []string, s string) int {
	for idx, a := range args {
		if a == s {
			return idx
		}
	}
	return -1
}
