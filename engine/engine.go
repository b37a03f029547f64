package engine

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/stalemate/board"
	"github.com/daystram/stalemate/game"
)

const (
	ScoreInfinite int32 = math.MaxInt32
	DefaultDepth        = 3

	scoreCheckmate int32 = 1_000_000
	scoreDraw      int32 = -50
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// Bot picks a move for the side to move in a game.
type Bot interface {
	Name() string
	SelectMove(g *game.Game) (board.Move, bool)
}

// FirstMoveBot plays the first legal move in generation order.
type FirstMoveBot struct{}

func (FirstMoveBot) Name() string {
	return "First Move"
}

func (FirstMoveBot) SelectMove(g *game.Game) (board.Move, bool) {
	if g.EndStatus().IsEnded() {
		return board.Move{}, false
	}
	mvs := g.LegalMoves()
	if len(mvs) == 0 {
		return board.Move{}, false
	}
	return mvs[0], true
}

type PVLine struct {
	mvs []board.Move
}

func (pvl *PVLine) GetPV() board.Move {
	if len(pvl.mvs) == 0 {
		return board.Move{}
	}
	return pvl.mvs[0]
}

func (pvl *PVLine) Set(mv board.Move, nextPVL PVLine) {
	if pvl == nil {
		return
	}
	pvl.mvs = append([]board.Move{mv}, nextPVL.mvs...)
}

func (pvl *PVLine) Clear() {
	pvl.mvs = pvl.mvs[:0] // memory not released for GC
}

func (pvl *PVLine) Len() int {
	return len(pvl.mvs)
}

func (pvl *PVLine) StringUCI() string {
	if pvl == nil {
		return ""
	}
	builder := strings.Builder{}
	for i, mv := range pvl.mvs {
		_, _ = builder.WriteString(mv.UCI())
		if i < len(pvl.mvs)-1 {
			_, _ = builder.WriteRune(' ')
		}
	}
	return builder.String()
}

// String writes the line in standard algebraic notation, starting from b.
func (pvl *PVLine) String(b *board.Board) string {
	if b == nil || pvl == nil || len(pvl.mvs) == 0 {
		return ""
	}
	builder := strings.Builder{}
	fullMoveClock := b.FullMoveClock()
	if b.Turn() == board.SideBlack {
		_, _ = builder.WriteString(fmt.Sprintf("%d... ", fullMoveClock))
	}
	for i, mv := range pvl.mvs {
		if b.Turn() == board.SideWhite {
			_, _ = builder.WriteString(fmt.Sprintf("%d. ", fullMoveClock))
		} else {
			fullMoveClock++
		}
		_, _ = builder.WriteString(b.SAN(mv))
		bb, err := b.Apply(mv)
		if err != nil {
			break
		}
		b = bb
		if i < len(pvl.mvs)-1 {
			_, _ = builder.WriteRune(' ')
		}
	}
	return builder.String()
}

type EngineConfig struct {
	// Depth is the search depth in plies. Zero selects DefaultDepth.
	Depth  int
	Debug  bool
	Logger func(...any)
}

// Engine is a fixed-depth minimax searcher with alpha-beta pruning. Scores
// are kept relative to the side to move at the root: that side maximises,
// its opponent minimises.
type Engine struct {
	depth  int
	debug  bool
	nodes  uint64
	logger func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultDepth
	}

	return &Engine{
		depth:  cfg.Depth,
		debug:  cfg.Debug,
		logger: cfg.Logger,
	}
}

func (e *Engine) Name() string {
	return fmt.Sprintf("Alpha-Beta Depth %d", e.depth)
}

func (e *Engine) Depth() int {
	return e.depth
}

// Nodes returns the number of positions visited by the latest search.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

func (e *Engine) SelectMove(g *game.Game) (board.Move, bool) {
	if g.EndStatus().IsEnded() {
		return board.Move{}, false
	}
	return e.Search(g.Board())
}

// Search returns the best move for the side to move in b. Among equally
// scored moves the earliest in generation order wins. It reports false when
// there is no legal move.
func (e *Engine) Search(b *board.Board) (board.Move, bool) {
	e.nodes = 0
	perspective := b.Turn()
	startTime := time.Now()

	var found bool
	var bestMove board.Move
	var pvl, childPVL PVLine
	bestScore := -ScoreInfinite
	for _, mv := range b.GenerateMoves() {
		bb, err := b.Apply(mv)
		if err != nil {
			continue
		}
		score := e.alphaBeta(bb, &childPVL, e.depth-1, perspective, bestScore, ScoreInfinite)
		if !found || score > bestScore {
			found = true
			bestMove = mv
			bestScore = score
			pvl.Set(mv, childPVL)
		}
		childPVL.Clear()
	}
	if !found {
		return board.Move{}, false
	}

	elapsedTime := time.Since(startTime)
	if e.debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("depth:%d [%s] nodes:%d (%.0fn/s) t:%s\n    %s",
				e.depth, formatScoreDebug(bestScore, e.depth), e.nodes, float64(e.nodes)/((elapsedTime + 1).Seconds()), elapsedTime, pvl.String(b)))
	} else {
		e.logger(fmt.Sprintf("info depth %d score %s time %d nodes %d nps %.0f pv %s",
			e.depth, formatScoreUCI(bestScore, e.depth), elapsedTime.Milliseconds(), e.nodes, float64(e.nodes)/((elapsedTime + 1).Seconds()), pvl.StringUCI()))
	}
	return bestMove, true
}

// alphaBeta scores b from perspective with depth plies left to search.
func (e *Engine) alphaBeta(
	b *board.Board,
	pvl *PVLine,
	depth int,
	perspective board.Side,
	alpha, beta int32,
) int32 {
	e.nodes++

	// check if game has terminated
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		if b.IsKingChecked(b.Turn()) {
			// faster mates score further from zero
			if b.Turn() == perspective {
				return -scoreCheckmate - int32(depth)
			}
			return scoreCheckmate + int32(depth)
		}
		return scoreDraw
	}

	// check if leaf reached
	if depth <= 0 {
		return Evaluate(b, perspective)
	}

	var childPVL PVLine
	if b.Turn() == perspective {
		value := -ScoreInfinite
		for _, mv := range mvs {
			bb, err := b.Apply(mv)
			if err != nil {
				continue
			}
			score := e.alphaBeta(bb, &childPVL, depth-1, perspective, alpha, beta)
			if score > value {
				value = score
				pvl.Set(mv, childPVL)
			}
			childPVL.Clear()
			alpha = max(alpha, value)
			if alpha >= beta {
				break // cutoff
			}
		}
		return value
	}

	value := ScoreInfinite
	for _, mv := range mvs {
		bb, err := b.Apply(mv)
		if err != nil {
			continue
		}
		score := e.alphaBeta(bb, &childPVL, depth-1, perspective, alpha, beta)
		if score < value {
			value = score
			pvl.Set(mv, childPVL)
		}
		childPVL.Clear()
		beta = min(beta, value)
		if beta <= alpha {
			break // cutoff
		}
	}
	return value
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return x * -1
	}
	return x
}

// mateDistance returns the number of plies to the mate encoded in s, or zero
// if s is not a mate score.
func mateDistance(s int32, depth int) int {
	if abs(s) < scoreCheckmate {
		return 0
	}
	return depth - int(abs(s)-scoreCheckmate)
}

func formatScoreDebug(s int32, depth int) string {
	if plies := mateDistance(s, depth); plies > 0 {
		if s > 0 {
			return fmt.Sprintf("#+%d", (plies+1)/2)
		}
		return fmt.Sprintf("#-%d", plies/2)
	}
	if s > 0 {
		return fmt.Sprintf("+%.2f", float64(s)/100)
	}
	if s < 0 {
		return fmt.Sprintf("%.2f", float64(s)/100)
	}
	return "0"
}

func formatScoreUCI(s int32, depth int) string {
	if plies := mateDistance(s, depth); plies > 0 {
		if s > 0 {
			return fmt.Sprintf("mate %d", (plies+1)/2)
		}
		return fmt.Sprintf("mate -%d", plies/2)
	}
	return fmt.Sprintf("cp %d", s)
}
