package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/stalemate/board"
)

// Counters holds the perft leaf statistics, as tabulated on
// https://www.chessprogramming.org/Perft_Results.
type Counters struct {
	Nodes uint64
	Cap   uint64
	Enp   uint64
	Cas   uint64
	Pro   uint64
	Chk   uint64
}

func (c *Counters) add(o *Counters) {
	atomic.AddUint64(&c.Nodes, o.Nodes)
	atomic.AddUint64(&c.Cap, o.Cap)
	atomic.AddUint64(&c.Enp, o.Enp)
	atomic.AddUint64(&c.Cas, o.Cas)
	atomic.AddUint64(&c.Pro, o.Pro)
	atomic.AddUint64(&c.Chk, o.Chk)
}

// Perft counts the leaves of the move tree of fen to the given depth and
// writes a summary line to out. With verbose, the subtotal of each root
// move is written first. With parallel, root moves are explored concurrently.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	var c Counters
	start := time.Now()
	run(b, depth, verbose, out, &c)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, c.Nodes, int(float64(c.Nodes)/(end.Sub(start)+1).Seconds()), c.Cap, c.Enp, c.Cas, c.Pro, c.Chk, end.Sub(start).Seconds())

	return nil
}

type perftFunc func(b *board.Board, d int, verbose bool, out chan string, c *Counters) uint64

func runPerft(b *board.Board, d int, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateMoves() {
		child := countMove(b, mv, d, c)
		if verbose {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateMoves() {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local Counters
			child := countMove(b, mv, d, &local)
			c.add(&local)
			if verbose {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// countMove plays mv on b and counts the leaves below it, d being the depth
// at b.
func countMove(b *board.Board, mv board.Move, d int, c *Counters) uint64 {
	bb, err := b.Apply(mv)
	if err != nil {
		return 0
	}
	if d > 1 {
		var sum uint64
		for _, next := range bb.GenerateMoves() {
			sum += countMove(bb, next, d-1, c)
		}
		return sum
	}

	c.Nodes++
	if mv.IsCapture {
		c.Cap++
	}
	if mv.IsEnPassant {
		c.Enp++
	}
	if mv.IsCastle != board.CastleDirectionUnknown {
		c.Cas++
	}
	if mv.IsPromote != board.PieceUnknown {
		c.Pro++
	}
	if bb.IsKingChecked(bb.Turn()) {
		c.Chk++
	}
	return 1
}
