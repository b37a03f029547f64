package game

import "github.com/daystram/stalemate/board"

// RepetitionTracker counts how often each position has occurred along the
// current line of play. Record and Undo must be called in lockstep with the
// owner's move history.
type RepetitionTracker struct {
	keys   []string
	counts map[string]int
}

// NewRepetitionTracker starts tracking with b as the first recorded position.
func NewRepetitionTracker(b *board.Board) *RepetitionTracker {
	r := &RepetitionTracker{}
	r.Reset(b)
	return r
}

// Record pushes the key of b and returns how many times it has now occurred.
func (r *RepetitionTracker) Record(b *board.Board) int {
	key := b.PositionKey()
	r.keys = append(r.keys, key)
	r.counts[key]++
	return r.counts[key]
}

// Undo rolls back the latest Record.
func (r *RepetitionTracker) Undo() {
	if len(r.keys) == 0 {
		return
	}
	key := r.keys[len(r.keys)-1]
	r.keys = r.keys[:len(r.keys)-1]
	if r.counts[key] <= 1 {
		delete(r.counts, key)
		return
	}
	r.counts[key]--
}

// Reset clears all tracking and records b as the new baseline.
func (r *RepetitionTracker) Reset(b *board.Board) {
	r.keys = r.keys[:0]
	r.counts = make(map[string]int)
	r.Record(b)
}

func (r *RepetitionTracker) Count(b *board.Board) int {
	return r.counts[b.PositionKey()]
}

func (r *RepetitionTracker) Len() int {
	return len(r.keys)
}
