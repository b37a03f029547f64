package board

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/notnil/chess"
)

// TestAgainstReferenceLibrary plays seeded random games and compares the legal
// moves and their SAN at every ply with github.com/notnil/chess.
func TestAgainstReferenceLibrary(t *testing.T) {
	t.Parallel()
	fens := []string{
		DefaultStartingPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	const plies = 60

	for i, fen := range fens {
		i, fen := i, fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewSource(int64(i + 1)))
			opt, err := chess.FEN(fen)
			if err != nil {
				t.Fatal("reference rejected FEN:", err)
			}
			ref := chess.NewGame(opt).Position()
			b := MustNewBoard(WithFEN(fen))

			for ply := 0; ply < plies; ply++ {
				want := map[string]string{}
				refMoves := map[string]*chess.Move{}
				for _, mv := range ref.ValidMoves() {
					uci := chess.UCINotation{}.Encode(ref, mv)
					want[uci] = chess.AlgebraicNotation{}.Encode(ref, mv)
					refMoves[uci] = mv
				}
				mvs := b.GenerateMoves()
				got := map[string]string{}
				for _, mv := range mvs {
					got[mv.UCI()] = b.SAN(mv)
				}
				if len(got) != len(want) {
					t.Fatalf("ply %d %s: unexpected move count: got=%d want=%d\ngot=%v\nwant=%v", ply, b.FEN(), len(got), len(want), sortedKeys(got), sortedKeys(want))
				}
				for uci, san := range want {
					if got[uci] != san {
						t.Fatalf("ply %d %s: unexpected SAN for %s: got=%q want=%q", ply, b.FEN(), uci, got[uci], san)
					}
				}
				if len(mvs) == 0 {
					return
				}

				mv := mvs[rng.Intn(len(mvs))]
				next, err := b.Apply(mv)
				if err != nil {
					t.Fatalf("ply %d: unexpected error: %v", ply, err)
				}
				b, ref = next, ref.Update(refMoves[mv.UCI()])
				if got, want := placement(b.FEN()), placement(ref.String()); got != want {
					t.Fatalf("ply %d after %s: unexpected position: got=%s want=%s", ply, mv, got, want)
				}
			}
		})
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// placement keeps the piece placement, turn and castling fields of a FEN.
func placement(fen string) string {
	return strings.Join(strings.SplitN(fen, " ", 4)[:3], " ")
}
