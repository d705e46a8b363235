package engine_test

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/testutil"
)

const (
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

type perftCase struct {
	name  string
	fen   string
	depth int
	want  uint64
	slow  bool
}

var perftCases = []perftCase{
	{"initial/1", engine.InitialFEN, 1, 20, false},
	{"initial/2", engine.InitialFEN, 2, 400, false},
	{"initial/3", engine.InitialFEN, 3, 8902, false},
	{"initial/4", engine.InitialFEN, 4, 197281, true},
	{"kiwipete/1", testutil.KiwipeteFEN, 1, 48, false},
	{"kiwipete/2", testutil.KiwipeteFEN, 2, 2039, false},
	{"kiwipete/3", testutil.KiwipeteFEN, 3, 97862, true},
	{"en passant/1", testutil.EnPassantFEN, 1, 5, false},
	{"en passant/2", testutil.EnPassantFEN, 2, 19, false},
	{"promotion/1", testutil.PromotionFEN, 1, 11, false},
	{"position3/1", position3FEN, 1, 14, false},
	{"position3/2", position3FEN, 2, 191, false},
	{"position3/3", position3FEN, 3, 2812, false},
	{"position3/4", position3FEN, 4, 43238, true},
	{"position4/1", position4FEN, 1, 6, false},
	{"position4/2", position4FEN, 2, 264, false},
	{"position4/3", position4FEN, 3, 9467, false},
	{"position5/1", position5FEN, 1, 44, false},
	{"position5/2", position5FEN, 2, 1486, false},
	{"position5/3", position5FEN, 3, 62379, true},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.slow && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			s := testutil.MustState(t, tt.fen)
			testutil.AssertEqual(t, engine.Perft(s, tt.depth), tt.want)
		})
	}
}

func TestPerftDepthZero(t *testing.T) {
	testutil.AssertEqual(t, engine.Perft(engine.NewInitialState(), 0), uint64(1))
}

func TestPerftTerminal(t *testing.T) {
	mate := testutil.MustState(t, "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1")
	testutil.AssertEqual(t, engine.Perft(mate, 3), uint64(0))
}

func TestPerftIgnoresDraws(t *testing.T) {
	drawn := testutil.MustState(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertTrue(t, drawn.IsTerminal(), "bare kings are drawn")
	testutil.AssertEqual(t, engine.Perft(drawn, 1), uint64(5))
}

func TestPerftPendingPromotion(t *testing.T) {
	landed := apply(testutil.MustState(t, testutil.PromotionFEN), "a7a8")

	for depth := 0; depth <= 2; depth++ {
		var want uint64
		for _, choice := range landed.LegalMoves() {
			next, err := landed.Apply(choice)
			testutil.AssertNoError(t, err)
			want += engine.Perft(next, depth)
		}
		testutil.AssertEqual(t, engine.Perft(landed, depth), want, "depth %d", depth)
	}
}

func TestPerftCachedMatchesPerft(t *testing.T) {
	cache := hashing.NewNodeCache(1 << 16)

	for _, tt := range perftCases {
		if tt.slow {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.MustState(t, tt.fen)
			testutil.AssertEqual(t, engine.PerftCached(s, tt.depth, cache), tt.want)
		})
	}

	before, _ := cache.Stats()
	testutil.AssertEqual(t, engine.PerftCached(engine.NewInitialState(), 3, cache), uint64(8902))
	after, _ := cache.Stats()
	testutil.AssertTrue(t, after > before, "repeated search missed the cache")
}

func TestDivideSumsToPerft(t *testing.T) {
	tests := []struct {
		name  string
		state *engine.State
		depth int
	}{
		{"initial", engine.NewInitialState(), 3},
		{"kiwipete", testutil.MustState(t, testutil.KiwipeteFEN), 2},
		{"promotion", testutil.MustState(t, testutil.PromotionFEN), 2},
		{"pending", apply(testutil.MustState(t, testutil.PromotionFEN), "a7a8"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sum uint64
			for _, m := range engine.RootMoves(tt.state) {
				next, err := engine.Successor(tt.state, m)
				if err != nil {
					t.Fatalf("Successor(%s): %v", m, err)
				}
				sum += engine.Perft(next, engine.SubtreeDepth(tt.state, tt.depth))
			}
			testutil.AssertEqual(t, sum, engine.Perft(tt.state, tt.depth))
		})
	}
}

func TestSuccessorContinuesPastDraws(t *testing.T) {
	s := testutil.MustState(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	roots := engine.RootMoves(s)
	testutil.AssertEqual(t, len(roots), 5)

	next, err := engine.Successor(s, roots[0])
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.Ply(), 1)
}

func ExamplePerft() {
	s := engine.NewInitialState()
	for depth := 1; depth <= 3; depth++ {
		fmt.Println(depth, engine.Perft(s, depth))
	}
	// Output:
	// 1 20
	// 2 400
	// 3 8902
}
