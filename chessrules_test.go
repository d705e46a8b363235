package chessrules_test

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chessrules"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func mustMove(t *testing.T, text string) chessrules.Move {
	t.Helper()
	m, err := chessrules.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

func TestGameContract(t *testing.T) {
	g := chessrules.NewGame(nil)
	s := g.Initial()

	testutil.AssertEqual(t, len(g.Actions(s)), 20)
	testutil.AssertEqual(t, g.ToMove(s), chessrules.White)
	testutil.AssertFalse(t, g.Terminal(s), "initial position is not terminal")
	testutil.AssertEqual(t, g.PieceCount(s, chessrules.Pawn, chessrules.Black), 8)

	next, err := g.Result(s, mustMove(t, "e2e4"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.ToMove(next), chessrules.Black)
	testutil.AssertEqual(t, g.ToMove(s), chessrules.White, "Result changed its input")

	_, err = g.Result(s, mustMove(t, "e2e5"))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
}

func TestGameWinner(t *testing.T) {
	g := chessrules.NewGame(nil)

	mated, err := g.Load("7k/6Q1/6K1/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)
	winner, ok := g.Winner(mated)
	testutil.AssertTrue(t, ok, "checkmate has a winner")
	testutil.AssertEqual(t, winner, chessrules.White)
	testutil.AssertEqual(t, g.Utility(mated, chessrules.White), 1)
	testutil.AssertEqual(t, g.Utility(mated, chessrules.Black), -1)
	testutil.AssertEqual(t, len(g.Actions(mated)), 0)

	drawn, err := g.Load("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)
	_, ok = g.Winner(drawn)
	testutil.AssertFalse(t, ok, "stalemate has no winner")
	testutil.AssertTrue(t, g.Terminal(drawn), "stalemate is terminal")
	testutil.AssertEqual(t, g.Utility(drawn, chessrules.White), 0)

	_, ok = g.Winner(g.Initial())
	testutil.AssertFalse(t, ok, "unfinished game has no winner")
}

func TestGameUsesConfiguredDrawRules(t *testing.T) {
	cfg := config.NewConfigBuilder().WithDrawRules(config.NoDraws()).Build()
	g := chessrules.NewGame(cfg)

	s, err := g.Load("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, g.Terminal(s), "draws disabled")

	strict, err := chessrules.NewGame(nil).Load("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, strict.IsTerminal(), "bare kings drawn by default")
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		depth     int
		wantMoves int
		wantTotal uint64
	}{
		{"initial", chessrules.InitialFEN, 3, 20, 8902},
		{"kiwipete", testutil.KiwipeteFEN, 2, 48, 2039},
		{"promotion", testutil.PromotionFEN, 2, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.MustState(t, tt.fen)
			cfg := config.NewConfigBuilder().WithLogFile(nil).WithWorkers(4).Build()

			got, err := chessrules.Divide(s, tt.depth, cfg)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(got.Counts), tt.wantMoves)
			testutil.AssertEqual(t, got.Total, chessrules.Perft(s, tt.depth))
			if tt.wantTotal != 0 {
				testutil.AssertEqual(t, got.Total, tt.wantTotal)
			}

			var sum uint64
			for _, text := range got.Moves() {
				sum += got.Counts[text]
			}
			testutil.AssertEqual(t, sum, got.Total)
		})
	}
}

func TestDivideInitialCounts(t *testing.T) {
	s := testutil.MustState(t, "")
	got, err := chessrules.Divide(s, 2, config.NewConfigBuilder().WithLogFile(nil).Build())
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, got.Counts["e2e4"], uint64(20))
	testutil.AssertEqual(t, got.Counts["g1f3"], uint64(20))
	testutil.AssertEqual(t, got.Moves()[0], "a2a3")
	testutil.AssertEqual(t, got.Depth, 2)
}

func TestDivideWithNodeCache(t *testing.T) {
	s := testutil.MustState(t, testutil.KiwipeteFEN)
	plain, err := chessrules.Divide(s, 2, config.NewConfigBuilder().WithLogFile(nil).Build())
	testutil.AssertNoError(t, err)

	cached, err := chessrules.Divide(s, 2, config.NewConfigBuilder().WithLogFile(nil).WithNodeCache(1024).Build())
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, cached.Counts, plain.Counts)
}

func TestDivideLogging(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithLogFile(&buf).WithVerbosity(2).Build()

	_, err := chessrules.Divide(testutil.MustState(t, ""), 1, cfg)
	testutil.AssertNoError(t, err)

	out := buf.String()
	testutil.AssertContains(t, out, "e2e4: 1\n")
	testutil.AssertContains(t, out, "depth 1: 20 moves, 20 nodes")

	buf.Reset()
	cfg.Verbosity = 1
	_, err = chessrules.Divide(testutil.MustState(t, ""), 1, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertNotContains(t, buf.String(), "e2e4")
	testutil.AssertContains(t, buf.String(), "20 nodes")
}

func TestDivideErrors(t *testing.T) {
	s := testutil.MustState(t, "")

	_, err := chessrules.Divide(s, 0, nil)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	testutil.AssertContains(t, err.Error(), "divide depth 0")

	cfg := config.NewConfigBuilder().WithWorkers(0).Build()
	_, err = chessrules.Divide(s, 2, cfg)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	testutil.AssertContains(t, err.Error(), "divide: ")
}

func TestDivideSmallBuffer(t *testing.T) {
	s := testutil.MustState(t, testutil.KiwipeteFEN)
	cfg := config.NewConfigBuilder().WithWorkers(2).WithBufferSize(1).WithLogFile(nil).Build()

	got, err := chessrules.Divide(s, 2, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(got.Counts), 48)
	testutil.AssertEqual(t, got.Total, uint64(2039))
}

func TestDividePendingPromotion(t *testing.T) {
	s := testutil.MustPlay(t, testutil.MustState(t, testutil.PromotionFEN), "a7a8")
	got, err := chessrules.Divide(s, 1, config.NewConfigBuilder().WithLogFile(nil).Build())
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, got.Moves(), []string{"a8a8B", "a8a8N", "a8a8Q", "a8a8R"})
	testutil.AssertEqual(t, got.Total, chessrules.Perft(s, 1))
}
