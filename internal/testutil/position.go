package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
)

// Reference positions with well-known perft counts.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	EnPassantFEN = "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	PromotionFEN = "1n5k/P7/8/8/8/8/8/7K w - - 0 1"
)

// MustState parses a FEN string with every draw rule enabled.
// It calls t.Fatal if parsing fails. An empty string yields the
// standard starting position.
func MustState(t testing.TB, fen string) *engine.State {
	t.Helper()
	return MustStateWithRules(t, fen, config.NewDrawRules())
}

// MustStateWithRules parses a FEN string using the given draw rules.
// It calls t.Fatal if parsing fails.
func MustStateWithRules(t testing.TB, fen string, rules config.DrawRules) *engine.State {
	t.Helper()
	if fen == "" {
		return engine.NewInitialStateWithRules(rules)
	}
	s, err := engine.ParseFENWithRules(fen, rules)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return s
}

// Moves parses coordinate-notation moves. It panics on malformed input,
// so it is meant for literal move lists.
func Moves(texts ...string) []chess.Move {
	moves := make([]chess.Move, 0, len(texts))
	for _, text := range texts {
		moves = append(moves, chess.MustParseMove(text))
	}
	return moves
}

// MustPlay applies the moves in order and returns the final state.
// It calls t.Fatal at the first rejected move.
func MustPlay(t testing.TB, s *engine.State, texts ...string) *engine.State {
	t.Helper()
	for i, text := range texts {
		m, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("move %d %q: %v", i+1, text, err)
		}
		next, err := s.Apply(m)
		if err != nil {
			t.Fatalf("move %d %q from %s: %v", i+1, text, s.FEN(), err)
		}
		s = next
	}
	return s
}
