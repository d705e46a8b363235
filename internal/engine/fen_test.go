package engine_test

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		testutil.KiwipeteFEN,
		testutil.EnPassantFEN,
		testutil.PromotionFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/8/R3K3 b Q - 37 81",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			s, err := engine.ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error: %v", fen, err)
			}
			if got := s.FEN(); got != fen {
				t.Errorf("FEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestParseFENFields(t *testing.T) {
	s := testutil.MustState(t, "4k3/8/8/3pP3/8/8/8/4K2R w K d6 12 40")

	testutil.AssertEqual(t, s.ToMove(), chess.White)
	testutil.AssertEqual(t, s.Castling(), chess.WhiteKingside)
	testutil.AssertEqual(t, s.EnPassant(), chess.MustSquare("d6"))
	testutil.AssertEqual(t, s.HalfmoveClock(), 12)
	testutil.AssertEqual(t, s.FullmoveNumber(), 40)
	testutil.AssertEqual(t, s.Phase(), engine.Phase(engine.Normal{}))

	p, err := s.PieceAt(chess.MustSquare("h1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, p, chess.NewPiece(chess.Rook, chess.White))
}

func TestParseFENMalformed(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0"},
		{"seven fields", engine.InitialFEN + " extra"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"nine files", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"digit overflow", "rnbqkbnr/pppppppp/8/44p/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"digit nine", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"short rank", "rnbqkbnr/pppppppp/7/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"unknown piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1"},
		{"repeated castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKq - 0 1"},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1"},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1"},
		{"en passant wrong side", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e3 0 1"},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1"},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"},
		{"text halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - abc 1"},
		{"signed halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - +5 1"},
		{"signed fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 +1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ParseFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrMalformedPosition, "ParseFEN(%q)", tt.fen)
		})
	}
}

func TestParseFENIllegal(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"no white king", "k7/8/8/8/8/8/8/8 w - - 0 1"},
		{"two black kings", "k6k/8/8/8/8/8/8/K7 w - - 0 1"},
		{"white pawn on first rank", "k7/8/8/8/8/8/8/K6P w - - 0 1"},
		{"black pawn on eighth rank", "k6p/8/8/8/8/8/8/K7 w - - 0 1"},
		{"opponent pawn on promotion rank", "7k/8/8/8/8/8/8/p6K w - - 0 1"},
		{"two pending promotions", "PP5k/8/8/8/8/8/8/7K w - - 0 1"},
		{"side not to move in check", "k6R/8/8/8/8/8/8/K7 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ParseFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrIllegalPosition, "ParseFEN(%q)", tt.fen)
		})
	}
}

func TestParseFENPendingPromotion(t *testing.T) {
	s := testutil.MustState(t, "P6k/8/8/8/8/8/8/7K w - - 0 1")

	sq, ok := s.PendingPromotion()
	if !ok {
		t.Fatal("PendingPromotion() = false, want true")
	}
	testutil.AssertEqual(t, sq, chess.MustSquare("a8"))
	testutil.AssertEqual(t, s.LegalMoves(), testutil.Moves("a8a8q", "a8a8n", "a8a8b", "a8a8r"))
}

func TestParseFENDropsStaleCastling(t *testing.T) {
	tests := []struct {
		fen  string
		want chess.CastlingRights
	}{
		{"4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1", chess.NoCastling},
		{"r3k3/8/8/8/8/8/8/4K2R w KQkq - 0 1", chess.WhiteKingside | chess.BlackQueenside},
		{"r3k2r/8/8/8/8/8/8/R2K3R w KQkq - 0 1", chess.BlackKingside | chess.BlackQueenside},
	}

	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			s := testutil.MustState(t, tt.fen)
			testutil.AssertEqual(t, s.Castling(), tt.want)
		})
	}
}

func TestParseFENErrorContext(t *testing.T) {
	_, err := engine.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")

	var perr *errors.ParseError
	if !asParseError(err, &perr) {
		t.Fatalf("error %v is not a ParseError", err)
	}
	testutil.AssertEqual(t, perr.Field, "side to move")
	testutil.AssertEqual(t, perr.Got, "x")
}
