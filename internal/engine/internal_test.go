package engine

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
)

func TestAbsSign(t *testing.T) {
	tests := []struct {
		in, abs, sign int
	}{
		{-3, 3, -1},
		{0, 0, 0},
		{2, 2, 1},
	}
	for _, tt := range tests {
		if got := abs(tt.in); got != tt.abs {
			t.Errorf("abs(%d) = %d; want %d", tt.in, got, tt.abs)
		}
		if got := sign(tt.in); got != tt.sign {
			t.Errorf("sign(%d) = %d; want %d", tt.in, got, tt.sign)
		}
	}
}

func TestAttackedAgreesWithDangerZone(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		s := MustParseFEN(fen)
		for _, side := range []chess.Side{chess.White, chess.Black} {
			zone := DangerZone(s.board, side, chess.NoSquare)
			for row := 0; row < chess.BoardSize; row++ {
				for col := 0; col < chess.BoardSize; col++ {
					sq := chess.Sq(row, col)
					if got, want := attacked(s.board, sq, side), zone.Has(sq); got != want {
						t.Errorf("%s: attacked(%s, %s) = %v; DangerZone says %v", fen, sq, side, got, want)
					}
				}
			}
		}
	}
}

func TestCastleFor(t *testing.T) {
	spec, ok := castleFor(chess.White, chess.MustParseMove("e1g1"))
	if !ok {
		t.Fatal("e1g1 not recognised as castling")
	}
	if spec.rookFrom != chess.MustSquare("h1") || spec.rookTo != chess.MustSquare("f1") {
		t.Errorf("kingside rook %s -> %s; want h1 -> f1", spec.rookFrom, spec.rookTo)
	}
	if _, ok := castleFor(chess.White, chess.MustParseMove("e1f1")); ok {
		t.Error("e1f1 recognised as castling")
	}
	if _, ok := castleFor(chess.Black, chess.MustParseMove("e1c1")); ok {
		t.Error("e1c1 recognised as castling for Black")
	}
}

func TestUpdateCastling(t *testing.T) {
	got := updateCastling(chess.AllCastling, chess.MustSquare("e8"), chess.MustSquare("e7"))
	if want := chess.WhiteKingside | chess.WhiteQueenside; got != want {
		t.Errorf("after black king move: %s; want %s", got, want)
	}
	got = updateCastling(chess.AllCastling, chess.MustSquare("b2"), chess.MustSquare("h8"))
	if want := chess.AllCastling.Without(chess.BlackKingside); got != want {
		t.Errorf("after capture on h8: %s; want %s", got, want)
	}
}
