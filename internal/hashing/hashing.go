// Package hashing provides Zobrist position keys for repetition detection
// and a concurrent cache of perft node counts keyed by position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules/internal/chess"
)

// zobristSeed fixes the key tables so keys are stable between runs.
const zobristSeed = 0x5EED_C0DE

var (
	pieceKeys     [chess.NumBuckets][chess.NumSquares]uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackKey      uint64
)

func init() {
	rnd := rand.New(rand.NewSource(zobristSeed))

	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = rnd.Uint64()
		}
	}
	for cr := range castlingKeys {
		castlingKeys[cr] = rnd.Uint64()
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rnd.Uint64()
	}
	blackKey = rnd.Uint64()
}

// PieceKey returns the key contribution of piece p standing on sq.
// It returns 0 for the empty piece and for off-board squares.
func PieceKey(p chess.Piece, sq chess.Square) uint64 {
	if p.IsEmpty() || !sq.InBounds() {
		return 0
	}
	return pieceKeys[(int(p.Kind)-1)*2+int(p.Side)][sq.Index()]
}

// PositionKey computes the Zobrist key of a position: piece placement,
// side to move, castling rights and en passant file. Two positions that
// are equal for repetition purposes have equal keys.
func PositionKey(board *chess.Board, toMove chess.Side, castling chess.CastlingRights, ep chess.Square) uint64 {
	var key uint64

	for _, side := range []chess.Side{chess.White, chess.Black} {
		board.EachPiece(side, func(sq chess.Square, p chess.Piece) bool {
			key ^= PieceKey(p, sq)
			return true
		})
	}

	if toMove == chess.Black {
		key ^= blackKey
	}

	key ^= castlingKeys[castling&chess.AllCastling]

	if ep.InBounds() {
		key ^= enPassantKeys[ep.Col]
	}

	return key
}
