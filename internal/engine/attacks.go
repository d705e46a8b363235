package engine

import (
	"math/bits"

	"github.com/lgbarn/chessrules/internal/chess"
)

// SquareSet is a set of board squares, one bit per Square.Index.
type SquareSet uint64

// Has returns true if sq is in the set. Off-board squares never are.
func (s SquareSet) Has(sq chess.Square) bool {
	return sq.InBounds() && s&(1<<uint(sq.Index())) != 0
}

// Count returns the number of squares in the set.
func (s SquareSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Squares returns the members of the set in index order (a8 first).
func (s SquareSet) Squares() []chess.Square {
	out := make([]chess.Square, 0, s.Count())
	for v := uint64(s); v != 0; v &= v - 1 {
		i := bits.TrailingZeros64(v)
		out = append(out, chess.Sq(i/chess.BoardSize, i%chess.BoardSize))
	}
	return out
}

func (s *SquareSet) add(sq chess.Square) {
	if sq.InBounds() {
		*s |= 1 << uint(sq.Index())
	}
}

// DangerZone returns every square the attacker's pieces could capture on.
// Pawns count their diagonals whether or not anything stands there, rays
// stop on and include the first occupied square of either colour, and the
// ignore square is treated as empty so a king cannot retreat along the
// ray of the slider that checks it. Pass NoSquare to ignore nothing.
func DangerZone(board *chess.Board, attacker chess.Side, ignore chess.Square) SquareSet {
	var zone SquareSet
	board.EachPiece(attacker, func(from chess.Square, p chess.Piece) bool {
		switch p.Kind {
		case chess.Pawn:
			fwd := attacker.Forward()
			zone.add(from.Offset(fwd, -1))
			zone.add(from.Offset(fwd, 1))
		case chess.Knight:
			for _, d := range knightJumps {
				zone.add(from.Offset(d[0], d[1]))
			}
		case chess.King:
			for _, d := range kingSteps {
				zone.add(from.Offset(d[0], d[1]))
			}
		default:
			for _, d := range raysFor(p.Kind) {
				for to := from.Offset(d[0], d[1]); to.InBounds(); to = to.Offset(d[0], d[1]) {
					zone.add(to)
					if to != ignore && !board.At(to).IsEmpty() {
						break
					}
				}
			}
		}
		return true
	})
	return zone
}

// attacked reports whether any piece of side by could capture on sq.
// It looks outwards from sq instead of generating the attacker's moves.
func attacked(board *chess.Board, sq chess.Square, by chess.Side) bool {
	// A pawn of side by attacks sq from one row behind it.
	pawn := chess.NewPiece(chess.Pawn, by)
	for _, dCol := range [2]int{-1, 1} {
		if board.At(sq.Offset(-by.Forward(), dCol)) == pawn {
			return true
		}
	}

	knight := chess.NewPiece(chess.Knight, by)
	for _, d := range knightJumps {
		if board.At(sq.Offset(d[0], d[1])) == knight {
			return true
		}
	}

	king := chess.NewPiece(chess.King, by)
	for _, d := range kingSteps {
		if board.At(sq.Offset(d[0], d[1])) == king {
			return true
		}
	}

	queen := chess.NewPiece(chess.Queen, by)
	if rayHits(board, sq, rookRays, chess.NewPiece(chess.Rook, by), queen) {
		return true
	}
	return rayHits(board, sq, bishopRays, chess.NewPiece(chess.Bishop, by), queen)
}

// rayHits reports whether the first piece along any ray from sq is a or b.
func rayHits(board *chess.Board, sq chess.Square, rays [][2]int, a, b chess.Piece) bool {
	for _, d := range rays {
		for to := sq.Offset(d[0], d[1]); to.InBounds(); to = to.Offset(d[0], d[1]) {
			p := board.At(to)
			if p.IsEmpty() {
				continue
			}
			if p == a || p == b {
				return true
			}
			break
		}
	}
	return false
}

// kingExposed reports whether side's king can be captured by the opponent
// on board. A side without a king is never exposed.
func kingExposed(board *chess.Board, side chess.Side) bool {
	king, ok := board.King(side)
	if !ok {
		return false
	}
	return attacked(board, king, side.Opponent())
}
