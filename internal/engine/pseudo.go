package engine

import "github.com/lgbarn/chessrules/internal/chess"

// Direction offsets as {dRow, dCol}.
var (
	knightJumps = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookRays    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopRays  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenRays   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// raysFor returns the sliding directions of a slider kind.
func raysFor(kind chess.PieceKind) [][2]int {
	switch kind {
	case chess.Bishop:
		return bishopRays
	case chess.Rook:
		return rookRays
	case chess.Queen:
		return queenRays
	default:
		return nil
	}
}

// PseudoMoves returns every move of side that obeys piece movement,
// ignoring whether its own king is left in check. Castling candidates are
// included when their rights, empty squares and rook placement allow.
func PseudoMoves(board *chess.Board, side chess.Side, castling chess.CastlingRights, ep chess.Square) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	board.EachPiece(side, func(sq chess.Square, p chess.Piece) bool {
		moves = appendPieceMoves(moves, board, sq, p, ep)
		return true
	})
	return appendCastlingMoves(moves, board, side, castling)
}

// appendPieceMoves appends the movement-rule moves of the piece on from.
// Castling is not included.
func appendPieceMoves(dst []chess.Move, board *chess.Board, from chess.Square, p chess.Piece, ep chess.Square) []chess.Move {
	switch p.Kind {
	case chess.Pawn:
		return appendPawnMoves(dst, board, from, p.Side, ep)
	case chess.Knight:
		return appendStepMoves(dst, board, from, p.Side, knightJumps[:])
	case chess.King:
		return appendStepMoves(dst, board, from, p.Side, kingSteps[:])
	case chess.Bishop, chess.Rook, chess.Queen:
		return appendSlideMoves(dst, board, from, p.Side, raysFor(p.Kind))
	}
	return dst
}

// appendPawnMoves appends pushes, captures and en passant captures.
// A pawn already on its last rank yields the four promotion choices.
func appendPawnMoves(dst []chess.Move, board *chess.Board, from chess.Square, side chess.Side, ep chess.Square) []chess.Move {
	if from.Row == side.PromotionRow() {
		for _, kind := range chess.PromotionKinds {
			dst = append(dst, chess.NewPromotion(from, kind))
		}
		return dst
	}

	fwd := side.Forward()
	one := from.Offset(fwd, 0)
	if one.InBounds() && board.At(one).IsEmpty() {
		dst = append(dst, chess.NewMove(from, one))
		if from.Row == side.PawnRow() {
			two := one.Offset(fwd, 0)
			if two.InBounds() && board.At(two).IsEmpty() {
				dst = append(dst, chess.NewMove(from, two))
			}
		}
	}

	for _, dCol := range [2]int{-1, 1} {
		to := from.Offset(fwd, dCol)
		if !to.InBounds() {
			continue
		}
		target := board.At(to)
		if (!target.IsEmpty() && target.Side != side) || to == ep {
			dst = append(dst, chess.NewMove(from, to))
		}
	}
	return dst
}

// appendStepMoves appends single-step moves to squares not held by side.
func appendStepMoves(dst []chess.Move, board *chess.Board, from chess.Square, side chess.Side, steps [][2]int) []chess.Move {
	for _, d := range steps {
		to := from.Offset(d[0], d[1])
		if !to.InBounds() {
			continue
		}
		if target := board.At(to); target.IsEmpty() || target.Side != side {
			dst = append(dst, chess.NewMove(from, to))
		}
	}
	return dst
}

// appendSlideMoves walks each ray until the edge or the first occupied
// square, which is included when it holds an enemy piece.
func appendSlideMoves(dst []chess.Move, board *chess.Board, from chess.Square, side chess.Side, rays [][2]int) []chess.Move {
	for _, d := range rays {
		for to := from.Offset(d[0], d[1]); to.InBounds(); to = to.Offset(d[0], d[1]) {
			target := board.At(to)
			if target.IsEmpty() {
				dst = append(dst, chess.NewMove(from, to))
				continue
			}
			if target.Side != side {
				dst = append(dst, chess.NewMove(from, to))
			}
			break
		}
	}
	return dst
}
