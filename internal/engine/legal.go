package engine

import "github.com/lgbarn/chessrules/internal/chess"

// generateLegal returns the moves of the side to move that do not leave
// its own king capturable. It ignores draw results.
func (s *State) generateLegal() []chess.Move {
	if sq, ok := s.PendingPromotion(); ok {
		return promotionChoices(sq)
	}
	return LegalMovesFor(s.board, s.toMove, s.castling, s.ep, s.inCheck)
}

// promotionChoices returns the four promotion choices for the pawn on sq.
func promotionChoices(sq chess.Square) []chess.Move {
	moves := make([]chess.Move, 0, len(chess.PromotionKinds))
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.NewPromotion(sq, kind))
	}
	return moves
}

// LegalMovesFor filters the pseudo-moves of side down to the legal ones.
// King moves are checked against the opponent's danger zone, computed
// once with the king's own square treated as empty; castling also needs
// the king out of check and its passed-over square safe. Every other move
// is tried on a scratch board and rejected if it exposes the king.
func LegalMovesFor(board *chess.Board, side chess.Side, castling chess.CastlingRights, ep chess.Square, inCheck bool) []chess.Move {
	pseudo := PseudoMoves(board, side, castling, ep)
	kingSq, hasKing := board.King(side)
	if !hasKing {
		return pseudo
	}

	opp := side.Opponent()
	danger := DangerZone(board, opp, kingSq)
	scratch := chess.NewBoard()

	legal := pseudo[:0]
	for _, m := range pseudo {
		if m.From == kingSq {
			if danger.Has(m.To) {
				continue
			}
			if spec, ok := castleFor(side, m); ok {
				if inCheck || danger.Has(m.From) || danger.Has(spec.passed) {
					continue
				}
			}
			legal = append(legal, m)
			continue
		}

		scratch.CopyFrom(board)
		playOnBoard(scratch, m, ep)
		if !attacked(scratch, kingSq, opp) {
			legal = append(legal, m)
		}
	}
	return legal
}

// playOnBoard moves pieces for a non-king move without any bookkeeping:
// relocation, capture and en passant pawn removal.
func playOnBoard(board *chess.Board, m chess.Move, ep chess.Square) {
	if m.IsPromotionChoice() {
		return
	}
	p := board.At(m.From)
	if p.Kind == chess.Pawn && m.To == ep && m.From.Col != m.To.Col {
		board.Place(chess.Sq(m.From.Row, m.To.Col), chess.Empty)
	}
	board.Relocate(m.From, m.To)
}

// computeInCheck reports whether the side to move's king can be captured
// by the side that just moved. Every opposing piece is considered, so
// discovered checks count.
func (s *State) computeInCheck() bool {
	return kingExposed(s.board, s.toMove)
}
