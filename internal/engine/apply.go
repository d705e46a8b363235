package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Apply plays m and returns the resulting state. The receiver is never
// modified. The move is rejected before any board is touched when the
// game is over, a square is off the board, the promotion does not match
// the phase, or the move is not legal.
func (s *State) Apply(m chess.Move) (*State, error) {
	if err := s.validate(m); err != nil {
		return nil, &errors.MoveError{
			Err:      err,
			MoveText: moveText(m, s.toMove),
			PlyNum:   len(s.moves) + 1,
			Side:     s.toMove.String(),
		}
	}
	return s.advance(m), nil
}

// ApplyAll plays moves in order and returns the final state.
// It stops at the first rejected move.
func (s *State) ApplyAll(moves ...chess.Move) (*State, error) {
	cur := s
	for _, m := range moves {
		next, err := cur.Apply(m)
		if err != nil {
			return cur, err
		}
		cur = next
	}
	return cur, nil
}

// moveText renders a move for error messages, including moves whose
// squares are off the board.
func moveText(m chess.Move, side chess.Side) string {
	if m.InBounds() {
		return m.Notation(side)
	}
	return fmt.Sprintf("(%d,%d)-(%d,%d)", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

func (s *State) validate(m chess.Move) error {
	if s.result.IsTerminal() {
		return fmt.Errorf("game already finished (%s): %w", s.result, errors.ErrInvalidMove)
	}
	if !m.InBounds() {
		return errors.ErrOutOfBounds
	}

	if sq, pending := s.PendingPromotion(); pending {
		if !m.IsPromotionChoice() || m.From != sq || !chess.IsPromotionKind(m.Promotion) {
			return fmt.Errorf("pawn on %s awaits a promotion choice: %w", sq, errors.ErrInvalidPromotion)
		}
		return nil
	}
	if m.IsPromotion() {
		return fmt.Errorf("no promotion pending: %w", errors.ErrInvalidPromotion)
	}

	if !containsMove(s.legal, m) {
		return errors.ErrInvalidMove
	}
	return nil
}

// advance builds the successor of s after the legal move m.
func (s *State) advance(m chess.Move) *State {
	side := s.toMove
	next := &State{
		board:    s.board.Clone(),
		toMove:   side,
		castling: s.castling,
		ep:       chess.NoSquare,
		halfmove: s.halfmove,
		fullmove: s.fullmove,
		phase:    Normal{},
		rules:    s.rules,
	}

	if _, pending := s.PendingPromotion(); pending {
		next.board.Place(m.From, chess.NewPiece(m.Promotion, side))
		next.endTurn()
	} else {
		next.playNormal(m, s.ep)
	}

	// Three-index slices keep siblings from sharing a backing array.
	next.moves = append(s.moves[:len(s.moves):len(s.moves)], m)
	next.keys = append(s.keys[:len(s.keys):len(s.keys)], next.computeKey())
	next.finish()
	return next
}

// playNormal performs an ordinary move on the state's own board and
// updates the bookkeeping: castling rights, en passant, clocks and phase.
func (s *State) playNormal(m chess.Move, ep chess.Square) {
	side := s.toMove
	piece := s.board.At(m.From)
	capture := !s.board.At(m.To).IsEmpty()

	if piece.Kind == chess.Pawn && m.To == ep && m.From.Col != m.To.Col {
		s.board.Place(chess.Sq(m.From.Row, m.To.Col), chess.Empty)
		capture = true
	}
	s.board.Relocate(m.From, m.To)

	if piece.Kind == chess.King {
		if spec, ok := castleFor(side, m); ok {
			s.board.Relocate(spec.rookFrom, spec.rookTo)
		}
	}

	s.castling = updateCastling(s.castling, m.From, m.To)

	if piece.Kind == chess.Pawn && abs(m.To.Row-m.From.Row) == 2 {
		if enemyPawnBeside(s.board, m.To, side.Opponent()) {
			s.ep = chess.Sq(m.From.Row+sign(m.To.Row-m.From.Row), m.From.Col)
		}
	}

	if capture || piece.Kind == chess.Pawn {
		s.halfmove = 0
	} else {
		s.halfmove++
	}

	if piece.Kind == chess.Pawn && m.To.Row == side.PromotionRow() {
		s.phase = AwaitingPromotion{Square: m.To}
		return
	}
	s.endTurn()
}

// endTurn passes the move to the opponent.
func (s *State) endTurn() {
	if s.toMove == chess.Black {
		s.fullmove++
	}
	s.toMove = s.toMove.Opponent()
}

// enemyPawnBeside reports whether a pawn of side stands next to sq on its rank.
func enemyPawnBeside(board *chess.Board, sq chess.Square, side chess.Side) bool {
	pawn := chess.NewPiece(chess.Pawn, side)
	return board.At(sq.Offset(0, -1)) == pawn || board.At(sq.Offset(0, 1)) == pawn
}
