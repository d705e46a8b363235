// Package engine implements the rules of chess on top of the board model:
// position codec, move generation, legality, state transitions and
// terminal-state detection.
package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/hashing"
)

// Phase distinguishes a position waiting for an ordinary move from one in
// which a pawn has reached its last rank and the promotion piece is still
// to be chosen.
type Phase interface {
	isPhase()
}

// Normal is the phase of every position without a pending promotion.
type Normal struct{}

// AwaitingPromotion is the phase after a pawn lands on its last rank.
// The side to move does not change until the promotion choice is applied.
type AwaitingPromotion struct {
	Square chess.Square
}

func (Normal) isPhase()            {}
func (AwaitingPromotion) isPhase() {}

// State is an immutable game position together with the history needed
// for repetition detection. Apply returns a new State and never changes
// the receiver, so states may be shared between goroutines.
type State struct {
	board    *chess.Board
	toMove   chess.Side
	castling chess.CastlingRights
	ep       chess.Square
	halfmove int
	fullmove int
	phase    Phase

	moves []chess.Move // applied moves, oldest first
	keys  []uint64     // position keys, starting position included

	inCheck bool
	legal   []chess.Move // legal moves by the movement rules alone
	result  Result
	rules   config.DrawRules
}

// NewInitialState returns the standard starting position with every
// draw rule enabled.
func NewInitialState() *State {
	return NewInitialStateWithRules(config.NewDrawRules())
}

// NewInitialStateWithRules returns the standard starting position using
// the given draw rules.
func NewInitialStateWithRules(rules config.DrawRules) *State {
	s := &State{
		board:    chess.NewInitialBoard(),
		toMove:   chess.White,
		castling: chess.AllCastling,
		ep:       chess.NoSquare,
		fullmove: 1,
		phase:    Normal{},
		rules:    rules,
	}
	s.keys = []uint64{s.computeKey()}
	s.finish()
	return s
}

// finish computes the derived fields of a freshly built state.
// The final entry of keys must already hold the state's own key.
func (s *State) finish() {
	s.inCheck = s.computeInCheck()
	s.legal = s.generateLegal()
	s.result = s.classify()
}

func (s *State) computeKey() uint64 {
	return hashing.PositionKey(s.board, s.toMove, s.castling, s.ep)
}

// Board returns a copy of the position's board.
func (s *State) Board() *chess.Board {
	return s.board.Clone()
}

// PieceAt returns the piece on the given square.
func (s *State) PieceAt(sq chess.Square) (chess.Piece, error) {
	return s.board.PieceAt(sq)
}

// CountPieces returns the number of pieces of the given kind and side.
func (s *State) CountPieces(kind chess.PieceKind, side chess.Side) int {
	return s.board.CountPieces(kind, side)
}

// ToMove returns the side to move.
func (s *State) ToMove() chess.Side {
	return s.toMove
}

// Castling returns the remaining castling rights.
func (s *State) Castling() chess.CastlingRights {
	return s.castling
}

// EnPassant returns the en passant target square, or NoSquare.
func (s *State) EnPassant() chess.Square {
	return s.ep
}

// HalfmoveClock returns the number of plies since the last capture or pawn move.
func (s *State) HalfmoveClock() int {
	return s.halfmove
}

// FullmoveNumber returns the move number, starting at 1 and incremented
// after each completed Black turn.
func (s *State) FullmoveNumber() int {
	return s.fullmove
}

// Phase returns the promotion phase of the position.
func (s *State) Phase() Phase {
	return s.phase
}

// PendingPromotion returns the square of a pawn awaiting its promotion
// choice. The second result is false in the Normal phase.
func (s *State) PendingPromotion() (chess.Square, bool) {
	if p, ok := s.phase.(AwaitingPromotion); ok {
		return p.Square, true
	}
	return chess.NoSquare, false
}

// InCheck reports whether the side to move is in check.
func (s *State) InCheck() bool {
	return s.inCheck
}

// LegalMoves returns the legal moves of the position. A terminal state has
// none. The returned slice is a copy.
func (s *State) LegalMoves() []chess.Move {
	if s.result.IsTerminal() {
		return nil
	}
	out := make([]chess.Move, len(s.legal))
	copy(out, s.legal)
	return out
}

// IsLegal reports whether m is among the legal moves of the position.
func (s *State) IsLegal(m chess.Move) bool {
	if s.result.IsTerminal() {
		return false
	}
	return containsMove(s.legal, m)
}

// Result returns the game outcome at this position.
func (s *State) Result() Result {
	return s.result
}

// IsTerminal reports whether the game is over at this position.
func (s *State) IsTerminal() bool {
	return s.result.IsTerminal()
}

// History returns the moves applied since the state's origin.
func (s *State) History() []chess.Move {
	out := make([]chess.Move, len(s.moves))
	copy(out, s.moves)
	return out
}

// Ply returns the number of moves applied since the state's origin.
func (s *State) Ply() int {
	return len(s.moves)
}

// Key returns the Zobrist key of the position.
func (s *State) Key() uint64 {
	return s.keys[len(s.keys)-1]
}

// RepetitionCount returns how many times the current position has
// occurred, this occurrence included.
func (s *State) RepetitionCount() int {
	key := s.Key()
	n := 0
	for _, k := range s.keys {
		if k == key {
			n++
		}
	}
	return n
}

// DrawRules returns the draw rules the state was built with.
func (s *State) DrawRules() config.DrawRules {
	return s.rules
}

// WithDrawRules returns a copy of the state classified under different
// draw rules. History is shared, never modified.
func (s *State) WithDrawRules(rules config.DrawRules) *State {
	c := *s
	c.rules = rules
	c.result = c.classify()
	return &c
}

func containsMove(moves []chess.Move, m chess.Move) bool {
	for _, lm := range moves {
		if lm == m {
			return true
		}
	}
	return false
}
