// Package chessrules implements the rules of standard chess for search
// engines: legal move generation, immutable state transitions with
// two-phase promotion, checkmate, stalemate and draw detection, FEN and
// perft.
package chessrules

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
)

// Re-exported core types.
type (
	State      = engine.State
	Result     = engine.Result
	ResultKind = engine.ResultKind
	Move       = chess.Move
	Square     = chess.Square
	Side       = chess.Side
	PieceKind  = chess.PieceKind
	Piece      = chess.Piece
	Config     = config.Config
	DrawRules  = config.DrawRules
)

// Sides.
const (
	White = chess.White
	Black = chess.Black
)

// Piece kinds.
const (
	Pawn   = chess.Pawn
	Knight = chess.Knight
	Bishop = chess.Bishop
	Rook   = chess.Rook
	Queen  = chess.Queen
	King   = chess.King
)

// InitialFEN is the standard starting position.
const InitialFEN = engine.InitialFEN

// ParseMove parses a move in coordinate notation such as "e2e4" or the
// promotion choice "e8e8q".
func ParseMove(text string) (Move, error) {
	return chess.ParseMove(text)
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return config.NewConfig()
}

// Game is the contract a search engine drives: it enumerates actions,
// produces successor states and reports outcomes. All methods are safe for
// concurrent use because states are immutable.
type Game struct {
	rules DrawRules
}

// NewGame returns a Game using the draw rules of cfg. A nil cfg enables
// every draw rule.
func NewGame(cfg *Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Game{rules: cfg.Draws}
}

// Initial returns the standard starting position.
func (g *Game) Initial() *State {
	return engine.NewInitialStateWithRules(g.rules)
}

// Load parses a FEN position.
func (g *Game) Load(fen string) (*State, error) {
	return engine.ParseFENWithRules(fen, g.rules)
}

// Actions returns the legal moves of s; none once the game is over.
func (g *Game) Actions(s *State) []Move {
	return s.LegalMoves()
}

// Result returns the state after m. s itself is unchanged.
func (g *Game) Result(s *State, m Move) (*State, error) {
	return s.Apply(m)
}

// Terminal reports whether the game is over at s.
func (g *Game) Terminal(s *State) bool {
	return s.IsTerminal()
}

// ToMove returns the side to move at s.
func (g *Game) ToMove(s *State) Side {
	return s.ToMove()
}

// Winner returns the side that delivered checkmate. The second result is
// false for unfinished and drawn games.
func (g *Game) Winner(s *State) (Side, bool) {
	r := s.Result()
	if r.Kind != engine.Checkmate {
		return White, false
	}
	return r.Winner, true
}

// Utility scores s from side's point of view: 1 for a win, -1 for a loss
// and 0 otherwise.
func (g *Game) Utility(s *State, side Side) int {
	winner, ok := g.Winner(s)
	switch {
	case !ok:
		return 0
	case winner == side:
		return 1
	default:
		return -1
	}
}

// PieceCount returns the number of pieces of the given kind and side at s.
func (g *Game) PieceCount(s *State, kind PieceKind, side Side) int {
	return s.CountPieces(kind, side)
}
