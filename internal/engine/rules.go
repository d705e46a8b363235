package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
)

// ResultKind classifies the outcome at a position.
type ResultKind int

const (
	NoResult ResultKind = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMove
	SeventyFiveMove
	ThreefoldRepetition
	FivefoldRepetition
)

// Clock thresholds in plies.
const (
	fiftyMovePlies       = 100
	seventyFiveMovePlies = 150
)

// String returns a readable name of the result kind.
func (k ResultKind) String() string {
	switch k {
	case NoResult:
		return "none"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMove:
		return "fifty move rule"
	case SeventyFiveMove:
		return "seventy-five move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	case FivefoldRepetition:
		return "fivefold repetition"
	default:
		return "unknown"
	}
}

// IsDraw returns true for every drawn outcome.
func (k ResultKind) IsDraw() bool {
	return k != NoResult && k != Checkmate
}

// Result is the outcome at a position. Winner is meaningful only for
// Checkmate.
type Result struct {
	Kind   ResultKind
	Winner chess.Side
}

// IsTerminal reports whether the game is over.
func (r Result) IsTerminal() bool {
	return r.Kind != NoResult
}

// Score returns the PGN result string: "1-0", "0-1", "1/2-1/2" or "*".
func (r Result) Score() string {
	switch {
	case r.Kind == NoResult:
		return "*"
	case r.Kind == Checkmate && r.Winner == chess.White:
		return "1-0"
	case r.Kind == Checkmate:
		return "0-1"
	default:
		return "1/2-1/2"
	}
}

// String returns a readable description such as "checkmate, White wins".
func (r Result) String() string {
	if r.Kind == Checkmate {
		return fmt.Sprintf("%s, %s wins", r.Kind, r.Winner)
	}
	return r.Kind.String()
}

// classify determines the result of the position. Checkmate and stalemate
// come first; the enabled draw rules follow in a fixed order and the first
// satisfied one wins.
func (s *State) classify() Result {
	if len(s.legal) == 0 {
		if s.inCheck {
			return Result{Kind: Checkmate, Winner: s.toMove.Opponent()}
		}
		return Result{Kind: Stalemate}
	}

	r := s.rules
	switch {
	case r.InsufficientMaterial && HasInsufficientMaterial(s.board):
		return Result{Kind: InsufficientMaterial}
	case r.SeventyFiveMove && s.halfmove >= seventyFiveMovePlies:
		return Result{Kind: SeventyFiveMove}
	case r.FivefoldRepetition && s.RepetitionCount() >= 5:
		return Result{Kind: FivefoldRepetition}
	case r.FiftyMove && s.halfmove >= fiftyMovePlies:
		return Result{Kind: FiftyMove}
	case r.ThreefoldRepetition && s.RepetitionCount() >= 3:
		return Result{Kind: ThreefoldRepetition}
	}
	return Result{}
}

// HasInsufficientMaterial returns true if neither side has enough force
// to deliver mate.
func HasInsufficientMaterial(board *chess.Board) bool {
	return !hasMatingForce(board, chess.White) && !hasMatingForce(board, chess.Black)
}

// hasMatingForce returns true if side owns a pawn, rook or queen, or at
// least two minor pieces that are neither all knights nor all bishops on
// squares of one colour.
func hasMatingForce(board *chess.Board, side chess.Side) bool {
	if board.CountPieces(chess.Pawn, side) > 0 ||
		board.CountPieces(chess.Rook, side) > 0 ||
		board.CountPieces(chess.Queen, side) > 0 {
		return true
	}

	knights := board.CountPieces(chess.Knight, side)
	bishops := board.SquaresOf(chess.Bishop, side)
	if knights+len(bishops) < 2 {
		return false
	}
	if len(bishops) == 0 {
		return false
	}
	if knights > 0 {
		return true
	}

	light := bishops[0].IsLight()
	for _, sq := range bishops[1:] {
		if sq.IsLight() != light {
			return true
		}
	}
	return false
}

// DrawRuleResult reports the draw conditions met along a move sequence.
type DrawRuleResult struct {
	// Has50MoveRule is true if 50 moves (100 half-moves) passed without
	// a pawn move or capture at some point.
	Has50MoveRule bool

	// Has75MoveRule is true if a position was reached where 75 moves
	// (150 half-moves) have been made without a pawn move or capture.
	Has75MoveRule bool

	// Has3FoldRepetition is true if any position occurred 3 or more times.
	Has3FoldRepetition bool

	// Has5FoldRepetition is true if any position occurred 5 or more times.
	Has5FoldRepetition bool

	// HasInsufficientMaterial is true if the final position has insufficient
	// mating material for either side.
	HasInsufficientMaterial bool

	// HasMaterialOdds is true if the sequence started with material other
	// than the standard set.
	HasMaterialOdds bool

	// Final is the last position reached.
	Final *State
}

// AnalyzeDrawRules replays moves from start with every draw rule disabled
// and reports which draw conditions arose along the way.
func AnalyzeDrawRules(start *State, moves []chess.Move) (DrawRuleResult, error) {
	result := DrawRuleResult{
		HasMaterialOdds: !isStandardMaterial(start.board),
	}

	cur := start.WithDrawRules(config.NoDraws())
	note := func(s *State) {
		if s.halfmove >= fiftyMovePlies {
			result.Has50MoveRule = true
		}
		if s.halfmove >= seventyFiveMovePlies {
			result.Has75MoveRule = true
		}
		n := s.RepetitionCount()
		if n >= 3 {
			result.Has3FoldRepetition = true
		}
		if n >= 5 {
			result.Has5FoldRepetition = true
		}
	}

	note(cur)
	for _, m := range moves {
		next, err := cur.Apply(m)
		if err != nil {
			result.Final = cur
			return result, err
		}
		cur = next
		note(cur)
	}

	result.HasInsufficientMaterial = HasInsufficientMaterial(cur.board)
	result.Final = cur
	return result, nil
}

// standardMaterial is the piece count of each side in the initial position.
var standardMaterial = map[chess.PieceKind]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
	chess.King:   1,
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	for kind, expected := range standardMaterial {
		for _, side := range []chess.Side{chess.White, chess.Black} {
			if board.CountPieces(kind, side) != expected {
				return false
			}
		}
	}
	return true
}
