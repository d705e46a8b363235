package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/hashing"
)

// Perft counts the leaf nodes of the move tree of the given depth.
//
// A pawn landing on its last rank and the promotion choice that follows
// count as one ply, so counts agree with the standard perft tables.
// Draw results do not cut the tree; only checkmate and stalemate do.
func Perft(s *State, depth int) uint64 {
	return perft(s, depth, nil)
}

// PerftCached is Perft with a node cache shared across calls. The cache
// may be shared by concurrent callers.
func PerftCached(s *State, depth int, cache *hashing.NodeCache) uint64 {
	return perft(s, depth, cache)
}

func perft(s *State, depth int, cache *hashing.NodeCache) uint64 {
	if _, pending := s.PendingPromotion(); pending {
		var nodes uint64
		for _, m := range s.legal {
			nodes += perft(s.advance(m), depth, cache)
		}
		return nodes
	}
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return countLeaves(s)
	}

	if cache != nil {
		if nodes, ok := cache.Lookup(s.Key(), depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range s.legal {
		nodes += perft(s.advance(m), depth-1, cache)
	}

	if cache != nil {
		cache.Store(s.Key(), depth, nodes)
	}
	return nodes
}

// countLeaves counts the moves of s without applying them; a move that
// lands a pawn on its last rank stands for its four promotion choices.
func countLeaves(s *State) uint64 {
	var nodes uint64
	for _, m := range s.legal {
		if landsOnLastRank(s.board, m, s.toMove) {
			nodes += uint64(len(chess.PromotionKinds))
		} else {
			nodes++
		}
	}
	return nodes
}

func landsOnLastRank(board *chess.Board, m chess.Move, side chess.Side) bool {
	return m.To.Row == side.PromotionRow() && board.At(m.From).Kind == chess.Pawn
}

// RootMoves returns the moves that Divide splits on. In the promotion
// phase these are the four choices.
func RootMoves(s *State) []chess.Move {
	out := make([]chess.Move, len(s.legal))
	copy(out, s.legal)
	return out
}

// Successor returns the state after a move taken from RootMoves.
// The move is not validated against draw results, matching Perft.
func Successor(s *State, m chess.Move) (*State, error) {
	if !containsMove(s.legal, m) {
		return s.Apply(m)
	}
	return s.advance(m), nil
}

// SubtreeDepth returns the depth a successor is searched to when its
// parent is searched to depth. Promotion choices stay in the same ply.
func SubtreeDepth(parent *State, depth int) int {
	if _, pending := parent.PendingPromotion(); pending {
		return depth
	}
	return depth - 1
}
