package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
)

func BenchmarkPositionKey(b *testing.B) {
	board := chess.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PositionKey(board, chess.White, chess.AllCastling, chess.NoSquare)
	}
}

func BenchmarkNodeCacheStoreLookup(b *testing.B) {
	c := NewNodeCache(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := uint64(i & 0xFFFF)
		c.Store(key, 3, uint64(i))
		c.Lookup(key, 3)
	}
}
