package chessrules

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/worker"
)

// DivideResult holds the perft count below each root move.
type DivideResult struct {
	Depth  int
	Counts map[string]uint64 // keyed by move notation
	Total  uint64
}

// Moves returns the root moves in notation order.
func (r *DivideResult) Moves() []string {
	keys := maps.Keys(r.Counts)
	slices.Sort(keys)
	return keys
}

// Perft counts the leaf nodes of the move tree of the given depth.
func Perft(s *State, depth int) uint64 {
	return engine.Perft(s, depth)
}

// Divide runs perft to the given depth, counting the subtree of each root
// move on the worker pool configured in cfg. A nil cfg uses the defaults.
// Per-move counts are logged at verbosity 2 and the total at verbosity 1.
func Divide(s *State, depth int, cfg *Config) (*DivideResult, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "divide")
	}
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "divide depth %d must be at least 1", depth)
	}

	var cache *hashing.NodeCache
	if cfg.Perft.CacheEntries > 0 {
		cache = hashing.NewNodeCache(cfg.Perft.CacheEntries)
	}

	moves := engine.RootMoves(s)
	pool := worker.NewPoolWithOptions(worker.CountSubtree(cache),
		worker.WithWorkers(cfg.Perft.Workers),
		worker.WithBufferSize(cfg.Perft.BufferSize))
	pool.Start()

	go func() {
		for i, m := range moves {
			item := worker.WorkItem{State: s, Move: m, Depth: depth, Index: i}
			if pool.TrySubmit(item) {
				continue
			}
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	res := &DivideResult{Depth: depth, Counts: make(map[string]uint64, len(moves))}
	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
				pool.Stop()
			}
			continue
		}
		res.Counts[r.Move.Notation(s.ToMove())] = r.Nodes
		res.Total += r.Nodes
	}
	if firstErr != nil {
		return nil, errors.Wrapf(firstErr, "divide depth %d", depth)
	}

	for _, text := range res.Moves() {
		cfg.Logf(2, "%s: %d\n", text, res.Counts[text])
	}
	cfg.Logf(1, "depth %d: %d moves, %d nodes\n", depth, len(moves), res.Total)
	if cache != nil {
		hits, misses := cache.Stats()
		cfg.Logf(2, "node cache: %d entries, %d hits, %d misses\n", cache.Len(), hits, misses)
	}
	return res, nil
}
