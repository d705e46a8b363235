package config

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// PerftConfig holds settings for parallel perft and divide runs.
type PerftConfig struct {
	// Workers is the number of goroutines counting subtrees.
	Workers int

	// BufferSize is the work and result channel capacity.
	BufferSize int

	// CacheEntries enables a shared node cache when positive.
	// Zero disables caching.
	CacheEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:      defaultWorkers(),
		BufferSize:   64,
		CacheEntries: 0,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) must be at least 1: %w", p.BufferSize, errors.ErrInvalidConfig)
	}
	if p.CacheEntries < 0 {
		return fmt.Errorf("cache entries (%d) is negative: %w", p.CacheEntries, errors.ErrInvalidConfig)
	}
	return nil
}
