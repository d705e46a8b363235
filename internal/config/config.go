// Package config provides configuration for the rules engine and its
// perft tooling.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Config holds engine and tooling configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=per-move commentary

	// Draws selects which draw conditions end a game automatically.
	Draws DrawRules

	// Perft controls parallel node counting.
	Perft *PerftConfig

	// LogFile receives progress and summary lines.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		Draws:     NewDrawRules(),
		Perft:     NewPerftConfig(),
		LogFile:   os.Stderr,
	}
}

// SetLogFile sets the log writer. A nil writer discards log output.
func (c *Config) SetLogFile(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.LogFile = w
}

// Logf writes a log line if the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Perft == nil {
		return fmt.Errorf("missing perft settings: %w", errors.ErrInvalidConfig)
	}
	return c.Perft.Validate()
}

// defaultWorkers returns the worker count used when none is configured.
func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
