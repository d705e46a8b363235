package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.SetLogFile(w)
	return b
}

// WithDrawRules replaces the draw rules.
func (b *ConfigBuilder) WithDrawRules(rules DrawRules) *ConfigBuilder {
	b.cfg.Draws = rules
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithBufferSize sets the perft channel capacity.
func (b *ConfigBuilder) WithBufferSize(size int) *ConfigBuilder {
	b.cfg.Perft.BufferSize = size
	return b
}

// WithNodeCache enables the shared perft node cache with the given capacity.
func (b *ConfigBuilder) WithNodeCache(entries int) *ConfigBuilder {
	b.cfg.Perft.CacheEntries = entries
	return b
}

// ClaimThreefold controls whether threefold repetition ends the game
// automatically.
func (b *ConfigBuilder) ClaimThreefold(auto bool) *ConfigBuilder {
	b.cfg.Draws.ThreefoldRepetition = auto
	return b
}

// ClaimFiftyMove controls whether the fifty move rule ends the game
// automatically.
func (b *ConfigBuilder) ClaimFiftyMove(auto bool) *ConfigBuilder {
	b.cfg.Draws.FiftyMove = auto
	return b
}
