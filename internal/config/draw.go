package config

// DrawRules selects the draw conditions that terminate a game.
// Disabling a rule leaves the position playable, so callers may implement
// claim-based draws on top of the engine.
type DrawRules struct {
	InsufficientMaterial bool
	SeventyFiveMove      bool
	FivefoldRepetition   bool
	FiftyMove            bool
	ThreefoldRepetition  bool
}

// NewDrawRules returns rules with every draw condition enabled.
func NewDrawRules() DrawRules {
	return DrawRules{
		InsufficientMaterial: true,
		SeventyFiveMove:      true,
		FivefoldRepetition:   true,
		FiftyMove:            true,
		ThreefoldRepetition:  true,
	}
}

// NoDraws returns rules with every draw condition disabled.
// Only checkmate and stalemate end the game.
func NoDraws() DrawRules {
	return DrawRules{}
}

// AutomaticOnly returns the rules that apply without a claim under FIDE
// rules: insufficient material, the seventy-five move rule and fivefold
// repetition.
func AutomaticOnly() DrawRules {
	return DrawRules{
		InsufficientMaterial: true,
		SeventyFiveMove:      true,
		FivefoldRepetition:   true,
	}
}
