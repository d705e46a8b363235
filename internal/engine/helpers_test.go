package engine_test

import (
	stderrors "errors"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/engine"
)

func asParseError(err error, target **errors.ParseError) bool {
	return stderrors.As(err, target)
}

func asMoveError(err error, target **errors.MoveError) bool {
	return stderrors.As(err, target)
}

// apply plays one move and panics on rejection; for fixed test lines.
func apply(s *engine.State, text string) *engine.State {
	next, err := s.Apply(chess.MustParseMove(text))
	if err != nil {
		panic(err)
	}
	return next
}
