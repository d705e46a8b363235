package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Move describes one ply: a piece travelling from one square to another,
// with an optional promotion kind. Moves compare structurally with ==.
//
// A promotion choice for a pawn that already stands on its last rank is
// encoded with From == To and Promotion set.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// NewMove creates a non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates the promotion choice for the pawn standing on sq.
func NewPromotion(sq Square, kind PieceKind) Move {
	return Move{From: sq, To: sq, Promotion: kind}
}

// IsPromotion returns true if the move carries a promotion kind.
func (m Move) IsPromotion() bool {
	return m.Promotion != None
}

// IsPromotionChoice returns true for the from == to promotion encoding.
func (m Move) IsPromotionChoice() bool {
	return m.IsPromotion() && m.From == m.To
}

// InBounds returns true if both squares are on the board.
func (m Move) InBounds() bool {
	return m.From.InBounds() && m.To.InBounds()
}

// String returns the move in coordinate notation with a lowercase
// promotion letter, e.g. "e2e4" or "e8e8q".
func (m Move) String() string {
	return m.format(Black)
}

// Notation returns the move in coordinate notation with the promotion
// letter cased for the moving side: uppercase for White, lowercase for Black.
func (m Move) Notation(side Side) string {
	return m.format(side)
}

func (m Move) format(side Side) string {
	buf := []byte{m.From.File(), m.From.Rank(), m.To.File(), m.To.Rank()}
	if m.IsPromotion() {
		buf = append(buf, NewPiece(m.Promotion, side).Letter())
	}
	return string(buf)
}

// ParseMove parses coordinate notation: four characters, plus an optional
// promotion letter of either case.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: want 4 or 5 characters: %w", text, errors.ErrMalformedPosition)
	}
	from, err := squareFromChars(text[0], text[1])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := squareFromChars(text[2], text[3])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		kind := KindFromLetter(text[4])
		if !IsPromotionKind(kind) {
			return Move{}, fmt.Errorf("move %q: bad promotion letter %q: %w", text, text[4], errors.ErrMalformedPosition)
		}
		m.Promotion = kind
	}
	return m, nil
}

// MustParseMove is like ParseMove but panics on error.
// It is intended for tests and fixed move lists.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}
