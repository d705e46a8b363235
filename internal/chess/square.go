package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Square is a board coordinate. Row 0 is rank 8 and column 0 is file a.
type Square struct {
	Row int
	Col int
}

// NoSquare marks an absent square, such as a missing en passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq creates a square from row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds returns true if the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas.
// The result may be off the board; callers check InBounds.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// Index returns row*8+col, in the range 0-63 for on-board squares.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// IsLight returns true if the square is a light square (h1 and a8 are light).
func (s Square) IsLight() bool {
	return (s.Row+s.Col)%2 == 0
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte('8' - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts algebraic notation such as "a1" to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrMalformedPosition)
	}
	return squareFromChars(text[0], text[1])
}

// MustSquare is like ParseSquare but panics on error.
// It is intended for constants and tests.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

func squareFromChars(file, rank byte) (Square, error) {
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %c%c: %w", file, rank, errors.ErrOutOfBounds)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}
