package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Board is the 8x8 grid together with a reverse index from each
// (kind, side) pair to the squares holding that piece.
// The grid and the index are kept consistent by SetPiece.
type Board struct {
	// squares is indexed [row][col]; row 0 is rank 8.
	squares [BoardSize][BoardSize]Piece

	// index holds, per (kind, side) bucket, the occupied squares in the
	// order the pieces were placed.
	index [NumBuckets][]Square
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// backRank is the standard arrangement of pieces from file a to file h.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	for col := 0; col < BoardSize; col++ {
		b.Place(Sq(7, col), NewPiece(backRank[col], White))
		b.Place(Sq(6, col), NewPiece(Pawn, White))
		b.Place(Sq(1, col), NewPiece(Pawn, Black))
		b.Place(Sq(0, col), NewPiece(backRank[col], Black))
	}
	return b
}

// PieceAt returns the piece on the given square.
func (b *Board) PieceAt(sq Square) (Piece, error) {
	if !sq.InBounds() {
		return Empty, fmt.Errorf("square (%d,%d): %w", sq.Row, sq.Col, errors.ErrOutOfBounds)
	}
	return b.squares[sq.Row][sq.Col], nil
}

// At returns the piece on an on-board square without bounds reporting.
// Off-board squares read as Empty.
func (b *Board) At(sq Square) Piece {
	if !sq.InBounds() {
		return Empty
	}
	return b.squares[sq.Row][sq.Col]
}

// SetPiece places a piece on a square, evicting any previous occupant.
// Pass Empty to clear the square.
func (b *Board) SetPiece(sq Square, p Piece) error {
	if !sq.InBounds() {
		return fmt.Errorf("square (%d,%d): %w", sq.Row, sq.Col, errors.ErrOutOfBounds)
	}
	b.Place(sq, p)
	return nil
}

// Place is SetPiece for squares already known to be on the board.
func (b *Board) Place(sq Square, p Piece) {
	old := b.squares[sq.Row][sq.Col]
	if !old.IsEmpty() {
		b.unindex(old.bucket(), sq)
	}
	b.squares[sq.Row][sq.Col] = p
	if !p.IsEmpty() {
		k := p.bucket()
		b.index[k] = append(b.index[k], sq)
	}
}

// Relocate moves the piece on from to to, evicting the occupant of to.
// Both squares must be on the board.
func (b *Board) Relocate(from, to Square) {
	p := b.squares[from.Row][from.Col]
	b.Place(from, Empty)
	b.Place(to, p)
}

func (b *Board) unindex(k int, sq Square) {
	list := b.index[k]
	for i, s := range list {
		if s == sq {
			// Preserve order of the remaining squares.
			b.index[k] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// SquaresOf returns the squares holding the given piece, in placement order.
// The returned slice is a copy.
func (b *Board) SquaresOf(kind PieceKind, side Side) []Square {
	if kind == None {
		return nil
	}
	list := b.index[bucketOf(kind, side)]
	out := make([]Square, len(list))
	copy(out, list)
	return out
}

// squaresOf returns the live index slice; callers must not modify it
// or hold it across a mutation.
func (b *Board) squaresOf(kind PieceKind, side Side) []Square {
	return b.index[bucketOf(kind, side)]
}

// EachPiece calls fn for every piece of the given side, kind by kind in
// the order Pawn..King. fn must not modify the board.
func (b *Board) EachPiece(side Side, fn func(sq Square, p Piece) bool) {
	for kind := Pawn; kind <= King; kind++ {
		p := NewPiece(kind, side)
		for _, sq := range b.squaresOf(kind, side) {
			if !fn(sq, p) {
				return
			}
		}
	}
}

// CountPieces returns how many pieces of the given kind and side are on the board.
func (b *Board) CountPieces(kind PieceKind, side Side) int {
	if kind == None {
		return 0
	}
	return len(b.index[bucketOf(kind, side)])
}

// King returns the square of the side's king. The second result is false
// if the side has no king.
func (b *Board) King(side Side) (Square, bool) {
	list := b.index[bucketOf(King, side)]
	if len(list) == 0 {
		return NoSquare, false
	}
	return list[0], true
}

// Occupied returns the number of non-empty grid cells.
func (b *Board) Occupied() int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.squares[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Indexed returns the total number of squares held in the piece index.
func (b *Board) Indexed() int {
	n := 0
	for _, list := range b.index {
		n += len(list)
	}
	return n
}

// Consistent reports whether the grid and the piece index agree.
func (b *Board) Consistent() bool {
	if b.Occupied() != b.Indexed() {
		return false
	}
	for k, list := range b.index {
		for _, sq := range list {
			p := b.At(sq)
			if p.IsEmpty() || p.bucket() != k {
				return false
			}
		}
	}
	return true
}

// Clone creates a deep copy of the board. The copy shares no memory
// with the original.
func (b *Board) Clone() *Board {
	c := &Board{squares: b.squares}
	for k, list := range b.index {
		if len(list) > 0 {
			c.index[k] = append(make([]Square, 0, len(list)+1), list...)
		}
	}
	return c
}

// CopyFrom overwrites b with the contents of src, reusing b's index storage.
func (b *Board) CopyFrom(src *Board) {
	b.squares = src.squares
	for k, list := range src.index {
		b.index[k] = append(b.index[k][:0], list...)
	}
}

// Grid returns a copy of the 8x8 grid, indexed [row][col].
func (b *Board) Grid() [BoardSize][BoardSize]Piece {
	return b.squares
}
