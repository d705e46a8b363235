package engine

import "github.com/lgbarn/chessrules/internal/chess"

// Home squares of the kings and rooks, by column.
const (
	kingHomeCol      = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
)

// castleSpec describes one castling option of one side.
type castleSpec struct {
	right    chess.CastlingRights
	rookFrom chess.Square
	rookTo   chess.Square
	kingTo   chess.Square
	passed   chess.Square   // square the king crosses
	empty    []chess.Square // squares that must be vacant
}

// castleSpecs returns the kingside and queenside options of side.
func castleSpecs(side chess.Side) [2]castleSpec {
	row := side.BackRow()
	return [2]castleSpec{
		{
			right:    chess.Kingside(side),
			rookFrom: chess.Sq(row, kingsideRookCol),
			rookTo:   chess.Sq(row, 5),
			kingTo:   chess.Sq(row, 6),
			passed:   chess.Sq(row, 5),
			empty:    []chess.Square{chess.Sq(row, 5), chess.Sq(row, 6)},
		},
		{
			right:    chess.Queenside(side),
			rookFrom: chess.Sq(row, queensideRookCol),
			rookTo:   chess.Sq(row, 3),
			kingTo:   chess.Sq(row, 2),
			passed:   chess.Sq(row, 3),
			empty:    []chess.Square{chess.Sq(row, 3), chess.Sq(row, 2), chess.Sq(row, 1)},
		},
	}
}

var specsBySide = [2][2]castleSpec{castleSpecs(chess.White), castleSpecs(chess.Black)}

// kingHome returns the original square of side's king.
func kingHome(side chess.Side) chess.Square {
	return chess.Sq(side.BackRow(), kingHomeCol)
}

// appendCastlingMoves appends the castling candidates of side: the right
// is held, the king and rook stand on their home squares and every square
// between them is empty. Attacks are checked by the legality filter.
func appendCastlingMoves(dst []chess.Move, board *chess.Board, side chess.Side, castling chess.CastlingRights) []chess.Move {
	home := kingHome(side)
	if board.At(home) != chess.NewPiece(chess.King, side) {
		return dst
	}
	rook := chess.NewPiece(chess.Rook, side)

	for _, spec := range specsBySide[side] {
		if !castling.Has(spec.right) || board.At(spec.rookFrom) != rook {
			continue
		}
		clear := true
		for _, sq := range spec.empty {
			if !board.At(sq).IsEmpty() {
				clear = false
				break
			}
		}
		if clear {
			dst = append(dst, chess.NewMove(home, spec.kingTo))
		}
	}
	return dst
}

// castleFor returns the castling option a king move performs, if any.
func castleFor(side chess.Side, m chess.Move) (castleSpec, bool) {
	if m.From != kingHome(side) || abs(m.To.Col-m.From.Col) != 2 || m.To.Row != m.From.Row {
		return castleSpec{}, false
	}
	for _, spec := range specsBySide[side] {
		if spec.kingTo == m.To {
			return spec, true
		}
	}
	return castleSpec{}, false
}

// rightsLost maps a square to the castling rights cleared when a piece
// leaves or is captured on it.
var rightsLost = func() map[chess.Square]chess.CastlingRights {
	m := make(map[chess.Square]chess.CastlingRights, 6)
	for _, side := range []chess.Side{chess.White, chess.Black} {
		m[kingHome(side)] = chess.Kingside(side) | chess.Queenside(side)
		for _, spec := range specsBySide[side] {
			m[spec.rookFrom] |= spec.right
		}
	}
	return m
}()

// updateCastling clears the rights affected by a move from from to to.
func updateCastling(c chess.CastlingRights, from, to chess.Square) chess.CastlingRights {
	return c.Without(rightsLost[from] | rightsLost[to])
}
