package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a state from a FEN string using every draw rule.
func ParseFEN(fen string) (*State, error) {
	return ParseFENWithRules(fen, config.NewDrawRules())
}

// ParseFENWithRules builds a state from a FEN string.
//
// Notation problems are reported as ErrMalformedPosition. Positions that
// parse but break the rules, such as a side without exactly one king, a
// pawn on a back rank or the side not to move standing in check, are
// reported as ErrIllegalPosition. A pawn of the side to move standing on
// its last rank yields a state awaiting that pawn's promotion choice.
// Castling rights whose king or rook is not on its home square are dropped.
func ParseFENWithRules(fen string, rules config.DrawRules) (*State, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, &errors.ParseError{
			Err:   errors.ErrMalformedPosition,
			Field: "FEN",
			Want:  "6 fields",
			Got:   fen,
		}
	}

	s := &State{phase: Normal{}, rules: rules}

	board, err := parsePiecePlacement(parts[0])
	if err != nil {
		return nil, err
	}
	s.board = board

	if s.toMove, err = parseSideToMove(parts[1]); err != nil {
		return nil, err
	}
	if s.castling, err = parseCastlingRights(parts[2]); err != nil {
		return nil, err
	}
	if s.ep, err = parseEnPassant(parts[3], s.toMove); err != nil {
		return nil, err
	}
	if s.halfmove, err = parseCounter(parts[4], "halfmove clock", 0); err != nil {
		return nil, err
	}
	if s.fullmove, err = parseCounter(parts[5], "fullmove number", 1); err != nil {
		return nil, err
	}

	if err := s.checkPlacement(); err != nil {
		return nil, err
	}
	s.castling = sanitizeCastling(s.board, s.castling)

	s.keys = []uint64{s.computeKey()}
	s.finish()
	return s, nil
}

// MustParseFEN is like ParseFEN but panics on error.
// It is intended for tests and fixed positions.
func MustParseFEN(fen string) *State {
	s, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return s
}

// parsePiecePlacement parses the piece placement field of a FEN string.
func parsePiecePlacement(field string) (*chess.Board, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return nil, &errors.ParseError{
			Err:   errors.ErrMalformedPosition,
			Field: "piece placement",
			Want:  "8 ranks",
			Got:   field,
		}
	}

	board := chess.NewBoard()
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				if col > chess.BoardSize {
					return nil, rankOverflow(rank)
				}
				continue
			}
			p, ok := chess.PieceFromLetter(c)
			if !ok {
				return nil, &errors.ParseError{
					Err:   errors.ErrMalformedPosition,
					Field: "piece placement",
					Want:  "piece letter or digit",
					Got:   string(c),
				}
			}
			if col >= chess.BoardSize {
				return nil, rankOverflow(rank)
			}
			board.Place(chess.Sq(row, col), p)
			col++
		}
		if col != chess.BoardSize {
			return nil, &errors.ParseError{
				Err:   errors.ErrMalformedPosition,
				Field: "piece placement",
				Want:  "8 files per rank",
				Got:   rank,
			}
		}
	}
	return board, nil
}

func rankOverflow(rank string) error {
	return &errors.ParseError{
		Err:   errors.ErrMalformedPosition,
		Field: "piece placement",
		Want:  "at most 8 files per rank",
		Got:   rank,
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Side, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, &errors.ParseError{
			Err:   errors.ErrMalformedPosition,
			Field: "side to move",
			Want:  "w or b",
			Got:   field,
		}
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	if field == "-" {
		return chess.NoCastling, nil
	}
	bad := &errors.ParseError{
		Err:   errors.ErrMalformedPosition,
		Field: "castling",
		Want:  "- or a subset of KQkq",
		Got:   field,
	}

	rights := chess.NoCastling
	for i := 0; i < len(field); i++ {
		var r chess.CastlingRights
		switch field[i] {
		case 'K':
			r = chess.WhiteKingside
		case 'Q':
			r = chess.WhiteQueenside
		case 'k':
			r = chess.BlackKingside
		case 'q':
			r = chess.BlackQueenside
		default:
			return chess.NoCastling, bad
		}
		if rights.Has(r) {
			return chess.NoCastling, bad
		}
		rights |= r
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field. The target
// must lie on the rank a pawn of the side not to move just passed over.
func parseEnPassant(field string, toMove chess.Side) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return chess.NoSquare, &errors.ParseError{
			Err:   errors.ErrMalformedPosition,
			Field: "en passant",
			Want:  "- or a square",
			Got:   field,
		}
	}
	// The pawn that moved belongs to the opponent; its skipped square sits
	// one row ahead of its start row.
	mover := toMove.Opponent()
	if sq.Row != mover.PawnRow()+mover.Forward() {
		return chess.NoSquare, &errors.ParseError{
			Err:   errors.ErrMalformedPosition,
			Field: "en passant",
			Want:  fmt.Sprintf("a square on rank %c", chess.Sq(mover.PawnRow()+mover.Forward(), 0).Rank()),
			Got:   field,
		}
	}
	return sq, nil
}

// parseCounter parses an unsigned decimal move counter with a lower bound.
func parseCounter(field, name string, lowest int) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < lowest || field[0] < '0' || field[0] > '9' {
		return 0, &errors.ParseError{
			Err:   errors.ErrMalformedPosition,
			Field: name,
			Want:  fmt.Sprintf("integer >= %d", lowest),
			Got:   field,
		}
	}
	return n, nil
}

// checkPlacement validates the parsed position and sets the phase when
// a pawn of the side to move waits on its last rank.
func (s *State) checkPlacement() error {
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if n := s.board.CountPieces(chess.King, side); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", side, n, errors.ErrIllegalPosition)
		}
	}

	pending := chess.NoSquare
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, sq := range s.board.SquaresOf(chess.Pawn, side) {
			if sq.Row != 0 && sq.Row != chess.BoardSize-1 {
				continue
			}
			if side != s.toMove || sq.Row != side.PromotionRow() || pending.InBounds() {
				return fmt.Errorf("%s pawn on %s: %w", side, sq, errors.ErrIllegalPosition)
			}
			pending = sq
		}
	}
	if pending.InBounds() {
		s.phase = AwaitingPromotion{Square: pending}
		return nil
	}

	if kingExposed(s.board, s.toMove.Opponent()) {
		return fmt.Errorf("%s is in check but not to move: %w", s.toMove.Opponent(), errors.ErrIllegalPosition)
	}
	return nil
}

// sanitizeCastling drops rights whose king or rook has left its home square.
func sanitizeCastling(board *chess.Board, rights chess.CastlingRights) chess.CastlingRights {
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if board.At(kingHome(side)) != chess.NewPiece(chess.King, side) {
			rights = rights.Without(chess.Kingside(side) | chess.Queenside(side))
			continue
		}
		for _, spec := range specsBySide[side] {
			if board.At(spec.rookFrom) != chess.NewPiece(chess.Rook, side) {
				rights = rights.Without(spec.right)
			}
		}
	}
	return rights
}

// FEN returns the position in Forsyth-Edwards Notation.
func (s *State) FEN() string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := s.board.At(chess.Sq(row, col))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	if s.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(s.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(s.ep.String())
	fmt.Fprintf(&sb, " %d %d", s.halfmove, s.fullmove)

	return sb.String()
}
