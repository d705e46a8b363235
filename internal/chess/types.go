// Package chess provides core chess types and operations.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this side advances by.
// Row 0 is rank 8, so White moves towards lower rows.
func (s Side) Forward() int {
	if s == White {
		return -1
	}
	return 1
}

// PawnRow returns the row the side's pawns start on.
func (s Side) PawnRow() int {
	if s == White {
		return 6
	}
	return 1
}

// BackRow returns the row of the side's own back rank.
func (s Side) BackRow() int {
	if s == White {
		return 7
	}
	return 0
}

// PromotionRow returns the row on which the side's pawns promote.
func (s Side) PromotionRow() int {
	return s.Opponent().BackRow()
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	None PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumKinds is the number of real piece kinds (None excluded).
const NumKinds = 6

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lowercase letter for a piece kind, or 0 for None.
func (k PieceKind) Letter() byte {
	letters := []byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return 0
}

// KindFromLetter converts a piece letter of either case to a piece kind.
// It returns None for unrecognised letters.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	default:
		return None
	}
}

// IsSlider returns true for bishops, rooks and queens.
func (k PieceKind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// IsMinor returns true for knights and bishops.
func (k PieceKind) IsMinor() bool {
	return k == Knight || k == Bishop
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [4]PieceKind{Queen, Knight, Bishop, Rook}

// IsPromotionKind returns true if a pawn may promote to k.
func IsPromotionKind(k PieceKind) bool {
	for _, p := range PromotionKinds {
		if p == k {
			return true
		}
	}
	return false
}

// Piece is a piece kind together with its side.
// The zero value is the empty square marker.
type Piece struct {
	Kind PieceKind
	Side Side
}

// Empty is the piece occupying every unused square.
var Empty = Piece{}

// NewPiece creates a piece of the given kind and side.
func NewPiece(kind PieceKind, side Side) Piece {
	return Piece{Kind: kind, Side: side}
}

// IsEmpty returns true if the piece is the empty marker.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.Kind == None {
		return '.'
	}
	c := p.Kind.Letter()
	if p.Side == White {
		c -= 'a' - 'A'
	}
	return c
}

// PieceFromLetter converts a FEN piece letter to a piece.
// The second result is false for unrecognised letters.
func PieceFromLetter(c byte) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == None {
		return Empty, false
	}
	side := Black
	if c >= 'A' && c <= 'Z' {
		side = White
	}
	return Piece{Kind: kind, Side: side}, true
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.Kind == None {
		return "Empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

// bucket returns the piece index slot for a non-empty piece.
func (p Piece) bucket() int {
	return bucketOf(p.Kind, p.Side)
}

func bucketOf(kind PieceKind, side Side) int {
	return (int(kind)-1)*2 + int(side)
}

// CastlingRights is a bit set of the four castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has returns true if every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns the rights with r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// Kingside returns the kingside right of the given side.
func Kingside(s Side) CastlingRights {
	if s == White {
		return WhiteKingside
	}
	return BlackKingside
}

// Queenside returns the queenside right of the given side.
func Queenside(s Side) CastlingRights {
	if s == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// String returns the FEN castling field ("KQkq" subset or "-").
func (c CastlingRights) String() string {
	var buf []byte
	if c.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if c.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if c.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if c.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
	NumBuckets = NumKinds * 2
)
