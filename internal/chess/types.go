// Package chess provides the core value types of the rules engine.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns the rank direction a pawn of the colour advances in:
// +1 for White, -1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceType is an uncoloured piece kind.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (pt PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if pt >= 0 && int(pt) < len(names) {
		return names[pt]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter used for the piece type in
// FEN and algebraic notation.
func (pt PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if pt >= 0 && int(pt) < len(letters) {
		return letters[pt]
	}
	return '?'
}

// PromotionTypes lists the piece types a pawn may promote to, in the order
// promotion moves are generated.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// PieceTypeFromLetter converts a piece letter in either case to a piece type.
// It returns NoPieceType for anything that is not one of PNBRQK.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is the content of a board square: Empty or a coloured piece.
// The colour lives in the low bit and the type in the bits above it.
type Piece int8

// Empty is the content of a square with no piece on it.
const Empty Piece = 0

const pieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, pt PieceType) Piece {
	return Piece(int(pt)<<pieceShift | int(colour))
}

// W creates a white piece.
func W(pt PieceType) Piece {
	return MakePiece(White, pt)
}

// B creates a black piece.
func B(pt PieceType) Piece {
	return MakePiece(Black, pt)
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> pieceShift)
}

// Colour extracts the colour. The result is meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether the square content is Empty.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether p is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p != Empty && p.Colour() == colour
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	letter := p.Type().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a human readable name such as "White Knight".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Type().String()
}

// PieceFromLetter converts a FEN letter into a coloured piece.
// The second result is false when the letter is not a piece.
func PieceFromLetter(c byte) (Piece, bool) {
	pt := PieceTypeFromLetter(c)
	if pt == NoPieceType {
		return Empty, false
	}
	if c >= 'a' && c <= 'z' {
		return B(pt), true
	}
	return W(pt), true
}

// CastlingRights holds the four independent castling permissions.
// Within one game a right only ever goes from true to false.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the castling state of the initial position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Kingside returns the kingside right of the given colour.
func (cr CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return cr.WhiteKingside
	}
	return cr.BlackKingside
}

// Queenside returns the queenside right of the given colour.
func (cr CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return cr.WhiteQueenside
	}
	return cr.BlackQueenside
}

// Mask packs the rights into four bits (K=1, Q=2, k=4, q=8).
func (cr CastlingRights) Mask() int {
	mask := 0
	if cr.WhiteKingside {
		mask |= 1
	}
	if cr.WhiteQueenside {
		mask |= 2
	}
	if cr.BlackKingside {
		mask |= 4
	}
	if cr.BlackQueenside {
		mask |= 8
	}
	return mask
}

// String renders the rights in FEN form, "-" when none remain.
func (cr CastlingRights) String() string {
	var buf []byte
	if cr.WhiteKingside {
		buf = append(buf, 'K')
	}
	if cr.WhiteQueenside {
		buf = append(buf, 'Q')
	}
	if cr.BlackKingside {
		buf = append(buf, 'k')
	}
	if cr.BlackQueenside {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// Status classifies a position from the point of view of the side to move.
type Status int

const (
	Active Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// DrawReason says which rule produced a Draw status.
type DrawReason int

const (
	NoDraw DrawReason = iota
	FiftyMoveRule
	ThreefoldRepetition
	InsufficientMaterial
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	switch r {
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return ""
	}
}
