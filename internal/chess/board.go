package chess

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square indexes the board in row-major order starting at a8:
// index = (8 - rank) * 8 + file, with file a = 0 and rank counted from 1.
type Square int8

// NoSquare marks an absent square, e.g. no en-passant target.
const NoSquare Square = -1

// Named squares used by castling and the initial position.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	A1 Square = 56 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// NewSquare builds a square from a file (0-7, a-h) and a rank (1-8).
// It returns NoSquare when either is off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 1 || rank > BoardSize {
		return NoSquare
	}
	return Square((BoardSize-rank)*BoardSize + file)
}

// File returns the file of the square, 0 for a through 7 for h.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the rank of the square, 1 through 8 from White's side.
func (sq Square) Rank() int {
	return BoardSize - int(sq)/BoardSize
}

// Valid reports whether the square is on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// Offset returns the square df files and dr ranks away, or NoSquare when
// that leaves the board.
func (sq Square) Offset(df, dr int) Square {
	if !sq.Valid() {
		return NoSquare
	}
	return NewSquare(sq.File()+df, sq.Rank()+dr)
}

// IsLight reports whether the square is a light square (h1 is light).
func (sq Square) IsLight() bool {
	return (sq.File()+sq.Rank())%2 == 0
}

// String returns the coordinate name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + sq.File()), byte(RankBase + sq.Rank() - 1)})
}

// ParseSquare converts a coordinate such as "e4" into a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file := int(s[0]) - FileBase
	rank := int(s[1]) - RankBase + 1
	sq := NewSquare(file, rank)
	return sq, sq != NoSquare
}

// Board holds the 64 squares. It is a value type: assigning a Board copies
// every square, so a copy can be modified without touching the original.
type Board [NumSquares]Piece

// InitialBoard returns the standard starting arrangement.
func InitialBoard() Board {
	var b Board
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b[NewSquare(file, 1)] = W(backRank[file])
		b[NewSquare(file, 2)] = W(Pawn)
		b[NewSquare(file, 7)] = B(Pawn)
		b[NewSquare(file, 8)] = B(backRank[file])
	}
	return b
}

// At returns the piece on the square, Empty for NoSquare.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b[sq]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b[sq] = p
	}
}

// Find returns the first square holding the piece, scanning from a8.
func (b *Board) Find(p Piece) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq] == p {
			return sq
		}
	}
	return NoSquare
}

// String renders the board as eight lines from rank 8 down, using FEN
// letters and '.' for empty squares.
func (b *Board) String() string {
	buf := make([]byte, 0, NumSquares+BoardSize)
	for sq := Square(0); sq < NumSquares; sq++ {
		buf = append(buf, b[sq].Letter())
		if sq.File() == BoardSize-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
