package chess

import (
	"testing"
)

func TestSquareIndexing(t *testing.T) {
	tests := []struct {
		name  string
		file  int
		rank  int
		want  Square
		coord string
	}{
		{"a8 is index 0", 0, 8, 0, "a8"},
		{"h8", 7, 8, 7, "h8"},
		{"a1", 0, 1, 56, "a1"},
		{"h1 is index 63", 7, 1, 63, "h1"},
		{"e4", 4, 4, 36, "e4"},
		{"d5", 3, 5, 27, "d5"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sq := NewSquare(tt.file, tt.rank)
			if sq != tt.want {
				t.Fatalf("NewSquare(%d, %d) = %d; want %d", tt.file, tt.rank, sq, tt.want)
			}
			if sq.File() != tt.file || sq.Rank() != tt.rank {
				t.Errorf("File/Rank = %d/%d; want %d/%d", sq.File(), sq.Rank(), tt.file, tt.rank)
			}
			if sq.String() != tt.coord {
				t.Errorf("String() = %q; want %q", sq.String(), tt.coord)
			}
			parsed, ok := ParseSquare(tt.coord)
			if !ok || parsed != sq {
				t.Errorf("ParseSquare(%q) = %d, %v; want %d, true", tt.coord, parsed, ok, sq)
			}
		})
	}
}

func TestSquareOffBoard(t *testing.T) {
	if sq := NewSquare(8, 1); sq != NoSquare {
		t.Errorf("NewSquare(8, 1) = %d; want NoSquare", sq)
	}
	if sq := NewSquare(0, 0); sq != NoSquare {
		t.Errorf("NewSquare(0, 0) = %d; want NoSquare", sq)
	}
	if sq := H1.Offset(1, 0); sq != NoSquare {
		t.Errorf("H1.Offset(1, 0) = %v; want NoSquare", sq)
	}
	if sq := A8.Offset(0, 1); sq != NoSquare {
		t.Errorf("A8.Offset(0, 1) = %v; want NoSquare", sq)
	}
	for _, s := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		if _, ok := ParseSquare(s); ok {
			t.Errorf("ParseSquare(%q) ok = true; want false", s)
		}
	}
}

func TestSquareColour(t *testing.T) {
	if A1.IsLight() {
		t.Error("a1 should be dark")
	}
	if !H1.IsLight() {
		t.Error("h1 should be light")
	}
	if !A8.IsLight() {
		t.Error("a8 should be light")
	}
	if H8.IsLight() {
		t.Error("h8 should be dark")
	}
}

func TestInitialBoard(t *testing.T) {
	b := InitialBoard()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white rook h1", "h1", W(Rook)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn e7", "e7", B(Pawn)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"empty e4", "e4", Empty},
		{"empty d5", "d5", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, _ := ParseSquare(tt.sq)
			if got := b.At(sq); got != tt.piece {
				t.Errorf("At(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	if len(b) != NumSquares {
		t.Errorf("len(board) = %d; want %d", len(b), NumSquares)
	}
}

func TestBoardValueSemantics(t *testing.T) {
	original := InitialBoard()
	scratch := original
	scratch.Set(E1, Empty)

	if original.At(E1) != W(King) {
		t.Error("modifying a copy changed the original board")
	}
	if scratch.At(E1) != Empty {
		t.Error("Set did not modify the copy")
	}
}

func TestBoardFind(t *testing.T) {
	b := InitialBoard()
	if sq := b.Find(B(King)); sq != E8 {
		t.Errorf("Find(black king) = %v; want e8", sq)
	}
	if sq := b.Find(W(King)); sq != E1 {
		t.Errorf("Find(white king) = %v; want e1", sq)
	}
	var empty Board
	if sq := empty.Find(W(King)); sq != NoSquare {
		t.Errorf("Find on empty board = %v; want NoSquare", sq)
	}
}

func TestPieceEncoding(t *testing.T) {
	for pt := Pawn; pt <= King; pt++ {
		for _, colour := range []Colour{White, Black} {
			p := MakePiece(colour, pt)
			if p == Empty {
				t.Fatalf("MakePiece(%v, %v) == Empty", colour, pt)
			}
			if p.Type() != pt || p.Colour() != colour {
				t.Errorf("MakePiece(%v, %v) round trip = %v %v", colour, pt, p.Colour(), p.Type())
			}
			back, ok := PieceFromLetter(p.Letter())
			if !ok || back != p {
				t.Errorf("PieceFromLetter(%c) = %v, %v; want %v", p.Letter(), back, ok, p)
			}
		}
	}
	if _, ok := PieceFromLetter('x'); ok {
		t.Error("PieceFromLetter('x') ok = true; want false")
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastlingRights, "KQkq"},
		{CastlingRights{}, "-"},
		{CastlingRights{WhiteKingside: true, BlackQueenside: true}, "Kq"},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	terminal := map[Status]bool{
		Active:    false,
		Check:     false,
		Checkmate: true,
		Stalemate: true,
		Draw:      true,
	}
	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%v.IsTerminal() = %v; want %v", status, got, want)
		}
	}
}
