package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// square parses a coordinate known to be valid.
func square(name string) chess.Square {
	sq, _ := chess.ParseSquare(name)
	return sq
}

// uciStrings returns the sorted UCI strings of moves.
func uciStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = MoveToUCI(m)
	}
	sort.Strings(out)
	return out
}

// hasMove reports whether moves contains the UCI move.
func hasMove(moves []chess.Move, uci string) bool {
	for _, m := range moves {
		if MoveToUCI(m) == uci {
			return true
		}
	}
	return false
}

func TestLegalMoves_Count(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"initial position", InitialFEN, 20},
		{"kiwipete", kiwipeteFEN, 48},
		{"position 3", position3FEN, 14},
		{"position 4", position4FEN, 6},
		{"position 5", position5FEN, 44},
		{"king and rook pawn", "7k/8/8/8/8/8/P7/K7 w - - 0 1", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			if got := len(LegalMoves(s)); got != tt.want {
				t.Errorf("len(LegalMoves()) = %d, want %d: %v", got, tt.want, uciStrings(LegalMoves(s)))
			}
		})
	}
}

func TestLegalMovesFrom(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "knight from home",
			fen:  InitialFEN,
			from: "g1",
			want: []string{"g1f3", "g1h3"},
		},
		{
			name: "pawn single and double push",
			fen:  InitialFEN,
			from: "e2",
			want: []string{"e2e3", "e2e4"},
		},
		{
			name: "blocked king",
			fen:  InitialFEN,
			from: "e1",
			want: nil,
		},
		{
			name: "piece of the side not to move",
			fen:  InitialFEN,
			from: "e7",
			want: nil,
		},
		{
			name: "empty square",
			fen:  InitialFEN,
			from: "e4",
			want: nil,
		},
		{
			name: "pinned bishop",
			fen:  "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
			from: "e2",
			want: nil,
		},
		{
			name: "pinned rook slides along the pin",
			fen:  "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e2e3", "e2e4", "e2e5", "e2e6", "e2e7"},
		},
		{
			name: "king escapes check",
			fen:  "4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
			from: "e1",
			want: []string{"e1d2", "e1e2", "e1f2"},
		},
		{
			name: "only a capture answers the check",
			fen:  "4k3/8/8/8/8/3N4/5PPP/4r1K1 w - - 0 1",
			from: "d3",
			want: []string{"d3e1"},
		},
		{
			name: "block the check",
			fen:  "4k3/8/8/8/8/8/3R4/r3K3 w - - 0 1",
			from: "d2",
			want: []string{"d2d1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			got := uciStrings(LegalMovesFrom(s, square(tt.from)))
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LegalMovesFrom(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestLegalMoves_NeverLeaveKingInCheck(t *testing.T) {
	fens := []string{InitialFEN, kiwipeteFEN, position3FEN, position4FEN, position5FEN,
		"8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1",
		"4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			s := mustState(t, fen)
			for _, m := range LegalMoves(s) {
				next := playMove(s.Position, m)
				if IsInCheck(&next.Board, s.ToMove) {
					t.Errorf("move %s leaves the %v king in check", MoveToUCI(m), s.ToMove)
				}
			}
		})
	}
}

func TestLegalMoves_Terminal(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"},
		{"fifty-move draw", "4k3/8/8/8/8/8/4P3/4K3 w - - 100 80"},
		{"insufficient material", "8/8/8/8/8/8/8/KB5k w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			if !s.Status.IsTerminal() {
				t.Fatalf("Status = %v, want a terminal status", s.Status)
			}
			if got := LegalMoves(s); got != nil {
				t.Errorf("LegalMoves() = %v, want nil", uciStrings(got))
			}
			if got := LegalMovesFrom(s, FindKing(&s.Board, s.ToMove)); got != nil {
				t.Errorf("LegalMovesFrom() = %v, want nil", uciStrings(got))
			}
		})
	}
}

func TestLegalMoves_CheckAnnotations(t *testing.T) {
	s := mustPlay(t, NewInitialState(), "f2f3", "e7e5", "g2g4")

	var found bool
	for _, m := range LegalMoves(s) {
		switch MoveToUCI(m) {
		case "d8h4":
			found = true
			if !m.IsCheck || !m.IsCheckmate {
				t.Errorf("d8h4: IsCheck=%v IsCheckmate=%v, want true, true", m.IsCheck, m.IsCheckmate)
			}
		case "f8b4":
			if m.IsCheck {
				t.Errorf("f8b4: IsCheck = true, want false")
			}
		default:
			if m.IsCheckmate {
				t.Errorf("%s: IsCheckmate = true, want false", MoveToUCI(m))
			}
		}
	}
	if !found {
		t.Error("d8h4 not among the legal moves")
	}

	for _, m := range LegalMoves(NewInitialState()) {
		if m.IsCheck || m.IsCheckmate {
			t.Errorf("%s from the initial position is annotated as check", MoveToUCI(m))
		}
	}
}

func TestLegalMoves_CheckNotMate(t *testing.T) {
	s := mustState(t, "8/P7/8/8/8/8/8/k6K w - - 0 1")
	for _, m := range LegalMovesFrom(s, square("a7")) {
		wantCheck := m.Promotion == chess.Queen || m.Promotion == chess.Rook
		if m.IsCheck != wantCheck {
			t.Errorf("%s: IsCheck = %v, want %v", MoveToUCI(m), m.IsCheck, wantCheck)
		}
		if m.IsCheckmate {
			t.Errorf("%s: IsCheckmate = true, want false", MoveToUCI(m))
		}
	}
}

func TestCandidateMoves(t *testing.T) {
	s := mustState(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")

	got := uciStrings(CandidateMoves(s.Position, square("e2")))
	want := []string{"e2a6", "e2b5", "e2c4", "e2d1", "e2d3", "e2f1", "e2f3", "e2g4", "e2h5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CandidateMoves(e2) mismatch (-want +got):\n%s", diff)
	}

	if got := CandidateMoves(s.Position, square("e7")); len(got) != 0 {
		t.Errorf("CandidateMoves(e7) = %v, want none for the side not to move", uciStrings(got))
	}
}

func TestPosition_LegalMovesIgnoresDraws(t *testing.T) {
	s := mustState(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 100 80")
	if s.Status != chess.Draw {
		t.Fatalf("Status = %v, want %v", s.Status, chess.Draw)
	}
	if got := len(s.Position.LegalMoves()); got == 0 {
		t.Error("Position.LegalMoves() is empty, want the moves of the drawn position")
	}
}
