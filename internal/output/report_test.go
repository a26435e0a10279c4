package output

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func findMove(r *Report, uci string) (ReportMove, bool) {
	for _, m := range r.Moves {
		if m.UCI == uci {
			return m, true
		}
	}
	return ReportMove{}, false
}

func TestNewReport_InitialPosition(t *testing.T) {
	cfg := config.NewOutputConfig()
	r := NewReport(3, "startpos", engine.NewInitialState(), cfg)

	want := &Report{
		Index:          3,
		Input:          "startpos",
		FEN:            engine.InitialFEN,
		SideToMove:     "white",
		Status:         "active",
		Castling:       "KQkq",
		FullmoveNumber: 1,
	}
	got := *r
	got.Moves = nil
	if diff := cmp.Diff(want, &got); diff != "" {
		t.Errorf("NewReport() mismatch (-want +got):\n%s", diff)
	}
	if len(r.Moves) != 20 {
		t.Fatalf("len(Moves) = %d, want 20", len(r.Moves))
	}

	m, ok := findMove(r, "g1f3")
	if !ok {
		t.Fatal("g1f3 missing from report moves")
	}
	if diff := cmp.Diff(ReportMove{UCI: "g1f3", Notation: "Nf3", Piece: "knight"}, m); diff != "" {
		t.Errorf("g1f3 mismatch (-want +got):\n%s", diff)
	}
}

func TestNewReport_Notation(t *testing.T) {
	s := testutil.MustState(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")

	tests := []struct {
		notation config.Notation
		want     string
	}{
		{config.UCI, ""},
		{config.Algebraic, "exd5"},
		{config.SAN, "exd5"},
	}

	for _, tt := range tests {
		t.Run(tt.notation.String(), func(t *testing.T) {
			cfg := config.NewOutputConfig()
			cfg.Notation = tt.notation
			r := NewReport(0, "", s, cfg)
			m, ok := findMove(r, "e4d5")
			if !ok {
				t.Fatal("e4d5 missing from report moves")
			}
			if m.Notation != tt.want {
				t.Errorf("Notation = %q, want %q", m.Notation, tt.want)
			}
			if m.Captured != "pawn" {
				t.Errorf("Captured = %q, want %q", m.Captured, "pawn")
			}
		})
	}
}

func TestNewReport_Promotion(t *testing.T) {
	s := testutil.MustState(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	r := NewReport(0, "", s, config.NewOutputConfig())

	m, ok := findMove(r, "a7a8q")
	if !ok {
		t.Fatal("a7a8q missing from report moves")
	}
	if m.Promotion != "queen" || m.Piece != "pawn" {
		t.Errorf("a7a8q = %+v, want a pawn promoting to queen", m)
	}
	if !m.Check || m.Mate {
		t.Errorf("a7a8q Check=%v Mate=%v, want check without mate", m.Check, m.Mate)
	}
}

func TestNewReport_Checkmate(t *testing.T) {
	s := testutil.MustState(t, testutil.FoolsMateFEN)
	r := NewReport(0, "", s, config.NewOutputConfig())

	if r.Status != "checkmate" || !r.InCheck {
		t.Errorf("Status=%q InCheck=%v, want checkmate in check", r.Status, r.InCheck)
	}
	if r.Moves == nil || len(r.Moves) != 0 {
		t.Errorf("Moves = %v, want empty non-nil slice", r.Moves)
	}
}

func TestNewReport_HistoryAndDraw(t *testing.T) {
	s := testutil.MustPlay(t, engine.NewInitialState(),
		"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8")
	r := NewReport(0, "", s, config.NewOutputConfig())

	if r.Status != "draw" || r.DrawReason != "threefold repetition" {
		t.Errorf("Status=%q DrawReason=%q, want draw by threefold repetition", r.Status, r.DrawReason)
	}
	if len(r.History) != 8 || r.History[0] != "g1f3" {
		t.Errorf("History = %v, want the eight knight moves", r.History)
	}
}

func TestNewReport_EnPassantAndBoard(t *testing.T) {
	s := testutil.MustPlay(t, engine.NewInitialState(), "e2e4")
	cfg := config.NewOutputConfig()
	cfg.ShowBoard = true
	cfg.ShowMoves = false
	r := NewReport(0, "", s, cfg)

	if r.EnPassant != "e3" {
		t.Errorf("EnPassant = %q, want %q", r.EnPassant, "e3")
	}
	if r.SideToMove != "black" {
		t.Errorf("SideToMove = %q, want %q", r.SideToMove, "black")
	}
	if r.Board != s.Board.String() {
		t.Errorf("Board = %q, want %q", r.Board, s.Board.String())
	}
	if r.Moves != nil {
		t.Errorf("Moves = %v, want nil when moves are not shown", r.Moves)
	}
}

func TestErrorReport(t *testing.T) {
	r := ErrorReport(2, "bad line", errors.New("boom"))
	want := &Report{Index: 2, Input: "bad line", Error: "boom"}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("ErrorReport() mismatch (-want +got):\n%s", diff)
	}
}
