package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

func TestMustState(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantStatus chess.Status
	}{
		{"fool's mate", FoolsMateFEN, chess.Checkmate},
		{"stalemate", StalemateFEN, chess.Stalemate},
		{"kiwipete", KiwipeteFEN, chess.Active},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustState(t, tt.fen)
			AssertEqual(t, s.Status, tt.wantStatus)
			AssertEqual(t, engine.StateToFEN(s), tt.fen)
		})
	}
}

func TestMustPlay(t *testing.T) {
	s := MustPlay(t, engine.NewInitialState(), "e2e4", "e7e5", "g1f3")
	AssertEqual(t, UCIMoves(s.Moves), []string{"e2e4", "e7e5", "g1f3"})
	AssertEqual(t, s.ToMove, chess.Black)
}

func TestUCIMoves(t *testing.T) {
	AssertEqual(t, UCIMoves(nil), []string{})
	AssertSameElements(t, UCIMoves(engine.LegalMovesFrom(engine.NewInitialState(), chess.G1)), []string{"g1f3", "g1h3"})
}
