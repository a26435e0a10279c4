package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Positions used across package tests.
const (
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

// MustState parses a FEN string and calls t.Fatal if it is rejected.
func MustState(t testing.TB, fen string) *engine.State {
	t.Helper()
	s, err := engine.NewStateFromFEN(fen)
	if err != nil {
		t.Fatalf("NewStateFromFEN(%q) failed: %v", fen, err)
	}
	return s
}

// MustPlay applies UCI moves to s and calls t.Fatal on the first that is
// malformed or illegal.
func MustPlay(t testing.TB, s *engine.State, moves ...string) *engine.State {
	t.Helper()
	next, err := engine.ApplyUCIMoves(s, moves...)
	if err != nil {
		t.Fatalf("ApplyUCIMoves(%v) failed: %v", moves, err)
	}
	return next
}

// UCIMoves returns the UCI strings of moves in their original order.
func UCIMoves(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = engine.MoveToUCI(m)
	}
	return out
}
