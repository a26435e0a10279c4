package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func BenchmarkNewStateFromFEN(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = NewStateFromFEN(kiwipeteFEN)
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	s := mustState(b, kiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = LegalMoves(s)
	}
}

func BenchmarkPositionLegalMoves(b *testing.B) {
	s := mustState(b, kiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Position.LegalMoves()
	}
}

func BenchmarkApplyMove(b *testing.B) {
	s := NewInitialState()
	m, _ := UCIToMove("e2e4", s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ApplyMove(s, m)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	s := mustState(b, kiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IsInCheck(&s.Board, chess.White)
	}
}

func BenchmarkPerft3(b *testing.B) {
	p := NewInitialState().Position
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Perft(p, 3)
	}
}

func BenchmarkMoveToSAN(b *testing.B) {
	s := mustState(b, kiwipeteFEN)
	moves := LegalMoves(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			_ = MoveToSAN(m, s)
		}
	}
}
