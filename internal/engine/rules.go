package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Evaluate classifies the state for the side to move. Checkmate and
// stalemate take precedence over the draw rules, which are tried in the order
// fifty-move rule, threefold repetition, insufficient material.
func Evaluate(s *State) (chess.Status, chess.DrawReason) {
	inCheck := IsInCheck(&s.Board, s.ToMove)

	if !hasLegalMove(&s.Position) {
		if inCheck {
			return chess.Checkmate, chess.NoDraw
		}
		return chess.Stalemate, chess.NoDraw
	}

	if s.HalfmoveClock >= 100 {
		return chess.Draw, chess.FiftyMoveRule
	}
	if hashing.Count(s.PositionHashes, s.Hash()) >= 3 {
		return chess.Draw, chess.ThreefoldRepetition
	}
	if HasInsufficientMaterial(&s.Board) {
		return chess.Draw, chess.InsufficientMaterial
	}

	if inCheck {
		return chess.Check, chess.NoDraw
	}
	return chess.Active, chess.NoDraw
}

// StatusOf recomputes the status of the state.
func StatusOf(s *State) chess.Status {
	status, _ := Evaluate(s)
	return status
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(p *Position) bool {
	return IsInCheck(&p.Board, p.ToMove) && !hasLegalMove(p)
}

// IsStalemate returns true if the side to move has no legal move but is not in check.
func IsStalemate(p *Position) bool {
	return !IsInCheck(&p.Board, p.ToMove) && !hasLegalMove(p)
}

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material is:
// - kings only
// - exactly one minor piece (bishop or knight) besides the kings
// - exactly two bishops, both on squares of the same colour
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors []chess.Square

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.At(sq)
		switch piece.Type() {
		case chess.NoPieceType, chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}
		minors = append(minors, sq)
	}

	switch len(minors) {
	case 0, 1:
		return true
	case 2:
		first, second := board.At(minors[0]), board.At(minors[1])
		return first.Type() == chess.Bishop && second.Type() == chess.Bishop &&
			minors[0].IsLight() == minors[1].IsLight()
	}
	return false
}

// Centipawn values used by MaterialScore.
var pieceValues = [chess.NumPieceTypes]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
}

// MaterialScore returns White's material minus Black's in centipawns. It is
// informational only and plays no part in legality or status.
func MaterialScore(board *chess.Board) int {
	score := 0
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.At(sq)
		if piece == chess.Empty {
			continue
		}
		if piece.Colour() == chess.White {
			score += pieceValues[piece.Type()]
		} else {
			score -= pieceValues[piece.Type()]
		}
	}
	return score
}
