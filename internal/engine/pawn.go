package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pushes, double pushes, captures, en passant captures
// and promotions for the pawn on from.
func pawnMoves(p *Position, from chess.Square, pawn chess.Piece, moves []chess.Move) []chess.Move {
	colour := pawn.Colour()
	dir := chess.ColourOffset(colour)
	startRank, lastRank := 2, 8
	if colour == chess.Black {
		startRank, lastRank = 7, 1
	}

	// Forward moves
	one := from.Offset(0, dir)
	if one != chess.NoSquare && p.Board.At(one) == chess.Empty {
		moves = appendPawnMove(moves, chess.Move{From: from, To: one, Piece: pawn}, lastRank)

		if from.Rank() == startRank {
			two := from.Offset(0, 2*dir)
			if p.Board.At(two) == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: two, Piece: pawn})
			}
		}
	}

	// Captures
	enemyPawn := chess.MakePiece(colour.Opposite(), chess.Pawn)
	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if to == chess.NoSquare {
			continue
		}
		target := p.Board.At(to)
		switch {
		case target.Is(colour.Opposite()):
			moves = appendPawnMove(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: target}, lastRank)
		case target == chess.Empty && to == p.EnPassant:
			if p.Board.At(to.Offset(0, -dir)) == enemyPawn {
				moves = append(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: enemyPawn, IsEnPassant: true})
			}
		}
	}
	return moves
}

// appendPawnMove appends m, expanded into the four promotion choices when it
// reaches the last rank.
func appendPawnMove(moves []chess.Move, m chess.Move, lastRank int) []chess.Move {
	if m.To.Rank() != lastRank {
		return append(moves, m)
	}
	for _, pt := range chess.PromotionTypes {
		m.Promotion = pt
		moves = append(moves, m)
	}
	return moves
}
