package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CandidateMoves returns the pseudo-legal moves of the piece on sq: moves that
// follow the piece's movement rules without regard to the safety of the
// mover's own king. It returns nil when sq does not hold a piece of the side
// to move.
func CandidateMoves(p Position, sq chess.Square) []chess.Move {
	return candidateMoves(&p, sq, nil)
}

// candidateMoves appends the pseudo-legal moves from sq to moves.
func candidateMoves(p *Position, from chess.Square, moves []chess.Move) []chess.Move {
	piece := p.Board.At(from)
	if !piece.Is(p.ToMove) {
		return moves
	}

	switch piece.Type() {
	case chess.Pawn:
		return pawnMoves(p, from, piece, moves)
	case chess.Knight:
		return stepMoves(p, from, piece, knightOffsets[:], moves)
	case chess.Bishop:
		return slidingMoves(p, from, piece, diagonalDirs[:], moves)
	case chess.Rook:
		return slidingMoves(p, from, piece, straightDirs[:], moves)
	case chess.Queen:
		moves = slidingMoves(p, from, piece, diagonalDirs[:], moves)
		return slidingMoves(p, from, piece, straightDirs[:], moves)
	case chess.King:
		moves = stepMoves(p, from, piece, kingOffsets[:], moves)
		return castlingMoves(p, from, piece, moves)
	}
	return moves
}

// stepMoves generates knight and king moves from their fixed offsets.
func stepMoves(p *Position, from chess.Square, piece chess.Piece, offsets [][2]int, moves []chess.Move) []chess.Move {
	colour := piece.Colour()
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if to == chess.NoSquare {
			continue
		}
		target := p.Board.At(to)
		if target.Is(colour) {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
	}
	return moves
}

// slidingMoves generates bishop, rook and queen moves along each direction,
// stopping at the first occupied square.
func slidingMoves(p *Position, from chess.Square, piece chess.Piece, dirs [][2]int, moves []chess.Move) []chess.Move {
	colour := piece.Colour()
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to != chess.NoSquare; to = to.Offset(dir[0], dir[1]) {
			target := p.Board.At(to)
			if target.Is(colour) {
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
			if target != chess.Empty {
				break
			}
		}
	}
	return moves
}
