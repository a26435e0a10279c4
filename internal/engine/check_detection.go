package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Offsets as (file, rank) deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is in check.
// A board without that colour's king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := FindKing(board, colour)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) chess.Square {
	return board.Find(chess.MakePiece(colour, chess.King))
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from the rank behind them.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, df := range [2]int{-1, 1} {
		if board.At(sq.Offset(df, pawnDir)) == pawn {
			return true
		}
	}

	if attackedByStep(board, sq, chess.MakePiece(byColour, chess.Knight), knightOffsets[:]) {
		return true
	}
	if attackedByStep(board, sq, chess.MakePiece(byColour, chess.King), kingOffsets[:]) {
		return true
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	if attackedByRay(board, sq, chess.MakePiece(byColour, chess.Bishop), queen, diagonalDirs[:]) {
		return true
	}
	return attackedByRay(board, sq, chess.MakePiece(byColour, chess.Rook), queen, straightDirs[:])
}

// attackedByStep checks the fixed offsets around sq for the attacker.
func attackedByStep(board *chess.Board, sq chess.Square, attacker chess.Piece, offsets [][2]int) bool {
	for _, off := range offsets {
		target := sq.Offset(off[0], off[1])
		if target != chess.NoSquare && board.At(target) == attacker {
			return true
		}
	}
	return false
}

// attackedByRay walks each direction from sq to the first occupied square.
func attackedByRay(board *chess.Board, sq chess.Square, slider, queen chess.Piece, dirs [][2]int) bool {
	for _, dir := range dirs {
		for target := sq.Offset(dir[0], dir[1]); target != chess.NoSquare; target = target.Offset(dir[0], dir[1]) {
			piece := board.At(target)
			if piece == chess.Empty {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break
		}
	}
	return false
}
