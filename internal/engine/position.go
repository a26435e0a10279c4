package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Position is the part of a game state that decides which moves are legal
// and which positions count as repetitions.
type Position struct {
	Board     chess.Board
	ToMove    chess.Colour
	Castling  chess.CastlingRights
	EnPassant chess.Square // NoSquare unless the last ply was a double pawn push
}

// Hash returns the repetition hash of the position.
func (p *Position) Hash() uint64 {
	return hashing.PositionHash(&p.Board, p.ToMove, p.Castling, p.EnPassant)
}

// LegalMoves returns the legal moves of the side to move without check
// annotations and without regard to draw rules.
func (p *Position) LegalMoves() []chess.Move {
	return legalMoves(p, false)
}

// playMove returns the position after m. p is received by value, so the
// caller's board is never written to.
func playMove(p Position, m chess.Move) Position {
	colour := p.ToMove
	piece := p.Board.At(m.From)

	p.Board.Set(m.From, chess.Empty)

	// The pawn taken en passant stands beside the mover, behind the target.
	if m.IsEnPassant {
		p.Board.Set(m.To.Offset(0, -chess.ColourOffset(colour)), chess.Empty)
	}

	if m.IsPromotion() {
		p.Board.Set(m.To, chess.MakePiece(colour, m.Promotion))
	} else {
		p.Board.Set(m.To, piece)
	}

	if m.IsCastling {
		rookFrom, rookTo := castlingRookSquares(m)
		p.Board.Set(rookTo, p.Board.At(rookFrom))
		p.Board.Set(rookFrom, chess.Empty)
	}

	p.Castling = updateCastlingRights(p.Castling, piece, m)

	p.EnPassant = chess.NoSquare
	if piece.Type() == chess.Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		p.EnPassant = m.From.Offset(0, chess.ColourOffset(colour))
	}

	p.ToMove = colour.Opposite()
	return p
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
