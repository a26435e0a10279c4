package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingMoves appends the castling moves available to the king on from.
// The king must be on its home square and not in check; each side also needs
// its right, its rook at home, an empty path and no attacked transit square.
func castlingMoves(p *Position, from chess.Square, king chess.Piece, moves []chess.Move) []chess.Move {
	colour := king.Colour()
	home := chess.E1
	if colour == chess.Black {
		home = chess.E8
	}
	if from != home {
		return moves
	}
	if !p.Castling.Kingside(colour) && !p.Castling.Queenside(colour) {
		return moves
	}
	if IsSquareAttacked(&p.Board, from, colour.Opposite()) {
		return moves
	}

	if p.Castling.Kingside(colour) {
		moves = appendCastle(p, from, king, 1, 3, moves)
	}
	if p.Castling.Queenside(colour) {
		moves = appendCastle(p, from, king, -1, 4, moves)
	}
	return moves
}

// appendCastle appends the castle towards dir when the rook rookDistance
// files away can take part in it.
func appendCastle(p *Position, from chess.Square, king chess.Piece, dir, rookDistance int, moves []chess.Move) []chess.Move {
	colour := king.Colour()
	if p.Board.At(from.Offset(dir*rookDistance, 0)) != chess.MakePiece(colour, chess.Rook) {
		return moves
	}
	for i := 1; i < rookDistance; i++ {
		if p.Board.At(from.Offset(dir*i, 0)) != chess.Empty {
			return moves
		}
	}
	// The king crosses one square and lands on the next; the rook's own
	// square may be attacked.
	for i := 1; i <= 2; i++ {
		if IsSquareAttacked(&p.Board, from.Offset(dir*i, 0), colour.Opposite()) {
			return moves
		}
	}
	return append(moves, chess.Move{From: from, To: from.Offset(2*dir, 0), Piece: king, IsCastling: true})
}

// castlingRookSquares returns where the rook starts and ends for a castling move.
func castlingRookSquares(m chess.Move) (from, to chess.Square) {
	if m.IsKingside() {
		return m.From.Offset(3, 0), m.From.Offset(1, 0)
	}
	return m.From.Offset(-4, 0), m.From.Offset(-1, 0)
}

// updateCastlingRights removes rights lost by the move: both of the mover's
// rights on a king move, and the matching right whenever a move leaves or
// lands on a rook's home square (the rook moving or being captured there).
func updateCastlingRights(cr chess.CastlingRights, piece chess.Piece, m chess.Move) chess.CastlingRights {
	if piece.Type() == chess.King {
		if piece.Colour() == chess.White {
			cr.WhiteKingside = false
			cr.WhiteQueenside = false
		} else {
			cr.BlackKingside = false
			cr.BlackQueenside = false
		}
	}

	for _, sq := range [2]chess.Square{m.From, m.To} {
		switch sq {
		case chess.H1:
			cr.WhiteKingside = false
		case chess.A1:
			cr.WhiteQueenside = false
		case chess.H8:
			cr.BlackKingside = false
		case chess.A8:
			cr.BlackQueenside = false
		}
	}
	return cr
}
