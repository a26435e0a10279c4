package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveToUCI encodes a move as <from><to>[promotion], e.g. "e2e4" or "e7e8q".
func MoveToUCI(m chess.Move) string {
	buf := make([]byte, 0, 5)
	buf = append(buf, m.From.String()...)
	buf = append(buf, m.To.String()...)
	if m.IsPromotion() {
		buf = append(buf, m.Promotion.Letter()+('a'-'A'))
	}
	return string(buf)
}

// ParseUCI decodes the squares and promotion of a UCI move string without
// looking at any position.
func ParseUCI(uci string) (from, to chess.Square, promotion chess.PieceType, err error) {
	if len(uci) != 4 && len(uci) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.NoPieceType, errors.Wrapf(errors.ErrInvalidUCI, "%q", uci)
	}
	from, okFrom := chess.ParseSquare(uci[0:2])
	to, okTo := chess.ParseSquare(uci[2:4])
	if !okFrom || !okTo {
		return chess.NoSquare, chess.NoSquare, chess.NoPieceType, errors.Wrapf(errors.ErrInvalidUCI, "%q", uci)
	}
	if len(uci) == 5 {
		switch uci[4] {
		case 'q', 'r', 'b', 'n':
			promotion = chess.PieceTypeFromLetter(uci[4])
		default:
			return chess.NoSquare, chess.NoSquare, chess.NoPieceType, errors.Wrapf(errors.ErrInvalidUCI, "%q", uci)
		}
	}
	return from, to, promotion, nil
}

// DecodeUCI turns a UCI string into a Move by reading the moving and captured
// pieces from the state. Castling and en passant are inferred from the shape
// of the move. Legality is not checked: use UCIToMove for that.
func DecodeUCI(uci string, s *State) (chess.Move, error) {
	from, to, promotion, err := ParseUCI(uci)
	if err != nil {
		return chess.Move{}, err
	}
	piece := s.Board.At(from)
	m := chess.Move{
		From:      from,
		To:        to,
		Piece:     piece,
		Captured:  s.Board.At(to),
		Promotion: promotion,
	}
	switch piece.Type() {
	case chess.King:
		m.IsCastling = abs(to.File()-from.File()) == 2 && to.Rank() == from.Rank()
	case chess.Pawn:
		if to == s.EnPassant && from.File() != to.File() && m.Captured == chess.Empty {
			m.IsEnPassant = true
			m.Captured = s.Board.At(to.Offset(0, -chess.ColourOffset(piece.Colour())))
		}
	}
	return m, nil
}

// UCIToMove returns the legal move of s that the UCI string denotes. The
// second result is false for malformed input or a move that is not legal.
func UCIToMove(uci string, s *State) (chess.Move, bool) {
	from, to, promotion, err := ParseUCI(uci)
	if err != nil {
		return chess.Move{}, false
	}
	for _, m := range LegalMovesFrom(s, from) {
		if m.To == to && m.Promotion == promotion {
			return m, true
		}
	}
	return chess.Move{}, false
}
