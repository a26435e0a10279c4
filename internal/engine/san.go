package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveToAlgebraic renders a move in simplified algebraic notation: piece
// letter (none for pawns), "x" for captures, destination, "=Q" style
// promotion and "+" or "#" taken from the move's check flags. Pawn captures
// carry their origin file ("exd5"). Castling is "O-O" or "O-O-O".
//
// Two identical pieces able to reach the same square are not disambiguated;
// MoveToSAN does that.
func MoveToAlgebraic(m chess.Move, board *chess.Board) string {
	return algebraic(m, board, "")
}

// MoveToSAN renders a move in standard algebraic notation, adding the origin
// file, rank or both when another piece of the same kind could also reach
// the destination.
func MoveToSAN(m chess.Move, s *State) string {
	return algebraic(m, &s.Board, disambiguation(m, &s.Board, LegalMoves(s)))
}

// algebraic writes the notation with the given disambiguation after the piece letter.
func algebraic(m chess.Move, board *chess.Board, disambig string) string {
	var sb strings.Builder

	if m.IsCastling {
		if m.IsKingside() {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	} else {
		piece := board.At(m.From)
		if piece == chess.Empty {
			piece = m.Piece
		}
		isPawn := piece.Type() == chess.Pawn
		if !isPawn {
			sb.WriteByte(piece.Type().Letter())
			sb.WriteString(disambig)
		}
		if m.IsCapture() || board.At(m.To) != chess.Empty {
			if isPawn {
				sb.WriteByte(byte(chess.FileBase + m.From.File()))
			}
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	}

	if m.IsCheckmate {
		sb.WriteByte('#')
	} else if m.IsCheck {
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same piece kind to the same square.
func disambiguation(m chess.Move, board *chess.Board, legal []chess.Move) string {
	piece := board.At(m.From)
	if piece.Type() == chess.Pawn || piece.Type() == chess.King {
		return ""
	}

	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range legal {
		if other.To != m.To || other.From == m.From || board.At(other.From) != piece {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return m.From.String()[:1]
	case !sameRank:
		return m.From.String()[1:]
	default:
		return m.From.String()
	}
}

// ParseAlgebraic finds the legal move of s written as notation. Check, mate
// and annotation suffixes are ignored, and "0-0" is read as "O-O". The
// simplified form of MoveToAlgebraic is tried first, then full SAN, then a
// pawn capture without its origin file ("xd5"). A promotion may omit the "="
// ("e8Q"). When a form is ambiguous the first matching move in generation
// order is returned. The second result is false when nothing matches.
func ParseAlgebraic(notation string, s *State) (chess.Move, bool) {
	want := normalizeAlgebraic(notation)
	if want == "" {
		return chess.Move{}, false
	}

	legal := LegalMoves(s)
	for _, m := range legal {
		if normalizeAlgebraic(algebraic(m, &s.Board, "")) == want {
			return m, true
		}
	}
	for _, m := range legal {
		if normalizeAlgebraic(algebraic(m, &s.Board, disambiguation(m, &s.Board, legal))) == want {
			return m, true
		}
	}
	for _, m := range legal {
		if bare, ok := barePawnCapture(normalizeAlgebraic(algebraic(m, &s.Board, ""))); ok && bare == want {
			return m, true
		}
	}
	return chess.Move{}, false
}

// barePawnCapture drops the origin file from a pawn capture, "exd5" -> "xd5".
func barePawnCapture(n string) (string, bool) {
	if len(n) < 3 || n[0] < 'a' || n[0] > 'h' || n[1] != 'x' {
		return "", false
	}
	return n[1:], true
}

// normalizeAlgebraic strips whitespace and trailing +, #, ! and ? marks.
func normalizeAlgebraic(notation string) string {
	n := strings.TrimSpace(notation)
	n = strings.TrimRight(n, "+#!?")
	switch n {
	case "0-0":
		return "O-O"
	case "0-0-0":
		return "O-O-O"
	}
	// "e8Q" -> "e8=Q"
	if l := len(n); l >= 3 && strings.IndexByte("QRBN", n[l-1]) >= 0 && (n[l-2] == '1' || n[l-2] == '8') {
		n = n[:l-1] + "=" + n[l-1:]
	}
	return n
}
