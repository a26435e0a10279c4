// Package engine implements the rules of chess over the value types of the
// chess package: move generation, state transitions, game status and the
// FEN, UCI and algebraic notations.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewStateFromFEN creates a state from a FEN string. The halfmove clock and
// fullmove number may be omitted and default to 0 and 1. Malformed input is
// rejected with a *errors.FENError wrapping errors.ErrInvalidFEN.
func NewStateFromFEN(fen string) (*State, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fenError(fen, "field count", strconv.Itoa(len(parts)))
	}

	var p Position
	if err := parsePiecePositions(&p.Board, parts[0]); err != nil {
		return nil, withFEN(err, fen)
	}
	if err := parseSideToMove(&p, parts[1]); err != nil {
		return nil, withFEN(err, fen)
	}
	if err := parseCastlingRights(&p, parts[2]); err != nil {
		return nil, withFEN(err, fen)
	}
	if err := parseEnPassant(&p, parts[3]); err != nil {
		return nil, withFEN(err, fen)
	}
	halfmove, fullmove, err := parseClocks(parts[4:])
	if err != nil {
		return nil, withFEN(err, fen)
	}
	if err := checkKings(&p.Board); err != nil {
		return nil, withFEN(err, fen)
	}

	return newState(p, halfmove, fullmove), nil
}

// fenError builds a FEN error for one field.
func fenError(fen, field, value string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, Field: field, Value: value, FEN: fen}
}

// withFEN records the full input on a field error.
func withFEN(err error, fen string) error {
	if fe, ok := err.(*errors.FENError); ok {
		fe.FEN = fen
	}
	return err
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("", "placement", positions)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return fenError("", "piece", string(c))
			}
			sq := chess.NewSquare(file, rank)
			if sq == chess.NoSquare {
				return fenError("", "rank", row)
			}
			board.Set(sq, piece)
			file++
		}
		if file != chess.BoardSize {
			return fenError("", "rank", row)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *Position, field string) error {
	switch field {
	case "w":
		p.ToMove = chess.White
	case "b":
		p.ToMove = chess.Black
	default:
		return fenError("", "side to move", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(p *Position, field string) error {
	if field == "-" {
		return nil
	}
	seen := make(map[rune]bool, 4)
	for _, c := range field {
		if seen[c] {
			return fenError("", "castling", field)
		}
		seen[c] = true
		switch c {
		case 'K':
			p.Castling.WhiteKingside = true
		case 'Q':
			p.Castling.WhiteQueenside = true
		case 'k':
			p.Castling.BlackKingside = true
		case 'q':
			p.Castling.BlackQueenside = true
		default:
			return fenError("", "castling", field)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target must
// sit on the rank a pawn of the side not to move has just crossed.
func parseEnPassant(p *Position, field string) error {
	p.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return fenError("", "en passant", field)
	}
	wantRank := 6
	if p.ToMove == chess.Black {
		wantRank = 3
	}
	if sq.Rank() != wantRank {
		return fenError("", "en passant", field)
	}
	p.EnPassant = sq
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(fields []string) (halfmove, fullmove int, err error) {
	halfmove, fullmove = 0, 1
	if len(fields) >= 1 {
		halfmove, err = strconv.Atoi(fields[0])
		if err != nil || halfmove < 0 {
			return 0, 0, fenError("", "halfmove clock", fields[0])
		}
	}
	if len(fields) >= 2 {
		fullmove, err = strconv.Atoi(fields[1])
		if err != nil || fullmove < 1 {
			return 0, 0, fenError("", "fullmove number", fields[1])
		}
	}
	return halfmove, fullmove, nil
}

// checkKings requires exactly one king of each colour.
func checkKings(board *chess.Board) error {
	var white, black int
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		switch board.At(sq) {
		case chess.W(chess.King):
			white++
		case chess.B(chess.King):
			black++
		}
	}
	if white != 1 || black != 1 {
		return fenError("", "kings", fmt.Sprintf("%d white, %d black", white, black))
	}
	return nil
}

// StateToFEN converts a state to a FEN string.
func StateToFEN(s *State) string {
	var sb strings.Builder

	writePiecePositions(&sb, &s.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, s.ToMove)
	sb.WriteByte(' ')
	sb.WriteString(s.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(s.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", s.HalfmoveClock, s.FullmoveNumber)

	return sb.String()
}

// BoardToFEN returns the piece placement field for a board.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize; rank >= 1; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
