// Package output renders position reports as text or JSON.
package output

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Report describes one analysed position.
type Report struct {
	Index          int          `json:"index"`
	Input          string       `json:"input,omitempty"`
	FEN            string       `json:"fen,omitempty"`
	SideToMove     string       `json:"sideToMove,omitempty"`
	Status         string       `json:"status,omitempty"`
	DrawReason     string       `json:"drawReason,omitempty"`
	InCheck        bool         `json:"inCheck"`
	Castling       string       `json:"castling,omitempty"`
	EnPassant      string       `json:"enPassant,omitempty"`
	HalfmoveClock  int          `json:"halfmoveClock"`
	FullmoveNumber int          `json:"fullmoveNumber"`
	Material       int          `json:"material"`
	History        []string     `json:"history,omitempty"` // Moves played, in UCI
	Moves          []ReportMove `json:"moves,omitempty"`
	Board          string       `json:"-"`
	Error          string       `json:"error,omitempty"`
}

// ReportMove is one legal move of the reported position.
type ReportMove struct {
	UCI       string `json:"uci"`
	Notation  string `json:"notation,omitempty"` // Algebraic or SAN, per config
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Check     bool   `json:"check,omitempty"`
	Mate      bool   `json:"mate,omitempty"`
}

// NewReport builds the report for s.
func NewReport(index int, input string, s *engine.State, cfg *config.OutputConfig) *Report {
	r := &Report{
		Index:          index,
		Input:          input,
		FEN:            engine.StateToFEN(s),
		SideToMove:     strings.ToLower(s.ToMove.String()),
		Status:         s.Status.String(),
		DrawReason:     s.DrawReason.String(),
		InCheck:        engine.IsInCheck(&s.Board, s.ToMove),
		Castling:       s.Castling.String(),
		HalfmoveClock:  s.HalfmoveClock,
		FullmoveNumber: s.FullmoveNumber,
		Material:       engine.MaterialScore(&s.Board),
	}
	if s.EnPassant != chess.NoSquare {
		r.EnPassant = s.EnPassant.String()
	}
	for _, m := range s.Moves {
		r.History = append(r.History, engine.MoveToUCI(m))
	}
	if cfg.ShowBoard {
		r.Board = s.Board.String()
	}
	if cfg.ShowMoves {
		legal := engine.LegalMoves(s)
		r.Moves = make([]ReportMove, 0, len(legal))
		for _, m := range legal {
			r.Moves = append(r.Moves, newReportMove(m, s, cfg.Notation))
		}
	}
	return r
}

// ErrorReport records an input line that could not be analysed.
func ErrorReport(index int, input string, err error) *Report {
	return &Report{Index: index, Input: input, Error: err.Error()}
}

func newReportMove(m chess.Move, s *engine.State, n config.Notation) ReportMove {
	rm := ReportMove{
		UCI:   engine.MoveToUCI(m),
		Piece: pieceTypeName(m.Piece.Type()),
		Check: m.IsCheck,
		Mate:  m.IsCheckmate,
	}
	if n != config.UCI {
		rm.Notation = FormatMove(m, s, n)
	}
	if m.IsCapture() {
		rm.Captured = pieceTypeName(m.Captured.Type())
	}
	if m.IsPromotion() {
		rm.Promotion = pieceTypeName(m.Promotion)
	}
	return rm
}

// FormatMove renders a legal move of s in the given notation.
func FormatMove(m chess.Move, s *engine.State, n config.Notation) string {
	switch n {
	case config.Algebraic:
		return engine.MoveToAlgebraic(m, &s.Board)
	case config.SAN:
		return engine.MoveToSAN(m, s)
	default:
		return engine.MoveToUCI(m)
	}
}

// pieceTypeName returns the lowercase name of the piece type, "" for none.
func pieceTypeName(pt chess.PieceType) string {
	if pt == chess.NoPieceType {
		return ""
	}
	return strings.ToLower(pt.String())
}
