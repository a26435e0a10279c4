package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// State is a complete game state. A State is never modified after it has
// been returned: ApplyMove builds a new one, so older states stay valid and
// may be read from several goroutines at once.
type State struct {
	Position

	// Plies since the last pawn move or capture.
	HalfmoveClock int

	// Starts at 1 and is incremented after each Black move.
	FullmoveNumber int

	// Moves played since the state was created from a FEN or the initial position.
	Moves []chess.Move

	// Repetition hash of every position reached, including the starting one.
	PositionHashes []uint64

	Status     chess.Status
	DrawReason chess.DrawReason
}

// NewInitialState returns the standard starting position.
func NewInitialState() *State {
	s, _ := NewStateFromFEN(InitialFEN)
	return s
}

// newState builds a state with no move history and evaluates its status.
func newState(p Position, halfmoveClock, fullmoveNumber int) *State {
	s := &State{
		Position:       p,
		HalfmoveClock:  halfmoveClock,
		FullmoveNumber: fullmoveNumber,
		PositionHashes: []uint64{p.Hash()},
	}
	s.Status, s.DrawReason = Evaluate(s)
	return s
}

// ApplyMove returns the state after m. The move must come from LegalMoves(s);
// anything else is a caller error and the result is unspecified. s itself is
// left unchanged.
func ApplyMove(s *State, m chess.Move) *State {
	mover := s.Board.At(m.From)
	capture := s.Board.At(m.To) != chess.Empty || m.IsEnPassant

	next := &State{
		Position:       playMove(s.Position, m),
		HalfmoveClock:  s.HalfmoveClock + 1,
		FullmoveNumber: s.FullmoveNumber,
	}
	if mover.Type() == chess.Pawn || capture {
		next.HalfmoveClock = 0
	}
	if s.ToMove == chess.Black {
		next.FullmoveNumber++
	}
	next.Moves = appendHistory(s.Moves, m)
	next.PositionHashes = appendHistory(s.PositionHashes, next.Hash())
	next.Status, next.DrawReason = Evaluate(next)
	return next
}

// TryApplyMove applies m after checking it against the legal moves of s.
// Only From, To and Promotion of m are consulted.
func TryApplyMove(s *State, m chess.Move) (*State, error) {
	if s.Status.IsTerminal() {
		return nil, &errors.MoveError{Err: errors.ErrGameOver, Ply: len(s.Moves) + 1, Move: MoveToUCI(m)}
	}
	for _, legal := range LegalMovesFrom(s, m.From) {
		if legal.SameAs(m) {
			return ApplyMove(s, legal), nil
		}
	}
	return nil, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: len(s.Moves) + 1, Move: MoveToUCI(m)}
}

// ApplyUCIMoves plays a sequence of UCI moves from s and returns the final
// state. It stops at the first move that is malformed or not legal.
func ApplyUCIMoves(s *State, moves ...string) (*State, error) {
	for _, uci := range moves {
		if _, _, _, err := ParseUCI(uci); err != nil {
			return nil, &errors.MoveError{Err: err, Ply: len(s.Moves) + 1, Move: uci}
		}
		if s.Status.IsTerminal() {
			return nil, &errors.MoveError{Err: errors.ErrGameOver, Ply: len(s.Moves) + 1, Move: uci}
		}
		m, ok := UCIToMove(uci, s)
		if !ok {
			return nil, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: len(s.Moves) + 1, Move: uci}
		}
		s = ApplyMove(s, m)
	}
	return s, nil
}

// appendHistory returns a new slice holding history followed by item. The
// previous state's slice is never appended to in place, so two states can
// never share a writable backing array.
func appendHistory[T any](history []T, item T) []T {
	out := make([]T, len(history), len(history)+1)
	copy(out, history)
	return append(out, item)
}
