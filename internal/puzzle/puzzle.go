// Package puzzle checks attempts at a puzzle one ply at a time against the
// puzzle's solution line.
package puzzle

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Puzzle is a starting position and the line that solves it. Solution plies
// alternate between the solver and the opponent, starting with the solver.
type Puzzle struct {
	ID       string
	FEN      string
	Solution []string // UCI
}

// Result is the outcome of one submitted move.
type Result struct {
	Correct bool
	Solved  bool
	Reply   string        // Opponent ply played in response, UCI
	State   *engine.State // State after the move and any reply, or the reset state
}

// Session tracks one solver's progress through a puzzle. A Session is not
// safe for concurrent use.
type Session struct {
	puzzle Puzzle
	log    zerolog.Logger
	start  *engine.State
	state  *engine.State
	ply    int
	solved bool
}

// NewSession parses the puzzle position and checks that the whole solution
// line is legal from it.
func NewSession(p Puzzle, log zerolog.Logger) (*Session, error) {
	start, err := engine.NewStateFromFEN(p.FEN)
	if err != nil {
		return nil, errors.Wrapf(err, "puzzle %q", p.ID)
	}
	if len(p.Solution) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "puzzle %q has no solution", p.ID)
	}
	if _, err := engine.ApplyUCIMoves(start, p.Solution...); err != nil {
		return nil, errors.Wrapf(err, "puzzle %q solution", p.ID)
	}

	return &Session{
		puzzle: p,
		log:    log.With().Str("puzzle", p.ID).Logger(),
		start:  start,
		state:  start,
	}, nil
}

// Submit checks a solver move. A correct move is played together with the
// opponent's reply. A wrong, illegal or malformed move resets the session to
// the puzzle position; that is reported through Result, not as an error.
// Once the puzzle is solved every call returns ErrPuzzleSolved.
func (s *Session) Submit(uci string) (Result, error) {
	if s.solved {
		return Result{Solved: true, State: s.state}, errors.ErrPuzzleSolved
	}

	expected := s.puzzle.Solution[s.ply]
	m, ok := engine.UCIToMove(uci, s.state)
	if !ok || engine.MoveToUCI(m) != expected {
		s.log.Info().Int("ply", s.ply+1).Str("move", uci).Str("expected", expected).Msg("puzzle reset")
		s.Reset()
		return Result{State: s.state}, nil
	}

	s.state = engine.ApplyMove(s.state, m)
	s.ply++
	res := Result{Correct: true}

	if s.ply < len(s.puzzle.Solution) {
		reply := s.puzzle.Solution[s.ply]
		next, err := engine.ApplyUCIMoves(s.state, reply)
		if err != nil {
			// NewSession already replayed the line, so this cannot happen.
			return Result{}, errors.Wrapf(err, "puzzle %q reply", s.puzzle.ID)
		}
		s.state = next
		s.ply++
		res.Reply = reply
	}

	if s.ply == len(s.puzzle.Solution) {
		s.solved = true
		s.log.Info().Int("plies", s.ply).Msg("puzzle solved")
	} else {
		s.log.Debug().Int("ply", s.ply).Str("move", uci).Msg("correct move")
	}
	res.Solved = s.solved
	res.State = s.state
	return res, nil
}

// Reset returns the session to the puzzle position.
func (s *Session) Reset() {
	s.state = s.start
	s.ply = 0
	s.solved = false
}

// State returns the current state of the session.
func (s *Session) State() *engine.State { return s.state }

// Ply returns the number of solution plies played so far.
func (s *Session) Ply() int { return s.ply }

// Solved reports whether the whole solution has been played.
func (s *Session) Solved() bool { return s.solved }

// Check plays an attempt from the puzzle position and reports whether it
// solves the puzzle. It stops at the first wrong move; the returned count is
// the number of attempt moves accepted before that.
func Check(p Puzzle, attempt []string, log zerolog.Logger) (solved bool, accepted int, err error) {
	s, err := NewSession(p, log)
	if err != nil {
		return false, 0, err
	}
	for _, uci := range attempt {
		res, err := s.Submit(uci)
		if err != nil {
			return s.solved, accepted, err
		}
		if !res.Correct {
			return false, accepted, nil
		}
		accepted++
	}
	return s.solved, accepted, nil
}
