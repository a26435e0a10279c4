package worker

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// movesKeyword separates a FEN from the moves to play from it, as in the UCI
// "position" command.
const movesKeyword = "moves"

// ParseLine reads an analysis line: a FEN, "startpos", or either followed by
// "moves" and a list of UCI moves. Blank lines are not valid input.
func ParseLine(line string) (*engine.State, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty line")
	}

	var setup, moves []string
	setup = fields
	for i, f := range fields {
		if f == movesKeyword {
			setup, moves = fields[:i], fields[i+1:]
			break
		}
	}

	var s *engine.State
	if len(setup) == 1 && setup[0] == "startpos" {
		s = engine.NewInitialState()
	} else {
		var err error
		s, err = engine.NewStateFromFEN(strings.Join(setup, " "))
		if err != nil {
			return nil, err
		}
	}
	return engine.ApplyUCIMoves(s, moves...)
}

// Analyse is the ProcessFunc used for batch analysis.
func Analyse(item WorkItem) ProcessResult {
	s, err := ParseLine(item.Line)
	return ProcessResult{Index: item.Index, Seq: item.Seq, Line: item.Line, State: s, Err: err}
}
