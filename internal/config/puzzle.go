package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PuzzleConfig holds the puzzle to check, if any.
type PuzzleConfig struct {
	// FEN of the puzzle position; empty disables puzzle mode
	FEN string

	// Solution lists the expected plies in UCI, both sides included
	Solution []string

	// Attempt lists the solver's moves in UCI
	Attempt []string
}

// NewPuzzleConfig creates a PuzzleConfig with puzzle mode disabled.
func NewPuzzleConfig() *PuzzleConfig {
	return &PuzzleConfig{}
}

// Enabled reports whether a puzzle was configured.
func (p *PuzzleConfig) Enabled() bool {
	return p.FEN != ""
}

// Validate checks that an enabled puzzle has a solution.
func (p *PuzzleConfig) Validate() error {
	if p.Enabled() && len(p.Solution) == 0 {
		return fmt.Errorf("puzzle has no solution: %w", errors.ErrInvalidConfig)
	}
	return nil
}
