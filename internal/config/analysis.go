package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds -perft; deeper trees take hours with this generator.
const MaxPerftDepth = 8

// AnalysisConfig holds settings for batch analysis and perft runs.
type AnalysisConfig struct {
	// Workers is the number of goroutines analysing input lines
	Workers int

	// PerftDepth runs a perft count to this depth when positive
	PerftDepth int

	// Divide prints the count below each root move
	Divide bool

	// Verify cross-checks perft counts with an independent move generator
	Verify bool
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{Workers: 1}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.PerftDepth < 0 || a.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth (%d) must be between 0 and %d: %w",
			a.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if (a.Divide || a.Verify) && a.PerftDepth == 0 {
		return fmt.Errorf("divide and verify need a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
