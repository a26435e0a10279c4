// Package config holds the settings of the chessrules command.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Notation selects how moves are printed.
type Notation int

const (
	UCI       Notation = iota // Coordinate notation (e2e4, e7e8q)
	Algebraic                 // Simplified algebraic, no disambiguation
	SAN                       // Standard algebraic with disambiguation
)

// String returns the flag spelling of the notation.
func (n Notation) String() string {
	switch n {
	case UCI:
		return "uci"
	case Algebraic:
		return "algebraic"
	case SAN:
		return "san"
	default:
		return "unknown"
	}
}

// ParseNotation converts a flag value such as "san" into a Notation.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(s) {
	case "uci", "lalg":
		return UCI, nil
	case "algebraic", "alg":
		return Algebraic, nil
	case "san":
		return SAN, nil
	}
	return UCI, errors.Wrapf(errors.ErrInvalidConfig, "unknown notation %q", s)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=per-line progress

	Output   *OutputConfig
	Analysis *AnalysisConfig
	Puzzle   *PuzzleConfig

	// File handling
	OutputFilename string // Empty means OutputFile is used as is

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Analysis:   NewAnalysisConfig(),
		Puzzle:     NewPuzzleConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	return c.Puzzle.Validate()
}
