// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	fenFlag   = flag.String("fen", "", "Position to analyse: a FEN string or 'startpos'")
	movesFlag = flag.String("moves", "", "UCI moves to play from -fen before analysing (space separated)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	notation     = flag.String("W", "san", "Move notation: san, algebraic, uci")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Include the board diagram in text output")
	noMoves      = flag.Bool("nomoves", false, "Don't list legal moves")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count move tree leaves to this depth")
	divide     = flag.Bool("divide", false, "Print the perft count below each root move")
	verify     = flag.Bool("verify", false, "Cross-check perft counts with an independent move generator")

	// Puzzle options
	puzzleFEN      = flag.String("puzzle", "", "Puzzle position (FEN)")
	puzzleSolution = flag.String("solution", "", "Puzzle solution in UCI, both sides (space separated)")
	puzzleAttempt  = flag.String("attempt", "", "Solver moves in UCI to check against -solution (space separated)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=errors only, 1=summary, 2=per-position detail")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (errors only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 1, "Number of goroutines analysing batch input")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyAnalysisFlags(cfg)
	applyPuzzleFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.OutputFilename = *outputFile
	return nil
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) error {
	n, err := config.ParseNotation(*notation)
	if err != nil {
		return err
	}
	cfg.Output.Notation = n
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowMoves = !*noMoves
	return nil
}

// applyAnalysisFlags configures batch analysis and perft settings.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.Workers = *workers
	cfg.Analysis.PerftDepth = *perftDepth
	cfg.Analysis.Divide = *divide
	cfg.Analysis.Verify = *verify
}

// applyPuzzleFlags configures puzzle checking.
func applyPuzzleFlags(cfg *config.Config) {
	cfg.Puzzle.FEN = *puzzleFEN
	cfg.Puzzle.Solution = strings.Fields(*puzzleSolution)
	cfg.Puzzle.Attempt = strings.Fields(*puzzleAttempt)
}

// positionLine joins -fen and -moves into one analysis line.
func positionLine() string {
	line := strings.TrimSpace(*fenFlag)
	if line == "" {
		return ""
	}
	if moves := strings.TrimSpace(*movesFlag); moves != "" {
		line += " moves " + moves
	}
	return line
}
