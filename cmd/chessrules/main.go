// chessrules analyses chess positions: legal moves, game status, perft
// counts and puzzle solutions.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/puzzle"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)
	log := newLogger(cfg)

	if err := run(cfg, log, positionLine(), flag.Args(), os.Stdin); err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

// run dispatches to puzzle checking, perft, single position analysis or
// batch analysis of files (stdin when there are none), in that order.
func run(cfg *config.Config, log zerolog.Logger, line string, files []string, stdin io.Reader) error {
	switch {
	case cfg.Puzzle.Enabled():
		return runPuzzle(cfg, log)
	case cfg.Analysis.PerftDepth > 0:
		if line == "" {
			line = "startpos"
		}
		return runPerft(cfg.OutputFile, line, cfg.Analysis, log)
	case line != "":
		failed, err := analyseLines(cfg, log, "-fen", []string{line})
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("could not analyse %q", line)
		}
		return nil
	}

	if len(files) == 0 {
		return analyseReader(cfg, log, "stdin", stdin)
	}
	for _, name := range files {
		file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("cannot open input")
			continue
		}
		err = analyseReader(cfg, log, name, file)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return err
		}
	}
	return nil
}

// analyseReader analyses every position line of r.
func analyseReader(cfg *config.Config, log zerolog.Logger, name string, r io.Reader) error {
	lines, err := readLines(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	_, err = analyseLines(cfg, log, name, lines)
	return err
}

// readLines returns the lines of r. Blank lines and lines starting with '#'
// are returned as empty strings so that indexes stay equal to line numbers.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			line = ""
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// analyseLines analyses the non-empty lines on a worker pool and writes one
// report per line, in input order. It returns the number of lines that could
// not be analysed. A write error stops the pool and is returned.
//
// Workers only build engine states; reports are written from this goroutine.
func analyseLines(cfg *config.Config, log zerolog.Logger, source string, lines []string) (int, error) {
	start := time.Now()
	pool := worker.NewPool(cfg.Analysis.Workers, min(len(lines), 100), worker.Analyse)
	pool.Start()

	go func() {
		seq := 0
		for i, line := range lines {
			if line == "" {
				continue
			}
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Line: line, Index: i + 1, Seq: seq})
			seq++
		}
		pool.Close()
	}()

	w := output.NewReportWriter(cfg.OutputFile, cfg.Output)
	positions, failed := 0, 0
	err := pool.Ordered(func(res worker.ProcessResult) error {
		positions++
		var r *output.Report
		if res.Err != nil {
			failed++
			log.Warn().Err(res.Err).Str("source", source).Int("line", res.Index).Msg("cannot analyse position")
			r = output.ErrorReport(res.Index, res.Line, res.Err)
		} else {
			log.Debug().Str("source", source).Int("line", res.Index).Str("status", res.State.Status.String()).Msg("analysed")
			r = output.NewReport(res.Index, res.Line, res.State, cfg.Output)
		}
		return w.WriteReport(r)
	})
	if err != nil {
		return failed, fmt.Errorf("writing %s reports: %w", source, err)
	}
	if err := w.Close(); err != nil {
		return failed, err
	}

	log.Info().
		Str("source", source).
		Int("positions", positions).
		Int("errors", failed).
		Int("workers", pool.NumWorkers()).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")
	return failed, nil
}

// puzzleResult is the outcome of -puzzle.
type puzzleResult struct {
	FEN      string   `json:"fen"`
	Attempt  []string `json:"attempt"`
	Accepted int      `json:"accepted"`
	Solved   bool     `json:"solved"`
}

// runPuzzle checks -attempt against the configured puzzle.
func runPuzzle(cfg *config.Config, log zerolog.Logger) error {
	p := puzzle.Puzzle{ID: "cli", FEN: cfg.Puzzle.FEN, Solution: cfg.Puzzle.Solution}
	solved, accepted, err := puzzle.Check(p, cfg.Puzzle.Attempt, log)
	if err != nil {
		return err
	}

	res := puzzleResult{FEN: p.FEN, Attempt: cfg.Puzzle.Attempt, Accepted: accepted, Solved: solved}
	if res.Attempt == nil {
		res.Attempt = []string{}
	}
	if cfg.Output.JSONFormat {
		enc := json.NewEncoder(cfg.OutputFile)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if solved {
		_, err = fmt.Fprintf(cfg.OutputFile, "Solved in %d moves\n", accepted)
	} else {
		_, err = fmt.Fprintf(cfg.OutputFile, "Not solved: %d of %d moves accepted\n", accepted, len(cfg.Puzzle.Attempt))
	}
	return err
}

// newLogger builds the diagnostics logger. Verbosity 0 shows errors only,
// 1 adds summaries and 2 adds per-position detail.
func newLogger(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case cfg.Verbosity <= 0:
		level = zerolog.ErrorLevel
	case cfg.Verbosity >= 2:
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: cfg.LogFile, NoColor: true, TimeFormat: time.TimeOnly}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Analyses chess positions given as FEN. Input files hold one position per line:\n")
	fmt.Fprintf(os.Stderr, "a FEN or 'startpos', optionally followed by 'moves' and UCI moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notations (-W):\n")
	fmt.Fprintf(os.Stderr, "  san        Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  algebraic  Simplified algebraic, no disambiguation\n")
	fmt.Fprintf(os.Stderr, "  uci        UCI long algebraic (e2e4, e7e8q)\n")
}
