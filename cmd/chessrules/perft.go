package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// errPerftMismatch is returned when -verify finds a count that differs from
// the independent move generator.
var errPerftMismatch = errors.New("perft mismatch")

// runPerft counts the move tree below the position on line and writes the
// result in the usual "move: nodes" divide format.
func runPerft(w io.Writer, line string, cfg *config.AnalysisConfig, log zerolog.Logger) error {
	s, err := worker.ParseLine(line)
	if err != nil {
		return err
	}
	fen := engine.StateToFEN(s)
	depth := cfg.PerftDepth
	start := time.Now()

	var total uint64
	if cfg.Divide {
		counts := engine.Divide(s.Position, depth)
		for _, move := range sortedKeys(counts) {
			fmt.Fprintf(w, "%s: %d\n", move, counts[move])
			total += counts[move]
		}
		fmt.Fprintln(w)
		if cfg.Verify {
			if err := compareDivide(counts, oracleDivide(fen, depth), log); err != nil {
				return err
			}
		}
	} else {
		total = engine.Perft(s.Position, depth)
		if cfg.Verify {
			if want := oraclePerft(fen, depth); want != total {
				return fmt.Errorf("%w: depth %d counted %d, expected %d", errPerftMismatch, depth, total, want)
			}
		}
	}

	fmt.Fprintf(w, "Nodes searched: %d\n", total)
	log.Info().
		Str("fen", fen).
		Int("depth", depth).
		Uint64("nodes", total).
		Bool("verified", cfg.Verify).
		Dur("elapsed", time.Since(start)).
		Msg("perft")
	return nil
}

// compareDivide reports every root move whose count differs, or that only one
// generator produced.
func compareDivide(got, want map[string]uint64, log zerolog.Logger) error {
	keys := make(map[string]struct{}, len(got))
	for k := range got {
		keys[k] = struct{}{}
	}
	for k := range want {
		keys[k] = struct{}{}
	}

	var mismatches int
	for _, move := range sortedKeys(keys) {
		g, okGot := got[move]
		w, okWant := want[move]
		if okGot && okWant && g == w {
			continue
		}
		mismatches++
		log.Error().
			Str("move", move).
			Uint64("nodes", g).
			Uint64("expected", w).
			Bool("generated", okGot).
			Bool("expected_generated", okWant).
			Msg("perft divide mismatch")
	}
	if mismatches > 0 {
		return fmt.Errorf("%w: %d root moves differ", errPerftMismatch, mismatches)
	}
	return nil
}

// oraclePerft counts leaves with dragontoothmg.
func oraclePerft(fen string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fen)
	return dragonPerft(&b, depth)
}

// oracleDivide is Divide computed with dragontoothmg.
func oracleDivide(fen string, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	b := dragontoothmg.ParseFen(fen)
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		out[m.String()] = dragonPerft(&b, depth-1)
		unapply()
	}
	return out
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
