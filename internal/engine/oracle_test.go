package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	nchess "github.com/notnil/chess"
)

// oracleMoves returns the sorted UCI moves notnil/chess allows in game.
func oracleMoves(game *nchess.Game) []string {
	valid := game.ValidMoves()
	out := make([]string, 0, len(valid))
	for _, m := range valid {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// TestLegalMoves_MatchOracle walks a fixed line from several positions and
// compares the legal move set with notnil/chess at every ply.
func TestLegalMoves_MatchOracle(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		position5FEN,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/P7/8/8/8/8/7p/k6K w - - 0 1",
	}
	const plies = 40

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			opt, err := nchess.FEN(fen)
			if err != nil {
				t.Fatalf("notnil/chess rejected %q: %v", fen, err)
			}
			game := nchess.NewGame(opt)
			p := mustState(t, fen).Position

			for ply := 0; ply < plies; ply++ {
				ours := p.LegalMoves()
				got := uciStrings(ours)
				want := oracleMoves(game)
				if len(got) == 0 {
					got = []string{}
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("ply %d (%s): legal moves mismatch (-oracle +ours):\n%s", ply, BoardToFEN(&p.Board), diff)
				}
				if len(ours) == 0 || game.Outcome() != nchess.NoOutcome {
					return
				}

				m := ours[(ply*7+3)%len(ours)]
				uci := MoveToUCI(m)
				var played bool
				for _, vm := range game.ValidMoves() {
					if vm.String() == uci {
						if err := game.Move(vm); err != nil {
							t.Fatalf("notnil/chess refused %s: %v", uci, err)
						}
						played = true
						break
					}
				}
				if !played {
					t.Fatalf("ply %d: %s not found in notnil/chess moves", ply, uci)
				}
				p = playMove(p, m)
			}
		})
	}
}
