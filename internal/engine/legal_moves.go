package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every legal move of the side to move, annotated with
// IsCheck and IsCheckmate. It returns nil once the game is over.
func LegalMoves(s *State) []chess.Move {
	if s.Status.IsTerminal() {
		return nil
	}
	return legalMoves(&s.Position, true)
}

// LegalMovesFrom returns the legal moves of the piece on sq, annotated like
// LegalMoves.
func LegalMovesFrom(s *State, sq chess.Square) []chess.Move {
	if s.Status.IsTerminal() {
		return nil
	}
	return filterLegal(&s.Position, candidateMoves(&s.Position, sq, nil), true)
}

// legalMoves generates the legal moves of every piece of the side to move.
func legalMoves(p *Position, annotate bool) []chess.Move {
	var candidates []chess.Move
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		candidates = candidateMoves(p, sq, candidates)
	}
	return filterLegal(p, candidates, annotate)
}

// filterLegal drops candidates that leave the mover's king in check. With
// annotate set, moves giving check are marked and probed for mate with the
// unannotated hasLegalMove, so the lookahead is exactly one reply deep.
func filterLegal(p *Position, candidates []chess.Move, annotate bool) []chess.Move {
	legal := candidates[:0]
	for _, m := range candidates {
		next := playMove(*p, m)
		if IsInCheck(&next.Board, p.ToMove) {
			continue
		}
		if annotate && IsInCheck(&next.Board, next.ToMove) {
			m.IsCheck = true
			m.IsCheckmate = !hasLegalMove(&next)
		}
		legal = append(legal, m)
	}
	return legal
}

// hasLegalMove returns true if the side to move has at least one legal move.
func hasLegalMove(p *Position) bool {
	var moves []chess.Move
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		moves = candidateMoves(p, sq, moves[:0])
		for _, m := range moves {
			next := playMove(*p, m)
			if !IsInCheck(&next.Board, p.ToMove) {
				return true
			}
		}
	}
	return false
}
