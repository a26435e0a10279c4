package engine

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Draw rules are ignored, as is usual for move generator verification.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := legalMoves(&p, false)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(playMove(p, m), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by UCI string.
func Divide(p Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range legalMoves(&p, false) {
		result[MoveToUCI(m)] = Perft(playMove(p, m), depth-1)
	}
	return result
}
