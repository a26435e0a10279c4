package chess

// Move is a plain record of one ply. It never refers back to a board.
type Move struct {
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured, Empty if none. For en passant this is the enemy
	// pawn even though it does not stand on To.
	Captured Piece

	// The piece type promoted to, NoPieceType if not a promotion.
	Promotion PieceType

	IsCastling  bool
	IsEnPassant bool

	// Whether the move gives check or checkmate. Only set on moves
	// returned by the annotating legal move generator.
	IsCheck     bool
	IsCheckmate bool
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsKingside returns true for a castling move towards the h-file.
func (m Move) IsKingside() bool {
	return m.IsCastling && m.To.File() > m.From.File()
}

// SameAs reports whether two moves describe the same ply: same squares and
// same promotion, regardless of annotation flags.
func (m Move) SameAs(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}
