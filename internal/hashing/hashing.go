// Package hashing provides Zobrist position hashing for repetition detection.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Zobrist keys. Generated once from a fixed seed so hashes are stable across
// runs and processes.
var (
	pieceKeys     [2][chess.NumPieceTypes][chess.NumSquares]uint64
	enPassantKeys [chess.BoardSize]uint64
	castlingKeys  [16]uint64
	blackToMove   uint64
)

func init() {
	initKeys()
}

// prng is a xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initKeys() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for colour := chess.Black; colour <= chess.White; colour++ {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				pieceKeys[colour][pt][sq] = rng.next()
			}
		}
	}
	for file := range enPassantKeys {
		enPassantKeys[file] = rng.next()
	}
	for i := range castlingKeys {
		castlingKeys[i] = rng.next()
	}
	blackToMove = rng.next()
}

// PieceKey returns the key for a coloured piece standing on a square.
func PieceKey(p chess.Piece, sq chess.Square) uint64 {
	if p == chess.Empty || !sq.Valid() {
		return 0
	}
	return pieceKeys[p.Colour()][p.Type()][sq]
}

// BoardHash hashes piece placement only.
func BoardHash(board *chess.Board) uint64 {
	var hash uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		hash ^= PieceKey(board[sq], sq)
	}
	return hash
}

// PositionHash hashes everything that makes two positions identical for
// repetition purposes: placement, side to move, castling rights and the
// en-passant target square.
func PositionHash(board *chess.Board, toMove chess.Colour, castling chess.CastlingRights, epSquare chess.Square) uint64 {
	hash := BoardHash(board)
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	hash ^= castlingKeys[castling.Mask()]
	if epSquare.Valid() {
		hash ^= enPassantKeys[epSquare.File()]
	}
	return hash
}

// Count returns how many times hash occurs in history.
func Count(history []uint64, hash uint64) int {
	count := 0
	for _, h := range history {
		if h == hash {
			count++
		}
	}
	return count
}
