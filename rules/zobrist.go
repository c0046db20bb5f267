package rules

import "math/rand"

// Zobrist keys for pieces, castling rights, en passant file and side to move.
var zobristPiece [13][64]uint64 // indexed by Piece.index()
var zobristCastle [16]uint64    // indexed by castleRights()
var zobristEnPassant [8]uint64
var zobristSide uint64 // XORed in when Black is to move

func init() {
	// Fixed seed keeps signatures reproducible across runs and tests.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := 0; p < 13; p++ {
		if p == NoPiece.index() {
			continue
		}
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// computeHash calculates the signature from scratch. The incremental updates in
// DoMove and Play must always agree with it.
func (p *Position) computeHash() uint64 {
	var key uint64
	for sq, pc := range p.squares {
		if pc != NoPiece {
			key ^= zobristPiece[pc.index()][sq]
		}
	}
	if p.side == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castling.rights()]
	if p.enPassant != NoSquare {
		key ^= zobristEnPassant[p.enPassant.File()]
	}
	return key
}
