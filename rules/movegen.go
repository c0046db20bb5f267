package rules

// MaxMoves bounds the number of pseudo-legal moves in any reachable position.
const MaxMoves = 256

// PseudoLegalMoves appends every move of side that obeys piece geometry and
// occupancy, without checking the safety of side's own king, and returns the
// extended slice. Castling is only emitted when the king's path is not attacked.
func (t *Tables) PseudoLegalMoves(p *Position, side Owner, dst []Move) []Move {
	return t.generate(p, side, dst, false)
}

// CapturesAndPromotions appends the captures (en passant included) and the
// promotions among the pseudo-legal moves of side.
func (t *Tables) CapturesAndPromotions(p *Position, side Owner, dst []Move) []Move {
	return t.generate(p, side, dst, true)
}

func (t *Tables) generate(p *Position, side Owner, dst []Move, noisyOnly bool) []Move {
	for i, pc := range p.squares {
		if !pc.Belongs(side) {
			continue
		}
		sq := Square(i)
		switch pc.Kind() {
		case Pawn:
			dst = t.pawnMoves(p, sq, side, dst, noisyOnly)
		case Knight:
			dst = jumpMoves(p, sq, t.knight[sq], side, dst, noisyOnly)
		case King:
			dst = jumpMoves(p, sq, t.king[sq], side, dst, noisyOnly)
			if !noisyOnly {
				dst = t.castles(p, sq, side, dst)
			}
		case Bishop:
			dst = slideMoves(p, sq, t.rays[sq][4:], side, dst, noisyOnly)
		case Rook:
			dst = slideMoves(p, sq, t.rays[sq][:4], side, dst, noisyOnly)
		case Queen:
			dst = slideMoves(p, sq, t.rays[sq][:], side, dst, noisyOnly)
		}
	}
	return dst
}

func jumpMoves(p *Position, from Square, targets []Square, side Owner, dst []Move, noisyOnly bool) []Move {
	for _, to := range targets {
		target := p.squares[to]
		if target.Belongs(side) || (noisyOnly && target == NoPiece) {
			continue
		}
		dst = append(dst, NewMove(from, to, NoKind, FlagNone))
	}
	return dst
}

// slideMoves walks each ray until the first occupied square, which is emitted
// only when it holds an enemy piece.
func slideMoves(p *Position, from Square, rays [][]Square, side Owner, dst []Move, noisyOnly bool) []Move {
	for _, ray := range rays {
		for _, to := range ray {
			target := p.squares[to]
			if target == NoPiece {
				if !noisyOnly {
					dst = append(dst, NewMove(from, to, NoKind, FlagNone))
				}
				continue
			}
			if !target.Belongs(side) {
				dst = append(dst, NewMove(from, to, NoKind, FlagNone))
			}
			break
		}
	}
	return dst
}

func (t *Tables) pawnMoves(p *Position, from Square, side Owner, dst []Move, noisyOnly bool) []Move {
	pushes := t.pawnPush[side][from]
	if len(pushes) > 0 && p.squares[pushes[0]] == NoPiece {
		if pushes[0].Rank() == promotionRank(side) {
			dst = appendPromotions(dst, from, pushes[0])
		} else if !noisyOnly {
			dst = append(dst, NewMove(from, pushes[0], NoKind, FlagNone))
			if len(pushes) > 1 && p.squares[pushes[1]] == NoPiece {
				dst = append(dst, NewMove(from, pushes[1], NoKind, FlagNone))
			}
		}
	}
	for _, to := range t.pawnCapture[side][from] {
		target := p.squares[to]
		switch {
		case target != NoPiece && !target.Belongs(side):
			if to.Rank() == promotionRank(side) {
				dst = appendPromotions(dst, from, to)
			} else {
				dst = append(dst, NewMove(from, to, NoKind, FlagNone))
			}
		case target == NoPiece && to == p.enPassant && p.squares[enPassantVictim(from, to)] == MakePiece(Pawn, side.Other()):
			dst = append(dst, NewMove(from, to, NoKind, FlagEnPassant))
		}
	}
	return dst
}

func appendPromotions(dst []Move, from, to Square) []Move {
	for _, k := range PromotionKinds {
		dst = append(dst, NewMove(from, to, k, FlagNone))
	}
	return dst
}

// enPassantVictim is the square of the pawn removed by an en-passant capture:
// the destination file on the capturing pawn's rank.
func enPassantVictim(from, to Square) Square { return SquareAt(to.File(), from.Rank()) }

type castleRule struct {
	flags     CastlingFlags
	king, to  Square
	rook, rto Square
	empty     []Square
	kingPath  []Square // squares that must not be attacked, start included
}

var castleRules = [2][2]castleRule{
	White: {
		{WhiteKingMoved | WhiteRookHMoved, sqE1, sqG1, sqH1, sqF1, []Square{sqF1, sqG1}, []Square{sqE1, sqF1, sqG1}},
		{WhiteKingMoved | WhiteRookAMoved, sqE1, sqC1, sqA1, sqD1, []Square{sqD1, sqC1, sqC1 - 1}, []Square{sqE1, sqD1, sqC1}},
	},
	Black: {
		{BlackKingMoved | BlackRookHMoved, sqE8, sqG8, sqH8, sqF8, []Square{sqF8, sqG8}, []Square{sqE8, sqF8, sqG8}},
		{BlackKingMoved | BlackRookAMoved, sqE8, sqC8, sqA8, sqD8, []Square{sqD8, sqC8, sqC8 - 1}, []Square{sqE8, sqD8, sqC8}},
	},
}

// castles emits the castling moves of the king on from. Both the king and the
// rook must stand on their home squares with their flags clear.
func (t *Tables) castles(p *Position, from Square, side Owner, dst []Move) []Move {
	rook := MakePiece(Rook, side)
	for i := range castleRules[side] {
		cs := &castleRules[side][i]
		if from != cs.king || p.castling.Has(cs.flags) || p.squares[cs.rook] != rook {
			continue
		}
		if !allEmpty(p, cs.empty) || t.anyAttacked(p, cs.kingPath, side.Other()) {
			continue
		}
		dst = append(dst, NewMove(cs.king, cs.to, NoKind, FlagCastle))
	}
	return dst
}

func allEmpty(p *Position, squares []Square) bool {
	for _, sq := range squares {
		if p.squares[sq] != NoPiece {
			return false
		}
	}
	return true
}

func (t *Tables) anyAttacked(p *Position, squares []Square, by Owner) bool {
	for _, sq := range squares {
		if t.IsSquareAttacked(p, sq, by) {
			return true
		}
	}
	return false
}

// castleRook returns the rook hop of a castling king move landing on to.
func castleRook(to Square) (from, dest Square) {
	switch to {
	case sqG1:
		return sqH1, sqF1
	case sqC1:
		return sqA1, sqD1
	case sqG8:
		return sqH8, sqF8
	case sqC8:
		return sqA8, sqD8
	}
	panic("rules: castling move to " + to.String())
}
