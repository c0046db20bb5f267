package rules

// IsSquareAttacked reports whether any piece of side by could capture on sq.
// It looks outward from sq with the same tables and blocking rule as move
// generation; an occupied sq counts as attacked.
func (t *Tables) IsSquareAttacked(p *Position, sq Square, by Owner) bool {
	mustBeOnBoard(sq)

	// A pawn of by attacks sq from the squares a pawn of the other side on sq
	// would capture towards.
	pawn := MakePiece(Pawn, by)
	for _, from := range t.pawnCapture[by.Other()][sq] {
		if p.squares[from] == pawn {
			return true
		}
	}
	knight := MakePiece(Knight, by)
	for _, from := range t.knight[sq] {
		if p.squares[from] == knight {
			return true
		}
	}
	king := MakePiece(King, by)
	for _, from := range t.king[sq] {
		if p.squares[from] == king {
			return true
		}
	}

	queen := MakePiece(Queen, by)
	rook := MakePiece(Rook, by)
	bishop := MakePiece(Bishop, by)
	for d, ray := range t.rays[sq] {
		slider := rook
		if d >= 4 {
			slider = bishop
		}
		for _, from := range ray {
			pc := p.squares[from]
			if pc == NoPiece {
				continue
			}
			if pc == slider || pc == queen {
				return true
			}
			break
		}
	}
	return false
}

// LeastValuableAttacker returns the square of the cheapest piece of side by
// that attacks sq, or false when there is none.
func (t *Tables) LeastValuableAttacker(p *Position, sq Square, by Owner) (Square, bool) {
	mustBeOnBoard(sq)

	pawn := MakePiece(Pawn, by)
	for _, from := range t.pawnCapture[by.Other()][sq] {
		if p.squares[from] == pawn {
			return from, true
		}
	}
	knight := MakePiece(Knight, by)
	for _, from := range t.knight[sq] {
		if p.squares[from] == knight {
			return from, true
		}
	}

	best, bestKind := NoSquare, King
	for d, ray := range t.rays[sq] {
		for _, from := range ray {
			pc := p.squares[from]
			if pc == NoPiece {
				continue
			}
			k := pc.Kind()
			slides := k == Queen || (d < 4 && k == Rook) || (d >= 4 && k == Bishop)
			if pc.Belongs(by) && slides && k < bestKind {
				best, bestKind = from, k
			}
			break
		}
	}
	if best != NoSquare {
		return best, true
	}

	king := MakePiece(King, by)
	for _, from := range t.king[sq] {
		if p.squares[from] == king {
			return from, true
		}
	}
	return NoSquare, false
}

// AttackedSquares marks every square attacked by side by.
func (t *Tables) AttackedSquares(p *Position, by Owner) [64]bool {
	var out [64]bool
	for sq := Square(0); sq < 64; sq++ {
		out[sq] = t.IsSquareAttacked(p, sq, by)
	}
	return out
}

// FindKing returns the square of side's king, or false when there is none.
func FindKing(p *Position, side Owner) (Square, bool) {
	king := MakePiece(King, side)
	for sq, pc := range p.squares {
		if pc == king {
			return Square(sq), true
		}
	}
	return NoSquare, false
}

// InCheck reports whether side's king is attacked. A side without a king is
// never in check.
func (t *Tables) InCheck(p *Position, side Owner) bool {
	ksq, ok := FindKing(p, side)
	if !ok {
		return false
	}
	return t.IsSquareAttacked(p, ksq, side.Other())
}
