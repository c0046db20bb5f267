package rules

import "fmt"

// IsLegal reports whether mv is a pseudo-legal move of side that does not
// leave side's king attacked. The check runs on a scratch copy; p is not
// touched.
func (t *Tables) IsLegal(p *Position, mv Move, side Owner) bool {
	var buf [MaxMoves]Move
	for _, m := range t.PseudoLegalMoves(p, side, buf[:0]) {
		if m == mv {
			return t.keepsKingSafe(p, mv, side)
		}
	}
	return false
}

func (t *Tables) keepsKingSafe(p *Position, mv Move, side Owner) bool {
	scratch := *p
	scratch.DoMove(mv)
	return !t.InCheck(&scratch, side)
}

// LegalMoves appends the legal moves of side to dst and returns the extended slice.
func (t *Tables) LegalMoves(p *Position, side Owner, dst []Move) []Move {
	start := len(dst)
	dst = t.PseudoLegalMoves(p, side, dst)
	return t.filterLegal(p, side, dst, start)
}

// LegalCapturesAndPromotions is the legal subset of CapturesAndPromotions.
func (t *Tables) LegalCapturesAndPromotions(p *Position, side Owner, dst []Move) []Move {
	start := len(dst)
	dst = t.CapturesAndPromotions(p, side, dst)
	return t.filterLegal(p, side, dst, start)
}

func (t *Tables) filterLegal(p *Position, side Owner, dst []Move, start int) []Move {
	n := start
	for _, mv := range dst[start:] {
		if t.keepsKingSafe(p, mv, side) {
			dst[n] = mv
			n++
		}
	}
	return dst[:n]
}

// HasLegalMove reports whether side has at least one legal move.
func (t *Tables) HasLegalMove(p *Position, side Owner) bool {
	var buf [MaxMoves]Move
	for _, mv := range t.PseudoLegalMoves(p, side, buf[:0]) {
		if t.keepsKingSafe(p, mv, side) {
			return true
		}
	}
	return false
}

// FindLegal looks up the legal move of side from one square to another. A
// promotion with NoKind selects the queen.
func (t *Tables) FindLegal(p *Position, side Owner, from, to Square, promotion PieceKind) (Move, bool) {
	if promotion == NoKind {
		promotion = Queen
	}
	var buf [MaxMoves]Move
	for _, mv := range t.LegalMoves(p, side, buf[:0]) {
		if mv.From() != from || mv.To() != to {
			continue
		}
		if mv.IsPromotion() && mv.Promotion() != promotion {
			continue
		}
		return mv, true
	}
	return NullMove, false
}

// ParseLegal parses a move in coordinate notation and matches it against the
// legal moves of the side to move.
func (t *Tables) ParseLegal(p *Position, s string) (Move, error) {
	from, to, promo, err := ParseMove(s)
	if err != nil {
		return NullMove, err
	}
	mv, ok := t.FindLegal(p, p.side, from, to, promo)
	if !ok {
		return NullMove, fmt.Errorf("%w: %s is not legal here", ErrInvalidMove, s)
	}
	return mv, nil
}
