package rules

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Per-depth buffers are reused to avoid allocations.
func (t *Tables) Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	scratch := *p
	return t.perftRec(&scratch, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, MaxMoves)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func (t *Tables) perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	side := p.side
	moves := t.LegalMoves(p, side, pc.bufFor(depth))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, mv := range moves {
		u := p.Play(mv)
		nodes += t.perftRec(p, depth-1, pc)
		p.Unplay(mv, u)
	}
	return nodes
}

// PerftDivide returns, for each legal root move, the number of leaf nodes
// below it at the given depth.
func (t *Tables) PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	scratch := *p
	for _, mv := range t.LegalMoves(&scratch, scratch.side, nil) {
		u := scratch.Play(mv)
		result[mv] = t.Perft(&scratch, depth-1)
		scratch.Unplay(mv, u)
	}
	return result
}
