package rules

// Undo holds what is needed to reverse a move.
type Undo struct {
	moved      Piece
	captured   Piece
	capturedOn Square

	// Filled by Play only.
	prevCastling  CastlingFlags
	prevEnPassant Square
	prevHalfmove  int
	prevCounter   int
	prevHash      uint64
}

// Captured returns the piece removed by the move, or NoPiece.
func (u Undo) Captured() Piece { return u.captured }

// Moved returns the piece that was moved, before any promotion.
func (u Undo) Moved() Piece { return u.moved }

// DoMove changes the board for mv: the mover leaves its source square, any
// captured piece is removed, castling hops the rook and a promotion places the
// chosen kind. Side to move, castling flags, en passant and counters are left
// to the caller (see Play). The move must be pseudo-legal for the piece on its
// source square.
func (p *Position) DoMove(mv Move) Undo {
	from, to := mv.From(), mv.To()
	moved := p.squares[from]
	u := Undo{moved: moved, captured: p.squares[to], capturedOn: to}

	switch mv.Flag() {
	case FlagEnPassant:
		u.capturedOn = enPassantVictim(from, to)
		u.captured = p.squares[u.capturedOn]
		p.set(u.capturedOn, NoPiece)
	case FlagCastle:
		rf, rt := castleRook(to)
		p.set(rt, p.squares[rf])
		p.set(rf, NoPiece)
	}

	placed := moved
	if k := mv.Promotion(); k != NoKind {
		placed = MakePiece(k, moved.Owner())
	}
	p.set(from, NoPiece)
	p.set(to, placed)
	return u
}

// UndoMove reverses DoMove exactly.
func (p *Position) UndoMove(mv Move, u Undo) {
	from, to := mv.From(), mv.To()
	p.set(to, NoPiece)
	p.set(from, u.moved)
	if mv.IsCastle() {
		rf, rt := castleRook(to)
		p.set(rf, p.squares[rt])
		p.set(rt, NoPiece)
	}
	if u.captured != NoPiece {
		p.set(u.capturedOn, u.captured)
	}
}

// Play makes mv as a move in a game: DoMove plus the castling flags, en
// passant square, clocks and side to move.
func (p *Position) Play(mv Move) Undo {
	prevCastling, prevEP := p.castling, p.enPassant
	prevHalfmove, prevCounter, prevHash := p.halfmoveClock, p.moveCounter, p.hash

	u := p.DoMove(mv)
	u.prevCastling, u.prevEnPassant = prevCastling, prevEP
	u.prevHalfmove, u.prevCounter, u.prevHash = prevHalfmove, prevCounter, prevHash

	from, to := mv.From(), mv.To()
	if f := homeFlags[from] | homeFlags[to]; f != 0 {
		p.SetCastling(p.castling | f)
	}

	ep := NoSquare
	if u.moved.Kind() == Pawn && (to-from == 16 || from-to == 16) {
		ep = (from + to) / 2
	}
	p.setEnPassant(ep)

	if u.moved.Kind() == Pawn || u.captured != NoPiece {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if p.side == Black {
		p.moveCounter++
	}
	p.SetSideToMove(p.side.Other())
	return u
}

// Unplay reverses Play exactly.
func (p *Position) Unplay(mv Move, u Undo) {
	p.UndoMove(mv, u)
	p.side = p.side.Other()
	p.castling = u.prevCastling
	p.enPassant = u.prevEnPassant
	p.halfmoveClock = u.prevHalfmove
	p.moveCounter = u.prevCounter
	p.hash = u.prevHash
}
