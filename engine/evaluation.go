package engine

import "xfchess-engine/rules"

// Piece values in centipawns. The king has no material value: it is never
// captured in legal play and mate is scored separately.
var pieceValue = [7]int{
	rules.Pawn:   100,
	rules.Knight: 300,
	rules.Bishop: 300,
	rules.Rook:   500,
	rules.Queen:  900,
}

const mobilityWeight = 5

// Piece-square tables from White's point of view, a1 first. Black reads them
// through FlipView.
var pst = [7][64]int{
	rules.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	rules.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	rules.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	rules.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	rules.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	rules.King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

// FlipView mirrors a square vertically.
func FlipView(sq rules.Square) rules.Square { return sq ^ 56 }

// evaluator scores positions statically. It keeps a move buffer for the
// mobility term, so it belongs to a single Searcher.
type evaluator struct {
	tables *rules.Tables
	buf    []rules.Move
}

func newEvaluator(t *rules.Tables) *evaluator {
	return &evaluator{tables: t, buf: make([]rules.Move, 0, rules.MaxMoves)}
}

// Evaluate returns the static score of p in centipawns from the side to
// move's point of view.
func (e *evaluator) Evaluate(p *rules.Position) int {
	score := 0
	for sq := rules.Square(0); sq < 64; sq++ {
		pc := p.At(sq)
		if pc.IsEmpty() {
			continue
		}
		kind, owner := pc.Kind(), pc.Owner()
		view := sq
		if owner == rules.Black {
			view = FlipView(sq)
		}
		score += (pieceValue[kind] + pst[kind][view]) * owner.Sign()
	}

	e.buf = e.tables.PseudoLegalMoves(p, rules.White, e.buf[:0])
	mobility := len(e.buf)
	e.buf = e.tables.PseudoLegalMoves(p, rules.Black, e.buf[:0])
	mobility -= len(e.buf)
	score += mobility * mobilityWeight

	return score * p.SideToMove().Sign()
}

// Evaluate scores p statically from the side to move's point of view.
func Evaluate(t *rules.Tables, p *rules.Position) int {
	return newEvaluator(t).Evaluate(p)
}
