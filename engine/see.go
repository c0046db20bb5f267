package engine

import "xfchess-engine/rules"

var SeePieceValue = [7]int{
	rules.Pawn:   100,
	rules.Knight: 300,
	rules.Bishop: 300,
	rules.Rook:   500,
	rules.Queen:  900,
	rules.King:   5000,
}

// see returns the material outcome for the mover of the exchange mv starts on
// its target square. Both sides recapture with their least valuable attacker
// and may stop whenever going on would lose. Sliders behind a capturer join in
// as the board is updated.
func see(t *rules.Tables, p *rules.Position, mv rules.Move) int {
	var gain [32]int
	scratch := *p
	from, to := mv.From(), mv.To()

	mover := scratch.At(from)
	side := mover.Owner()
	onSquare := mover.Kind()
	gain[0] = SeePieceValue[capturedKind(p, mv)]
	if mv.IsEnPassant() {
		scratch.Put(rules.SquareAt(to.File(), from.Rank()), rules.NoPiece)
	}
	if mv.IsPromotion() {
		onSquare = mv.Promotion()
		gain[0] += SeePieceValue[onSquare] - SeePieceValue[rules.Pawn]
	}
	scratch.Put(from, rules.NoPiece)
	scratch.Put(to, rules.MakePiece(onSquare, side))

	depth := 0
	side = side.Other()
	for depth < len(gain)-1 {
		attackerSq, ok := t.LeastValuableAttacker(&scratch, to, side)
		if !ok {
			break
		}
		depth++
		gain[depth] = SeePieceValue[onSquare] - gain[depth-1]

		// If we're in a losing position after the last trade, we break
		if Max(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		attacker := scratch.At(attackerSq)
		scratch.Put(attackerSq, rules.NoPiece)
		scratch.Put(to, attacker)
		onSquare = attacker.Kind()
		side = side.Other()
	}

	for ; depth > 0; depth-- {
		gain[depth-1] = -Max(-gain[depth-1], gain[depth])
	}
	return gain[0]
}
