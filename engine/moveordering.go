package engine

import "xfchess-engine/rules"

type move struct {
	move  rules.Move
	score int32
}

type moveList struct {
	moves []move
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva = [7][7]int32{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

// Move ordering offsets. Quiet history scores stay below killerOffset; captures
// that lose material by exchange get no offset at all.
const (
	ttMoveOffset    int32 = 30000
	promotionOffset int32 = 20000
	captureOffset   int32 = 15000
	killerOffset    int32 = 12000
)

// killerTable keeps the two most recent quiet moves that caused a beta cutoff
// at each ply.
type killerTable [MaxPly + 1][2]rules.Move

func (k *killerTable) insert(mv rules.Move, ply int) {
	if mv != k[ply][0] {
		k[ply][1] = k[ply][0]
		k[ply][0] = mv
	}
}

func (k *killerTable) clear() {
	*k = killerTable{}
}

// capturedKind returns the kind taken by mv, or NoKind for a quiet move.
func capturedKind(p *rules.Position, mv rules.Move) rules.PieceKind {
	if mv.IsEnPassant() {
		return rules.Pawn
	}
	return p.At(mv.To()).Kind()
}

func isQuiet(p *rules.Position, mv rules.Move) bool {
	return !mv.IsPromotion() && capturedKind(p, mv) == rules.NoKind
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}
	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}

// scoreMoves fills list with moves and their ordering keys. ttMove only gets
// its bonus when it is one of the generated moves.
func (s *Searcher) scoreMoves(p *rules.Position, moves []rules.Move, ply int, ttMove rules.Move, list *moveList) {
	side := p.SideToMove()
	list.moves = list.moves[:0]
	for _, mv := range moves {
		var score int32
		victim := capturedKind(p, mv)
		switch {
		case mv == ttMove:
			score = ttMoveOffset
		case mv.IsPromotion():
			score = promotionOffset + int32(pieceValue[mv.Promotion()]) + mvvLva[victim][rules.Pawn]
		case victim != rules.NoKind:
			attacker := p.At(mv.From()).Kind()
			score = mvvLva[victim][attacker]
			if victim >= attacker || see(s.tables, p, mv) >= 0 {
				score += captureOffset
			}
		case s.killers[ply][0] == mv:
			score = killerOffset + 200
		case s.killers[ply][1] == mv:
			score = killerOffset
		default:
			score = s.history.score(side, mv)
		}
		list.moves = append(list.moves, move{move: mv, score: score})
	}
}
