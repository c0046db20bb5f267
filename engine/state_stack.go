package engine

import "xfchess-engine/rules"

const fiftyMoveLimit = 100

// stateStack holds the signatures of the game and search path, oldest first,
// ending with the current position.
type stateStack struct {
	hashes []uint64
}

// reset rebuilds the stack from the game history followed by the root.
func (st *stateStack) reset(history []uint64, root uint64) {
	st.hashes = append(st.hashes[:0], history...)
	st.hashes = append(st.hashes, root)
}

func (st *stateStack) push(hash uint64) {
	st.hashes = append(st.hashes, hash)
}

func (st *stateStack) pop() {
	if len(st.hashes) == 0 {
		return
	}
	st.hashes = st.hashes[:len(st.hashes)-1]
}

// isRepetition reports whether the current position occurred before. rule50
// bounds the lookback: nothing before the last capture or pawn move can
// repeat.
func (st *stateStack) isRepetition(rule50 int) bool {
	n := len(st.hashes)
	if n < 5 {
		return false
	}
	curr := st.hashes[n-1]
	start := Max(n-1-rule50, 0)
	for i := n - 5; i >= start; i -= 2 {
		if st.hashes[i] == curr {
			return true
		}
	}
	return false
}

// fiftyMoveDraw reports whether the fifty-move rule ends the game at p. A
// checkmate delivered on the last ply still stands.
func fiftyMoveDraw(t *rules.Tables, p *rules.Position, inCheck bool) bool {
	if p.HalfmoveClock() < fiftyMoveLimit {
		return false
	}
	return !inCheck || t.HasLegalMove(p, p.SideToMove())
}
