package rules

// GameState is the classification of a position for the side to move.
type GameState uint8

const (
	Playing GameState = iota
	Check
	Checkmate
	Stalemate
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// IsTerminal reports whether the game is over.
func (s GameState) IsTerminal() bool { return s == Checkmate || s == Stalemate }

// Classify reports the state of p for side. Only check, checkmate and
// stalemate are recognised; draws by rule are left to the caller.
func (t *Tables) Classify(p *Position, side Owner) GameState {
	canMove := t.HasLegalMove(p, side)
	if t.InCheck(p, side) {
		if canMove {
			return Check
		}
		return Checkmate
	}
	if canMove {
		return Playing
	}
	return Stalemate
}
