package rules

import "fmt"

// Move encodes a move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePromoteShift = 12 // 3 bits
	moveFlagShift    = 15 // 2 bits
)

// MoveFlag tags the special moves whose execution touches more than two squares.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagCastle
	FlagEnPassant
)

// NullMove is the zero Move; it never matches a generated move.
const NullMove Move = 0

// NewMove constructs a Move value from components.
func NewMove(from, to Square, promotion PieceKind, flag MoveFlag) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<moveToShift |
		uint32(promotion&0x7)<<movePromoteShift |
		uint32(flag&0x3)<<moveFlagShift)
}

func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }
func (m Move) To() Square   { return Square((uint32(m) >> moveToShift) & 0x3F) }

// Promotion returns the promotion kind, or NoKind.
func (m Move) Promotion() PieceKind { return PieceKind((uint32(m) >> movePromoteShift) & 0x7) }

func (m Move) Flag() MoveFlag { return MoveFlag((uint32(m) >> moveFlagShift) & 0x3) }

func (m Move) IsCastle() bool    { return m.Flag() == FlagCastle }
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }
func (m Move) IsPromotion() bool { return m.Promotion() != NoKind }

// String produces coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if k := m.Promotion(); k != NoKind {
		s += string(k.letter())
	}
	return s
}

// ParseMove parses coordinate notation into squares and an optional
// promotion kind. It does not check the move against any position.
func ParseMove(s string) (from, to Square, promotion PieceKind, err error) {
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	if from, err = ParseSquare(s[:2]); err != nil {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	if to, err = ParseSquare(s[2:4]); err != nil {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	if len(s) == 5 {
		promotion = kindFromLetter(s[4])
		if promotion == NoKind || promotion == Pawn || promotion == King {
			return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: bad promotion in %q", ErrInvalidMove, s)
		}
	}
	return from, to, promotion, nil
}
