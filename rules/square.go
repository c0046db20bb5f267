package rules

import "fmt"

// Square is a board index, rank*8+file, with a1 = 0 and h8 = 63.
type Square int

const NoSquare Square = -1

// Home squares used by castling.
const (
	sqA1 Square = 0
	sqC1 Square = 2
	sqD1 Square = 3
	sqE1 Square = 4
	sqF1 Square = 5
	sqG1 Square = 6
	sqH1 Square = 7
	sqA8 Square = 56
	sqC8 Square = 58
	sqD8 Square = 59
	sqE8 Square = 60
	sqF8 Square = 61
	sqG8 Square = 62
	sqH8 Square = 63
)

// SquareAt returns the square on the given zero-based file and rank.
func SquareAt(file, rank int) Square { return Square(rank*8 + file) }

func (s Square) File() int { return int(s) & 7 }
func (s Square) Rank() int { return int(s) >> 3 }

// Valid reports whether s is on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'1')), nil
}

// mustBeOnBoard panics on an index outside 0..63. Callers of the indexing
// functions own this precondition; the game package validates host input.
func mustBeOnBoard(s Square) {
	if !s.Valid() {
		panic(fmt.Sprintf("rules: square %d out of range", int(s)))
	}
}
