package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// ParseFEN builds a Position from a FEN string. The clocks are optional.
// Castling availability is translated into the moved flags: a missing right
// marks the king or rook as moved.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fenError("not enough fields")
	}

	p := EmptyPosition()

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fenError("incorrect number of ranks")
	}
	var list []Placement
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind := kindFromLetter(ch)
			if kind == NoKind {
				return Position{}, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return Position{}, fenError("too many squares in rank %d", rank+1)
			}
			owner := White
			if ch >= 'a' {
				owner = Black
			}
			list = append(list, Placement{Square: SquareAt(file, rank), Kind: kind, Owner: owner})
			file++
		}
		if file != 8 {
			return Position{}, fenError("rank %d does not have 8 columns", rank+1)
		}
	}
	if err := p.SetPlacements(list); err != nil {
		return Position{}, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
	case "b":
		p.SetSideToMove(Black)
	default:
		return Position{}, fenError("side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	flags := AllMoved
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				flags &^= WhiteKingMoved | WhiteRookHMoved
			case 'Q':
				flags &^= WhiteKingMoved | WhiteRookAMoved
			case 'k':
				flags &^= BlackKingMoved | BlackRookHMoved
			case 'q':
				flags &^= BlackKingMoved | BlackRookAMoved
			default:
				return Position{}, fenError("invalid castling rights character %q", ch)
			}
		}
	}
	p.SetCastling(flags)

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil || (sq.Rank() != 2 && sq.Rank() != 5) {
			return Position{}, fenError("invalid en passant square %q", fields[3])
		}
		p.setEnPassant(sq)
	}

	// 5. Halfmove clock, 6. fullmove number
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, fenError("halfmove clock %q is not a number", fields[4])
		}
		p.halfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, fenError("fullmove number %q is not a number", fields[5])
		}
		p.moveCounter = n
	}
	return p, nil
}

// MustParseFEN is ParseFEN for known-good literals; it panics on error.
func MustParseFEN(fen string) Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// FEN produces the FEN string of the position. A castling right is written
// only when its flags are clear and the king and rook stand on their home
// squares.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.squares[SquareAt(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	for _, side := range [2]Owner{White, Black} {
		for _, cs := range castleRules[side] {
			if p.castling.Has(cs.flags) || p.squares[cs.king] != MakePiece(King, side) ||
				p.squares[cs.rook] != MakePiece(Rook, side) {
				continue
			}
			ch := "K"
			if cs.rook.File() == 0 {
				ch = "Q"
			}
			if side == Black {
				ch = strings.ToLower(ch)
			}
			rights += ch
		}
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.moveCounter)
	return sb.String()
}
