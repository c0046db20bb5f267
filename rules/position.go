package rules

import (
	"fmt"
	"strings"
)

// CastlingFlags records which castling pieces have left their home squares.
// They reflect move history supplied by the caller: DoMove never sets them,
// Play does.
type CastlingFlags uint8

const (
	WhiteKingMoved CastlingFlags = 1 << iota
	WhiteRookAMoved
	WhiteRookHMoved
	BlackKingMoved
	BlackRookAMoved
	BlackRookHMoved

	AllMoved = WhiteKingMoved | WhiteRookAMoved | WhiteRookHMoved |
		BlackKingMoved | BlackRookAMoved | BlackRookHMoved
)

// Castling rights derived from the flags, used for hashing and FEN.
const (
	rightWhiteK = 1 << iota
	rightWhiteQ
	rightBlackK
	rightBlackQ
)

func (c CastlingFlags) Has(f CastlingFlags) bool { return c&f != 0 }

func (c CastlingFlags) rights() int {
	r := 0
	if !c.Has(WhiteKingMoved | WhiteRookHMoved) {
		r |= rightWhiteK
	}
	if !c.Has(WhiteKingMoved | WhiteRookAMoved) {
		r |= rightWhiteQ
	}
	if !c.Has(BlackKingMoved | BlackRookHMoved) {
		r |= rightBlackK
	}
	if !c.Has(BlackKingMoved | BlackRookAMoved) {
		r |= rightBlackQ
	}
	return r
}

// homeFlags maps a home square to the flag set when a piece leaves or is
// captured on it.
var homeFlags = [64]CastlingFlags{
	sqA1: WhiteRookAMoved,
	sqE1: WhiteKingMoved,
	sqH1: WhiteRookHMoved,
	sqA8: BlackRookAMoved,
	sqE8: BlackKingMoved,
	sqH8: BlackRookHMoved,
}

// Placement is one occupied square as exchanged with a host application.
type Placement struct {
	Square Square
	Kind   PieceKind
	Owner  Owner
}

func (pl Placement) String() string {
	return pl.Square.String() + MakePiece(pl.Kind, pl.Owner).String()
}

// Position is the full game state. It is a plain value: assigning it makes an
// independent copy, and == compares it bit for bit.
type Position struct {
	squares       [64]Piece
	side          Owner
	castling      CastlingFlags
	enPassant     Square
	moveCounter   int
	halfmoveClock int
	hash          uint64
}

var startRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewPosition returns the standard starting position with White to move.
func NewPosition() Position {
	p := EmptyPosition()
	for f := 0; f < 8; f++ {
		p.squares[SquareAt(f, 0)] = MakePiece(startRank[f], White)
		p.squares[SquareAt(f, 1)] = MakePiece(Pawn, White)
		p.squares[SquareAt(f, 6)] = MakePiece(Pawn, Black)
		p.squares[SquareAt(f, 7)] = MakePiece(startRank[f], Black)
	}
	p.hash = p.computeHash()
	return p
}

// EmptyPosition returns a board with no pieces, White to move.
func EmptyPosition() Position {
	p := Position{enPassant: NoSquare, moveCounter: 1}
	p.hash = p.computeHash()
	return p
}

// At returns the piece on sq. It panics if sq is off the board.
func (p *Position) At(sq Square) Piece {
	mustBeOnBoard(sq)
	return p.squares[sq]
}

// Put places pc on sq (NoPiece clears it). It panics on an off-board square or
// an invalid piece value.
func (p *Position) Put(sq Square, pc Piece) {
	mustBeOnBoard(sq)
	if !pc.Valid() {
		panic(fmt.Sprintf("rules: invalid piece value %d", int(pc)))
	}
	p.set(sq, pc)
}

// set writes a cell and keeps the signature in sync.
func (p *Position) set(sq Square, pc Piece) {
	if old := p.squares[sq]; old != NoPiece {
		p.hash ^= zobristPiece[old.index()][sq]
	}
	p.squares[sq] = pc
	if pc != NoPiece {
		p.hash ^= zobristPiece[pc.index()][sq]
	}
}

func (p *Position) SideToMove() Owner { return p.side }

func (p *Position) SetSideToMove(o Owner) {
	if o != p.side {
		p.side = o
		p.hash ^= zobristSide
	}
}

func (p *Position) Castling() CastlingFlags { return p.castling }

func (p *Position) SetCastling(c CastlingFlags) {
	p.hash ^= zobristCastle[p.castling.rights()]
	p.castling = c & AllMoved
	p.hash ^= zobristCastle[p.castling.rights()]
}

// EnPassant returns the square a pawn skipped on the previous move, or NoSquare.
func (p *Position) EnPassant() Square { return p.enPassant }

func (p *Position) setEnPassant(sq Square) {
	if p.enPassant != NoSquare {
		p.hash ^= zobristEnPassant[p.enPassant.File()]
	}
	p.enPassant = sq
	if sq != NoSquare {
		p.hash ^= zobristEnPassant[sq.File()]
	}
}

// MoveCounter is the full-move number, starting at 1 and advanced after each
// Black move. It is bookkeeping only.
func (p *Position) MoveCounter() int     { return p.moveCounter }
func (p *Position) SetMoveCounter(n int) { p.moveCounter = n }

// HalfmoveClock counts plies since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// SetHalfmoveClock sets the ply count since the last capture or pawn move;
// negative values are stored as 0.
func (p *Position) SetHalfmoveClock(n int) {
	if n < 0 {
		n = 0
	}
	p.halfmoveClock = n
}

// Hash returns the Zobrist signature of the position.
func (p *Position) Hash() uint64 { return p.hash }

// SetPlacements replaces every cell with the given list. The previous
// en-passant square is dropped; side to move, castling flags and counters are
// kept. On error the position is left unchanged.
func (p *Position) SetPlacements(list []Placement) error {
	var squares [64]Piece
	kings := [2]int{}
	for _, pl := range list {
		if !pl.Square.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidSquare, int(pl.Square))
		}
		if !pl.Kind.Valid() || (pl.Owner != White && pl.Owner != Black) {
			return fmt.Errorf("%w: kind %d owner %d on %s", ErrInvalidPiece, pl.Kind, pl.Owner, pl.Square)
		}
		if squares[pl.Square] != NoPiece {
			return fmt.Errorf("%w: %s placed twice", ErrInvalidSquare, pl.Square)
		}
		if pl.Kind == King {
			kings[pl.Owner]++
			if kings[pl.Owner] > 1 {
				return fmt.Errorf("%w: %s", ErrTooManyKings, pl.Owner)
			}
		}
		squares[pl.Square] = MakePiece(pl.Kind, pl.Owner)
	}
	p.squares = squares
	p.enPassant = NoSquare
	p.hash = p.computeHash()
	return nil
}

// Placements lists every occupied square in ascending order.
func (p *Position) Placements() []Placement {
	out := make([]Placement, 0, 32)
	for sq, pc := range p.squares {
		if pc != NoPiece {
			out = append(out, Placement{Square: Square(sq), Kind: pc.Kind(), Owner: pc.Owner()})
		}
	}
	return out
}

// Validate checks the structural invariants: cell values in range, at most one
// king per side and a consistent signature.
func (p *Position) Validate() error {
	kings := [2]int{}
	for sq, pc := range p.squares {
		if !pc.Valid() {
			return fmt.Errorf("%w: value %d on %s", ErrInvalidPiece, int(pc), Square(sq))
		}
		if pc.Kind() == King {
			kings[pc.Owner()]++
		}
	}
	for o, n := range kings {
		if n > 1 {
			return fmt.Errorf("%w: %s has %d", ErrTooManyKings, Owner(o), n)
		}
	}
	if p.enPassant != NoSquare && !p.enPassant.Valid() {
		return fmt.Errorf("%w: en passant %d", ErrInvalidSquare, int(p.enPassant))
	}
	if h := p.computeHash(); h != p.hash {
		return fmt.Errorf("rules: hash mismatch: have %016x want %016x", p.hash, h)
	}
	return nil
}

// String renders the board rank 8 first, one rank per line.
func (p *Position) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sb.WriteString(p.squares[SquareAt(f, r)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
