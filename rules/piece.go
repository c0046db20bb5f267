package rules

// PieceKind is the colorless type of a piece.
type PieceKind int8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Valid reports whether k names one of the six piece kinds.
func (k PieceKind) Valid() bool { return k >= Pawn && k <= King }

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// letter is the lowercase FEN letter of the kind.
func (k PieceKind) letter() byte {
	if !k.Valid() {
		return '?'
	}
	return " pnbrqk"[k]
}

func kindFromLetter(ch byte) PieceKind {
	switch ch | 0x20 {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	}
	return NoKind
}

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// Owner is the side a piece belongs to.
type Owner int8

const (
	White Owner = 0
	Black Owner = 1
)

// Other returns the opposing side.
func (o Owner) Other() Owner { return o ^ 1 }

// Sign is +1 for White and -1 for Black, matching the sign of the piece encoding.
func (o Owner) Sign() int {
	if o == White {
		return 1
	}
	return -1
}

func (o Owner) String() string {
	if o == White {
		return "white"
	}
	return "black"
}

// Piece is the packed cell value stored on the board: 0 is empty, +1..+6 are
// white pawn..king and -1..-6 the black equivalents. Use MakePiece, Kind and
// Owner instead of the raw value.
type Piece int8

const NoPiece Piece = 0

// MakePiece combines a kind and an owner. NoKind yields NoPiece.
func MakePiece(kind PieceKind, owner Owner) Piece {
	if owner == Black {
		return Piece(-kind)
	}
	return Piece(kind)
}

// Kind returns the colorless kind of the piece (NoKind for an empty cell).
func (p Piece) Kind() PieceKind {
	if p < 0 {
		return PieceKind(-p)
	}
	return PieceKind(p)
}

// Owner returns the side owning the piece. NoPiece reports White.
func (p Piece) Owner() Owner {
	if p < 0 {
		return Black
	}
	return White
}

func (p Piece) IsEmpty() bool { return p == NoPiece }

// Belongs reports whether the cell holds a piece of side o.
func (p Piece) Belongs(o Owner) bool {
	if o == White {
		return p > 0
	}
	return p < 0
}

// Valid reports whether p is empty or one of the twelve pieces.
func (p Piece) Valid() bool { return p >= -6 && p <= 6 }

// String returns the FEN letter of the piece, or "." for an empty cell.
func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	ch := p.Kind().letter()
	if p > 0 {
		ch -= 'a' - 'A'
	}
	return string(ch)
}

// index maps the piece onto 0..12 for table lookups.
func (p Piece) index() int { return int(p) + 6 }
