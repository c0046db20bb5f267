package rules

// step is a file/rank displacement.
type step struct{ df, dr int }

// Ray directions. Rook directions come first so Tables.rays can be sliced
// into rook, bishop and queen views.
var slideDirs = [8]step{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0}, // rook
	{1, 1}, {1, -1}, {-1, -1}, {-1, 1}, // bishop
}

var knightSteps = [8]step{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingSteps = [8]step{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Tables holds the geometric destinations of every piece kind from every
// square, ignoring occupancy. Build it once with BuildTables and share the
// pointer; nothing mutates it afterwards, so concurrent readers are safe.
type Tables struct {
	rays        [64][8][]Square // walking order, see slideDirs
	knight      [64][]Square
	king        [64][]Square
	pawnPush    [2][64][]Square // forward one, then forward two from the start rank
	pawnCapture [2][64][]Square
	flat        [2][King + 1][64][]Square
}

// BuildTables computes every move table.
func BuildTables() *Tables {
	t := &Tables{}
	for sq := Square(0); sq < 64; sq++ {
		for d, dir := range slideDirs {
			t.rays[sq][d] = walkRay(sq, dir)
		}
		t.knight[sq] = jumps(sq, knightSteps[:])
		t.king[sq] = jumps(sq, kingSteps[:])
		for _, o := range [2]Owner{White, Black} {
			dr := o.Sign()
			if to, ok := offset(sq, step{0, dr}); ok {
				t.pawnPush[o][sq] = append(t.pawnPush[o][sq], to)
				if sq.Rank() == pawnStartRank(o) {
					if to2, ok := offset(to, step{0, dr}); ok {
						t.pawnPush[o][sq] = append(t.pawnPush[o][sq], to2)
					}
				}
			}
			t.pawnCapture[o][sq] = jumps(sq, []step{{-1, dr}, {1, dr}})
		}
	}
	t.flatten()
	return t
}

// offset moves one step from sq. The step is rejected when the resulting
// file/rank displacement differs from the requested one, which is exactly
// what happens when index arithmetic wraps around a board edge.
func offset(sq Square, s step) (Square, bool) {
	to := sq + Square(s.dr*8+s.df)
	if !to.Valid() {
		return NoSquare, false
	}
	if to.File()-sq.File() != s.df || to.Rank()-sq.Rank() != s.dr {
		return NoSquare, false
	}
	return to, true
}

func walkRay(from Square, dir step) []Square {
	var ray []Square
	for sq := from; ; {
		next, ok := offset(sq, dir)
		if !ok {
			return ray
		}
		ray = append(ray, next)
		sq = next
	}
}

func jumps(from Square, steps []step) []Square {
	var out []Square
	for _, s := range steps {
		if to, ok := offset(from, s); ok {
			out = append(out, to)
		}
	}
	return out
}

func (t *Tables) flatten() {
	for _, o := range [2]Owner{White, Black} {
		for sq := 0; sq < 64; sq++ {
			pawn := append([]Square(nil), t.pawnPush[o][sq]...)
			t.flat[o][Pawn][sq] = append(pawn, t.pawnCapture[o][sq]...)
			t.flat[o][Knight][sq] = t.knight[sq]
			t.flat[o][King][sq] = t.king[sq]
			var rook, bishop []Square
			for d := 0; d < 4; d++ {
				rook = append(rook, t.rays[sq][d]...)
				bishop = append(bishop, t.rays[sq][d+4]...)
			}
			t.flat[o][Rook][sq] = rook
			t.flat[o][Bishop][sq] = bishop
			t.flat[o][Queen][sq] = append(append([]Square(nil), rook...), bishop...)
		}
	}
}

// Destinations returns every square a piece of the given kind and owner can
// reach from sq on an empty board. The slice is shared and must not be modified.
func (t *Tables) Destinations(kind PieceKind, owner Owner, sq Square) []Square {
	mustBeOnBoard(sq)
	if !kind.Valid() {
		return nil
	}
	return t.flat[owner][kind][sq]
}

// Rays returns the rays of a sliding kind from sq in walking order: four for a
// rook or bishop, eight for a queen, none for other kinds. The slices are shared.
func (t *Tables) Rays(kind PieceKind, sq Square) [][]Square {
	mustBeOnBoard(sq)
	switch kind {
	case Rook:
		return t.rays[sq][:4]
	case Bishop:
		return t.rays[sq][4:]
	case Queen:
		return t.rays[sq][:]
	}
	return nil
}

func pawnStartRank(o Owner) int {
	if o == White {
		return 1
	}
	return 6
}

func promotionRank(o Owner) int {
	if o == White {
		return 7
	}
	return 0
}
