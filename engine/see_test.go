package engine

import (
	"testing"

	"xfchess-engine/rules"
)

func TestSEE(t *testing.T) {
	tb := rules.BuildTables()
	cases := []struct {
		name string
		fen  string
		move string
		want int
	}{
		{"revealed slider", "6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1", "c4e6", 0},
		{"en passant", "6k1/8/8/3pP3/8/8/8/6K1 w - d6 0 1", "e5d6", 100},
		{"pawn trade", "4k3/8/3p4/4p3/3P4/8/8/4K3 w - - 0 1", "d4e5", 0},
		{"queen takes defended pawn", "4k3/8/3p4/4p3/8/8/8/4QK2 w - - 0 1", "e1e5", -800},
		{"undefended rook", "4k3/8/8/3r4/8/8/8/3QK3 w - - 0 1", "d1d5", 500},
		{"battery wins the exchange", "3rk3/8/8/3p4/8/8/3R4/3RK3 w - - 0 1", "d2d5", 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := rules.MustParseFEN(tc.fen)
			mv, err := tb.ParseLegal(&p, tc.move)
			if err != nil {
				t.Fatalf("ParseLegal(%s): %v", tc.move, err)
			}
			before := p
			if got := see(tb, &p, mv); got != tc.want {
				t.Fatalf("see(%s) = %d, want %d", tc.move, got, tc.want)
			}
			if p != before {
				t.Fatalf("see modified the position")
			}
		})
	}
}
