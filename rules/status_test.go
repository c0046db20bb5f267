package rules

import "testing"

func TestFoolsMateIsCheckmate(t *testing.T) {
	tb := BuildTables()
	p := NewPosition()
	for _, s := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		mv, err := tb.ParseLegal(&p, s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		p.Play(mv)
	}
	if got := tb.Classify(&p, White); got != Checkmate {
		t.Fatalf("Classify = %s, want checkmate", got)
	}
	if got := p.FEN(); got != "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3" {
		t.Fatalf("FEN = %s", got)
	}
}

func TestClassify(t *testing.T) {
	tb := BuildTables()
	cases := []struct {
		name string
		fen  string
		side Owner
		want GameState
	}{
		{"start", FENStartPos, White, Playing},
		{"start black", FENStartPos, Black, Playing},
		{"rook check", "4k3/8/8/8/8/8/8/4R2K b - - 0 1", Black, Check},
		{"stalemate corner", "8/8/8/8/8/kq6/8/K7 w - - 0 1", White, Stalemate},
		{"stalemate queen", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Black, Stalemate},
		{"back rank threat", "6k1/5ppp/8/8/8/8/8/3R2K1 b - - 0 1", Black, Playing},
		{"mate delivered", "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Black, Checkmate},
		{"smothered", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", Black, Checkmate},
		{"bishop blocked", "6rk/6pp/8/8/8/8/8/1B4K1 b - - 0 1", Black, Playing},
		{"no king but moves", "8/8/8/8/8/8/8/4R3 b - - 0 1", White, Playing},
		{"no pieces", "8/8/8/8/8/8/8/4R3 b - - 0 1", Black, Stalemate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustFEN(t, tc.fen)
			if got := tb.Classify(&p, tc.side); got != tc.want {
				t.Fatalf("Classify(%s) = %s, want %s", tc.side, got, tc.want)
			}
		})
	}
}

func TestGameStateStrings(t *testing.T) {
	if Checkmate.String() != "checkmate" || !Checkmate.IsTerminal() || !Stalemate.IsTerminal() || Check.IsTerminal() {
		t.Fatalf("GameState helpers wrong")
	}
}
