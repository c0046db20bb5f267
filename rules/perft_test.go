package rules

import (
	"testing"
	"time"
)

func TestPerft(t *testing.T) {
	tb := BuildTables()
	cases := []struct {
		name  string
		fen   string
		nodes []uint64 // depth 1, 2, ...
	}{
		{"start", FENStartPos, []uint64{20, 400, 8902, 197281}},
		{"kiwipete", fenKiwipete, []uint64{48, 2039, 97862}},
		{"position 3", fenPos3, []uint64{14, 191, 2812, 43238}},
		{"position 4", fenPos4, []uint64{6, 264, 9467}},
		{"position 5", fenPos5, []uint64{44, 1486, 62379}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustFEN(t, tc.fen)
			for i, want := range tc.nodes {
				depth := i + 1
				if testing.Short() && want > 20000 {
					break
				}
				start := time.Now()
				got := tb.Perft(&p, depth)
				t.Logf("depth %d nodes %d time %s", depth, got, time.Since(start))
				if got != want {
					t.Fatalf("perft(%d) = %d, want %d", depth, got, want)
				}
			}
			if p != mustFEN(t, tc.fen) {
				t.Fatalf("Perft modified the position")
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	tb := BuildTables()
	p := NewPosition()
	div := tb.PerftDivide(&p, 2)
	if len(div) != 20 {
		t.Fatalf("divide has %d root moves, want 20", len(div))
	}
	var total uint64
	for mv, n := range div {
		if n != 20 {
			t.Fatalf("%s: %d replies, want 20", mv, n)
		}
		total += n
	}
	if total != 400 {
		t.Fatalf("divide total = %d, want 400", total)
	}
}

func BenchmarkPerftKiwipete(b *testing.B) {
	tb := BuildTables()
	p := mustFEN(b, fenKiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tb.Perft(&p, 3)
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	tb := BuildTables()
	p := mustFEN(b, fenKiwipete)
	buf := make([]Move, 0, MaxMoves)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = tb.LegalMoves(&p, White, buf[:0])
	}
}

func BenchmarkIsSquareAttacked(b *testing.B) {
	tb := BuildTables()
	p := mustFEN(b, fenKiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for sq := Square(0); sq < 64; sq++ {
			_ = tb.IsSquareAttacked(&p, sq, Black)
		}
	}
}
