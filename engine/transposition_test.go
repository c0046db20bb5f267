package engine

import (
	"testing"

	"xfchess-engine/rules"
)

func TestTransTableStoreAndProbe(t *testing.T) {
	tt := newTransTable(1)
	mv := rules.NewMove(12, 28, rules.NoKind, rules.FlagNone)
	tt.storeEntry(0xABCDEF, 5, 3, mv, 42, ExactFlag)

	entry, ok := tt.getEntry(0xABCDEF)
	if !ok || entry.Move != mv || entry.Depth != 5 {
		t.Fatalf("getEntry = %+v, %v", entry, ok)
	}
	if _, ok := tt.getEntry(0x123456); ok {
		t.Fatalf("found an entry that was never stored")
	}

	if usable, score := tt.useEntry(entry, 0xABCDEF, 5, -100, 100, 3); !usable || score != 42 {
		t.Fatalf("exact entry: usable %v score %d", usable, score)
	}
	if usable, _ := tt.useEntry(entry, 0xABCDEF, 6, -100, 100, 3); usable {
		t.Fatalf("a shallower entry was used for a deeper search")
	}
}

func TestTransTableBounds(t *testing.T) {
	tt := newTransTable(1)
	tt.storeEntry(1, 4, 0, rules.NullMove, 50, AlphaFlag)
	tt.storeEntry(2, 4, 0, rules.NullMove, 50, BetaFlag)
	upper, _ := tt.getEntry(1)
	lower, _ := tt.getEntry(2)

	cases := []struct {
		name        string
		entry       *TTEntry
		hash        uint64
		alpha, beta int
		usable      bool
	}{
		{"upper bound below alpha", upper, 1, 60, 100, true},
		{"upper bound inside window", upper, 1, 0, 100, false},
		{"lower bound above beta", lower, 2, 0, 40, true},
		{"lower bound inside window", lower, 2, 0, 100, false},
	}
	for _, tc := range cases {
		usable, score := tt.useEntry(tc.entry, tc.hash, 4, tc.alpha, tc.beta, 0)
		if usable != tc.usable {
			t.Errorf("%s: usable = %v, want %v", tc.name, usable, tc.usable)
		}
		if usable && score != 50 {
			t.Errorf("%s: score = %d, want 50", tc.name, score)
		}
	}
}

func TestTransTableMateScoresAreNodeRelative(t *testing.T) {
	tt := newTransTable(1)
	// Mate found 7 plies from the root, stored at ply 3.
	tt.storeEntry(9, 2, 3, rules.NullMove, MateScore-7, ExactFlag)
	entry, _ := tt.getEntry(9)
	if _, score := tt.useEntry(entry, 9, 2, -MaxScore, MaxScore, 3); score != MateScore-7 {
		t.Fatalf("same ply: score %d, want %d", score, MateScore-7)
	}
	// The same position reached 2 plies further from the root is a mate 2 plies later.
	if _, score := tt.useEntry(entry, 9, 2, -MaxScore, MaxScore, 5); score != MateScore-9 {
		t.Fatalf("deeper ply: score %d, want %d", score, MateScore-9)
	}
}

func TestTransTableReplacement(t *testing.T) {
	tt := newTransTable(1)
	// Five signatures sharing a cluster: the shallowest one is evicted.
	base := uint64(7)
	for i := uint64(0); i < clusterSize; i++ {
		tt.storeEntry(base+i*tt.clusterCount, int(i)+1, 0, rules.NullMove, 0, ExactFlag)
	}
	extra := base + clusterSize*tt.clusterCount
	tt.storeEntry(extra, 9, 0, rules.NullMove, 0, ExactFlag)
	if _, ok := tt.getEntry(base); ok {
		t.Fatalf("shallowest entry survived")
	}
	if _, ok := tt.getEntry(extra); !ok {
		t.Fatalf("new entry was not stored")
	}
	for i := uint64(1); i < clusterSize; i++ {
		if _, ok := tt.getEntry(base + i*tt.clusterCount); !ok {
			t.Fatalf("entry %d was evicted", i)
		}
	}
}

func TestDisabledTransTable(t *testing.T) {
	tt := newTransTable(0)
	tt.storeEntry(1, 3, 0, rules.NullMove, 10, ExactFlag)
	if _, ok := tt.getEntry(1); ok {
		t.Fatalf("disabled table returned an entry")
	}
}

func TestStateStackRepetition(t *testing.T) {
	var st stateStack
	st.reset([]uint64{10, 20, 30, 40}, 10)
	if !st.isRepetition(4) {
		t.Fatalf("repetition four plies back not detected")
	}
	if st.isRepetition(3) {
		t.Fatalf("repetition found across an irreversible move")
	}
	st.pop()
	st.push(50)
	if st.isRepetition(10) {
		t.Fatalf("draw without any repetition")
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	tb := rules.BuildTables()
	cases := []struct {
		name string
		fen  string
		want bool
	}{
		{"below the limit", "6k1/5ppp/8/8/8/8/8/R5K1 b - - 99 80", false},
		{"quiet position", "6k1/5ppp/8/8/8/8/8/R5K1 b - - 100 80", true},
		{"check with an escape", "R3k3/8/8/8/8/8/8/6K1 b - - 100 80", true},
		{"checkmate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 100 80", false},
	}
	for _, tc := range cases {
		p := rules.MustParseFEN(tc.fen)
		inCheck := tb.InCheck(&p, p.SideToMove())
		if got := fiftyMoveDraw(tb, &p, inCheck); got != tc.want {
			t.Fatalf("%s: fiftyMoveDraw = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEvaluate(t *testing.T) {
	tb := rules.BuildTables()
	start := rules.NewPosition()
	if got := Evaluate(tb, &start); got != 0 {
		t.Fatalf("start position = %d, want 0", got)
	}

	white := rules.MustParseFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	black := rules.MustParseFEN("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	w, b := Evaluate(tb, &white), Evaluate(tb, &black)
	if w < 800 || w != -b {
		t.Fatalf("extra queen: white to move %d, black to move %d", w, b)
	}

	// Mirroring the board and swapping colours must mirror the score.
	p := rules.MustParseFEN(fenKiwipete)
	m := rules.MustParseFEN("r3k2r/pppbbppp/2n2q1P/1P2p3/3pn3/BN2PNP1/P1PPQPB1/R3K2R b KQkq - 0 1")
	if a, b := Evaluate(tb, &p), Evaluate(tb, &m); a != b {
		t.Fatalf("mirrored kiwipete: %d vs %d", a, b)
	}
}
