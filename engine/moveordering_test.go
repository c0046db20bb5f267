package engine

import (
	"testing"

	"xfchess-engine/rules"
)

func TestKillerTable(t *testing.T) {
	p := rules.NewPosition()
	tb := rules.BuildTables()
	var k killerTable
	a, _ := tb.ParseLegal(&p, "g1f3")
	b, _ := tb.ParseLegal(&p, "b1c3")

	k.insert(a, 3)
	k.insert(a, 3)
	if k[3][0] != a || k[3][1] != rules.NullMove {
		t.Fatalf("repeated insert: %v", k[3])
	}
	k.insert(b, 3)
	if k[3][0] != b || k[3][1] != a {
		t.Fatalf("second insert: %v", k[3])
	}
	if k[2][0] != rules.NullMove {
		t.Fatalf("insert leaked into another ply")
	}
	k.clear()
	if k[3][0] != rules.NullMove || k[3][1] != rules.NullMove {
		t.Fatalf("clear kept %v", k[3])
	}
}

func TestKillersOrderedAfterCaptures(t *testing.T) {
	tb := rules.BuildTables()
	s := NewSearcher(tb, testConfig())
	p := rules.MustParseFEN("4k3/8/8/3p4/4P3/8/8/4K1N1 w - - 0 1")
	capture, err := tb.ParseLegal(&p, "e4d5")
	if err != nil {
		t.Fatal(err)
	}
	killer, err := tb.ParseLegal(&p, "g1f3")
	if err != nil {
		t.Fatal(err)
	}
	s.killers.insert(killer, 1)

	moves := tb.LegalMoves(&p, p.SideToMove(), nil)
	var list moveList
	s.scoreMoves(&p, moves, 1, rules.NullMove, &list)
	orderNextMove(0, &list)
	orderNextMove(1, &list)
	if list.moves[0].move != capture || list.moves[1].move != killer {
		t.Fatalf("order starts %s %s, want %s %s", list.moves[0].move, list.moves[1].move, capture, killer)
	}
}
