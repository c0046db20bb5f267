package rules_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	"xfchess-engine/rules"
)

// Independent move generators used as references for the legal move sets.

func dragontoothMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	moves := b.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, moves[i].String())
	}
	sort.Strings(out)
	return out
}

func notnilGame(t *testing.T, fen string) *chess.Game {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("chess.FEN(%q): %v", fen, err)
	}
	return chess.NewGame(opt)
}

var notnilPromo = map[chess.PieceType]string{
	chess.Queen:  "q",
	chess.Rook:   "r",
	chess.Bishop: "b",
	chess.Knight: "n",
}

func notnilMoves(g *chess.Game) []string {
	var out []string
	for _, m := range g.ValidMoves() {
		out = append(out, m.S1().String()+m.S2().String()+notnilPromo[m.Promo()])
	}
	sort.Strings(out)
	return out
}

func gooseMoves(t *testing.T, fen string) ([]string, bool) {
	t.Helper()
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("goosemg.ParseFEN(%q): %v", fen, err)
	}
	var out []string
	for _, m := range b.GenerateMoves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out, b.InCheck(b.SideToMove())
}

func legalStrings(tb *rules.Tables, p *rules.Position) []string {
	moves := tb.LegalMoves(p, p.SideToMove(), nil)
	out := make([]string, len(moves))
	for i, mv := range moves {
		out[i] = mv.String()
	}
	sort.Strings(out)
	return out
}

func sameMoves(a, b []string) bool {
	return strings.Join(a, " ") == strings.Join(b, " ")
}

func crossCheck(t *testing.T, tb *rules.Tables, p *rules.Position) {
	t.Helper()
	fen := p.FEN()
	ours := legalStrings(tb, p)

	if theirs := dragontoothMoves(fen); !sameMoves(ours, theirs) {
		t.Fatalf("%s\n ours        %v\n dragontooth %v", fen, ours, theirs)
	}
	g := notnilGame(t, fen)
	if theirs := notnilMoves(g); !sameMoves(ours, theirs) {
		t.Fatalf("%s\n ours   %v\n notnil %v", fen, ours, theirs)
	}
	theirs, inCheck := gooseMoves(t, fen)
	if !sameMoves(ours, theirs) {
		t.Fatalf("%s\n ours    %v\n goosemg %v", fen, ours, theirs)
	}
	if got := tb.InCheck(p, p.SideToMove()); got != inCheck {
		t.Fatalf("%s: InCheck = %v, goosemg says %v", fen, got, inCheck)
	}

	state := tb.Classify(p, p.SideToMove())
	switch g.Position().Status() {
	case chess.Checkmate:
		if state != rules.Checkmate {
			t.Fatalf("%s: Classify = %s, notnil says checkmate", fen, state)
		}
	case chess.Stalemate:
		if state != rules.Stalemate {
			t.Fatalf("%s: Classify = %s, notnil says stalemate", fen, state)
		}
	default:
		if state.IsTerminal() {
			t.Fatalf("%s: Classify = %s, notnil says the game goes on", fen, state)
		}
	}
}

var oracleFENs = []string{
	rules.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"8/8/8/KPp4r/8/8/8/7k w - c6 0 1",
	"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	"r3k2r/1P4P1/8/8/8/8/1p4p1/R3K2R b KQkq - 0 1",
}

func TestLegalMovesMatchReferenceGenerators(t *testing.T) {
	tb := rules.BuildTables()
	for _, fen := range oracleFENs {
		p, err := rules.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		crossCheck(t, tb, &p)
	}
}

// Random games reach castling, en passant and promotion positions that no
// hand-picked list covers.
func TestRandomPlayoutsMatchReferenceGenerators(t *testing.T) {
	tb := rules.BuildTables()
	games, plies := 12, 90
	if testing.Short() {
		games = 3
	}
	rng := rand.New(rand.NewSource(20241015))
	for game := 0; game < games; game++ {
		start := oracleFENs[game%len(oracleFENs)]
		p := rules.MustParseFEN(start)
		for ply := 0; ply < plies; ply++ {
			crossCheck(t, tb, &p)
			moves := tb.LegalMoves(&p, p.SideToMove(), nil)
			if len(moves) == 0 {
				break
			}
			p.Play(moves[rng.Intn(len(moves))])
		}
	}
}

func TestPerftMatchesGoosemg(t *testing.T) {
	tb := rules.BuildTables()
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range oracleFENs {
		p := rules.MustParseFEN(fen)
		b, err := goosemg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("goosemg.ParseFEN(%q): %v", fen, err)
		}
		if got, want := tb.Perft(&p, depth), goosemg.Perft(b, depth); got != want {
			t.Fatalf("%s: perft(%d) = %d, goosemg %d", fen, depth, got, want)
		}
	}
}
