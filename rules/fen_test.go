package rules

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range roundTripFENs {
		p := mustFEN(t, fen)
		if got := p.FEN(); got != fen {
			t.Errorf("FEN round trip:\n got %s\nwant %s", got, fen)
		}
	}
}

func TestStartPositionFEN(t *testing.T) {
	p := NewPosition()
	if got := p.FEN(); got != FENStartPos {
		t.Fatalf("NewPosition().FEN() = %s", got)
	}
	if q := MustParseFEN(FENStartPos); q != p {
		t.Fatalf("parsed start position differs from NewPosition")
	}
}

func TestParseFENOptionalClocks(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 b - -")
	if p.HalfmoveClock() != 0 || p.MoveCounter() != 1 || p.SideToMove() != Black {
		t.Fatalf("defaults wrong: %s", p.FEN())
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8 w - -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppx/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkz - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
		"rnbqkknr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) error = %v, want ErrInvalidFEN", fen, err)
		}
	}
	_, err := ParseFEN("rnbqkknr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if !errors.Is(err, ErrTooManyKings) {
		t.Fatalf("two kings error = %v, want ErrTooManyKings", err)
	}
}

func TestParseMoveAndSquare(t *testing.T) {
	from, to, promo, err := ParseMove("e7e8n")
	if err != nil || from.String() != "e7" || to.String() != "e8" || promo != Knight {
		t.Fatalf("ParseMove(e7e8n) = %s %s %s %v", from, to, promo, err)
	}
	for _, s := range []string{"", "e7", "e7e9", "e7e8k", "e7e8qq", "i1a1"} {
		if _, _, _, err := ParseMove(s); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseMove(%q) error = %v", s, err)
		}
	}
	if _, err := ParseSquare("h9"); !errors.Is(err, ErrInvalidSquare) {
		t.Fatalf("ParseSquare(h9) error = %v", err)
	}
	mv := NewMove(52, 60, Queen, FlagNone)
	if mv.String() != "e7e8q" || mv.From() != 52 || mv.To() != 60 || !mv.IsPromotion() || mv.IsCastle() {
		t.Fatalf("move encoding wrong: %s", mv)
	}
	if NewMove(4, 6, NoKind, FlagCastle).Flag() != FlagCastle {
		t.Fatalf("flag lost")
	}
}
