// Package game is the host-facing side of the engine: it owns the position of
// one game, applies the host's move requests and runs searches in the
// background.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"xfchess-engine/engine"
	"xfchess-engine/rules"
)

// ErrSearchInProgress is returned when a search is requested while another
// one is still running.
var ErrSearchInProgress = errors.New("game: a search is already running")

// Record is one played move.
type Record struct {
	Move     rules.Move
	Moved    rules.Piece
	Captured rules.Piece

	undo rules.Undo
	// signature of the position before the move
	hash uint64
}

// Game is safe for concurrent use.
type Game struct {
	mu       sync.Mutex
	tables   *rules.Tables
	searcher *engine.Searcher
	pos      rules.Position
	history  []Record
	pending  *Pending
}

func New(opts ...Option) *Game {
	s := settings{cfg: engine.DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.output != nil {
		s.cfg.Output = s.output
	}
	if s.tables == nil {
		s.tables = rules.BuildTables()
	}
	return &Game{
		tables:   s.tables,
		searcher: engine.NewSearcher(s.tables, s.cfg),
		pos:      rules.NewPosition(),
	}
}

// Reset restores the starting position and clears the history. A running
// search is cancelled and waited for.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopSearchLocked()
	g.pos = rules.NewPosition()
	g.history = g.history[:0]
	g.searcher.ClearCache()
}

func (g *Game) stopSearchLocked() {
	if g.pending == nil {
		return
	}
	g.pending.Cancel()
	<-g.pending.Done()
	g.pending = nil
}

// SetBoard replaces the board with placements and sets the side to move. The
// castling flags are cleared, so castling is available wherever king and rook
// stand on their home squares. The history is dropped and the clocks restart
// at halfmove 0, move 1. On error nothing changes.
func (g *Game) SetBoard(placements []rules.Placement, side rules.Owner) error {
	if side != rules.White && side != rules.Black {
		return fmt.Errorf("%w: side %d", rules.ErrInvalidPiece, side)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	pos := g.pos
	if err := pos.SetPlacements(placements); err != nil {
		return err
	}
	pos.SetSideToMove(side)
	pos.SetCastling(0)
	pos.SetHalfmoveClock(0)
	pos.SetMoveCounter(1)
	g.pos = pos
	g.history = g.history[:0]
	return nil
}

// SetCastlingFlags records which kings and rooks have moved.
func (g *Game) SetCastlingFlags(flags rules.CastlingFlags) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pos.SetCastling(flags)
}

// LoadFEN replaces the position with the one described by fen and drops the
// history.
func (g *Game) LoadFEN(fen string) error {
	pos, err := rules.ParseFEN(fen)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pos = pos
	g.history = g.history[:0]
	return nil
}

func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.FEN()
}

// Board lists the occupied squares in ascending order.
func (g *Game) Board() []rules.Placement {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.Placements()
}

// Position returns a copy of the current position.
func (g *Game) Position() rules.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos
}

func (g *Game) SideToMove() rules.Owner {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.SideToMove()
}

// State classifies the position for the side to move.
func (g *Game) State() rules.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tables.Classify(&g.pos, g.pos.SideToMove())
}

// RequestMove plays the move of the side to move from one square to another
// if it is legal and reports whether it was played. Promotions use the given
// kind, or a queen for NoKind. Errors are reserved for squares off the board
// and kinds a pawn cannot promote to.
func (g *Game) RequestMove(from, to rules.Square, promotion rules.PieceKind) (bool, error) {
	if !from.Valid() || !to.Valid() {
		return false, fmt.Errorf("%w: %d-%d", rules.ErrInvalidSquare, int(from), int(to))
	}
	if promotion != rules.NoKind && !slices.Contains(rules.PromotionKinds[:], promotion) {
		return false, fmt.Errorf("%w: cannot promote to %s", rules.ErrInvalidPiece, promotion)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	mv, ok := g.tables.FindLegal(&g.pos, g.pos.SideToMove(), from, to, promotion)
	if !ok {
		return false, nil
	}
	g.playLocked(mv)
	return true, nil
}

func (g *Game) playLocked(mv rules.Move) {
	hash := g.pos.Hash()
	u := g.pos.Play(mv)
	g.history = append(g.history, Record{
		Move:     mv,
		Moved:    u.Moved(),
		Captured: u.Captured(),
		undo:     u,
		hash:     hash,
	})
}

// TakeBack undoes the last played move.
func (g *Game) TakeBack() (rules.Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := len(g.history)
	if n == 0 {
		return rules.NullMove, false
	}
	last := g.history[n-1]
	g.pos.Unplay(last.Move, last.undo)
	g.history = g.history[:n-1]
	return last.Move, true
}

// History returns the moves played since the last reset or board load.
func (g *Game) History() []Record {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.history)
}

// Captured lists the pieces of owner taken so far, in the order they fell.
func (g *Game) Captured(owner rules.Owner) []rules.Piece {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []rules.Piece
	for _, r := range g.history {
		if !r.Captured.IsEmpty() && r.Captured.Owner() == owner {
			out = append(out, r.Captured)
		}
	}
	return out
}

// LegalDestinations returns the squares the piece of side on sq can move to,
// ascending and without duplicates. Promotions to different kinds share one
// destination.
func (g *Game) LegalDestinations(sq rules.Square, side rules.Owner) ([]rules.Square, error) {
	if !sq.Valid() {
		return nil, fmt.Errorf("%w: %d", rules.ErrInvalidSquare, int(sq))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var buf [rules.MaxMoves]rules.Move
	out := []rules.Square{}
	for _, mv := range g.tables.LegalMoves(&g.pos, side, buf[:0]) {
		if mv.From() == sq {
			out = append(out, mv.To())
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// Search starts a search for the side to move on a copy of the current
// position. Moves requested while it runs do not affect it.
func (g *Game) Search(budget time.Duration) (*Pending, error) {
	if budget <= 0 {
		return nil, engine.ErrNoLimits
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending != nil && g.pending.running() {
		return nil, ErrSearchInProgress
	}
	if !g.tables.HasLegalMove(&g.pos, g.pos.SideToMove()) {
		return nil, engine.ErrNoLegalMoves
	}

	pos := g.pos
	history := make([]uint64, len(g.history))
	for i, r := range g.history {
		history[i] = r.hash
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := newPending(cancel)
	g.pending = p
	searcher := g.searcher
	go func() {
		res, err := searcher.Search(ctx, pos, engine.Limits{Budget: budget, History: history})
		p.finish(res, err)
	}()
	return p, nil
}
