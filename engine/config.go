package engine

import (
	"errors"
	"io"
	"time"

	"xfchess-engine/rules"
)

var (
	// ErrNoLegalMoves is returned when the side to move is checkmated or
	// stalemated. Callers are expected to classify the position first.
	ErrNoLegalMoves = errors.New("engine: no legal moves in position")
	// ErrNoLimits is returned when a search has neither a budget nor a depth.
	ErrNoLimits = errors.New("engine: search needs a time budget or a depth")
)

// Config holds the tunables of a Searcher.
type Config struct {
	// TTSizeMB is the transposition table size; 0 disables the table.
	TTSizeMB int
	// MaxDepth caps iterative deepening.
	MaxDepth int
	// QuiescenceDepth caps the capture search below the horizon; 0 evaluates
	// leaves statically.
	QuiescenceDepth int
	// MaxCheckExtensions bounds the extra plies granted to checking lines.
	MaxCheckExtensions int
	// SoftTimeFraction of the budget after which no new iteration starts.
	SoftTimeFraction float64
	// NodeCheckInterval is how often, in nodes, the clock is consulted.
	NodeCheckInterval uint64
	// Output receives "info" progress lines; nil keeps the searcher silent.
	Output io.Writer
	// PrintCutStats dumps cutoff counters to Output after each search.
	PrintCutStats bool
}

func DefaultConfig() Config {
	return Config{
		TTSizeMB:           16,
		MaxDepth:           64,
		QuiescenceDepth:    6,
		MaxCheckExtensions: 4,
		SoftTimeFraction:   0.5,
		NodeCheckInterval:  2048,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.MaxDepth <= 0 || c.MaxDepth > MaxPly/2 {
		c.MaxDepth = d.MaxDepth
	}
	c.QuiescenceDepth = Clamp(c.QuiescenceDepth, 0, MaxPly/2)
	c.MaxCheckExtensions = Max(c.MaxCheckExtensions, 0)
	if c.SoftTimeFraction <= 0 || c.SoftTimeFraction > 1 {
		c.SoftTimeFraction = d.SoftTimeFraction
	}
	if c.NodeCheckInterval == 0 {
		c.NodeCheckInterval = d.NodeCheckInterval
	}
	c.TTSizeMB = Max(c.TTSizeMB, 0)
	return c
}

// Limits bounds a single search. At least one of Budget and Depth must be set.
type Limits struct {
	// Budget is the wall-clock time allowed; 0 means no time limit.
	Budget time.Duration
	// Depth caps the iterative deepening depth; 0 means Config.MaxDepth.
	Depth int
	// History holds the signatures of earlier positions of the game, oldest
	// first, excluding the searched position. They make repetitions draws.
	History []uint64
}

// Result is the outcome of a search.
type Result struct {
	Move rules.Move
	// Score is in centipawns from the side to move's point of view.
	Score   int
	Depth   int
	Nodes   uint64
	PV      []rules.Move
	Elapsed time.Duration
	Stats   CutStatistics
}

// MateIn returns the number of moves to mate, negative when the side to move
// is being mated, and false for a non-mate score.
func (r Result) MateIn() (int, bool) {
	if Abs(r.Score) < Checkmate {
		return 0, false
	}
	plies := MateScore - Abs(r.Score)
	n := (plies + 1) / 2
	if r.Score < 0 {
		n = -n
	}
	return n, true
}
