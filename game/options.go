package game

import (
	"io"

	"xfchess-engine/engine"
	"xfchess-engine/rules"
)

// Option configures a Game.
type Option func(*settings)

type settings struct {
	cfg    engine.Config
	tables *rules.Tables
	output io.Writer
}

// WithConfig sets the search configuration.
func WithConfig(cfg engine.Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithTables shares precomputed move tables between games.
func WithTables(t *rules.Tables) Option {
	return func(s *settings) { s.tables = t }
}

// WithOutput sends the searcher's progress lines to w. It takes precedence
// over the Output of WithConfig regardless of order.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.output = w }
}
