package engine

import (
	"context"
	"fmt"
	"time"

	"xfchess-engine/rules"
)

const (
	// MaxScore bounds every search window.
	MaxScore = 32500
	// MateScore is the score of delivering mate at the root; a mate found n
	// plies deep scores MateScore-n.
	MateScore = 32000
	// Checkmate is the threshold above which a score is a mate.
	Checkmate = 20000
	DrawScore = 0

	// MaxPly bounds the search path including extensions and quiescence.
	MaxPly = 128

	deltaMargin = 200
)

// Searcher finds moves by iterative deepening alpha-beta. It keeps its
// transposition table, killers and history between searches and is not safe
// for concurrent use.
type Searcher struct {
	tables *rules.Tables
	cfg    Config
	eval   *evaluator

	tt      TransTable
	killers killerTable
	history historyTable
	states  stateStack
	timer   TimeHandler

	nodes   uint64
	stats   CutStatistics
	done    <-chan struct{}
	canStop bool
	stopped bool

	pv       [MaxPly + 1]PVLine
	moveBufs [MaxPly][]rules.Move
	lists    [MaxPly]moveList
}

func NewSearcher(tables *rules.Tables, cfg Config) *Searcher {
	cfg = cfg.normalized()
	s := &Searcher{
		tables: tables,
		cfg:    cfg,
		eval:   newEvaluator(tables),
		tt:     newTransTable(cfg.TTSizeMB),
	}
	for i := range s.pv {
		s.pv[i].Moves = make([]rules.Move, 0, MaxPly)
	}
	return s
}

// Config returns the normalized configuration of s.
func (s *Searcher) Config() Config { return s.cfg }

// ClearCache forgets everything learned in earlier searches.
func (s *Searcher) ClearCache() {
	s.tt.clear()
	s.killers.clear()
	s.history.clear()
}

// Search returns the best move for the side to move of pos. The deepest fully
// searched depth decides the result; depth 1 always completes even if the
// budget or ctx runs out first.
func (s *Searcher) Search(ctx context.Context, pos rules.Position, limits Limits) (Result, error) {
	if limits.Budget <= 0 && limits.Depth <= 0 {
		return Result{}, ErrNoLimits
	}
	side := pos.SideToMove()
	if !s.tables.HasLegalMove(&pos, side) {
		return Result{}, ErrNoLegalMoves
	}

	if limits.Budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limits.Budget)
		defer cancel()
	}
	maxDepth := s.cfg.MaxDepth
	if limits.Depth > 0 {
		maxDepth = Min(limits.Depth, maxDepth)
	}

	s.timer.StartTime(limits.Budget, s.cfg.SoftTimeFraction)
	s.done = ctx.Done()
	s.nodes = 0
	s.stats = CutStatistics{}
	s.stopped = false
	s.states.reset(limits.History, pos.Hash())

	var res Result
	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && (s.timer.SoftLimitReached() || ctx.Err() != nil) {
			break
		}
		s.canStop = depth > 1
		score, best := s.rootSearch(&pos, depth, res.Move)
		if s.stopped {
			break
		}
		res.Move = best
		res.Score = score
		res.Depth = depth
		res.PV = append(res.PV[:0], s.pv[0].Moves...)
		s.reportDepth(res)

		if Abs(score) >= Checkmate && MateScore-Abs(score) <= depth {
			break
		}
	}

	res.Nodes = s.nodes
	res.Elapsed = s.timer.Elapsed()
	res.Stats = s.stats
	if s.cfg.PrintCutStats && s.cfg.Output != nil {
		dumpCutStats(s.cfg.Output, s.stats)
	}
	return res, nil
}

func (s *Searcher) reportDepth(res Result) {
	if s.cfg.Output == nil {
		return
	}
	elapsed := s.timer.Elapsed()
	nps := uint64(0)
	if elapsed > 0 {
		nps = s.nodes * uint64(time.Second) / uint64(elapsed)
	}
	fmt.Fprintf(s.cfg.Output, "info depth %d score %s nodes %d time %d nps %d pv%s\n",
		res.Depth, getMateOrCPScore(res.Score), s.nodes, elapsed.Milliseconds(), nps, getPVLineString(res.PV))
}

// shouldStop polls the deadline every NodeCheckInterval nodes.
func (s *Searcher) shouldStop() bool {
	if s.stopped {
		return true
	}
	if !s.canStop || s.nodes%s.cfg.NodeCheckInterval != 0 {
		return false
	}
	select {
	case <-s.done:
		s.stopped = true
	default:
	}
	return s.stopped
}

// rootSearch searches every legal root move with a full window, so the
// returned score is exact. prevBest is tried first.
func (s *Searcher) rootSearch(p *rules.Position, depth int, prevBest rules.Move) (int, rules.Move) {
	s.pv[0].Clear()
	moves := s.tables.LegalMoves(p, p.SideToMove(), s.moveBufs[0][:0])
	s.moveBufs[0] = moves
	list := &s.lists[0]
	s.scoreMoves(p, moves, 0, prevBest, list)

	alpha, beta := -MaxScore, MaxScore
	bestScore, bestMove := -MaxScore, rules.NullMove
	for i := range list.moves {
		orderNextMove(i, list)
		mv := list.moves[i].move

		u := p.Play(mv)
		s.states.push(p.Hash())
		var score int
		if i == 0 {
			score = -s.alphabeta(p, depth-1, -beta, -alpha, 1, 0)
		} else {
			score = -s.alphabeta(p, depth-1, -alpha-1, -alpha, 1, 0)
			if score > alpha && !s.stopped {
				score = -s.alphabeta(p, depth-1, -beta, -alpha, 1, 0)
			}
		}
		s.states.pop()
		p.Unplay(mv, u)
		if s.stopped {
			return 0, rules.NullMove
		}

		if score > bestScore {
			bestScore, bestMove = score, mv
			if score > alpha {
				alpha = score
				s.pv[0].Update(mv, &s.pv[1])
			}
		}
	}
	s.tt.storeEntry(p.Hash(), depth, 0, bestMove, bestScore, ExactFlag)
	return bestScore, bestMove
}

// alphabeta is a fail-soft negamax with principal variation search. Checks
// extend the depth up to Config.MaxCheckExtensions times along a path.
func (s *Searcher) alphabeta(p *rules.Position, depth, alpha, beta, ply, extensions int) int {
	s.pv[ply].Clear()
	s.nodes++
	if s.shouldStop() {
		return 0
	}
	if s.states.isRepetition(p.HalfmoveClock()) {
		return DrawScore
	}
	if ply >= MaxPly-1 {
		return s.eval.Evaluate(p)
	}

	side := p.SideToMove()
	inCheck := s.tables.InCheck(p, side)
	if fiftyMoveDraw(s.tables, p, inCheck) {
		return DrawScore
	}
	if inCheck && extensions < s.cfg.MaxCheckExtensions {
		depth++
		extensions++
		s.stats.CheckExtensions++
	}
	if depth <= 0 {
		return s.quiescence(p, alpha, beta, ply, 0)
	}

	isPVNode := beta-alpha > 1
	hash := p.Hash()
	ttMove := rules.NullMove
	if entry, found := s.tt.getEntry(hash); found {
		ttMove = entry.Move
		if !isPVNode {
			if usable, score := s.tt.useEntry(entry, hash, depth, alpha, beta, ply); usable {
				s.stats.TTCutoffs++
				return score
			}
		}
	}

	moves := s.tables.LegalMoves(p, side, s.moveBufs[ply][:0])
	s.moveBufs[ply] = moves
	if len(moves) == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return DrawScore
	}
	list := &s.lists[ply]
	s.scoreMoves(p, moves, ply, ttMove, list)

	origAlpha := alpha
	bestScore, bestMove := -MaxScore, rules.NullMove
	for i := range list.moves {
		orderNextMove(i, list)
		mv := list.moves[i].move
		quiet := isQuiet(p, mv)

		u := p.Play(mv)
		s.states.push(p.Hash())
		var score int
		if i == 0 {
			score = -s.alphabeta(p, depth-1, -beta, -alpha, ply+1, extensions)
		} else {
			score = -s.alphabeta(p, depth-1, -alpha-1, -alpha, ply+1, extensions)
			if score > alpha && score < beta && !s.stopped {
				score = -s.alphabeta(p, depth-1, -beta, -alpha, ply+1, extensions)
			}
		}
		s.states.pop()
		p.Unplay(mv, u)
		if s.stopped {
			return 0
		}

		if score > bestScore {
			bestScore, bestMove = score, mv
			if score > alpha {
				alpha = score
				s.pv[ply].Update(mv, &s.pv[ply+1])
			}
			if score >= beta {
				s.stats.BetaCutoffs++
				if quiet {
					s.killers.insert(mv, ply)
					s.history.increment(side, mv, depth)
				}
				break
			}
		}
	}

	var flag int8 = ExactFlag
	if bestScore <= origAlpha {
		flag = AlphaFlag
	} else if bestScore >= beta {
		flag = BetaFlag
	}
	s.tt.storeEntry(hash, depth, ply, bestMove, bestScore, flag)
	return bestScore
}

// quiescence resolves captures and promotions below the horizon, skipping
// captures that lose material by exchange. In check every evasion is searched
// and there is no stand pat. The recursion stops at
// Config.QuiescenceDepth plies.
func (s *Searcher) quiescence(p *rules.Position, alpha, beta, ply, qply int) int {
	s.pv[ply].Clear()
	s.nodes++
	if s.shouldStop() {
		return 0
	}
	if qply >= s.cfg.QuiescenceDepth || ply >= MaxPly-1 {
		return s.eval.Evaluate(p)
	}

	side := p.SideToMove()
	inCheck := s.tables.InCheck(p, side)
	bestScore, standPat := -MaxScore, 0
	var moves []rules.Move
	if inCheck {
		moves = s.tables.LegalMoves(p, side, s.moveBufs[ply][:0])
		if len(moves) == 0 {
			return -MateScore + ply
		}
	} else {
		standPat = s.eval.Evaluate(p)
		if standPat >= beta {
			s.stats.QStandPatCutoffs++
			return standPat
		}
		alpha = Max(alpha, standPat)
		bestScore = standPat
		moves = s.tables.LegalCapturesAndPromotions(p, side, s.moveBufs[ply][:0])
	}
	s.moveBufs[ply] = moves

	list := &s.lists[ply]
	s.scoreMoves(p, moves, ply, rules.NullMove, list)
	for i := range list.moves {
		orderNextMove(i, list)
		mv := list.moves[i].move
		if !inCheck && !mv.IsPromotion() {
			if list.moves[i].score < captureOffset {
				s.stats.SEEPrunes++
				continue
			}
			if standPat+pieceValue[capturedKind(p, mv)]+deltaMargin < alpha {
				s.stats.DeltaPrunes++
				continue
			}
		}

		u := p.Play(mv)
		score := -s.quiescence(p, -beta, -alpha, ply+1, qply+1)
		p.Unplay(mv, u)
		if s.stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				alpha = score
				s.pv[ply].Update(mv, &s.pv[ply+1])
			}
			if score >= beta {
				s.stats.QBetaCutoffs++
				break
			}
		}
	}
	return bestScore
}
