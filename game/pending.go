package game

import (
	"context"

	"xfchess-engine/engine"
)

// Pending is a search running in the background.
type Pending struct {
	done   chan struct{}
	cancel context.CancelFunc
	result engine.Result
	err    error
}

func newPending(cancel context.CancelFunc) *Pending {
	return &Pending{done: make(chan struct{}), cancel: cancel}
}

func (p *Pending) finish(res engine.Result, err error) {
	p.result, p.err = res, err
	p.cancel()
	close(p.done)
}

// Done is closed when the search has finished.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Poll returns the result without blocking; ready is false while the search
// is still running.
func (p *Pending) Poll() (res engine.Result, ready bool, err error) {
	select {
	case <-p.done:
		return p.result, true, p.err
	default:
		return engine.Result{}, false, nil
	}
}

// Wait blocks until the search finishes.
func (p *Pending) Wait() (engine.Result, error) {
	<-p.done
	return p.result, p.err
}

// Cancel stops the search early. The deepest completed depth is still
// reported.
func (p *Pending) Cancel() { p.cancel() }

func (p *Pending) running() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}
