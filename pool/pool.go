// Package pool implements a bounded non-blocking pool of closable
// resources with idle eviction.
package pool

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrNoSession is reported by Acquire when every slot is leased. The
// caller decides whether to retry or fail; Acquire never blocks.
var ErrNoSession = errors.New("pool: all sessions in use")

// ErrClosed is reported by Acquire after Close.
var ErrClosed = errors.New("pool: closed")

type idleEntry[C any] struct {
	res   C
	since time.Time
}

// Pool hands out at most max resources at a time. Released resources are
// kept idle for reuse and evicted by a background sweep once they sit
// unused longer than the TTL. Leased resources are never touched by the
// sweep.
type Pool[C interface {
	comparable
	Close() error
}] struct {
	factory func() (C, error)
	max     int
	ttl     time.Duration
	log     *slog.Logger

	mu     sync.Mutex
	idle   []idleEntry[C]
	leased map[C]struct{}
	closed bool

	stop chan struct{}
	done chan struct{}
}

func New[C interface {
	comparable
	Close() error
}](factory func() (C, error), max int, ttl time.Duration) *Pool[C] {
	p := &Pool[C]{
		factory: factory,
		max:     max,
		ttl:     ttl,
		log:     slog.With("component", "pool"),
		leased:  map[C]struct{}{},
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go p.sweep()
	return p
}

// Acquire leases a resource: the most recently released idle one when
// available, a fresh one while the total count is below the limit, and
// ErrNoSession otherwise.
func (p *Pool[C]) Acquire(ctx context.Context) (C, error) {
	var zero C
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return zero, ErrClosed
	}

	if n := len(p.idle); n > 0 {
		res := p.idle[n-1].res
		p.idle = p.idle[:n-1]
		p.leased[res] = struct{}{}
		return res, nil
	}

	if len(p.leased) >= p.max {
		return zero, ErrNoSession
	}

	res, err := p.factory()
	if err != nil {
		return zero, err
	}
	p.leased[res] = struct{}{}
	return res, nil
}

// Release returns a leased resource to the idle set. Releasing a resource
// the pool did not hand out is logged and ignored.
func (p *Pool[C]) Release(res C) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.leased[res]; !ok {
		p.log.Warn("release of unknown resource ignored")
		return
	}
	delete(p.leased, res)

	if p.closed {
		p.closeResource(res)
		return
	}
	p.idle = append(p.idle, idleEntry[C]{res: res, since: time.Now()})
}

// Close stops the sweep and closes every pooled resource. Resources still
// leased are closed as they come back through Release.
func (p *Pool[C]) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	idle := p.idle
	p.idle = nil
	p.mu.Unlock()

	close(p.stop)
	<-p.done

	for _, e := range idle {
		p.closeResource(e.res)
	}
	return nil
}

func (p *Pool[C]) sweep() {
	defer close(p.done)

	if p.ttl <= 0 {
		<-p.stop
		return
	}

	ticker := time.NewTicker(p.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case now := <-ticker.C:
			p.evictIdle(now)
		}
	}
}

// evictIdle closes resources idle longer than the TTL. Idle entries are
// ordered by release time, so the kept tail is exactly the still-fresh
// ones.
func (p *Pool[C]) evictIdle(now time.Time) {
	p.mu.Lock()
	cutoff := 0
	for cutoff < len(p.idle) && now.Sub(p.idle[cutoff].since) > p.ttl {
		cutoff++
	}
	expired := p.idle[:cutoff]
	p.idle = p.idle[cutoff:]
	p.mu.Unlock()

	for _, e := range expired {
		p.log.Debug("evicting idle resource", "idle", now.Sub(e.since))
		p.closeResource(e.res)
	}
}

func (p *Pool[C]) closeResource(res C) {
	if err := res.Close(); err != nil {
		p.log.Warn("closing pooled resource", "error", err)
	}
}
