package client

import (
	"context"
	"sync"
	"time"

	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/services"
)

// Poller periodically re-fetches the notification inbox and replaces local
// state wholesale: last fetch wins, no merging. Each poll is numbered when
// it starts; a result only lands if no newer poll was issued while it was in
// flight, so two overlapping polls can never apply out of order.
type Poller struct {
	fetch    func(context.Context) ([]services.NotificationView, error)
	onUpdate func([]services.NotificationView)
	interval time.Duration

	mu      sync.Mutex
	issued  uint64
	applied uint64
	state   []services.NotificationView
}

func NewPoller(
	fetch func(context.Context) ([]services.NotificationView, error),
	onUpdate func([]services.NotificationView),
) *Poller {
	return &Poller{
		fetch:    fetch,
		onUpdate: onUpdate,
		interval: config.NotificationPollTick,
	}
}

// SetInterval overrides the poll interval (tests use a short one).
func (p *Poller) SetInterval(d time.Duration) {
	p.interval = d
}

// State returns the notifications from the last applied poll.
func (p *Poller) State() []services.NotificationView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// UnreadCount recomputes the unread total from the current state.
func (p *Poller) UnreadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, v := range p.state {
		if !v.Read {
			count++
		}
	}
	return count
}

// Poll runs one fetch. Safe to call concurrently with the run loop (manual
// refresh); stale results are discarded.
func (p *Poller) Poll(ctx context.Context) error {
	p.mu.Lock()
	p.issued++
	gen := p.issued
	p.mu.Unlock()

	views, err := p.fetch(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	// Discard if a newer poll was issued while this one was in flight, or
	// if a newer result already landed.
	if gen < p.issued || gen <= p.applied {
		p.mu.Unlock()
		return nil
	}
	p.applied = gen
	p.state = views
	cb := p.onUpdate
	p.mu.Unlock()

	if cb != nil {
		cb(views)
	}
	return nil
}

// Run polls immediately and then on every tick until ctx is canceled.
// Errors are swallowed: a failed poll just means the next tick retries.
func (p *Poller) Run(ctx context.Context) {
	_ = p.Poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = p.Poll(ctx)
		}
	}
}
