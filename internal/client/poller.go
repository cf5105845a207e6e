package client

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval matches the reference client's 500ms refresh timer.
const DefaultInterval = 500 * time.Millisecond

// Poller drives the fetch-and-reconcile loop. Each tick fully refetches the
// live state and the history and hands both to the view; there is no
// diffing, so no drift can accumulate between client and server. Ticks run
// on a single goroutine and never overlap.
type Poller struct {
	client   *Client
	view     View
	interval time.Duration
	log      *zerolog.Logger
}

// NewPoller creates a poller over client and view. A zero interval falls
// back to DefaultInterval.
func NewPoller(c *Client, view View, interval time.Duration, logger *zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		client:   c,
		view:     view,
		interval: interval,
		log:      logger,
	}
}

// Update runs one fetch-and-reconcile cycle immediately, outside the timer.
// Called by the send path so a sender sees their own message without
// waiting out the poll delay.
func (p *Poller) Update(ctx context.Context) error {
	text, speaker, err := p.client.LiveState(ctx)
	if err != nil {
		return fmt.Errorf("fetch live state: %w", err)
	}
	p.view.ShowLive(text, speaker)

	history, err := p.client.History(ctx)
	if err != nil {
		return fmt.Errorf("fetch history: %w", err)
	}
	p.view.ShowHistory(history)

	return nil
}

// Run executes one immediate update and then ticks until ctx is cancelled.
// Tick failures are logged and swallowed; the view simply stays stale until
// the next tick succeeds. There is no early retry.
func (p *Poller) Run(ctx context.Context) {
	if err := p.Update(ctx); err != nil {
		p.log.Warn().Err(err).Msg("initial update failed")
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Debug().Msg("poller stopped")
			return
		case <-ticker.C:
			if err := p.Update(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				p.log.Warn().Err(err).Msg("poll tick failed")
			}
		}
	}
}
