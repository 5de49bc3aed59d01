package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/strata/internal/state"
	"github.com/five82/strata/internal/welldata"
)

const (
	defaultPollInterval = 10 * time.Second
	maxBackoff          = 30 * time.Second
)

// Poller keeps the store's chart data fresh. Curves are fetched for the
// whole well so panning and zooming never wait on the network.
type Poller struct {
	store    *state.Store
	fetcher  welldata.Fetcher
	workarea string
	well     string
	interval time.Duration
	kick     chan struct{}
}

// NewPoller prepares a poller for one well. interval <= 0 uses the default.
func NewPoller(store *state.Store, fetcher welldata.Fetcher, workarea, well string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{
		store:    store,
		fetcher:  fetcher,
		workarea: workarea,
		well:     well,
		interval: interval,
		kick:     make(chan struct{}, 1),
	}
}

// Start launches the background refresh loop. It returns immediately.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		for {
			_ = p.Refresh(ctx)

			wait := calculateBackoff(p.store.Snapshot().ConsecutiveFailures, p.interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			case <-p.kick:
				timer.Stop()
			}
		}
	}()
}

// Kick asks the loop to refresh now. Kicks while one is pending coalesce.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Refresh fetches the curves the current layout references and records
// the outcome in the store.
func (p *Poller) Refresh(ctx context.Context) error {
	snap := p.store.Snapshot()
	curves := snap.Config.CurveNames()
	data, err := p.fetcher.FetchCompositeData(ctx, p.workarea, p.well, curves, welldata.DepthFilter{})
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		p.store.UpdateData(nil, err)
		log.Printf("data poll failed: %v", err)
		return err
	}
	p.store.UpdateData(data, nil)
	return nil
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff. A base above the cap is never shortened.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 || base >= maxBackoff {
		return base
	}
	backoff := base
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
