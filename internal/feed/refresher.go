package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RefresherConfig holds background refresh settings.
type RefresherConfig struct {
	Interval time.Duration // Refresh interval (default: 1m)
	Order    SortOrder     // Order passed to Fetch
}

// DefaultRefresherConfig returns sensible defaults.
func DefaultRefresherConfig() RefresherConfig {
	return RefresherConfig{
		Interval: time.Minute,
		Order:    SortAscending,
	}
}

// Refresher periodically refreshes a Feed in the background so views stay
// current without blocking on the network.
type Refresher struct {
	cfg    RefresherConfig
	feed   *Feed
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefresher creates a Refresher for the given feed.
func NewRefresher(cfg RefresherConfig, feed *Feed, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultRefresherConfig().Interval
	}
	return &Refresher{
		cfg:    cfg,
		feed:   feed,
		logger: logger,
	}
}

// Start begins the refresh loop. An immediate refresh runs before the
// first tick.
func (r *Refresher) Start(ctx context.Context) error {
	r.ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go r.run()

	r.logger.Info("feed refresher started", "interval", r.cfg.Interval)
	return nil
}

// Stop gracefully shuts down the refresher.
func (r *Refresher) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("feed refresher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Refresher) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	r.refresh()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.refresh()
		}
	}
}

func (r *Refresher) refresh() {
	if _, err := r.feed.Fetch(r.ctx, r.cfg.Order); err != nil {
		r.logger.Warn("background refresh failed", "err", err)
	}
}
