package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/forezy/forezy-go/internal/api"
	"github.com/forezy/forezy-go/internal/model"
)

// SortOrder controls ordering by resolution time.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// Getter is the slice of the API client the feed needs.
type Getter interface {
	GetMarkets(ctx context.Context) ([]api.APIMarket, error)
}

// Feed caches the filtered market list from the last successful fetch.
// Safe for concurrent use.
type Feed struct {
	client Getter
	logger *slog.Logger
	now    func() time.Time // injectable for tests

	mu      sync.RWMutex
	markets []model.Market // filtered, unsorted
	fetched time.Time      // zero until first successful fetch
}

// Option configures a Feed.
type Option func(*Feed)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Feed) {
		f.logger = logger
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(f *Feed) {
		f.now = now
	}
}

// New creates a Feed backed by the given client.
func New(client Getter, opts ...Option) *Feed {
	f := &Feed{
		client: client,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves markets from the API, retains open ones resolving in the
// future, caches them, and returns the list sorted by resolution time.
// On error the previous cache is left untouched.
func (f *Feed) Fetch(ctx context.Context, order SortOrder) ([]model.Market, error) {
	start := f.now()

	apiMarkets, err := f.client.GetMarkets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch markets: %w", err)
	}

	active := make([]model.Market, 0, len(apiMarkets))
	for _, am := range apiMarkets {
		m := am.ToModel()
		if m.Open(start) {
			active = append(active, m)
		}
	}

	f.mu.Lock()
	f.markets = active
	f.fetched = start
	f.mu.Unlock()

	f.logger.Debug("market feed refreshed",
		"total", len(apiMarkets),
		"active", len(active),
		"duration", f.now().Sub(start),
	)

	return f.Markets(order), nil
}

// Markets returns the cached list in the given order. Pure and
// idempotent: no network, the cache is not modified.
func (f *Feed) Markets(order SortOrder) []model.Market {
	f.mu.RLock()
	out := make([]model.Market, len(f.markets))
	copy(out, f.markets)
	f.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if order == SortDescending {
			return out[i].ResolutionTime.After(out[j].ResolutionTime)
		}
		return out[i].ResolutionTime.Before(out[j].ResolutionTime)
	})

	return out
}

// Market looks up a cached market by id.
func (f *Feed) Market(id string) (model.Market, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, m := range f.markets {
		if m.ID == id {
			return m, true
		}
	}
	return model.Market{}, false
}

// LastFetched returns when the cache was last refreshed successfully,
// zero if never.
func (f *Feed) LastFetched() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fetched
}
