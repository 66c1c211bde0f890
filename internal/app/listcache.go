package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

// listCache is a write-once memo for the bulk quote list. The first caller
// performs the upstream fetch; every later caller gets the retained result
// for the lifetime of the process. A failed or empty fetch memoizes the
// fallback pool instead, so a known-bad endpoint is never retried.
//
// The mutex makes the first fetch single-flight: concurrent first callers
// would all compute an equivalent result from the same idempotent source,
// but serializing them avoids duplicate upstream calls and keeps the write
// race-free. The fetch is bounded by the provider's timeout, which also
// bounds how long the lock is held.
type listCache struct {
	mu     sync.Mutex
	loaded bool
	quotes []domain.Quote
}

// get returns the memoized list, populating it on first use.
func (c *listCache) get(ctx context.Context, logger *slog.Logger, fetch func(context.Context) ([]domain.Quote, error), fallback func() []domain.Quote) []domain.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.quotes
	}

	quotes, err := fetch(ctx)
	if err != nil || len(quotes) == 0 {
		logger.WarnContext(ctx, "bulk quote fetch failed, memoizing fallback pool",
			slog.Any("error", err),
		)

		quotes = fallback()
	}

	c.quotes = quotes
	c.loaded = true

	logger.InfoContext(ctx, "quote list cached", slog.Int("count", len(quotes)))

	return c.quotes
}
