package app

import (
	"context"
	"log/slog"

	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

// attempt is one provider try in an ordered fallback chain.
type attempt[T any] func(ctx context.Context) (T, error)

// chain runs the attempts in order and returns the first success. When every
// attempt fails it returns the supplier's static selection; the supplier
// cannot fail, so neither can the chain. Per-kind use cases only declare
// their attempt order and supplier.
func chain[T any](ctx context.Context, logger *slog.Logger, kind string, supplier func() T, attempts ...attempt[T]) T {
	for i, try := range attempts {
		result, err := try(ctx)
		if err == nil {
			return result
		}

		// Expected provider failures log at warn; anything outside the
		// provider error vocabulary is a bug worth surfacing.
		logFn := logger.WarnContext
		if !domain.IsProviderFailure(err) {
			logFn = logger.ErrorContext
		}

		logFn(ctx, "provider attempt failed",
			slog.String("kind", kind),
			slog.String("cause", failureCause(err)),
			slog.Int("attempt", i+1),
			slog.Int("attempts", len(attempts)),
			slog.Any("error", err),
		)
	}

	logger.InfoContext(ctx, "serving fallback content", slog.String("kind", kind))

	return supplier()
}

// failureCause classifies a provider error for the failure log.
func failureCause(err error) string {
	switch {
	case domain.IsUnavailable(err):
		return "unavailable"
	case domain.IsBadPayload(err):
		return "bad_payload"
	default:
		return "unexpected"
	}
}
