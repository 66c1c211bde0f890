// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Every provider port follows the same failure contract: on timeout,
// non-success status, or unusable payload the adapter returns a domain
// provider-failure error (never a partial result), so the fallback chain can
// treat all providers identically. Adapters never retry; substituting
// fallback content is the application layer's job.
package ports

import (
	"context"

	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

// QuoteProvider fetches a single fresh quote from one upstream source.
type QuoteProvider interface {
	// FetchQuote returns a whitespace-normalized quote with non-empty text.
	FetchQuote(ctx context.Context) (*domain.Quote, error)
}

// QuoteListProvider fetches a bulk quote collection in one call.
type QuoteListProvider interface {
	// FetchQuoteList returns the raw list with malformed entries removed.
	// An empty filtered list is a provider failure.
	FetchQuoteList(ctx context.Context) ([]domain.Quote, error)
}

// VerseProvider resolves a scripture reference to a passage.
type VerseProvider interface {
	// FetchVerse looks up ref (e.g. "Psalm 34:18"). The returned Reference
	// is the provider's canonical form when available, else ref itself.
	FetchVerse(ctx context.Context, ref string) (*domain.Verse, error)
}

// SongProvider turns a free-text query into one song suggestion.
type SongProvider interface {
	// FetchSong searches for query and picks one candidate at random from
	// the result set. Results missing artist or title are rejected.
	FetchSong(ctx context.Context, query string) (*domain.Song, error)
}

// JokeProvider fetches a single-line joke of one fixed kind.
type JokeProvider interface {
	// FetchJoke returns a joke with non-empty text.
	FetchJoke(ctx context.Context) (*domain.Joke, error)
}

// RiddleProvider fetches a question/answer riddle.
type RiddleProvider interface {
	// FetchRiddle returns a riddle with non-empty question and answer.
	FetchRiddle(ctx context.Context) (*domain.Riddle, error)
}
