// Package app contains application services that orchestrate use cases.
// This is where the gateway's availability policy lives: every content
// operation is an ordered chain of provider attempts terminated by the
// static fallback supplier, so content use cases always succeed.
package app

import (
	"context"
	"log/slog"

	"github.com/uplift-labs/cheer-gateway/internal/domain"
	"github.com/uplift-labs/cheer-gateway/internal/ports"
)

// CheerService orchestrates the content use cases. It depends on port
// interfaces, not concrete implementations, following the Dependency
// Inversion Principle.
type CheerService struct {
	quoteProviders []ports.QuoteProvider
	listProvider   ports.QuoteListProvider
	verseProvider  ports.VerseProvider
	songProvider   ports.SongProvider
	jokeProviders  map[domain.JokeKind]ports.JokeProvider
	riddleProvider ports.RiddleProvider
	fallback       *Fallback
	logger         *slog.Logger

	quoteList listCache
}

// CheerServiceConfig contains the dependencies for the cheer service.
type CheerServiceConfig struct {
	// QuoteProviders are tried in order for a single fresh quote.
	QuoteProviders []ports.QuoteProvider

	// ListProvider is the bulk quote source, consulted at most once per
	// process lifetime.
	ListProvider ports.QuoteListProvider

	// VerseProvider resolves scripture references.
	VerseProvider ports.VerseProvider

	// SongProvider searches for song suggestions.
	SongProvider ports.SongProvider

	// JokeProviders maps each single-line joke kind to its upstream.
	JokeProviders map[domain.JokeKind]ports.JokeProvider

	// RiddleProvider is the question/answer upstream.
	RiddleProvider ports.RiddleProvider

	// Fallback supplies static content. Defaults to NewFallback() if nil.
	Fallback *Fallback

	// Logger is the structured logger. Defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// NewCheerService creates a new cheer service with the provided dependencies.
func NewCheerService(cfg CheerServiceConfig) *CheerService {
	fallback := cfg.Fallback
	if fallback == nil {
		fallback = NewFallback()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CheerService{
		quoteProviders: cfg.QuoteProviders,
		listProvider:   cfg.ListProvider,
		verseProvider:  cfg.VerseProvider,
		songProvider:   cfg.SongProvider,
		jokeProviders:  cfg.JokeProviders,
		riddleProvider: cfg.RiddleProvider,
		fallback:       fallback,
		logger:         logger,
	}
}

// GetQuote returns one fresh quote, trying each configured provider in order
// before falling back to the curated pool.
func (s *CheerService) GetQuote(ctx context.Context) domain.Quote {
	attempts := make([]attempt[domain.Quote], 0, len(s.quoteProviders))
	for _, p := range s.quoteProviders {
		attempts = append(attempts, func(ctx context.Context) (domain.Quote, error) {
			quote, err := p.FetchQuote(ctx)
			if err != nil {
				return domain.Quote{}, err
			}

			return *quote, nil
		})
	}

	return chain(ctx, s.logger, "quote", s.fallback.Quote, attempts...)
}

// GetQuoteList returns the bulk quote list, fetched from the upstream source
// at most once per process and memoized thereafter.
func (s *CheerService) GetQuoteList(ctx context.Context) []domain.Quote {
	return s.quoteList.get(ctx, s.logger, s.listProvider.FetchQuoteList, s.fallback.Quotes)
}

// GetVerse resolves a scripture reference, falling back to a curated verse
// when the provider fails.
func (s *CheerService) GetVerse(ctx context.Context, ref string) domain.Verse {
	return chain(ctx, s.logger, "verse", s.fallback.Verse,
		func(ctx context.Context) (domain.Verse, error) {
			verse, err := s.verseProvider.FetchVerse(ctx, ref)
			if err != nil {
				return domain.Verse{}, err
			}

			return *verse, nil
		},
	)
}

// GetSong returns one song suggestion for the query. The fallback selection
// reuses the original query so topic-matched pools stay relevant.
func (s *CheerService) GetSong(ctx context.Context, query string) domain.Song {
	return chain(ctx, s.logger, "song",
		func() domain.Song { return s.fallback.Song(query) },
		func(ctx context.Context) (domain.Song, error) {
			song, err := s.songProvider.FetchSong(ctx, query)
			if err != nil {
				return domain.Song{}, err
			}

			return *song, nil
		},
	)
}

// GetJoke returns one single-line joke of the given kind. Kinds without a
// configured provider go straight to the fallback pool.
func (s *CheerService) GetJoke(ctx context.Context, kind domain.JokeKind) domain.Joke {
	supplier := func() domain.Joke { return s.fallback.Joke(kind) }

	provider, ok := s.jokeProviders[kind]
	if !ok {
		return supplier()
	}

	return chain(ctx, s.logger, "joke:"+string(kind), supplier,
		func(ctx context.Context) (domain.Joke, error) {
			joke, err := provider.FetchJoke(ctx)
			if err != nil {
				return domain.Joke{}, err
			}

			return *joke, nil
		},
	)
}

// GetRiddle returns one riddle.
func (s *CheerService) GetRiddle(ctx context.Context) domain.Riddle {
	return chain(ctx, s.logger, "riddle", s.fallback.Riddle,
		func(ctx context.Context) (domain.Riddle, error) {
			riddle, err := s.riddleProvider.FetchRiddle(ctx)
			if err != nil {
				return domain.Riddle{}, err
			}

			return *riddle, nil
		},
	)
}
