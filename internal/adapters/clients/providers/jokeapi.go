package providers

import (
	"context"
	"math/rand/v2"
	"net/url"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

// hrSearchTerms vary the workplace joke keyword across calls, otherwise the
// upstream serves the same handful of jokes for the category.
var hrSearchTerms = []string{"office", "meeting", "boss", "employee", "interview", "resume"}

// JokeAPI adapts v2.jokeapi.dev, which serves multiple categories from one
// endpoint family. Two configurations are used: the Programming category for
// nerdy jokes, and the Miscellaneous category narrowed by a random workplace
// keyword for HR jokes.
//
// The upstream reports "no matching joke" as {"error": true} with HTTP 200,
// so the error flag is a failure signal in its own right.
type JokeAPI struct {
	client   *clients.Client
	name     string
	category string
	terms    []string
	pick     func(n int) int
}

// NewNerdyJoke creates a programming joke provider backed by jokeapi.
func NewNerdyJoke(client *clients.Client) *JokeAPI {
	return &JokeAPI{
		client:   client,
		name:     "jokeapi-nerdy",
		category: "Programming",
		pick:     rand.IntN,
	}
}

// NewHRJoke creates a workplace joke provider backed by jokeapi. Each call
// searches the Miscellaneous category for a random term from hrSearchTerms.
func NewHRJoke(client *clients.Client) *JokeAPI {
	return &JokeAPI{
		client:   client,
		name:     "jokeapi-hr",
		category: "Miscellaneous",
		terms:    hrSearchTerms,
		pick:     rand.IntN,
	}
}

// Name identifies this provider in health reports.
func (p *JokeAPI) Name() string { return p.name }

// FetchJoke fetches one single-part joke in safe mode.
func (p *JokeAPI) FetchJoke(ctx context.Context) (*domain.Joke, error) {
	path := "/joke/" + p.category + "?type=single&safe-mode"
	if len(p.terms) > 0 {
		path += "&contains=" + url.QueryEscape(p.terms[p.pick(len(p.terms))])
	}

	resp, err := p.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError(p.name, err.Error())
	}

	var payload map[string]any
	if err := decodeJSON(resp, p.name, &payload); err != nil {
		return nil, err
	}

	if flagged, ok := payload["error"].(bool); ok && flagged {
		return nil, domain.NewBadPayloadError(p.name, "provider reported error flag")
	}

	text := collapseSpace(asString(payload["joke"]))
	if text == "" {
		return nil, domain.NewBadPayloadError(p.name, "empty joke text")
	}

	return &domain.Joke{Text: text}, nil
}

// Check reports provider connectivity for the readiness endpoint.
func (p *JokeAPI) Check(ctx context.Context) error {
	_, err := p.FetchJoke(ctx)
	return err
}
