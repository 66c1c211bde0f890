package providers

import (
	"context"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

const dadJokeName = "icanhazdadjoke"

// DadJoke adapts icanhazdadjoke.com. The upstream only answers in JSON when
// asked to; the wrapped client must carry an "Accept: application/json"
// fixed header or the response is HTML.
type DadJoke struct {
	client *clients.Client
}

// NewDadJoke creates a dad joke provider.
func NewDadJoke(client *clients.Client) *DadJoke {
	return &DadJoke{client: client}
}

// Name identifies this provider in health reports.
func (p *DadJoke) Name() string { return dadJokeName }

// FetchJoke fetches one dad joke.
func (p *DadJoke) FetchJoke(ctx context.Context) (*domain.Joke, error) {
	resp, err := p.client.Get(ctx, "/")
	if err != nil {
		return nil, domain.NewUnavailableError(dadJokeName, err.Error())
	}

	var payload map[string]any
	if err := decodeJSON(resp, dadJokeName, &payload); err != nil {
		return nil, err
	}

	text := collapseSpace(asString(payload["joke"]))
	if text == "" {
		return nil, domain.NewBadPayloadError(dadJokeName, "empty joke text")
	}

	return &domain.Joke{Text: text}, nil
}

// Check reports provider connectivity for the readiness endpoint.
func (p *DadJoke) Check(ctx context.Context) error {
	_, err := p.FetchJoke(ctx)
	return err
}
