package providers

import (
	"context"
	"strings"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

const funnyJokeName = "officialjoke"

// OfficialJoke adapts the Official Joke API, which delivers jokes as a
// setup/punchline pair. The two parts are joined into one line.
type OfficialJoke struct {
	client *clients.Client
}

// NewOfficialJoke creates a setup/punchline joke provider.
func NewOfficialJoke(client *clients.Client) *OfficialJoke {
	return &OfficialJoke{client: client}
}

// Name identifies this provider in health reports.
func (p *OfficialJoke) Name() string { return funnyJokeName }

// FetchJoke fetches one joke and joins setup and punchline with a space.
// Either part alone is still a usable joke; both empty is a failure.
func (p *OfficialJoke) FetchJoke(ctx context.Context) (*domain.Joke, error) {
	resp, err := p.client.Get(ctx, "/jokes/random")
	if err != nil {
		return nil, domain.NewUnavailableError(funnyJokeName, err.Error())
	}

	var payload map[string]any
	if err := decodeJSON(resp, funnyJokeName, &payload); err != nil {
		return nil, err
	}

	parts := make([]string, 0, 2)
	for _, key := range []string{"setup", "punchline"} {
		if part := collapseSpace(asString(payload[key])); part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return nil, domain.NewBadPayloadError(funnyJokeName, "empty setup and punchline")
	}

	return &domain.Joke{Text: strings.Join(parts, " ")}, nil
}

// Check reports provider connectivity for the readiness endpoint.
func (p *OfficialJoke) Check(ctx context.Context) error {
	_, err := p.FetchJoke(ctx)
	return err
}
