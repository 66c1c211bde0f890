package providers

import (
	"context"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

const riddleName = "riddlesapi"

// RiddlesAPI adapts the riddles-api service. The field names have drifted
// between deployments (riddle vs question, answer vs solution), so both
// spellings are accepted.
type RiddlesAPI struct {
	client *clients.Client
}

// NewRiddlesAPI creates a riddle provider.
func NewRiddlesAPI(client *clients.Client) *RiddlesAPI {
	return &RiddlesAPI{client: client}
}

// Name identifies this provider in health reports.
func (p *RiddlesAPI) Name() string { return riddleName }

// FetchRiddle fetches one riddle. Both question and answer must be present.
func (p *RiddlesAPI) FetchRiddle(ctx context.Context) (*domain.Riddle, error) {
	resp, err := p.client.Get(ctx, "/random")
	if err != nil {
		return nil, domain.NewUnavailableError(riddleName, err.Error())
	}

	var payload map[string]any
	if err := decodeJSON(resp, riddleName, &payload); err != nil {
		return nil, err
	}

	question := firstNonEmpty(payload, "riddle", "question")
	answer := firstNonEmpty(payload, "answer", "solution")

	if question == "" || answer == "" {
		return nil, domain.NewBadPayloadError(riddleName, "missing question or answer")
	}

	return &domain.Riddle{Question: question, Answer: answer}, nil
}

// Check reports provider connectivity for the readiness endpoint.
func (p *RiddlesAPI) Check(ctx context.Context) error {
	_, err := p.FetchRiddle(ctx)
	return err
}

// firstNonEmpty returns the first listed key with a non-empty coerced value.
func firstNonEmpty(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := collapseSpace(asString(payload[key])); v != "" {
			return v
		}
	}

	return ""
}
