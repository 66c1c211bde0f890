package providers

import (
	"context"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

const quotableName = "quotable"

// quotablePath pins the tag filter and length cap so the upstream only
// serves short, uplifting material.
const quotablePath = "/random?tags=wisdom|inspirational|faith&maxLength=120"

// Quotable adapts the Quotable API into a quote provider. It serves
// attributed quotes filtered to encouraging tags.
type Quotable struct {
	client *clients.Client
}

// NewQuotable creates a Quotable quote provider.
func NewQuotable(client *clients.Client) *Quotable {
	return &Quotable{client: client}
}

// Name identifies this provider in health reports.
func (p *Quotable) Name() string { return quotableName }

// FetchQuote fetches one attributed quote. A missing author is fine; a
// missing text is a failure.
func (p *Quotable) FetchQuote(ctx context.Context) (*domain.Quote, error) {
	resp, err := p.client.Get(ctx, quotablePath)
	if err != nil {
		return nil, domain.NewUnavailableError(quotableName, err.Error())
	}

	var payload map[string]any
	if err := decodeJSON(resp, quotableName, &payload); err != nil {
		return nil, err
	}

	text := collapseSpace(asString(payload["content"]))
	if text == "" {
		return nil, domain.NewBadPayloadError(quotableName, "empty quote content")
	}

	return &domain.Quote{
		Text:   text,
		Author: collapseSpace(asString(payload["author"])),
	}, nil
}

// Check reports provider connectivity for the readiness endpoint.
func (p *Quotable) Check(ctx context.Context) error {
	_, err := p.FetchQuote(ctx)
	return err
}
