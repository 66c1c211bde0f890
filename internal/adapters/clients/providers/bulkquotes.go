package providers

import (
	"context"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

const bulkQuotesName = "typefit"

// TypeFit adapts the type.fit bulk quote endpoint. One call returns the
// entire collection, which the application layer memoizes for the process
// lifetime.
type TypeFit struct {
	client *clients.Client
}

// NewTypeFit creates a type.fit bulk quote provider.
func NewTypeFit(client *clients.Client) *TypeFit {
	return &TypeFit{client: client}
}

// Name identifies this provider in health reports.
func (p *TypeFit) Name() string { return bulkQuotesName }

// FetchQuoteList fetches the full quote collection, dropping entries with
// empty text. An empty filtered list is a failure, callers must never cache
// a useless result.
func (p *TypeFit) FetchQuoteList(ctx context.Context) ([]domain.Quote, error) {
	resp, err := p.client.Get(ctx, "/api/quotes")
	if err != nil {
		return nil, domain.NewUnavailableError(bulkQuotesName, err.Error())
	}

	var payload []map[string]any
	if err := decodeJSON(resp, bulkQuotesName, &payload); err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, 0, len(payload))
	for _, entry := range payload {
		text := collapseSpace(asString(entry["text"]))
		if text == "" {
			continue
		}

		quotes = append(quotes, domain.Quote{
			Text:   text,
			Author: collapseSpace(asString(entry["author"])),
		})
	}

	if len(quotes) == 0 {
		return nil, domain.NewBadPayloadError(bulkQuotesName, "no usable quotes in list")
	}

	return quotes, nil
}

// Check reports provider connectivity for the readiness endpoint.
func (p *TypeFit) Check(ctx context.Context) error {
	_, err := p.FetchQuoteList(ctx)
	return err
}
