package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

const adviceName = "adviceslip"

// AdviceSlip adapts the Advice Slip API into a quote provider. The upstream
// serves one short piece of advice per call with no attribution.
type AdviceSlip struct {
	client *clients.Client
	now    func() time.Time
}

// NewAdviceSlip creates an Advice Slip quote provider.
func NewAdviceSlip(client *clients.Client) *AdviceSlip {
	return &AdviceSlip{client: client, now: time.Now}
}

// Name identifies this provider in health reports.
func (p *AdviceSlip) Name() string { return adviceName }

// FetchQuote fetches one piece of advice as an unattributed quote.
// The ts parameter defeats the upstream's aggressive response caching,
// without it every call returns the same slip for minutes at a time.
func (p *AdviceSlip) FetchQuote(ctx context.Context) (*domain.Quote, error) {
	resp, err := p.client.Get(ctx, fmt.Sprintf("/advice?ts=%d", p.now().UnixMilli()))
	if err != nil {
		return nil, domain.NewUnavailableError(adviceName, err.Error())
	}

	var payload struct {
		Slip map[string]any `json:"slip"`
	}
	if err := decodeJSON(resp, adviceName, &payload); err != nil {
		return nil, err
	}

	text := collapseSpace(asString(payload.Slip["advice"]))
	if text == "" {
		return nil, domain.NewBadPayloadError(adviceName, "empty advice text")
	}

	return &domain.Quote{Text: text}, nil
}

// Check reports provider connectivity for the readiness endpoint.
func (p *AdviceSlip) Check(ctx context.Context) error {
	_, err := p.FetchQuote(ctx)
	return err
}
