package providers

import (
	"context"
	"fmt"
	"net/url"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

const verseName = "biblelabs"

// BibleLabs adapts the labs.bible.org passage lookup API. A passage query
// returns an array of verse objects; only the first is used.
type BibleLabs struct {
	client *clients.Client
}

// NewBibleLabs creates a scripture verse provider.
func NewBibleLabs(client *clients.Client) *BibleLabs {
	return &BibleLabs{client: client}
}

// Name identifies this provider in health reports.
func (p *BibleLabs) Name() string { return verseName }

// FetchVerse resolves a scripture reference. The returned Reference is
// rebuilt from the provider's bookname/chapter/verse fields when they are
// present, otherwise the requested ref is echoed back. Verse text arrives
// with stray newlines and double spaces, which are collapsed.
func (p *BibleLabs) FetchVerse(ctx context.Context, ref string) (*domain.Verse, error) {
	path := "/api/?passage=" + url.QueryEscape(ref) + "&type=json&formatting=plain"

	resp, err := p.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError(verseName, err.Error())
	}

	var payload []map[string]any
	if err := decodeJSON(resp, verseName, &payload); err != nil {
		return nil, err
	}

	if len(payload) == 0 {
		return nil, domain.NewBadPayloadError(verseName, "no verses for reference")
	}

	first := payload[0]

	text := collapseSpace(asString(first["text"]))
	if text == "" {
		return nil, domain.NewBadPayloadError(verseName, "empty verse text")
	}

	reference := ref

	book := collapseSpace(asString(first["bookname"]))
	chapter := asString(first["chapter"])
	verse := asString(first["verse"])
	if book != "" && chapter != "" && verse != "" {
		reference = fmt.Sprintf("%s %s:%s", book, chapter, verse)
	}

	return &domain.Verse{Reference: reference, Text: text}, nil
}

// Check reports provider connectivity for the readiness endpoint.
func (p *BibleLabs) Check(ctx context.Context) error {
	_, err := p.FetchVerse(ctx, "John 3:16")
	return err
}
