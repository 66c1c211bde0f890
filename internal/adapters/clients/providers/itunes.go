package providers

import (
	"context"
	"math/rand/v2"
	"net/url"
	"strconv"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

const songName = "itunes"

// songSearchLimit bounds the candidate pool for the random pick.
const songSearchLimit = 25

// ITunes adapts the iTunes Search API into a song provider. A search
// returns up to songSearchLimit candidates and one is picked at random, so
// repeated calls with the same query vary.
type ITunes struct {
	client *clients.Client
	pick   func(n int) int
}

// NewITunes creates an iTunes song provider.
func NewITunes(client *clients.Client) *ITunes {
	return &ITunes{client: client, pick: rand.IntN}
}

// Name identifies this provider in health reports.
func (p *ITunes) Name() string { return songName }

// FetchSong searches for query and returns one random candidate. A pick
// missing either artist or title is a failure rather than a partial result.
func (p *ITunes) FetchSong(ctx context.Context, query string) (*domain.Song, error) {
	path := "/search?term=" + url.QueryEscape(query) + "&entity=song&limit=" + strconv.Itoa(songSearchLimit)

	resp, err := p.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError(songName, err.Error())
	}

	var payload struct {
		Results []map[string]any `json:"results"`
	}
	if err := decodeJSON(resp, songName, &payload); err != nil {
		return nil, err
	}

	if len(payload.Results) == 0 {
		return nil, domain.NewBadPayloadError(songName, "no search results")
	}

	choice := payload.Results[p.pick(len(payload.Results))]

	artist := collapseSpace(asString(choice["artistName"]))
	title := collapseSpace(asString(choice["trackName"]))
	if artist == "" || title == "" {
		return nil, domain.NewBadPayloadError(songName, "result missing artist or title")
	}

	return &domain.Song{Artist: artist, Title: title}, nil
}

// Check reports provider connectivity for the readiness endpoint.
func (p *ITunes) Check(ctx context.Context) error {
	_, err := p.FetchSong(ctx, "gospel")
	return err
}
