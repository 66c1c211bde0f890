package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

func TestFallbackSong_TopicMatching(t *testing.T) {
	f := NewFallback()

	tests := []struct {
		name  string
		query string
		pool  string
	}{
		{name: "exact topic", query: "stormzy", pool: "stormzy"},
		{name: "topic as substring", query: "something like adele please", pool: "adele"},
		{name: "uppercase query is lowercased", query: "STORMZY", pool: "stormzy"},
		{name: "multi word topic", query: "play lucas graham", pool: "lucas graham"},
		{name: "gospel", query: "gospel worship", pool: "gospel"},
		{name: "no match uses default pool", query: "heavy metal", pool: "default"},
		{name: "empty query uses default pool", query: "", pool: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			song := f.Song(tt.query)

			require.NotEmpty(t, song.Artist)
			require.NotEmpty(t, song.Title)
			assert.Contains(t, fallbackSongs[tt.pool], song)
		})
	}
}

func TestFallbackJoke_EveryKindHasCandidates(t *testing.T) {
	f := NewFallback()

	for _, kind := range []domain.JokeKind{domain.KindDad, domain.KindFunny, domain.KindNerdy, domain.KindHR} {
		joke := f.Joke(kind)
		assert.NotEmpty(t, joke.Text, "kind %s", kind)
		assert.Contains(t, fallbackJokes[kind], joke)
	}
}

func TestFallbackJoke_UnknownKindUsesDadPool(t *testing.T) {
	f := NewFallback()

	joke := f.Joke(domain.JokeKind("limerick"))

	assert.Contains(t, fallbackJokes[domain.KindDad], joke)
}

func TestFallbackJoke_RiddleKindUsesDadPool(t *testing.T) {
	// Riddle has its own shape and its own pool; the joke-shaped pools do
	// not include it.
	f := NewFallback()

	joke := f.Joke(domain.KindRiddle)

	assert.Contains(t, fallbackJokes[domain.KindDad], joke)
}

func TestFallback_NeverEmpty(t *testing.T) {
	f := NewFallback()

	assert.NotEmpty(t, f.Quote().Text)
	assert.NotEmpty(t, f.Quotes())

	verse := f.Verse()
	assert.NotEmpty(t, verse.Reference)
	assert.NotEmpty(t, verse.Text)

	riddle := f.Riddle()
	assert.NotEmpty(t, riddle.Question)
	assert.NotEmpty(t, riddle.Answer)
}
