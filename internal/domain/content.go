// Package domain contains core business entities and rules.
package domain

import "strings"

// Quote is a short piece of encouraging text with an optional attribution.
// Content is always non-empty and whitespace-normalized; an empty Author
// means the source did not attribute the quote.
type Quote struct {
	// Text is the quote body.
	Text string `json:"text"`

	// Author is who said or wrote the quote, if known.
	Author string `json:"author,omitempty"`
}

// Verse is a scripture passage resolved from a lookup reference.
type Verse struct {
	// Reference is the canonical "Book Chapter:Verse" form when the
	// provider supplies structured fields, otherwise the caller's input.
	Reference string `json:"reference"`

	// Text is the passage body with whitespace collapsed.
	Text string `json:"text"`
}

// Song is a listening suggestion. Both fields are required; a result with
// either field empty is rejected before it reaches this type.
type Song struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

// Joke is a single-line joke.
type Joke struct {
	Text string `json:"text"`
}

// Riddle is a question/answer pair. It is a distinct shape from Joke and
// is selected by the riddle joke type.
type Riddle struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// JokeKind selects which upstream joke provider is consulted.
type JokeKind string

// Supported joke kinds. Anything else is handled as KindDad.
const (
	KindDad    JokeKind = "dad"
	KindFunny  JokeKind = "funny"
	KindNerdy  JokeKind = "nerdy"
	KindHR     JokeKind = "hr"
	KindRiddle JokeKind = "riddle"
)

// NormalizeJokeKind lowercases the input and maps unknown values to KindDad.
func NormalizeJokeKind(s string) JokeKind {
	switch k := JokeKind(strings.ToLower(s)); k {
	case KindDad, KindFunny, KindNerdy, KindHR, KindRiddle:
		return k
	default:
		return KindDad
	}
}
