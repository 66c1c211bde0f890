package app

import (
	"math/rand/v2"
	"strings"

	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

// Fallback supplies curated static content when every provider attempt for a
// content kind has failed. The tables are fixed at process start and never
// mutated, and every kind has at least one candidate, so the supplier cannot
// fail. Selection is uniformly random among the eligible candidates.
type Fallback struct{}

// NewFallback creates the static fallback supplier.
func NewFallback() *Fallback {
	return &Fallback{}
}

var fallbackQuotes = []domain.Quote{
	{Text: "You are allowed to be soft today."},
	{Text: "One small step is still a step."},
	{Text: "Breathe. You are safe."},
	{Text: "You are loved, loudly and daily."},
	{Text: "Rest is still love."},
}

var fallbackJokes = map[domain.JokeKind][]domain.Joke{
	domain.KindDad: {
		{Text: "I'm reading a book about anti-gravity. It's impossible to put down."},
		{Text: "Why don't eggs tell jokes? They'd crack each other up."},
		{Text: "I used to play piano by ear, but now I use my hands."},
	},
	domain.KindFunny: {
		{Text: "I told my computer I needed a break. It said, \"No problem, I'll go to sleep.\""},
		{Text: "Why did the scarecrow win an award? Because he was outstanding in his field."},
		{Text: "I tried to catch fog yesterday. Mist."},
	},
	domain.KindNerdy: {
		{Text: "There are 10 kinds of people: those who understand binary and those who don't."},
		{Text: "A SQL query walks into a bar and asks, \"Can I join you?\""},
		{Text: "I would tell you a UDP joke, but you might not get it."},
	},
	domain.KindHR: {
		{Text: "HR rule #1: If you didn't document it, it didn't happen."},
		{Text: "Out-of-office message: I'm currently avoiding meetings and thriving."},
		{Text: "Performance review: exceeds expectations in snack consumption."},
	},
}

var fallbackRiddles = []domain.Riddle{
	{Question: "What has a heart that doesn't beat?", Answer: "An artichoke."},
	{Question: "What gets wetter the more it dries?", Answer: "A towel."},
	{Question: "What has keys but can't open locks?", Answer: "A piano."},
}

var fallbackVerses = []domain.Verse{
	{Reference: "Psalm 34:18", Text: "The Lord is near to the brokenhearted and saves the crushed in spirit."},
	{Reference: "Isaiah 41:10", Text: "Fear not, for I am with you; be not dismayed, for I am your God."},
	{Reference: "Zephaniah 3:17", Text: "The Lord your God is in your midst, a mighty one who will save; he will rejoice over you with gladness."},
	{Reference: "Matthew 11:28", Text: "Come to me, all who labor and are heavy laden, and I will give you rest."},
}

// songTopics orders the topic keywords checked against the caller's query.
// Matching is a case-insensitive substring test on the lowercased query;
// the first matching topic wins.
var songTopics = []string{"adele", "stormzy", "raye", "lucas graham", "gospel", "worship"}

var fallbackSongs = map[string][]domain.Song{
	"adele": {
		{Artist: "Adele", Title: "Easy On Me"},
		{Artist: "Adele", Title: "Hello"},
		{Artist: "Adele", Title: "Hold On"},
	},
	"stormzy": {
		{Artist: "Stormzy", Title: "Blinded By Your Grace, Pt. 2"},
		{Artist: "Stormzy", Title: "Big For Your Boots"},
		{Artist: "Stormzy", Title: "Hide & Seek"},
	},
	"raye": {
		{Artist: "RAYE", Title: "Escapism."},
		{Artist: "RAYE", Title: "Oscar Winning Tears."},
	},
	"lucas graham": {
		{Artist: "Lucas Graham", Title: "7 Years"},
		{Artist: "Lucas Graham", Title: "Love Someone"},
	},
	"gospel": {
		{Artist: "Kirk Franklin", Title: "I Smile"},
		{Artist: "Maverick City Music", Title: "Jireh"},
		{Artist: "Tasha Cobbs Leonard", Title: "Break Every Chain"},
	},
	"worship": {
		{Artist: "Hillsong United", Title: "Oceans (Where Feet May Fail)"},
		{Artist: "Elevation Worship", Title: "Do It Again"},
	},
	"default": {
		{Artist: "Adele", Title: "Easy On Me"},
		{Artist: "Stormzy", Title: "Blinded By Your Grace, Pt. 2"},
		{Artist: "Lucas Graham", Title: "7 Years"},
	},
}

// pickRandom selects one element uniformly at random.
func pickRandom[T any](items []T) T {
	return items[rand.IntN(len(items))] //nolint:gosec // content selection, not security
}

// Quote returns one curated quote.
func (f *Fallback) Quote() domain.Quote {
	return pickRandom(fallbackQuotes)
}

// Quotes returns the full curated quote pool, used when the bulk list
// provider is down. Callers must not mutate the returned slice.
func (f *Fallback) Quotes() []domain.Quote {
	return fallbackQuotes
}

// Verse returns one curated verse. The caller's lookup reference is not
// consulted: the gateway cannot resolve arbitrary references locally, so the
// pool entries carry their own references.
func (f *Fallback) Verse() domain.Verse {
	return pickRandom(fallbackVerses)
}

// Song returns a curated song matching the query's topic. Topic keywords are
// matched as lowercase substrings of the query; with no match the default
// pool is used.
func (f *Fallback) Song(query string) domain.Song {
	q := strings.ToLower(query)
	for _, topic := range songTopics {
		if strings.Contains(q, topic) {
			return pickRandom(fallbackSongs[topic])
		}
	}

	return pickRandom(fallbackSongs["default"])
}

// Joke returns one curated joke of the given kind. Kinds without their own
// pool (including riddle, which has a different shape) draw from the dad pool.
func (f *Fallback) Joke(kind domain.JokeKind) domain.Joke {
	if pool, ok := fallbackJokes[kind]; ok {
		return pickRandom(pool)
	}

	return pickRandom(fallbackJokes[domain.KindDad])
}

// Riddle returns one curated riddle.
func (f *Fallback) Riddle() domain.Riddle {
	return pickRandom(fallbackRiddles)
}
