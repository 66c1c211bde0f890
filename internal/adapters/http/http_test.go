package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/http/handlers"
	"github.com/uplift-labs/cheer-gateway/internal/app"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
	"github.com/uplift-labs/cheer-gateway/internal/platform/config"
	"github.com/uplift-labs/cheer-gateway/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Stub providers for driving the service through the full router.

type stubQuoteProvider struct {
	quote *domain.Quote
	err   error
}

func (s stubQuoteProvider) FetchQuote(context.Context) (*domain.Quote, error) {
	return s.quote, s.err
}

type stubListProvider struct {
	quotes []domain.Quote
	err    error
	calls  int
}

func (s *stubListProvider) FetchQuoteList(context.Context) ([]domain.Quote, error) {
	s.calls++
	return s.quotes, s.err
}

type stubVerseProvider struct {
	gotRef string
	verse  *domain.Verse
	err    error
}

func (s *stubVerseProvider) FetchVerse(_ context.Context, ref string) (*domain.Verse, error) {
	s.gotRef = ref
	return s.verse, s.err
}

type stubSongProvider struct {
	gotQuery string
	song     *domain.Song
	err      error
}

func (s *stubSongProvider) FetchSong(_ context.Context, query string) (*domain.Song, error) {
	s.gotQuery = query
	return s.song, s.err
}

type stubJokeProvider struct {
	joke *domain.Joke
	err  error
}

func (s stubJokeProvider) FetchJoke(context.Context) (*domain.Joke, error) {
	return s.joke, s.err
}

type stubRiddleProvider struct {
	riddle *domain.Riddle
	err    error
}

func (s stubRiddleProvider) FetchRiddle(context.Context) (*domain.Riddle, error) {
	return s.riddle, s.err
}

// gatewayStubs collects one stub per port so tests can override just the
// providers they exercise.
type gatewayStubs struct {
	quote  stubQuoteProvider
	list   *stubListProvider
	verse  *stubVerseProvider
	song   *stubSongProvider
	joke   stubJokeProvider
	riddle stubRiddleProvider
}

func defaultStubs() *gatewayStubs {
	return &gatewayStubs{
		quote:  stubQuoteProvider{quote: &domain.Quote{Text: "stub quote", Author: "Stub"}},
		list:   &stubListProvider{quotes: []domain.Quote{{Text: "one"}, {Text: "two"}}},
		verse:  &stubVerseProvider{verse: &domain.Verse{Reference: "Psalms 34:18", Text: "stub verse"}},
		song:   &stubSongProvider{song: &domain.Song{Artist: "Stub Artist", Title: "Stub Title"}},
		joke:   stubJokeProvider{joke: &domain.Joke{Text: "stub joke"}},
		riddle: stubRiddleProvider{riddle: &domain.Riddle{Question: "stub q", Answer: "stub a"}},
	}
}

// newTestEngine wires the stubs through a real CheerService and the full
// middleware chain, mirroring production setup.
func newTestEngine(t *testing.T, stubs *gatewayStubs) *gin.Engine {
	t.Helper()

	service := app.NewCheerService(app.CheerServiceConfig{
		QuoteProviders: []ports.QuoteProvider{stubs.quote},
		ListProvider:   stubs.list,
		VerseProvider:  stubs.verse,
		SongProvider:   stubs.song,
		JokeProviders: map[domain.JokeKind]ports.JokeProvider{
			domain.KindDad: stubs.joke,
		},
		RiddleProvider: stubs.riddle,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		AppConfig:     &config.AppConfig{Name: "cheer-gateway", Environment: "test", Version: "0.0.0"},
		CheerHandler:  handlers.NewCheerHandler(service),
		HealthHandler: handlers.NewHealthHandler(nil, handlers.BuildInfo{Version: "0.0.0"}),
		Timeout:       DefaultRequestTimeout,
	})

	return engine
}

func doRequest(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouter_HealthContract(t *testing.T) {
	engine := newTestEngine(t, defaultStubs())

	for _, path := range []string{"/", "/health"} {
		w := doRequest(engine, http.MethodGet, path)

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String(), path)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json", path)
	}
}

func TestRouter_CORSHeadersOnEveryResponse(t *testing.T) {
	engine := newTestEngine(t, defaultStubs())

	for _, path := range []string{"/", "/quote", "/no-such-path"} {
		w := doRequest(engine, http.MethodGet, path)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"), path)
		assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"), path)
	}
}

func TestRouter_PreflightAnyPath(t *testing.T) {
	engine := newTestEngine(t, defaultStubs())

	// Preflight succeeds even for paths that do not route.
	for _, path := range []string{"/quote", "/joke", "/no-such-path"} {
		w := doRequest(engine, http.MethodOptions, path)

		assert.Equal(t, http.StatusNoContent, w.Code, path)
		assert.Empty(t, w.Body.String(), path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	engine := newTestEngine(t, defaultStubs())

	w := doRequest(engine, http.MethodGet, "/unknown")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	engine := newTestEngine(t, defaultStubs())

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		w := doRequest(engine, method, "/quote")

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String(), method)
	}
}

func TestRouter_TrailingSlashesStripped(t *testing.T) {
	engine := newTestEngine(t, defaultStubs())

	for _, path := range []string{"/quote/", "/quote///"} {
		w := doRequest(engine, http.MethodGet, path)

		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"text":"stub quote","author":"Stub"}`, w.Body.String(), path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"), path)
	}

	w := doRequest(engine, http.MethodGet, "/health///")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	// Non-GET on a slashed known path still lands on the 405 contract.
	w = doRequest(engine, http.MethodPost, "/quote/")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())

	// Unknown paths stay 404 whether slashed or not.
	w = doRequest(engine, http.MethodGet, "/unknown/")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestRouter_QuoteFromProvider(t *testing.T) {
	engine := newTestEngine(t, defaultStubs())

	w := doRequest(engine, http.MethodGet, "/quote")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text":"stub quote","author":"Stub"}`, w.Body.String())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestRouter_QuoteFallsBackOnProviderFailure(t *testing.T) {
	stubs := defaultStubs()
	stubs.quote = stubQuoteProvider{err: domain.NewUnavailableError("adviceslip", "timeout")}
	engine := newTestEngine(t, stubs)

	w := doRequest(engine, http.MethodGet, "/quote")

	require.Equal(t, http.StatusOK, w.Code, "provider failure must not surface")

	var quote domain.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.NotEmpty(t, quote.Text)
}

func TestRouter_QuoteListFetchedOnce(t *testing.T) {
	stubs := defaultStubs()
	engine := newTestEngine(t, stubs)

	first := doRequest(engine, http.MethodGet, "/quote/list")
	second := doRequest(engine, http.MethodGet, "/quote/list")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, stubs.list.calls, "bulk list is memoized per process")
}

func TestRouter_VerseDefaultReference(t *testing.T) {
	stubs := defaultStubs()
	engine := newTestEngine(t, stubs)

	w := doRequest(engine, http.MethodGet, "/verse")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Psalm 34:18", stubs.verse.gotRef)
	assert.JSONEq(t, `{"reference":"Psalms 34:18","text":"stub verse"}`, w.Body.String())
}

func TestRouter_VerseExplicitReference(t *testing.T) {
	stubs := defaultStubs()
	engine := newTestEngine(t, stubs)

	doRequest(engine, http.MethodGet, "/verse?ref=John+3%3A16")

	assert.Equal(t, "John 3:16", stubs.verse.gotRef)
}

func TestRouter_SongDefaultQuery(t *testing.T) {
	stubs := defaultStubs()
	engine := newTestEngine(t, stubs)

	w := doRequest(engine, http.MethodGet, "/song")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gospel worship", stubs.song.gotQuery)
	assert.JSONEq(t, `{"artist":"Stub Artist","title":"Stub Title"}`, w.Body.String())
}

func TestRouter_JokeDefaultKind(t *testing.T) {
	engine := newTestEngine(t, defaultStubs())

	w := doRequest(engine, http.MethodGet, "/joke")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text":"stub joke"}`, w.Body.String())
}

func TestRouter_JokeRiddleKind(t *testing.T) {
	engine := newTestEngine(t, defaultStubs())

	w := doRequest(engine, http.MethodGet, "/joke?type=riddle")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"question":"stub q","answer":"stub a"}`, w.Body.String())
}

func TestRouter_JokeUnconfiguredKindUsesFallback(t *testing.T) {
	// Only the dad kind has a provider wired; nerdy goes straight to the
	// static pool.
	engine := newTestEngine(t, defaultStubs())

	w := doRequest(engine, http.MethodGet, "/joke?type=nerdy")

	require.Equal(t, http.StatusOK, w.Code)

	var joke domain.Joke
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &joke))
	assert.NotEmpty(t, joke.Text)
}

func TestRouter_OpsProbes(t *testing.T) {
	engine := newTestEngine(t, defaultStubs())

	live := doRequest(engine, http.MethodGet, "/-/live")
	assert.Equal(t, http.StatusOK, live.Code)

	build := doRequest(engine, http.MethodGet, "/-/build")
	assert.Equal(t, http.StatusOK, build.Code)
	assert.Contains(t, build.Body.String(), "0.0.0")

	metrics := doRequest(engine, http.MethodGet, "/-/metrics")
	assert.Equal(t, http.StatusOK, metrics.Code)
}

func TestSetupRouter_NilHandlers(t *testing.T) {
	engine := gin.New()
	cfg := RouterConfig{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		AppConfig: &config.AppConfig{Name: "cheer-gateway", Environment: "test", Version: "0.0.0"},
		Timeout:   time.Second,
	}

	require.NotPanics(t, func() {
		SetupRouter(engine, cfg)
	})

	w := doRequest(engine, http.MethodGet, "/quote")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewDefaultRouterConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	appCfg := &config.AppConfig{Name: "cheer-gateway", Environment: "test", Version: "1.0.0"}
	healthHandler := handlers.NewHealthHandler(nil, handlers.BuildInfo{})

	cfg := NewDefaultRouterConfig(logger, appCfg, nil, healthHandler)

	assert.Equal(t, logger, cfg.Logger)
	assert.Equal(t, appCfg, cfg.AppConfig)
	assert.Equal(t, healthHandler, cfg.HealthHandler)
	assert.Nil(t, cfg.CheerHandler)
	assert.Equal(t, DefaultRequestTimeout, cfg.Timeout)
}

// Server tests

func testServerConfig(port int) *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           port,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 20,
	}
}

func TestServerNew(t *testing.T) {
	cfg := testServerConfig(8080)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := New(cfg, logger)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.Engine())
	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr())
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(testServerConfig(0), slog.New(slog.NewTextHandler(io.Discard, nil)))

	errCh := srv.Start()

	// Give the listener a moment, then stop it.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err, ok := <-errCh:
		if ok {
			require.NoError(t, err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
