//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients/providers"
	"github.com/uplift-labs/cheer-gateway/internal/app"
	"github.com/uplift-labs/cheer-gateway/internal/platform/config"
)

// TestConcurrent_ClientRequests verifies the shared client handles parallel
// callers without races or spurious breaker trips.
func TestConcurrent_ClientRequests(t *testing.T) {
	var serverCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&serverCalls, 1)
		time.Sleep(time.Duration(5+atomic.LoadInt32(&serverCalls)%10) * time.Millisecond)
		_, _ = w.Write([]byte(`{"slip":{"advice":"stay calm"}}`))
	}))
	defer server.Close()

	client, err := clients.New(&clients.Config{
		BaseURL:      server.URL,
		ProviderName: "concurrent-upstream",
		Timeout:      10 * time.Second,
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       100 * time.Millisecond,
			HalfOpenLimit: 3,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	const numGoroutines = 50

	var wg sync.WaitGroup
	var successCount int32

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, getErr := client.Get(context.Background(), "/advice")
			if getErr != nil {
				return
			}
			resp.Body.Close()
			atomic.AddInt32(&successCount, 1)
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(numGoroutines), atomic.LoadInt32(&successCount), "all requests should succeed")
	assert.Equal(t, clients.StateClosed, client.CircuitState())
}

// TestConcurrent_QuoteListSingleFetch verifies the process-lifetime list
// cache collapses a stampede of concurrent callers into one upstream fetch.
func TestConcurrent_QuoteListSingleFetch(t *testing.T) {
	var serverCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&serverCalls, 1)
		time.Sleep(20 * time.Millisecond) // widen the race window
		_, _ = w.Write([]byte(`[{"text":"first","author":"a"},{"text":"second","author":"b"}]`))
	}))
	defer server.Close()

	client, err := clients.New(&clients.Config{
		BaseURL:      server.URL,
		ProviderName: "typefit",
		Timeout:      5 * time.Second,
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	service := app.NewCheerService(app.CheerServiceConfig{
		ListProvider:   providers.NewTypeFit(client),
		VerseProvider:  nilVerseProvider{},
		SongProvider:   nilSongProvider{},
		RiddleProvider: nilRiddleProvider{},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	const numGoroutines = 25

	var wg sync.WaitGroup
	results := make([][]int, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			quotes := service.GetQuoteList(context.Background())
			results[idx] = []int{len(quotes)}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&serverCalls), "the bulk list is fetched exactly once")
	for i, r := range results {
		assert.Equal(t, []int{2}, r, "caller %d should see the full list", i)
	}
}
