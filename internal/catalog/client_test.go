package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strategy-builder/internal/errors"
	"strategy-builder/pkg/utils"
)

func fastRetry() utils.RetryConfig {
	return utils.RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/indicators", r.URL.Path)
		json.NewEncoder(w).Encode(NewPayload(Builtin()))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())
	client.retry = fastRetry()

	cat, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Builtin().Len(), cat.Len())

	def, err := cat.Lookup("rsi")
	require.NoError(t, err)
	assert.Equal(t, "Relative Strength Index", def.Label)
}

func TestFetchRetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())
	client.retry = fastRetry()

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrCatalogUnavailable)
	assert.Equal(t, int32(3), calls.Load(), "a failing fetch is retried")
}

func TestFetchUnreachableEndpoint(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", zerolog.Nop())
	client.retry = fastRetry()

	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, errors.ErrCatalogUnavailable)
}

func TestFetchRejectsBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// duplicate ids must never produce a partially usable catalog
		payload := Payload{Indicators: []IndicatorDefinition{
			{ID: "rsi", Category: CategoryMomentum},
			{ID: "rsi", Category: CategoryMomentum},
		}}
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())
	client.retry = fastRetry()

	cat, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Nil(t, cat)
}

// A failed fetch leaves the caller with the explicitly empty catalog:
// lookups fail cleanly and nothing is partially populated.
func TestEmptyCatalogFallback(t *testing.T) {
	cat := Empty()

	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.Definitions())
	assert.Empty(t, cat.Categories())
	assert.Empty(t, cat.GroupByCategory())

	_, err := cat.Lookup("rsi")
	assert.ErrorIs(t, err, errors.ErrIndicatorNotFound)
}
