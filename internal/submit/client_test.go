package submit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

func testSpec() models.StrategySpec {
	return models.StrategySpec{
		Name:         "RSI Cross",
		StrategyType: models.StrategyIndicatorBased,
		Symbol:       "NIFTY 50",
		AssetType:    models.AssetOptions,
	}
}

func TestSubmitSuccess(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/strategies", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.SubmissionAck{ID: "rec-1", CreatedAt: "2026-08-28T09:15:00Z"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())
	ack, err := client.Submit(context.Background(), testSpec(), "user-1", true)
	require.NoError(t, err)

	assert.Equal(t, "rec-1", ack.ID)
	assert.Equal(t, "user-1", got.UserID)
	assert.True(t, got.IsPaperTrading)
	assert.Equal(t, "RSI Cross", got.Name)
}

func TestSubmitServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "userId is required"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())
	_, err := client.Submit(context.Background(), testSpec(), "", false)
	require.Error(t, err)

	var serr *errors.SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusBadRequest, serr.StatusCode)
	assert.Equal(t, "userId is required", serr.Message)
}

func TestSubmitUnreachableEndpoint(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", zerolog.Nop())
	_, err := client.Submit(context.Background(), testSpec(), "user-1", false)
	require.Error(t, err)

	var serr *errors.SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 0, serr.StatusCode)
}

func TestSubmitWirePayloadShape(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.SubmissionAck{ID: "rec-1"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())
	_, err := client.Submit(context.Background(), testSpec(), "user-1", true)
	require.NoError(t, err)

	// envelope fields are camelCase, spec fields snake_case
	assert.Contains(t, raw, "userId")
	assert.Contains(t, raw, "isPaperTrading")
	assert.Contains(t, raw, "strategy_type")
	assert.NotContains(t, raw, "StrategySpec")
}
