// Package submit provides the client for the strategy submission
// boundary.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

// Request is the wire body of a submission: the assembled spec plus the
// submitting user and the paper-trading flag.
type Request struct {
	models.StrategySpec
	UserID         string `json:"userId"`
	IsPaperTrading bool   `json:"isPaperTrading"`
}

// errorResponse is the wire shape of a server-side rejection.
type errorResponse struct {
	Error string `json:"error"`
}

// Client posts assembled strategy specs to the persistence service. A
// submission is a single one-shot request: it is not retried
// automatically and not cancellable once sent.
type Client struct {
	endpoint string
	http     *http.Client
	log      zerolog.Logger
}

// NewClient creates a submission client for the given endpoint.
func NewClient(endpoint string, logger zerolog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      logger.With().Str("component", "submit-client").Logger(),
	}
}

// Submit sends the spec and returns the created-record acknowledgement.
func (c *Client) Submit(ctx context.Context, spec models.StrategySpec, userID string, paperTrading bool) (*models.SubmissionAck, error) {
	body, err := json.Marshal(Request{
		StrategySpec:   spec,
		UserID:         userID,
		IsPaperTrading: paperTrading,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encoding submission")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/strategies", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "building submission request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewSubmissionError(0, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewSubmissionError(resp.StatusCode, readErrorMessage(resp.Body), nil)
	}

	var ack models.SubmissionAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, errors.NewSubmissionError(resp.StatusCode, "malformed acknowledgement", err)
	}

	c.log.Info().Str("record_id", ack.ID).Str("strategy", spec.Name).Msg("Strategy accepted")
	return &ack, nil
}

func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "rejected by server"
	}
	var body errorResponse
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return string(data)
}
