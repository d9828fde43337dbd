package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"strategy-builder/internal/errors"
	"strategy-builder/pkg/utils"
)

// Payload is the wire shape of the catalog read boundary.
type Payload struct {
	Indicators []IndicatorDefinition            `json:"indicators"`
	Grouped    map[string][]IndicatorDefinition `json:"grouped"`
	Categories []string                         `json:"categories"`
}

// NewPayload builds the wire payload for a catalog.
func NewPayload(c *Catalog) Payload {
	return Payload{
		Indicators: c.Definitions(),
		Grouped:    c.GroupByCategory(),
		Categories: c.Categories(),
	}
}

// Client fetches the indicator catalog from a remote catalog service.
// The fetch is a one-time, idempotent read performed before the builder
// becomes interactive, so it is retried with backoff.
type Client struct {
	baseURL string
	http    *http.Client
	retry   utils.RetryConfig
	log     zerolog.Logger
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		retry:   utils.DefaultRetryConfig(),
		log:     logger.With().Str("component", "catalog-client").Logger(),
	}
}

// Fetch retrieves the catalog. On failure it returns an error and the
// caller must fall back to catalog.Empty(), never a partial catalog.
func (c *Client) Fetch(ctx context.Context) (*Catalog, error) {
	payload, err := utils.RetryWithResult(ctx, c.retry, func() (Payload, error) {
		return c.fetchOnce(ctx)
	})
	if err != nil {
		c.log.Error().Err(err).Str("url", c.baseURL).Msg("Catalog fetch failed")
		return nil, errors.Wrap(errors.ErrCatalogUnavailable, err.Error())
	}

	cat, err := New(payload.Indicators)
	if err != nil {
		return nil, errors.Wrap(err, "catalog payload rejected")
	}
	c.log.Info().Int("indicators", cat.Len()).Msg("Catalog loaded")
	return cat, nil
}

func (c *Client) fetchOnce(ctx context.Context) (Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/indicators", nil)
	if err != nil {
		return Payload{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Payload{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Payload{}, fmt.Errorf("catalog service returned %d", resp.StatusCode)
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Payload{}, fmt.Errorf("decoding catalog payload: %w", err)
	}
	return payload, nil
}
