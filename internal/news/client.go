package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	searchURL     = "https://api.nytimes.com/svc/search/v2/articlesearch.json"
	searchTimeout = 30 * time.Second
)

var (
	// ErrMissingAPIKey short-circuits an aggregation before any external
	// call is made. The message is the one clients display.
	ErrMissingAPIKey = errors.New("NYT API key not found")

	// ErrSearchUnavailable wraps any failure talking to the search API.
	ErrSearchUnavailable = errors.New("article search unavailable")
)

// Searcher issues one article-search request for a facet.
type Searcher interface {
	Search(ctx context.Context, apiKey string, facet Facet) ([]Doc, error)
}

// Client is the NYT Article Search API client.
type Client struct {
	baseURL string
	hc      *http.Client
	log     zerolog.Logger
}

// NewClient creates a client with the fixed per-request timeout.
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		baseURL: searchURL,
		hc:      &http.Client{Timeout: searchTimeout},
		log:     log.With().Str("component", "nyt").Logger(),
	}
}

// Search runs one facet query and returns the raw result documents.
func (c *Client) Search(ctx context.Context, apiKey string, facet Facet) ([]Doc, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	q := req.URL.Query()
	q.Set("q", facet.Query)
	q.Set("fq", facet.Filter)
	q.Set("api-key", apiKey)
	req.URL.RawQuery = q.Encode()

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("query", facet.Query).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("article search request")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrSearchUnavailable, resp.StatusCode, body)
	}

	var payload struct {
		Response struct {
			Docs []Doc `json:"docs"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSearchUnavailable, err)
	}
	return payload.Response.Docs, nil
}
