// Package relevance talks to the external content analysis service used for
// relevance scoring and near-duplicate lookups.
package relevance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"content_scheduler/internal/factors"
)

// Client is a reusable HTTP client for the analysis service. Calls are rate
// limited so a large batch cannot saturate the service.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

var _ factors.RelevanceScorer = (*Client)(nil)
var _ factors.SimilaritySearcher = (*Client)(nil)

func NewClient(baseURL, apiKey string, timeout time.Duration, ratePerSec float64) *Client {
	burst := int(ratePerSec)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst),
	}
}

// Score asks the service how relevant a piece of content is to the audience.
func (c *Client) Score(ctx context.Context, title, description string) (float64, error) {
	payload := map[string]any{
		"title":       title,
		"description": description,
	}

	var resp struct {
		Relevance float64 `json:"relevance"`
	}
	if err := c.post(ctx, "/relevance", payload, &resp); err != nil {
		return 0, err
	}

	return resp.Relevance, nil
}

// FindSimilar returns how many already-known items look like this title.
func (c *Client) FindSimilar(ctx context.Context, title string) (int, error) {
	payload := map[string]any{
		"title": title,
	}

	var resp struct {
		Matches int `json:"matches"`
	}
	if err := c.post(ctx, "/similar", payload, &resp); err != nil {
		return 0, err
	}

	return resp.Matches, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
