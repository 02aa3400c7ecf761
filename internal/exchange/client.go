// Package exchange is a client for the public exchange-rate API.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrMissingRate = errors.New("exchange: rate missing from response")

// LatestResponse is the body of GET /latest/{base}.
type LatestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Rate returns the rate for code, or ErrMissingRate.
func (r *LatestResponse) Rate(code string) (float64, error) {
	v, ok := r.Rates[code]
	if !ok || v <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingRate, code)
	}
	return v, nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// LatestUSD fetches the USD-based rate table.
func (c *Client) LatestUSD(ctx context.Context) (*LatestResponse, error) {
	url := fmt.Sprintf("%s/latest/USD", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call exchange API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var latest LatestResponse
	if err := json.Unmarshal(body, &latest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &latest, nil
}
