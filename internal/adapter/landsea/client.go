package landsea

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client implements domain.LandSeaClassifier against a remote boundary
// lookup service. The service contract is GET {base}/{lat},{lon} returning
// {"water": bool}, the shape exposed by onwater-style APIs.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a boundary service client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// IsOcean queries the boundary service for one coordinate.
func (c *Client) IsOcean(ctx context.Context, lat, lon float64) (bool, error) {
	u := fmt.Sprintf("%s/%.6f,%.6f", c.baseURL, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("boundary lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("boundary service error: status %d: %s", resp.StatusCode, body)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}

	return payload.Water, nil
}

// Boundary service response type.

type response struct {
	Water bool `json:"water"`
}
