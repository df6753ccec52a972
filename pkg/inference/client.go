package inference

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"go-pcbuilder-backend/config"
	"go-pcbuilder-backend/internal/domain"
)

// Client forwards prediction payloads to the inference service. It is a
// pure pass-through: the payload schema belongs to the inference service
// and is never inspected here.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		url:    cfg.InferenceURL,
		apiKey: cfg.InferenceAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.HTTPClientTimeout,
		},
	}
}

// Forward issues a single POST and hands back whatever came over the wire.
// Downstream error statuses are results, not errors: the caller relays them
// verbatim. Only transport-level failures return an error.
func (c *Client) Forward(ctx context.Context, payload []byte) (*domain.InferenceResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach inference service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read inference response: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	return &domain.InferenceResult{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}
