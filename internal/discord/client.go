package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

const (
	defaultClientTimeout = 10 * time.Second
	defaultMaxRetries    = 3
	defaultRetryDelay    = 500 * time.Millisecond
	maxErrorBodyBytes    = 4096
)

// APIError is a non-2xx answer from the farm API
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

// APIClient handles communication with the NoriFarm API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: defaultClientTimeout},
		APIKey:     apiKey,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
	}
}

// doRequest sends one API call, retrying transport failures and 5xx answers
// with exponential backoff. The caller closes the body.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay*time.Duration(1<<(attempt-1)) + rand.N(c.RetryDelay/5+1)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}
		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		lastErr = decodeAPIError(resp)
		resp.Body.Close()
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call runs doRequest and decodes a 2xx JSON answer into out
func (c *APIClient) call(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	var payload struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		apiErr.Fields = payload.Fields
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// Match resolves a free-text query to a crop and product
func (c *APIClient) Match(ctx context.Context, query string) (*domain.MatchResult, error) {
	var result domain.MatchResult
	if err := c.call(ctx, http.MethodPost, "/api/v1/match", map[string]string{"query": query}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListCrops lists crops, optionally filtered by readiness
func (c *APIClient) ListCrops(ctx context.Context, status domain.CropStatus) ([]domain.Crop, error) {
	path := "/api/v1/crops"
	if status != domain.CropStatusAll {
		path += "?status=" + url.QueryEscape(string(status))
	}

	var crops []domain.Crop
	if err := c.call(ctx, http.MethodGet, path, nil, &crops); err != nil {
		return nil, err
	}
	return crops, nil
}

// HarvestCrop harvests a ready crop and starts its next cycle
func (c *APIClient) HarvestCrop(ctx context.Context, cropID string) (*domain.HarvestEvent, error) {
	var evt domain.HarvestEvent
	if err := c.call(ctx, http.MethodPost, "/api/v1/crops/"+url.PathEscape(cropID)+"/harvest", nil, &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
