// ABOUTME: HTTP client for the laptop price prediction API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pricewise/laptop-price-api/models"
)

// Client is the API client for the prediction backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response decoded into the API's error shape.
type APIError struct {
	StatusCode int
	Response   models.ErrorResponse
}

func (e *APIError) Error() string {
	msg := e.Response.Error
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if len(e.Response.Fields) > 0 {
		for _, f := range e.Response.Fields {
			msg += fmt.Sprintf("; %s: %s", f.Field, f.Message)
		}
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, msg)
}

// Health fetches the health endpoint.
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var out models.HealthResponse
	if err := c.get(ctx, "/api/v1/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Features fetches the feature option set and input constraints.
func (c *Client) Features(ctx context.Context) (*models.FeaturesResponse, error) {
	var out models.FeaturesResponse
	if err := c.get(ctx, "/api/v1/features", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Predict submits a specification record and returns the prediction.
func (c *Client) Predict(ctx context.Context, spec models.LaptopSpec) (*models.PredictionResponse, error) {
	body, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("encoding specification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out models.PredictionResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connecting to API at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Best effort decode; the status code alone is still useful
		json.NewDecoder(resp.Body).Decode(&apiErr.Response)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding API response: %w", err)
	}
	return nil
}
