package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// requestIDHeader matches the header the service echoes back.
const requestIDHeader = "X-Request-ID"

// HTTPClient wraps http.Client with a base URL and timeout.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// response is a fully read HTTP response.
type response struct {
	Status    int
	Body      []byte
	RequestID string
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, path string) (response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, path string, body interface{}) (response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return response{}, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, data)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte) (response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return response{}, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	id := "smoke-" + uuid.New().String()
	req.Header.Set(requestIDHeader, id)

	resp, err := c.client.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if got := resp.Header.Get(requestIDHeader); got != id {
		return response{}, fmt.Errorf("%s %s: request id %q not echoed (got %q)", method, path, id, got)
	}
	return response{Status: resp.StatusCode, Body: data, RequestID: id}, nil
}

// expectJSON checks the status and decodes the body into v.
func expectJSON(resp response, status int, v interface{}) error {
	if resp.Status != status {
		return fmt.Errorf("status %d, want %d: %s", resp.Status, status, bytes.TrimSpace(resp.Body))
	}
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
