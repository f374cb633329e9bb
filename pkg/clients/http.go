// Package clients provides HTTP implementations of the collaborator ports.
// Each client speaks JSON to one external service and translates HTTP
// failures into classified port errors.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/ports"
)

const defaultHTTPTimeout = 5 * time.Minute

// httpClient is the shared transport under every collaborator client.
type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func newHTTPClient(baseURL string, cfg *config.CollaboratorsConfig) *httpClient {
	apiKey := ""
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}
	return &httpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// doJSON sends a JSON request and decodes a JSON response into out.
// Non-2xx responses become classified port errors.
func (c *httpClient) doJSON(ctx context.Context, op, method, path string, body any, headers map[string]string, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return ports.NewError(ports.Permanent, op, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return ports.NewError(ports.Permanent, op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return ports.NewError(ports.Transient, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(op, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ports.NewError(ports.Permanent, op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// classifyStatus maps an HTTP error response onto a failure kind:
// 429 is quota, 422 is unsupported input, other 4xx are permanent,
// everything else (5xx and odd codes) is transient.
func classifyStatus(op string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err := fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(snippet))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ports.NewError(ports.Quota, op, err)
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return ports.NewError(ports.Unsupported, op, err)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return ports.NewError(ports.Permanent, op, err)
	}
	return ports.NewError(ports.Transient, op, err)
}
