package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FELTRINCyril/cinebase/pkg/prometheus"
)

// DefaultTimeout bounds a single backend request
const DefaultTimeout = 10 * time.Second

// Client talks to the catalog backend over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a backend client for the given base URL
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// BaseURL returns the configured backend address
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs a single backend request and returns the response body.
// The operation label feeds logs and metrics.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	const op = "Client.do"

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	reqID := requestID()
	c.log.DebugContext(ctx, "backend request",
		"id", reqID,
		"operation", operation,
		"method", method,
		"url", target)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	prometheus.RequestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	if err != nil {
		prometheus.RequestFailures.WithLabelValues(operation).Inc()
		c.log.WarnContext(ctx, "backend request failed",
			"id", reqID,
			"operation", operation,
			"error", err)
		return nil, fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	prometheus.RequestCounter.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := decodeDetail(resp.Body)
		c.log.WarnContext(ctx, "backend rejected request",
			"id", reqID,
			"operation", operation,
			"status", resp.StatusCode,
			"detail", detail)
		if resp.StatusCode == http.StatusNotFound {
			if detail != "" {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, detail)
			}
			return nil, ErrNotFound
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Detail: detail}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", op, err)
	}
	return data, nil
}

// getJSON performs a GET and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, operation, path string, query url.Values, out any) error {
	data, err := c.do(ctx, operation, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", operation, err)
	}
	return nil
}

// sendJSON performs a POST or PUT with a JSON payload and decodes the response
func (c *Client) sendJSON(ctx context.Context, operation, method, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: failed to encode payload: %w", operation, err)
	}

	data, err := c.do(ctx, operation, method, path, nil, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", operation, err)
	}
	return nil
}

// requestID generates a time-ordered correlation id for request logs
func requestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("req-%d", time.Now().UnixNano())
	}
	return id.String()
}
