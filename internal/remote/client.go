// Package remote implements HTTP clients for the posts, comments and
// reviews services. Each client speaks the REST contract of its
// service, maps failures onto the domain error taxonomy, and performs
// no automatic retries; staleness is handled by the caches on top.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"newsroom/internal/domain"
	"newsroom/internal/metrics"
)

// Config holds the settings shared by all remote clients.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type client struct {
	service string
	baseURL string
	http    *http.Client
}

func newClient(service string, cfg Config) *client {
	return &client{
		service: service,
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// do issues one request and decodes the JSON response into out when out
// is non-nil. Error mapping: 404 becomes domain.ErrNotFound, timeouts
// become domain.ErrTimedOut, everything else a domain.NetworkError.
func (c *client) do(ctx context.Context, method, path string, body any, out any) error {
	op := fmt.Sprintf("%s %s%s", method, c.service, path)
	start := time.Now()

	err := c.roundTrip(ctx, method, path, body, out)

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.RemoteRequestsTotal.WithLabelValues(c.service, method, result).Inc()
	metrics.RemoteRequestDuration.WithLabelValues(c.service, method).Observe(time.Since(start).Seconds())

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *client) roundTrip(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return domain.ErrTimedOut
		}
		return &domain.NetworkError{Op: c.service, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &domain.NetworkError{Op: c.service, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.NetworkError{Op: c.service, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
