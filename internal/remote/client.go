// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/tomtom215/tourguide/internal/config"
	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/metrics"
)

// Client talks to the tourism API over HTTP.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

var _ API = (*Client)(nil)

// NewClient creates an API client from cfg.
//
// The client is configured with:
//   - cfg.Timeout per request
//   - a cookie jar so session cookies set by /login are sent back
//   - a token bucket of cfg.RateLimit requests/second (disabled when 0)
func NewClient(cfg *config.APIConfig) *Client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		logging.Warn().Err(err).Msg("Cookie jar unavailable, session cookies will not be kept")
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Jar:     jar,
		},
		limiter: limiter,
	}
}

// BaseURL returns the API root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// wait blocks on the rate limiter, honouring ctx.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	start := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	metrics.RecordThrottleWait(time.Since(start))
	return nil
}

// do sends one request and decodes a 2xx JSON body into result (if non-nil).
// Non-2xx responses return *StatusError.
func (c *Client) do(ctx context.Context, endpoint, method, path string, body, result any) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", endpoint, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}

	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordRemoteRequest(endpoint, 0, time.Since(start))
		return fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()
	metrics.RecordRemoteRequest(endpoint, resp.StatusCode, time.Since(start))

	logging.Ctx(ctx).Debug().
		Str("endpoint", endpoint).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("Remote request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(endpoint, resp)
	}

	if result == nil {
		return nil
	}
	if err := decodeJSONResponse(resp, result); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// decodeJSONResponse decodes the body into result. An empty body leaves
// result untouched.
func decodeJSONResponse(resp *http.Response, result any) error {
	err := json.NewDecoder(resp.Body).Decode(result)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
