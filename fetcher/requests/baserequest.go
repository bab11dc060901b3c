package requests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lolladder/pkg/messages"
)

// Failure kinds returned by the Riot API calls, test them with errors.Is.
var (
	ErrTransport = errors.New("transport failure")
	ErrNotFound  = errors.New("resource not found")
	ErrStatus    = errors.New("unexpected status code")
	ErrDecode    = errors.New("malformed response")
	ErrTimeout   = errors.New("request timed out")
)

// Client does authenticated requests to the Riot API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	timeout    time.Duration
	limiter    *RateLimiter // Shared by every pipeline, nil when disabled.
}

// NewClient creates a client, timeout zero means no per call timeout.
func NewClient(apiKey string, timeout time.Duration, limiter *RateLimiter) *Client {
	return &Client{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		timeout:    timeout,
		limiter:    limiter,
	}
}

// Do a authenticated request to the Riot API.
// Return the response.
func (c *Client) AuthRequest(ctx context.Context, url string, method string) (*http.Response, error) {
	// Create the request for the given url.
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't create request: %w", err)
	}

	// Add the token.
	req.Header.Set("X-Riot-Token", c.apiKey)
	return c.httpClient.Do(req)
}

// GetJSON does a GET request and decodes the body into T.
// Every failure is wrapped in one of the package error kinds.
func GetJSON[T any](ctx context.Context, c *Client, url string) (T, error) {
	var result T

	// Wait for the shared limits before using the quota.
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return result, fmt.Errorf("%w: %v", ErrTransport, err)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.AuthRequest(ctx, url, http.MethodGet)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, fmt.Errorf("%w: "+messages.RequestTimeoutMsg, ErrTimeout, url)
		}
		return result, fmt.Errorf("%w: "+messages.RequestFailedMsg+": %v", ErrTransport, url, err)
	}

	defer resp.Body.Close()

	// Check the status code.
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return result, fmt.Errorf("%w: "+messages.BadStatusCodeMsg, ErrNotFound, resp.StatusCode, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return result, fmt.Errorf("%w: "+messages.BadStatusCodeMsg, ErrStatus, resp.StatusCode, url)
	}

	// Parse the body.
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, fmt.Errorf("%w: "+messages.RequestTimeoutMsg, ErrTimeout, url)
		}
		return result, fmt.Errorf("%w: %s: %v", ErrDecode, messages.FailedToParseMsg, err)
	}

	return result, nil
}
