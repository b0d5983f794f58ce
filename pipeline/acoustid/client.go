package acoustid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.acoustid.org/v2"

// Config holds configuration for the AcoustID client.
type Config struct {
	// Application API key (required) and user API key (required only for
	// submissions).
	AppKey  string
	UserKey string

	// BaseURL overrides the service endpoint, mainly for tests.
	BaseURL string

	// Per-request timeout. Defaults to 10 seconds.
	Timeout time.Duration

	// Retry configuration for transient HTTP failures.
	MaxRetries     int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration

	// Rate limiting configuration.
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   float64
}

func (c *Config) setDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.RetryBaseDelay == 0 {
		c.RetryBaseDelay = time.Second
	}
	if c.RetryMaxDelay == 0 {
		c.RetryMaxDelay = 30 * time.Second
	}
	if !c.RateLimitEnabled && c.RateLimitRequests == 0 {
		c.RateLimitEnabled = true
	}
	if c.RateLimitRequests == 0 {
		c.RateLimitRequests = 3
	}
	if c.RateLimitWindow == 0 {
		c.RateLimitWindow = 1.0
	}
}

// Client talks to the AcoustID v2 web service. It adds proactive rate
// limiting and bounded retry with backoff on transient failures.
type Client struct {
	httpClient  *http.Client
	rateLimiter *RateLimiter
	config      *Config
}

// NewClient creates a new AcoustID client.
func NewClient(config *Config) (*Client, error) {
	if strings.TrimSpace(config.AppKey) == "" {
		return nil, &LookupError{Message: "Missing AcoustID application API key"}
	}
	config.setDefaults()

	return &Client{
		httpClient:  &http.Client{Timeout: config.Timeout},
		rateLimiter: NewRateLimiter(config.RateLimitEnabled, config.RateLimitRequests, config.RateLimitWindow),
		config:      config,
	}, nil
}

// Lookup matches a fingerprint against the service's database and returns the
// raw candidate structure, requesting recording and release-group metadata.
func (c *Client) Lookup(ctx context.Context, fp *Fingerprint) (*LookupResponse, error) {
	form := url.Values{}
	form.Set("client", c.config.AppKey)
	form.Set("duration", strconv.Itoa(int(fp.Duration)))
	form.Set("fingerprint", fp.Fingerprint)
	form.Set("meta", "recordings releasegroups")

	body, err := c.postForm(ctx, c.config.BaseURL+"/lookup", form)
	if err != nil {
		return nil, &LookupError{Message: "Lookup request failed", Original: err}
	}

	var resp LookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &LookupError{Message: "Failed to parse lookup response", Original: err}
	}
	if resp.Status != "ok" {
		message := "Lookup rejected by the service"
		if resp.Error != nil {
			message = fmt.Sprintf("Lookup rejected by the service: %s", resp.Error.Message)
		}
		return nil, &LookupError{Message: message}
	}

	return &resp, nil
}

// Submit sends a crowd-sourced tag correction to the service's write
// endpoint. Submissions are processed asynchronously server-side; a nil
// return only means the service accepted the payload.
func (c *Client) Submit(ctx context.Context, sub *Submission) error {
	if strings.TrimSpace(c.config.UserKey) == "" {
		return &SubmitError{Message: "Missing AcoustID user API key"}
	}

	form := url.Values{}
	form.Set("client", c.config.AppKey)
	form.Set("user", c.config.UserKey)
	form.Set("duration.0", strconv.Itoa(int(sub.Duration)))
	form.Set("fingerprint.0", sub.Fingerprint)
	form.Set("artist.0", sub.Artist)
	form.Set("track.0", sub.Track)
	form.Set("album.0", sub.Album)
	form.Set("albumartist.0", sub.AlbumArtist)
	form.Set("fileformat.0", sub.FileFormat)

	body, err := c.postForm(ctx, c.config.BaseURL+"/submit", form)
	if err != nil {
		return &SubmitError{Message: "Submission request failed", Original: err}
	}

	var resp struct {
		Status string    `json:"status"`
		Error  *APIError `json:"error,omitempty"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return &SubmitError{Message: "Failed to parse submission response", Original: err}
	}
	if resp.Status != "ok" {
		message := "Submission rejected by the service"
		if resp.Error != nil {
			message = fmt.Sprintf("Submission rejected by the service: %s", resp.Error.Message)
		}
		return &SubmitError{Message: message}
	}

	return nil
}

// postForm performs one rate-limited form POST with bounded retry on
// transient statuses. The response body is returned for both success and
// API-level errors, since AcoustID reports errors inside a 400 payload.
func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.config.RetryBaseDelay * time.Duration(1<<uint(attempt-1))
			if delay > c.config.RetryMaxDelay {
				delay = c.config.RetryMaxDelay
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := c.rateLimiter.WaitIfNeeded(ctx); err != nil {
			return nil, err
		}

		body, retryable, err := c.doPost(ctx, endpoint, form)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", c.config.MaxRetries+1, lastErr)
}

func (c *Client) doPost(ctx context.Context, endpoint string, form url.Values) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures (timeouts, resets) are worth one more try
		return nil, true, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, false, nil
	case resp.StatusCode == http.StatusBadRequest:
		// API-level error with a JSON body; let the caller surface it
		return body, false, nil
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		return nil, true, fmt.Errorf("transient status %d from %s", resp.StatusCode, endpoint)
	default:
		return nil, false, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}
}
