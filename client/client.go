package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/10d3/pressmatic/apierr"
	"github.com/10d3/pressmatic/utils"
)

const (
	defaultBaseURL   = "https://api.printify.com/v1/"
	defaultUserAgent = "pressmatic/2.0"
	defaultTimeout   = 10 * time.Second

	// cap for error body slurps; vendor errors are tiny JSON objects
	defaultErrCap = 8192
)

// Config carries the connection parameters for one Client. AccessToken
// is required and checked at construction; BaseURL and UserAgent fall
// back to the vendor defaults when empty.
type Config struct {
	AccessToken string `validate:"required"`
	BaseURL     string `validate:"omitempty,url"`
	UserAgent   string
}

// Client talks to the Printify v1 API. It holds no per-call state, so
// one instance is safe for concurrent use.
type Client struct {
	BaseURL    string
	Token      string
	UserAgent  string
	HTTPClient *http.Client
}

type Option func(*Client) error

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.HTTPClient = hc
		return nil
	}
}

func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be positive")
		}
		c.HTTPClient.Timeout = d
		return nil
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewClient validates cfg eagerly: an empty access token or a malformed
// base URL is a construction error, not something deferred to the first
// request.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	c := &Client{
		BaseURL:   baseURL,
		Token:     cfg.AccessToken,
		UserAgent: userAgent,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// do is the one path every operation funnels through: build the request,
// send it, and normalize every failure into *apierr.APIError.
//
// Success is an explicit 2xx check. When v is nil the body is ignored
// entirely, so 200-with-body and 204 behave identically; when v is
// non-nil the body is decoded into it with no schema validation.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, v any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		buf, err := utils.EncodeJSONBody(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		payload = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// transport fault, no response to inspect
		return apierr.Unknown()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, defaultErrCap))
		return apierr.Parse(slurp, resp.StatusCode)
	}

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return &apierr.APIError{
				Status:  resp.StatusCode,
				Message: fmt.Sprintf("decode response: %v", err),
			}
		}
	}
	return nil
}

// helper to build "shops/{id}/<suffix>.json"
func shopPath(shopID, suffix string) string {
	return fmt.Sprintf("shops/%s/%s", shopID, suffix)
}

func missingID(op, name, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s: %s is required", op, name)
	}
	return nil
}
