// Package wordpress is the upstream executor: it turns a tenant record into
// authenticated calls against the site's WordPress and WooCommerce REST APIs.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Davidi18/wordpress-mcp/internal/metrics"
	"github.com/Davidi18/wordpress-mcp/internal/tenant"
)

const defaultTimeout = 30 * time.Second

// UpstreamError carries the HTTP status and response body of a failed
// WordPress call. It is never retried automatically; most causes are
// client-input errors, not transient faults.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("wordpress request failed: %s", e.Body)
	}
	return fmt.Sprintf("wordpress request failed (status %d): %s", e.StatusCode, e.Body)
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Client issues authenticated REST calls for one tenant. It is stateless
// beyond the computed base URL and safe for concurrent use.
type Client struct {
	restBase   string
	username   string
	appPass    string
	wcKey      string
	wcSecret   string
	label      string
	httpClient *http.Client
}

// New builds a client from a tenant record, failing fast when the record is
// missing base URL or credentials.
func New(rec *tenant.Record, opts ...ClientOption) (*Client, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		restBase:   restBase(rec.BaseURL),
		username:   rec.Username,
		appPass:    rec.AppPassword,
		wcKey:      rec.WCKey,
		wcSecret:   rec.WCSecret,
		label:      rec.Label(),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// restBase normalizes a configured site URL to its REST root: trailing
// slashes stripped, exactly one /wp-json suffix whether or not the
// configured URL already carries it.
func restBase(baseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasSuffix(base, "/wp-json") {
		base += "/wp-json"
	}
	return base
}

// Do issues one REST call. path is namespace-relative, e.g. "/wp/v2/posts"
// or "/wc/v3/products". WooCommerce paths authenticate with consumer
// key/secret query parameters and fail before any network I/O when the
// tenant has none.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	isWooCommerce := strings.HasPrefix(path, "/wc/")
	if isWooCommerce && (c.wcKey == "" || c.wcSecret == "") {
		return nil, &UpstreamError{
			Body: fmt.Sprintf("client %q has no WooCommerce consumer key/secret configured", c.label),
		}
	}

	if query == nil {
		query = url.Values{}
	}
	if isWooCommerce {
		query.Set("consumer_key", c.wcKey)
		query.Set("consumer_secret", c.wcSecret)
	}

	fullURL := c.restBase + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.appPass)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ObserveUpstream(method, time.Since(start), err == nil)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	// 204s and DELETEs can come back empty.
	if len(bytes.TrimSpace(respBody)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(respBody) {
		// A 2xx with unparseable JSON is an upstream contract violation.
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	raw, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
