// Package httpapi provides the HTTP sales provider: the consumer side of
// the GET /vendas contract.
//
// A fetch is a single request with no retry. Non-200 responses, transport
// failures, and malformed payloads all surface as one opaque provider
// error; the caller shows an error state and does not reattempt.
package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"saleschart/pkg/errors"
	"saleschart/pkg/sales"
)

const vendasPath = "/vendas"

// Client fetches the sales dataset from a running saleschart (or
// compatible) API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpc = c }
}

// NewClient creates a client for the API at baseURL (scheme and host, no
// trailing slash required).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs GET /vendas and decodes the response.
func (c *Client) Fetch(ctx context.Context) (sales.Dataset, error) {
	url := c.baseURL + vendasPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build request for %s", url)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.New(errors.ErrCodeProvider, "%s returned status %d: %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var ds sales.Dataset
	if err := json.NewDecoder(resp.Body).Decode(&ds); err != nil {
		return nil, errors.Wrap(errors.ErrCodeProvider, err, "decode response from %s", url)
	}

	if err := ds.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeProvider, err, "invalid dataset from %s", url)
	}
	return ds, nil
}

// String identifies the client in logs.
func (c *Client) String() string {
	return fmt.Sprintf("httpapi(%s)", c.baseURL)
}
