// Package adzuna is a minimal client for the Adzuna job-search API,
// scoped to the Indian market endpoint the aggregator queries.
package adzuna

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.adzuna.com/v1/api/jobs/in/search/1"

const defaultTimeout = 5 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	appID       string
	appKey      string
	baseURL     string
	timeout     time.Duration
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(appID, appKey string) *Client {
	return &Client{
		appID:      appID,
		appKey:     appKey,
		baseURL:    defaultBaseURL,
		timeout:    defaultTimeout,
		httpClient: &http.Client{},
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float64) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		c.timeout = timeout
	}
}

// Configured reports whether both credential values are present. Without
// them every search must be answered from the local catalog.
func (c *Client) Configured() bool {
	return c.appID != "" && c.appKey != ""
}

type searchResponse struct {
	Results []Listing `json:"results"`
}

// Search issues exactly one request; the caller decides what a failure
// degrades to. The request is bounded by the client timeout on top of
// whatever deadline ctx already carries.
func (c *Client) Search(ctx context.Context, params SearchParameters) ([]Listing, error) {
	if err := params.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid parameters")
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := c.baseURL + "?" + params.toURLValues(c.appID, c.appKey).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errors.Errorf("request failed with status %d, body: %s", resp.StatusCode, string(body))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decoding JSON response")
	}
	return out.Results, nil
}
