// Package footballdata is a thin client for the football-data.org v4 API.
//
// Endpoints are looked up by (resource, action) and come back as URL
// templates; Fill binds their placeholders and Request performs the GET:
//
//	c, _ := footballdata.NewClientFromEnv()
//	endpoint, _ := c.Endpoint(footballdata.ResourceCompetitions, footballdata.ActionTeams)
//	pl, _ := footballdata.Fill(endpoint, map[string]string{"code": "PL"})
//	resp, err := c.Request(ctx, pl, map[string]string{"season": "2022"})
package footballdata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/omarshaarawi/footballdata/internal/config"
	"github.com/omarshaarawi/footballdata/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	APIVersion = "v4"
	BaseURL    = "http://api.football-data.org/" + APIVersion

	AuthTokenHeader       = "X-Auth-Token"
	ResponseControlHeader = "X-Response-Control"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
	metrics    *metrics.Recorder
	metricsErr error
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which has no timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics registers request metrics on registry. A registration failure
// is logged and leaves the client uninstrumented.
func WithMetrics(registry prometheus.Registerer) Option {
	return func(c *Client) {
		if registry == nil {
			return
		}
		c.metrics, c.metricsErr = metrics.NewRecorder(registry)
	}
}

// NewClient never fails. Without an API key the client still works, but the
// remote API will reject most requests.
func NewClient(cfg config.FootballDataAPI, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    BaseURL,
		apiKey:     cfg.APIKey,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.metricsErr != nil {
		c.logger.Error("Error registering request metrics", "error", c.metricsErr)
	}
	if c.apiKey == "" {
		c.logger.Warn("FOOTBALL_DATA_API_KEY not set, requests will be sent without an auth token")
	}
	return c
}

// NewClientFromEnv builds a client from FOOTBALL_DATA_API_KEY, after loading
// any envFiles.
func NewClientFromEnv(envFiles ...string) (*Client, error) {
	cfg, err := config.New(envFiles...)
	if err != nil {
		return nil, err
	}
	return NewClient(cfg.FootballDataAPI), nil
}

// Endpoint returns the full URL template for resource/action, placeholders
// left in place.
func (c *Client) Endpoint(resource Resource, action Action) (string, error) {
	endpoint, err := lookupEndpoint(resource, action)
	if err != nil {
		return "", err
	}
	return c.baseURL + endpoint.URL, nil
}

// Filters returns the filter templates accepted by resource/action, or nil.
func (c *Client) Filters(resource Resource, action Action) ([]string, error) {
	endpoint, err := lookupEndpoint(resource, action)
	if err != nil {
		return nil, err
	}
	if endpoint.Filters == nil {
		return nil, nil
	}
	filters := make([]string, len(endpoint.Filters))
	copy(filters, endpoint.Filters)
	return filters, nil
}

// Response is the unparsed reply of the remote API. Non-2xx statuses are not
// treated as errors; callers check StatusCode themselves.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func (r *Response) Text() string {
	return string(r.Body)
}

// Request sends a single GET to rawURL with the auth headers and filters as
// query parameters.
func (c *Client) Request(ctx context.Context, rawURL string, filters map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if len(filters) > 0 {
		q := req.URL.Query()
		for key, value := range filters {
			q.Set(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set(ResponseControlHeader, "full")
	req.Header.Set(AuthTokenHeader, c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveError(time.Since(start))
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.metrics.ObserveResponse(resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	c.logger.Debug("Requested football-data endpoint", "url", req.URL.String(), "status", resp.StatusCode)

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// Get resolves resource/action, binds the path placeholders from params and
// sends the request with every filter whose placeholders params can fill.
func (c *Client) Get(ctx context.Context, resource Resource, action Action, params map[string]string) (*Response, error) {
	endpoint, err := lookupEndpoint(resource, action)
	if err != nil {
		return nil, err
	}

	path, err := fill(endpoint.URL, params, url.PathEscape)
	if err != nil {
		return nil, fmt.Errorf("building %s/%s url: %w", resource, action, err)
	}

	query, err := FilterValues(endpoint.Filters, params)
	if err != nil {
		return nil, fmt.Errorf("building %s/%s filters: %w", resource, action, err)
	}

	filters := make(map[string]string, len(query))
	for key := range query {
		filters[key] = query.Get(key)
	}

	return c.Request(ctx, c.baseURL+path, filters)
}
