package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://www.omdbapi.com"

	// OMDb free tier tolerates a handful of requests per second
	defaultRateLimit = 5
	defaultRateBurst = 10
)

// ErrUnavailable wraps transport-level upstream failures. Callers surface it
// as a bad gateway; requests are never retried.
var ErrUnavailable = errors.New("omdb unavailable")

// NotFoundError carries the upstream's own message for a negative reply
// ("Movie not found!", "Incorrect IMDb ID." and friends).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Client handles OMDb API requests with rate limiting
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	cache       *Cache
}

// NewClient creates an OMDb API client. cache may be nil to disable caching.
func NewClient(baseURL, apiKey string, requestsPerSec float64, cache *Cache) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if requestsPerSec <= 0 {
		requestsPerSec = defaultRateLimit
	}
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		cache:       cache,
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSec), defaultRateBurst),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Search performs a free-text title search.
func (c *Client) Search(ctx context.Context, title string, page int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("s", title)
	if page > 1 {
		params.Set("page", fmt.Sprintf("%d", page))
	}

	var result SearchResult
	if err := c.doRequest(ctx, params, &result); err != nil {
		return nil, err
	}
	if result.Response == "False" {
		return nil, &NotFoundError{Message: result.Error}
	}
	return &result, nil
}

// DetailByID fetches full details for an IMDb id.
func (c *Client) DetailByID(ctx context.Context, imdbID string) (*MovieDetail, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	return c.detail(ctx, "omdb:detail:id:"+imdbID, params)
}

// DetailByTitle fetches full details for an exact title.
func (c *Client) DetailByTitle(ctx context.Context, title string) (*MovieDetail, error) {
	params := url.Values{}
	params.Set("t", title)
	return c.detail(ctx, "omdb:detail:title:"+title, params)
}

func (c *Client) detail(ctx context.Context, cacheKey string, params url.Values) (*MovieDetail, error) {
	var result MovieDetail
	if c.cache.GetJSON(ctx, cacheKey, &result) {
		return &result, nil
	}

	if err := c.doRequest(ctx, params, &result); err != nil {
		return nil, err
	}
	if result.Response == "False" {
		return nil, &NotFoundError{Message: result.Error}
	}

	c.cache.SetJSON(ctx, cacheKey, &result)
	return &result, nil
}

// doRequest performs a single rate-limited request. No retries: OMDb failures
// are surfaced to the caller directly.
func (c *Client) doRequest(ctx context.Context, params url.Values, result interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	params.Set("apikey", c.apiKey)
	fullURL := c.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Filmoteka/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}
