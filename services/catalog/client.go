package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	tmdbBaseURL      = "https://api.themoviedb.org/3"
	tmdbImageBaseURL = "https://image.tmdb.org/t/p"

	tmdbPosterSize   = "w500"
	tmdbBackdropSize = "w1280"
)

// tmdbClient issues keyed, parameterized queries against the TMDB v3
// API through the request cache. One attempt per request; retry policy
// belongs to the caller-facing failure semantics, not the transport.
type tmdbClient struct {
	apiKey   string
	language string
	httpc    *http.Client
	cache    *Cache

	// includeRestricted reads the current content-filter flag; it is
	// part of every request signature.
	includeRestricted func() bool
}

func newTMDBClient(apiKey, language string, httpc *http.Client, cache *Cache, includeRestricted func() bool) *tmdbClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	if cache == nil {
		cache = NewCache(DefaultCacheTTL)
	}
	if includeRestricted == nil {
		includeRestricted = func() bool { return false }
	}
	if language == "" {
		language = "en-US"
	}
	return &tmdbClient{
		apiKey:            apiKey,
		language:          language,
		httpc:             httpc,
		cache:             cache,
		includeRestricted: includeRestricted,
	}
}

// get returns the raw JSON payload for an endpoint, consulting the
// cache first. Cancellation surfaces as ErrCancelled so call sites can
// tell an aborted request from a failed one.
func (c *tmdbClient) get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	restricted := c.includeRestricted()
	key := cacheKey(endpoint, params, restricted)
	if payload, ok := c.cache.get(key); ok {
		return payload, nil
	}

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set("api_key", c.apiKey)
	q.Set("language", c.language)
	q.Set("include_adult", fmt.Sprintf("%t", restricted))

	u := fmt.Sprintf("%s/%s?%s", tmdbBaseURL, endpoint, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build tmdb request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("tmdb get %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("tmdb get %s: %w", endpoint, ErrNotFound)
	}
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("tmdb get %s failed: %s: %s", endpoint, resp.Status, strings.TrimSpace(string(body)))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tmdb read %s: %w", endpoint, err)
	}

	c.cache.set(key, payload)
	return payload, nil
}
