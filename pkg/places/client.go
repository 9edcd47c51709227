// Package places provides a client for the Google Maps web services used by
// the lead pipeline: geocoding, nearby search, and place details.
package places

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client defines the upstream operations the pipeline depends on. All three
// calls are read-only and keyed by the caller-supplied API key.
type Client interface {
	// Geocode resolves a free-text location to coordinates. The input is
	// forwarded verbatim; any format the upstream accepts is fine.
	Geocode(ctx context.Context, location string) (*GeoPoint, error)

	// NearbySearch finds business candidates near center matching keyword,
	// in upstream ranking order. An empty result list is success, not an
	// error.
	NearbySearch(ctx context.Context, center GeoPoint, keyword string, radiusMeters int) ([]Candidate, error)

	// Details fetches phone and website for a place. Missing fields come
	// back as zero values.
	Details(ctx context.Context, placeID string) (*Details, error)
}

// GeoPoint is a resolved coordinate pair.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Candidate is one nearby-search result. PlaceID is the upstream's opaque
// identifier, used only to fetch details.
type Candidate struct {
	PlaceID  string
	Name     string
	Vicinity string
}

// Details holds the optional detail fields for a place.
type Details struct {
	Phone   string
	Website string
}

// Option configures the places client.
type Option func(*httpClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithBaseURL overrides the Google Maps API base URL (for testing).
func WithBaseURL(base string) Option {
	return func(c *httpClient) {
		c.baseURL = base
	}
}

// WithRateLimit sets the requests-per-second limit shared by all calls.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

// WithRetry sets how many attempts each request gets and the initial backoff
// between them. Off by default: a failed call surfaces immediately so the
// caller decides whether the run is worth repeating.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(c *httpClient) {
		c.retry = retryPolicy{attempts: attempts, backoff: backoff}
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	retry   retryPolicy
}

// NewClient creates a places Client for the given API key.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api",
		http: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(10, 10),
		retry:   retryPolicy{attempts: 1},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
