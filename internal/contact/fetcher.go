// Package contact derives contact-page URLs and scans fetched pages for a
// public email address.
package contact

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

// maxBodyBytes caps how much of a contact page is read for scanning.
const maxBodyBytes = 512 * 1024

// Fetcher fetches contact pages over plain HTTP with a short timeout. Any
// response body is treated as opaque text for regex scanning.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with sensible defaults.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

// Fetch GETs a contact page and returns the raw body. Timeouts, connection
// errors, and 4xx/5xx responses are errors; the enricher swallows them.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "contact: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; LocalLeadsBot/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "contact: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("contact: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, eris.Wrap(err, "contact: read body")
	}
	return body, nil
}

// PageURL derives the contact page for a business website as
// scheme://host/contact, discarding any path and query. This is a fixed
// convention: sites without a literal /contact path will not be found.
// Returns "" for an absent or unparsable website.
func PageURL(website string) string {
	if website == "" {
		return ""
	}
	u, err := url.Parse(website)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/contact"
}
