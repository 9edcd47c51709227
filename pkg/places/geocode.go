package places

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/rotisserie/eris"
)

// geocodeResponse is the JSON response from the Google Geocoding API.
type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// Geocode resolves a free-text location via the Google Geocoding API. Zero
// results, a non-OK status, or an unparsable payload are all errors here:
// the pipeline cannot proceed without coordinates.
func (c *httpClient) Geocode(ctx context.Context, location string) (*GeoPoint, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "places: geocode rate limit")
	}

	params := url.Values{
		"address": {location},
		"key":     {c.apiKey},
	}
	body, err := c.get(ctx, c.baseURL+"/geocode/json?"+params.Encode())
	if err != nil {
		return nil, eris.Wrap(err, "places: geocode request")
	}

	var resp geocodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, eris.Wrap(err, "places: geocode parse response")
	}

	if resp.Status != "OK" || len(resp.Results) == 0 {
		return nil, eris.Errorf("places: geocode no results (status %s)", resp.Status)
	}

	loc := resp.Results[0].Geometry.Location
	return &GeoPoint{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// get issues a GET and returns the body of a 200 response. Transient
// failures (throttling, 5xx, timeouts) are retried per the client's policy.
func (c *httpClient) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "build request")
	}

	var body []byte
	err = c.retry.do(ctx, func() error {
		resp, err := c.http.Do(req)
		if err != nil {
			return eris.Wrap(err, "request")
		}
		defer resp.Body.Close() //nolint:errcheck

		if resp.StatusCode != http.StatusOK {
			return &statusError{code: resp.StatusCode}
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return eris.Wrap(err, "read body")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
