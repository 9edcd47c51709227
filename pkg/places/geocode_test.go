package places

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srvURL string) *httpClient {
	return NewClient("test-key", WithBaseURL(srvURL), WithRateLimit(1000), WithRetry(1, 0)).(*httpClient)
}

func TestGeocode_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "90210", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"results": [{
				"geometry": {"location": {"lat": 34.0901, "lng": -118.4065}}
			}]
		}`)
	}))
	defer srv.Close()

	point, err := newTestClient(srv.URL).Geocode(context.Background(), "90210")
	require.NoError(t, err)
	assert.InDelta(t, 34.0901, point.Lat, 0.0001)
	assert.InDelta(t, -118.4065, point.Lng, 0.0001)
}

func TestGeocode_ZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status": "ZERO_RESULTS", "results": []}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Geocode(context.Background(), "nowhere at all")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no results")
}

func TestGeocode_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Geocode(context.Background(), "90210")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestGeocode_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `<html>not json</html>`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Geocode(context.Background(), "90210")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}
