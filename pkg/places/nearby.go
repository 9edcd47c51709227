package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rotisserie/eris"
)

// nearbyResponse is the JSON response from the Places Nearby Search API.
type nearbyResponse struct {
	Results []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
	} `json:"results"`
	Status string `json:"status"`
}

// NearbySearch issues one nearby-search call and returns candidates in
// upstream ranking order. ZERO_RESULTS is a legitimate empty answer; only
// transport failures and malformed or rejected responses are errors.
func (c *httpClient) NearbySearch(ctx context.Context, center GeoPoint, keyword string, radiusMeters int) ([]Candidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "places: nearby rate limit")
	}

	params := url.Values{
		"location": {fmt.Sprintf("%f,%f", center.Lat, center.Lng)},
		"radius":   {strconv.Itoa(radiusMeters)},
		"keyword":  {keyword},
		"key":      {c.apiKey},
	}
	body, err := c.get(ctx, c.baseURL+"/place/nearbysearch/json?"+params.Encode())
	if err != nil {
		return nil, eris.Wrap(err, "places: nearby request")
	}

	var resp nearbyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, eris.Wrap(err, "places: nearby parse response")
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, eris.Errorf("places: nearby status %s", resp.Status)
	}

	candidates := make([]Candidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		candidates = append(candidates, Candidate{
			PlaceID:  r.PlaceID,
			Name:     r.Name,
			Vicinity: r.Vicinity,
		})
	}
	return candidates, nil
}
