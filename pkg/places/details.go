package places

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/rotisserie/eris"
)

// detailsResponse is the JSON response from the Place Details API.
type detailsResponse struct {
	Result struct {
		FormattedPhoneNumber string `json:"formatted_phone_number"`
		Website              string `json:"website"`
	} `json:"result"`
	Status string `json:"status"`
}

// Details fetches phone and website for a place. A non-OK status yields an
// error; the enricher treats it as degradation, not failure, so no field
// list is interpreted here beyond the two we ask for.
func (c *httpClient) Details(ctx context.Context, placeID string) (*Details, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "places: details rate limit")
	}

	params := url.Values{
		"place_id": {placeID},
		"fields":   {"name,formatted_phone_number,website,vicinity"},
		"key":      {c.apiKey},
	}
	body, err := c.get(ctx, c.baseURL+"/place/details/json?"+params.Encode())
	if err != nil {
		return nil, eris.Wrap(err, "places: details request")
	}

	var resp detailsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, eris.Wrap(err, "places: details parse response")
	}

	if resp.Status != "OK" {
		return nil, eris.Errorf("places: details status %s", resp.Status)
	}

	return &Details{
		Phone:   resp.Result.FormattedPhoneNumber,
		Website: resp.Result.Website,
	}, nil
}
