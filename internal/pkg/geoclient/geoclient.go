// Package geoclient talks to a nominatim-style reverse geocoding service.
package geoclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
)

// Result is the administrative breakdown for a coordinate pair. Any field
// may be empty when the provider has no data for that level.
type Result struct {
	District string
	State    string
	Country  string
}

type Client interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*Result, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client with a per-attempt timeout; retries are the
// caller's policy, transient transport errors are retried here.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type reverseResponse struct {
	Address struct {
		StateDistrict string `json:"state_district"`
		County        string `json:"county"`
		CityDistrict  string `json:"city_district"`
		City          string `json:"city"`
		State         string `json:"state"`
		Country       string `json:"country"`
	} `json:"address"`
}

func (c *client) ReverseGeocode(ctx context.Context, lat, lon float64) (*Result, error) {
	reqURL := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		c.baseURL,
		url.QueryEscape(fmt.Sprintf("%.6f", lat)),
		url.QueryEscape(fmt.Sprintf("%.6f", lon)),
	)

	var body []byte
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			resp, httpErr := c.httpClient.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			var readErr error
			body, readErr = io.ReadAll(resp.Body)
			if readErr != nil {
				return fmt.Errorf("read body: %w", readErr)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(200*time.Millisecond), 2),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	var parsed reverseResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal reverse geocode response: %w", err)
	}

	res := &Result{
		State:   parsed.Address.State,
		Country: parsed.Address.Country,
	}
	// Providers disagree on which level carries the district.
	switch {
	case parsed.Address.StateDistrict != "":
		res.District = parsed.Address.StateDistrict
	case parsed.Address.County != "":
		res.District = parsed.Address.County
	case parsed.Address.CityDistrict != "":
		res.District = parsed.Address.CityDistrict
	default:
		res.District = parsed.Address.City
	}

	return res, nil
}
