// Package ipclient resolves the caller's coarse location from its IP.
package ipclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
)

type Result struct {
	City    string
	Region  string
	Country string
}

type Client interface {
	Lookup(ctx context.Context, ip string) (*Result, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	return &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type lookupResponse struct {
	Status     string `json:"status"`
	City       string `json:"city"`
	RegionName string `json:"regionName"`
	Country    string `json:"country"`
}

// Lookup queries the geolocation provider for ip; an empty ip asks the
// provider about the requesting address itself.
func (c *client) Lookup(ctx context.Context, ip string) (*Result, error) {
	reqURL := c.baseURL + "/json"
	if ip != "" {
		reqURL = fmt.Sprintf("%s/json/%s", c.baseURL, ip)
	}

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

	var parsed lookupResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal ip lookup response: %w", err)
	}

	if parsed.Status != "" && parsed.Status != "success" {
		return nil, fmt.Errorf("ip lookup failed with status %q", parsed.Status)
	}

	return &Result{
		City:    parsed.City,
		Region:  parsed.RegionName,
		Country: parsed.Country,
	}, nil
}
