package poster

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
)

// Client looks up movie poster images through the TMDB search API. This is a
// presentation-layer concern: the recommendation engine itself never calls it.
type Client struct {
	apiKey    string
	baseURL   string
	imageBase string
	client    *http.Client
}

func NewClient(apiKey, baseURL, imageBase string, timeout time.Duration) *Client {
	return &Client{
		apiKey:    apiKey,
		baseURL:   baseURL,
		imageBase: imageBase,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type searchResponse struct {
	Results []struct {
		PosterPath string `json:"poster_path"`
	} `json:"results"`
}

// Lookup returns the poster image URL for a title, or an empty string when
// the search finds nothing usable.
func (c *Client) Lookup(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/movie?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("parsing error: %w", err)
	}

	if len(payload.Results) == 0 || payload.Results[0].PosterPath == "" {
		return "", nil
	}
	return c.imageBase + payload.Results[0].PosterPath, nil
}
