package search

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// TavilyClient calls the hosted Tavily search API.
type TavilyClient struct {
	client *resty.Client
	apiKey string
}

// tavilyResponse is the subset of the Tavily search response we use.
type tavilyResponse struct {
	Results []Result `json:"results"`
}

// NewTavilyClient creates a client for the Tavily search API.
func NewTavilyClient(apiKey, baseURL string, timeout time.Duration) *TavilyClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &TavilyClient{client: client, apiKey: apiKey}
}

// Search runs a web search and returns up to maxResults hits.
func (c *TavilyClient) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("TAVILY_API_KEY is not set")
	}

	var result tavilyResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"query":       query,
			"max_results": maxResults,
		}).
		SetResult(&result).
		Post("/search")

	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode())
	}

	return result.Results, nil
}
