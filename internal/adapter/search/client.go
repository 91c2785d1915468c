// Package search provides an abstraction for hosted web-search clients.
package search

import "context"

// Result is a single web search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Client defines the interface for web-search operations. No retry or
// backoff policy is imposed here; callers decide how failures surface.
type Client interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

// Ensure implementations satisfy the interface.
var (
	_ Client = (*TavilyClient)(nil)
	_ Client = (*MockClient)(nil)
)
