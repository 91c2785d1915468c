package search

import (
	"context"
	"fmt"
)

// MockClient is a deterministic implementation of Client for offline
// runs and tests.
type MockClient struct{}

// NewMockClient creates a new mock search client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Search returns a single canned result echoing the query.
func (m *MockClient) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []Result{
		{
			Title:   fmt.Sprintf("[MOCK] Result for %q", query),
			URL:     "https://example.com/mock-result",
			Content: fmt.Sprintf("Mock search content for %q.", query),
		},
	}, nil
}
