package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTavilySearch(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"title": "n8n 1.0 released", "url": "https://example.com", "content": "release notes"},
			},
		})
	}))
	defer srv.Close()

	client := NewTavilyClient("tvly-test", srv.URL, 5*time.Second)

	results, err := client.Search(context.Background(), "n8n 1.0", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "n8n 1.0 released", results[0].Title)
	assert.Equal(t, "Bearer tvly-test", gotAuth)
	assert.Equal(t, "n8n 1.0", gotBody["query"])
	assert.Equal(t, float64(5), gotBody["max_results"])
}

func TestTavilySearchRequiresAPIKey(t *testing.T) {
	client := NewTavilyClient("", "https://api.tavily.com", time.Second)

	_, err := client.Search(context.Background(), "anything", 5)
	assert.Error(t, err)
}

func TestTavilySearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewTavilyClient("tvly-test", srv.URL, time.Second)

	_, err := client.Search(context.Background(), "anything", 5)
	assert.Error(t, err)
}
