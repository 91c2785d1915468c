package search

import (
	"log"
	"os"
	"time"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "STUDYHUB_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewClient creates a search client based on the STUDYHUB_MODE
// environment variable. If STUDYHUB_MODE=MOCK, returns a MockClient;
// otherwise returns a real Tavily client.
func NewClient(apiKey, baseURL string, timeout time.Duration) Client {
	if os.Getenv(EnvMode) == ModeMock {
		log.Println("STUDYHUB_MODE=MOCK detected, using mock search client")
		return NewMockClient()
	}

	return NewTavilyClient(apiKey, baseURL, timeout)
}
