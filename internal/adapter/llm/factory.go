package llm

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

// NewClient creates an LLM client based on the STUDYHUB_MODE environment
// variable. If STUDYHUB_MODE=MOCK, returns a MockClient; otherwise
// returns a real OpenAI client.
func NewClient(apiKey, baseURL string, timeout time.Duration) Client {
	if os.Getenv(EnvMode) == ModeMock {
		log.Println("STUDYHUB_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}

	return NewOpenAIClient(apiKey, baseURL, timeout)
}
