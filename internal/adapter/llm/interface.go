// Package llm provides an abstraction for LLM chat completion clients.
package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client defines the interface for LLM chat completion operations.
// Both the router and the subject assistant use it, with no retry or
// fallback on top: a failed call surfaces to the caller.
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Ensure implementations satisfy the interface.
var (
	_ Client = (*OpenAIClient)(nil)
	_ Client = (*MockClient)(nil)
)
