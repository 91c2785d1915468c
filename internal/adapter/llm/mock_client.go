package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// MockClient is a deterministic implementation of Client for offline
// runs and tests. Classification requests are answered by keyword
// matching; assistant requests produce canned replies and request a
// web_search tool call for search-intent messages.
type MockClient struct{}

// NewMockClient creates a new mock LLM client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// subjectKeywords maps a subject label to the substrings that select it.
// Longer, more specific labels are listed first so "langgraph" is not
// swallowed by "langchain" lookups and vice versa.
var subjectKeywords = []struct {
	label    string
	keywords []string
}{
	{"gohighlevel", []string{"gohighlevel", "ghl"}},
	{"langgraph", []string{"langgraph"}},
	{"langchain", []string{"langchain"}},
	{"javascript", []string{"javascript", "typescript", "node.js"}},
	{"n8n", []string{"n8n"}},
	{"python", []string{"python", "asyncio", "pandas"}},
	{"automation", []string{"automation", "workflow"}},
	{"llm", []string{"llm", "prompt engineering", "gpt"}},
}

// searchIntents are substrings that make the mock assistant request a
// web_search tool call, mirroring how the real model behaves when the
// user asks for fresh information.
var searchIntents = []string{"search", "latest", "what's new", "whats new", "news"}

// CreateChatCompletion returns a deterministic response.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if err := ctx.Err(); err != nil {
		return openai.ChatCompletionResponse{}, err
	}

	msg := m.respond(req)

	return openai.ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []openai.ChatCompletionChoice{
			{
				Index:        0,
				Message:      msg,
				FinishReason: finishReason(msg),
			},
		},
		Usage: openai.Usage{
			PromptTokens:     m.estimateTokens(req),
			CompletionTokens: len(msg.Content) / 4,
			TotalTokens:      m.estimateTokens(req) + len(msg.Content)/4,
		},
	}, nil
}

func finishReason(msg openai.ChatCompletionMessage) openai.FinishReason {
	if len(msg.ToolCalls) > 0 {
		return openai.FinishReasonToolCalls
	}
	return openai.FinishReasonStop
}

func (m *MockClient) respond(req openai.ChatCompletionRequest) openai.ChatCompletionMessage {
	system := firstMessageWithRole(req.Messages, openai.ChatMessageRoleSystem)
	last := req.Messages[len(req.Messages)-1]

	// Router calls carry the classifier prompt and expect a bare label.
	if strings.Contains(system, "message classifier") {
		return openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: classify(lastMessageWithRole(req.Messages, openai.ChatMessageRoleUser)),
		}
	}

	// Follow-up completion after tool execution: fold the tool results
	// into a final answer.
	if last.Role == openai.ChatMessageRoleTool {
		return openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: fmt.Sprintf("[MOCK] Based on the tool results: %s", truncate(last.Content, 200)),
		}
	}

	userMessage := lastMessageWithRole(req.Messages, openai.ChatMessageRoleUser)

	// Assistant call with tools available: request a web search when the
	// user asks for fresh information.
	if len(req.Tools) > 0 && wantsSearch(userMessage) {
		args, _ := json.Marshal(map[string]string{"query": userMessage})
		return openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleAssistant,
			ToolCalls: []openai.ToolCall{
				{
					ID:   "mock-call-1",
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      "web_search",
						Arguments: string(args),
					},
				},
			},
		}
	}

	if userMessage == "" {
		return openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: "[MOCK] This is a mock response from the LLM client.",
		}
	}

	return openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(userMessage, 100)),
	}
}

// classify mimics the router model: it returns the first subject label
// whose keywords appear in the message, or "general".
func classify(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range subjectKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.label
			}
		}
	}
	return "general"
}

func wantsSearch(message string) bool {
	lower := strings.ToLower(message)
	for _, intent := range searchIntents {
		if strings.Contains(lower, intent) {
			return true
		}
	}
	return false
}

func firstMessageWithRole(messages []openai.ChatCompletionMessage, role string) string {
	for _, msg := range messages {
		if msg.Role == role {
			return msg.Content
		}
	}
	return ""
}

func lastMessageWithRole(messages []openai.ChatCompletionMessage, role string) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == role {
			return messages[i].Content
		}
	}
	return ""
}

func (m *MockClient) estimateTokens(req openai.ChatCompletionRequest) int {
	total := 0
	for _, msg := range req.Messages {
		total += len(msg.Content) / 4
	}
	return total
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
