package service

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/studyhub/platform/config"
	"github.com/studyhub/platform/domain"
	"github.com/studyhub/platform/internal/adapter/llm"
	"github.com/studyhub/platform/internal/adapter/search"
	"github.com/studyhub/platform/policy"
	"github.com/studyhub/platform/tests/helpers"
)

func newTestService(t *testing.T, webSearchEnabled bool) *Service {
	t.Helper()

	cfg := &config.Config{
		Model:               "gpt-4o-mini",
		WebSearchEnabled:    webSearchEnabled,
		MaxContextNotes:     20,
		MaxContextSolutions: 20,
		MaxHistoryTurns:     20,
	}
	st := helpers.NewTestSQLiteStore(t)
	policyEngine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	require.NoError(t, err)

	return New(st, llm.NewMockClient(), search.NewMockClient(), policyEngine, cfg, zap.NewNop())
}

func TestClassify(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	cases := []struct {
		message string
		want    domain.Subject
	}{
		{"How do I use asyncio in Python?", domain.SubjectPython},
		{"How does StateGraph routing work in LangGraph?", domain.SubjectLangGraph},
		{"How do I build a retrieval chain with LangChain?", domain.SubjectLangChain},
		{"Explain TypeScript generics", domain.SubjectJavaScript},
		{"What is prompt engineering?", domain.SubjectLLM},
		{"Best practices for reliable automation", domain.SubjectAutomation},
		{"How do I configure an n8n webhook node?", domain.SubjectN8N},
		{"How do I set up a funnel in GHL?", domain.SubjectGoHighLevel},
		{"What should I eat for lunch?", domain.SubjectGeneral},
	}

	for _, tc := range cases {
		subject, err := svc.Classify(ctx, tc.message)
		require.NoError(t, err, tc.message)
		assert.Equal(t, tc.want, subject, tc.message)
	}
}

func TestChatPersistsTurns(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	result, err := svc.Chat(ctx, "How do I use asyncio in Python?", "")
	require.NoError(t, err)
	assert.Equal(t, domain.SubjectPython, result.Subject)
	assert.Equal(t, domain.DefaultSessionID, result.SessionID)
	assert.NotEmpty(t, result.Response)

	_, err = svc.Chat(ctx, "And how do pandas dataframes work?", "")
	require.NoError(t, err)

	history, err := svc.store.GetHistory(ctx, domain.DefaultSessionID, domain.SubjectPython, 0)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, domain.RoleAssistant, history[1].Role)
	assert.Equal(t, domain.RoleUser, history[2].Role)
	assert.Equal(t, domain.RoleAssistant, history[3].Role)
	assert.Equal(t, "How do I use asyncio in Python?", history[0].Content)
	assert.Equal(t, result.Response, history[1].Content)
}

func TestChatWebSearchRound(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	result, err := svc.Chat(ctx, "What's new in n8n 1.0?", "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.SubjectN8N, result.Subject)
	assert.Contains(t, result.Response, "Based on the tool results")
}

func TestChatWebSearchBlockedByPolicy(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	result, err := svc.Chat(ctx, "Search for the latest n8n release", "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.SubjectN8N, result.Subject)
	assert.Contains(t, result.Response, "disabled by policy")
}

func TestExecuteToolCallSaveNote(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	result := svc.executeToolCall(ctx, domain.SubjectPython, openai.ToolCall{
		ID:   "call-1",
		Type: openai.ToolTypeFunction,
		Function: openai.FunctionCall{
			Name:      toolSaveNote,
			Arguments: `{"content":"GIL limits CPU-bound threads","subject":"python","tags":["concurrency"]}`,
		},
	})
	assert.Contains(t, result, "Note saved successfully")

	notes, err := svc.store.GetNotes(ctx, domain.SubjectPython)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "GIL limits CPU-bound threads", notes[0].Content)
	assert.Equal(t, []string{"concurrency"}, notes[0].Tags)
}

func TestExecuteToolCallSaveSolution(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	result := svc.executeToolCall(ctx, domain.SubjectN8N, openai.ToolCall{
		ID:   "call-1",
		Type: openai.ToolTypeFunction,
		Function: openai.FunctionCall{
			Name:      toolSaveSolution,
			Arguments: `{"problem":"webhook 404","solution":"activate the workflow","subject":"n8n"}`,
		},
	})
	assert.Contains(t, result, "Solution saved successfully")

	solutions, err := svc.store.GetSolutions(ctx, domain.SubjectN8N)
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, "webhook 404", solutions[0].Problem)
}

func TestExecuteToolCallUnknownSubjectFallsBack(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	result := svc.executeToolCall(ctx, domain.SubjectGeneral, openai.ToolCall{
		ID:   "call-1",
		Type: openai.ToolTypeFunction,
		Function: openai.FunctionCall{
			Name:      toolSaveNote,
			Arguments: `{"content":"misc fact","subject":"astrology"}`,
		},
	})
	assert.Contains(t, result, "Note saved successfully")

	notes, err := svc.store.GetNotes(ctx, domain.SubjectGeneral)
	require.NoError(t, err)
	require.Len(t, notes, 1)
}

func TestExecuteToolCallFailureBecomesText(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	result := svc.executeToolCall(ctx, domain.SubjectPython, openai.ToolCall{
		ID:   "call-1",
		Type: openai.ToolTypeFunction,
		Function: openai.FunctionCall{
			Name:      "unknown_tool",
			Arguments: `{}`,
		},
	})
	assert.Contains(t, result, "failed")
}
