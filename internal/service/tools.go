package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/studyhub/platform/domain"
	"github.com/studyhub/platform/policy"
)

// Tool names exposed to the assistant.
const (
	toolSaveNote     = "save_note"
	toolSaveSolution = "save_solution"
	toolWebSearch    = "web_search"
)

// webSearchMaxResults bounds how many hits a single web_search call
// feeds back into the prompt.
const webSearchMaxResults = 5

const subjectEnumSchema = `["python", "langgraph", "langchain", "javascript", "llm", "automation", "n8n", "gohighlevel", "general"]`

// chatTools returns the tool definitions offered to the assistant.
func chatTools() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        toolSaveNote,
				Description: "Save a study note for a specific subject.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"content": {"type": "string", "description": "The note content to save"},
						"subject": {"type": "string", "enum": ` + subjectEnumSchema + `},
						"tags": {"type": "array", "items": {"type": "string"}}
					},
					"required": ["content", "subject"]
				}`),
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        toolSaveSolution,
				Description: "Save a problem-solution pair from past experience.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"problem": {"type": "string", "description": "Description of the problem encountered"},
						"solution": {"type": "string", "description": "How the problem was solved"},
						"subject": {"type": "string", "enum": ` + subjectEnumSchema + `},
						"tags": {"type": "array", "items": {"type": "string"}}
					},
					"required": ["problem", "solution", "subject"]
				}`),
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        toolWebSearch,
				Description: "Search the web for the latest information on a topic.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"query": {"type": "string", "description": "The search query"}
					},
					"required": ["query"]
				}`),
			},
		},
	}
}

// parseToolSubject maps a tool-call subject argument onto a known
// subject, falling back to general for anything unrecognized.
func parseToolSubject(raw string) domain.Subject {
	subject, err := domain.ParseSubject(strings.ToLower(raw))
	if err != nil {
		return domain.SubjectGeneral
	}
	return subject
}

// registerTools installs the built-in tool executors.
func (s *Service) registerTools() {
	type noteArgs struct {
		Content string   `json:"content"`
		Subject string   `json:"subject"`
		Tags    []string `json:"tags"`
	}
	if err := s.registry.Register(toolSaveNote, func(ctx context.Context, args json.RawMessage) (string, error) {
		var a noteArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", fmt.Errorf("invalid save_note arguments: %w", err)
		}
		note := &domain.Note{
			NoteID:    newID("note"),
			Subject:   parseToolSubject(a.Subject),
			Content:   a.Content,
			Tags:      a.Tags,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.AddNote(ctx, note); err != nil {
			return "", err
		}
		return fmt.Sprintf("Note saved successfully! ID: %s", note.NoteID), nil
	}); err != nil {
		panic(err)
	}

	type solutionArgs struct {
		Problem  string   `json:"problem"`
		Solution string   `json:"solution"`
		Subject  string   `json:"subject"`
		Tags     []string `json:"tags"`
	}
	if err := s.registry.Register(toolSaveSolution, func(ctx context.Context, args json.RawMessage) (string, error) {
		var a solutionArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", fmt.Errorf("invalid save_solution arguments: %w", err)
		}
		solution := &domain.Solution{
			SolutionID: newID("sol"),
			Subject:    parseToolSubject(a.Subject),
			Problem:    a.Problem,
			Solution:   a.Solution,
			Tags:       a.Tags,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.store.AddSolution(ctx, solution); err != nil {
			return "", err
		}
		return fmt.Sprintf("Solution saved successfully! ID: %s", solution.SolutionID), nil
	}); err != nil {
		panic(err)
	}

	type searchArgs struct {
		Query string `json:"query"`
	}
	if err := s.registry.Register(toolWebSearch, func(ctx context.Context, args json.RawMessage) (string, error) {
		var a searchArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", fmt.Errorf("invalid web_search arguments: %w", err)
		}
		results, err := s.searchClient.Search(ctx, a.Query, webSearchMaxResults)
		if err != nil {
			return "", err
		}
		if len(results) == 0 {
			return fmt.Sprintf("No results found for %q.", a.Query), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Web search results for %q:\n\n", a.Query)
		for i, r := range results {
			fmt.Fprintf(&sb, "%d. %s\n   %s\n   URL: %s\n\n", i+1, r.Title, r.Content, r.URL)
		}
		return sb.String(), nil
	}); err != nil {
		panic(err)
	}
}

// executeToolCall runs one assistant tool call through the policy gate
// and the executor registry. Failures become explanatory result text so
// the final completion can still answer; they never abort the request.
func (s *Service) executeToolCall(ctx context.Context, subject domain.Subject, call openai.ToolCall) string {
	decision, err := s.policyEngine.Evaluate(ctx, map[string]any{
		"tool_name":          call.Function.Name,
		"subject":            string(subject),
		"web_search_enabled": s.cfg.WebSearchEnabled,
	})
	if err != nil {
		s.logger.Error("policy evaluation failed", zap.Error(err))
		return fmt.Sprintf("Tool %s is unavailable: policy evaluation failed.", call.Function.Name)
	}
	if decision == policy.DecisionBlock {
		s.logger.Info("tool call blocked by policy",
			zap.String("tool", call.Function.Name),
			zap.String("subject", string(subject)))
		return fmt.Sprintf("Tool %s is disabled by policy.", call.Function.Name)
	}

	result, err := s.registry.Execute(ctx, call.Function.Name, json.RawMessage(call.Function.Arguments))
	if err != nil {
		s.logger.Warn("tool execution failed",
			zap.String("tool", call.Function.Name),
			zap.Error(err))
		return fmt.Sprintf("Tool %s failed: %v", call.Function.Name, err)
	}
	return result
}
