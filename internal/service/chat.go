package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/studyhub/platform/domain"
)

// assistantTemperature matches the original assistant configuration.
const assistantTemperature = 0.7

// ChatResult is the outcome of one trip through the pipeline.
type ChatResult struct {
	Response  string
	Subject   domain.Subject
	SessionID string
}

// Chat runs the two-step pipeline: the router classifies the message,
// the subject assistant produces the reply, and both turns are appended
// to the subject's history. Any LLM failure aborts the request; there
// is no retry and no recovery transition.
func (s *Service) Chat(ctx context.Context, message, sessionID string) (*ChatResult, error) {
	if sessionID == "" {
		sessionID = domain.DefaultSessionID
	}

	subject, err := s.Classify(ctx, message)
	if err != nil {
		return nil, err
	}
	s.logger.Info("message routed",
		zap.String("subject", string(subject)),
		zap.String("session_id", sessionID))

	reply, err := s.respond(ctx, subject, sessionID, message)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	userTurn := &domain.Message{
		MessageID: newID("msg"),
		SessionID: sessionID,
		Subject:   subject,
		Role:      domain.RoleUser,
		Content:   message,
		CreatedAt: now,
	}
	if err := s.store.AddMessage(ctx, userTurn); err != nil {
		return nil, fmt.Errorf("failed to record user turn: %w", err)
	}
	assistantTurn := &domain.Message{
		MessageID: newID("msg"),
		SessionID: sessionID,
		Subject:   subject,
		Role:      domain.RoleAssistant,
		Content:   reply,
		CreatedAt: now,
	}
	if err := s.store.AddMessage(ctx, assistantTurn); err != nil {
		return nil, fmt.Errorf("failed to record assistant turn: %w", err)
	}

	return &ChatResult{
		Response:  reply,
		Subject:   subject,
		SessionID: sessionID,
	}, nil
}

// respond produces the assistant reply for an already-routed message.
// The first completion may request tool calls; those are executed once
// and a final completion without tools produces the reply.
func (s *Service) respond(ctx context.Context, subject domain.Subject, sessionID, message string) (string, error) {
	messages, err := s.buildMessages(ctx, subject, sessionID, message)
	if err != nil {
		return "", err
	}

	resp, err := s.llmClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Temperature: assistantTemperature,
		Messages:    messages,
		Tools:       chatTools(),
	})
	if err != nil {
		return "", fmt.Errorf("assistant completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("assistant returned no choices")
	}

	assistantMsg := resp.Choices[0].Message
	if len(assistantMsg.ToolCalls) == 0 {
		return assistantMsg.Content, nil
	}

	// Single tool round: execute every requested call, then make one
	// final completion without tools.
	messages = append(messages, assistantMsg)
	for _, call := range assistantMsg.ToolCalls {
		s.logger.Info("executing tool call",
			zap.String("tool", call.Function.Name),
			zap.String("subject", string(subject)))
		result := s.executeToolCall(ctx, subject, call)
		messages = append(messages, openai.ChatCompletionMessage{
			Role:       openai.ChatMessageRoleTool,
			Content:    result,
			ToolCallID: call.ID,
		})
	}

	final, err := s.llmClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Temperature: assistantTemperature,
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("assistant completion failed: %w", err)
	}
	if len(final.Choices) == 0 {
		return "", fmt.Errorf("assistant returned no choices")
	}
	return final.Choices[0].Message.Content, nil
}

// buildMessages assembles the system prompt (persona, tool
// instructions, bounded notes/solutions context), the recent history
// for the subject, and the new user message.
func (s *Service) buildMessages(ctx context.Context, subject domain.Subject, sessionID, message string) ([]openai.ChatCompletionMessage, error) {
	persona, ok := subjectPrompts[subject]
	if !ok {
		persona = subjectPrompts[domain.SubjectGeneral]
	}

	notes, err := s.store.GetNotes(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	solutions, err := s.store.GetSolutions(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to load solutions: %w", err)
	}
	history, err := s.store.GetHistory(ctx, sessionID, subject, s.cfg.MaxHistoryTurns)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(persona)
	sb.WriteString(toolInstructions)
	sb.WriteString(fmt.Sprintf("\n\nThe current subject is: %s", subject))

	if trimmed := tailNotes(notes, s.cfg.MaxContextNotes); len(trimmed) > 0 {
		sb.WriteString("\n\nSaved notes for this subject:")
		for i, n := range trimmed {
			fmt.Fprintf(&sb, "\n%d. %s", i+1, n.Content)
		}
	}
	if trimmed := tailSolutions(solutions, s.cfg.MaxContextSolutions); len(trimmed) > 0 {
		sb.WriteString("\n\nSaved solutions for this subject:")
		for i, sol := range trimmed {
			fmt.Fprintf(&sb, "\n%d. Problem: %s\n   Solution: %s", i+1, sol.Problem, sol.Solution)
		}
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: sb.String()},
	}
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == domain.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})
	return messages, nil
}

// tailNotes returns the newest max notes, oldest first.
func tailNotes(notes []domain.Note, max int) []domain.Note {
	if max > 0 && len(notes) > max {
		return notes[len(notes)-max:]
	}
	return notes
}

// tailSolutions returns the newest max solutions, oldest first.
func tailSolutions(solutions []domain.Solution, max int) []domain.Solution {
	if max > 0 && len(solutions) > max {
		return solutions[len(solutions)-max:]
	}
	return solutions
}
