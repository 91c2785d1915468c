package service

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/studyhub/platform/domain"
)

// Classify routes the latest user message to one of the fixed subjects.
// It makes a single LLM call with no retry or confidence threshold; a
// failed call propagates to the caller. Labels outside the known set
// fall back to the general subject.
func (s *Service) Classify(ctx context.Context, message string) (domain.Subject, error) {
	resp, err := s.llmClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: routerPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("router completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("router returned no choices")
	}

	label := strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
	subject, err := domain.ParseSubject(label)
	if err != nil {
		s.logger.Warn("router returned unknown label, falling back to general",
			zap.String("label", label))
		return domain.SubjectGeneral, nil
	}
	return subject, nil
}
