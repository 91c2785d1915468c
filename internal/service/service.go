// Package service implements the router → assistant chat pipeline and
// the tool executors behind it.
package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studyhub/platform/config"
	"github.com/studyhub/platform/internal/adapter/llm"
	"github.com/studyhub/platform/internal/adapter/search"
	"github.com/studyhub/platform/internal/tools"
	"github.com/studyhub/platform/policy"
	"github.com/studyhub/platform/store"
)

// Service wires the store, the LLM and search adapters, and the tool
// policy into the chat pipeline.
type Service struct {
	store        store.Store
	llmClient    llm.Client
	searchClient search.Client
	policyEngine *policy.Engine
	registry     *tools.Registry
	cfg          *config.Config
	logger       *zap.Logger
}

// New creates a Service and registers the built-in tool executors.
func New(st store.Store, llmClient llm.Client, searchClient search.Client, policyEngine *policy.Engine, cfg *config.Config, logger *zap.Logger) *Service {
	s := &Service{
		store:        st,
		llmClient:    llmClient,
		searchClient: searchClient,
		policyEngine: policyEngine,
		registry:     tools.NewRegistry(),
		cfg:          cfg,
		logger:       logger,
	}
	s.registerTools()
	return s
}

// newID builds a short prefixed identifier.
func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}
