// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"github.com/studyhub/platform/domain"
)

// Store defines the interface for subject-scoped data access.
// Notes and solutions are append-only; history supports an explicit
// per-subject clear and nothing else destructive.
type Store interface {
	// Note operations
	AddNote(ctx context.Context, note *domain.Note) error
	GetNotes(ctx context.Context, subject domain.Subject) ([]domain.Note, error)
	SearchNotes(ctx context.Context, subject domain.Subject, query string) ([]domain.Note, error)

	// Solution operations
	AddSolution(ctx context.Context, solution *domain.Solution) error
	GetSolutions(ctx context.Context, subject domain.Subject) ([]domain.Solution, error)
	SearchSolutions(ctx context.Context, subject domain.Subject, query string) ([]domain.Solution, error)

	// History operations
	AddMessage(ctx context.Context, message *domain.Message) error
	GetHistory(ctx context.Context, sessionID string, subject domain.Subject, limit int) ([]domain.Message, error)
	GetAllHistory(ctx context.Context, sessionID string, limit int) ([]domain.Message, error)
	ClearHistory(ctx context.Context, sessionID string, subject domain.Subject) error

	// Lifecycle
	Close() error
}
