package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/studyhub/platform/domain"
)

// SQLiteStore implements Store using SQLite. With the default
// ":memory:" DSN everything lives and dies with the process.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			note_id TEXT NOT NULL UNIQUE,
			subject TEXT NOT NULL,
			content TEXT NOT NULL,
			tags TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_subject ON notes(subject, id)`,
		`CREATE TABLE IF NOT EXISTS solutions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			solution_id TEXT NOT NULL UNIQUE,
			subject TEXT NOT NULL,
			problem TEXT NOT NULL,
			solution TEXT NOT NULL,
			tags TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_solutions_subject ON solutions(subject, id)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			message_id TEXT NOT NULL UNIQUE,
			session_id TEXT NOT NULL,
			subject TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, subject, id)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// encodeTags serializes a tag list, using NULL for empty lists.
func encodeTags(tags []string) (any, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}
	return string(data), nil
}

func decodeTags(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw.String), &tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	return tags, nil
}

// AddNote inserts a note.
func (s *SQLiteStore) AddNote(ctx context.Context, note *domain.Note) error {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO notes (note_id, subject, content, tags, created_at) VALUES (?, ?, ?, ?, ?)`,
		note.NoteID, string(note.Subject), note.Content, tags, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// GetNotes returns all notes for a subject in insertion order.
func (s *SQLiteStore) GetNotes(ctx context.Context, subject domain.Subject) ([]domain.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT note_id, subject, content, tags, created_at FROM notes WHERE subject = ? ORDER BY id`,
		string(subject),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

// SearchNotes returns notes whose content or tags contain the query,
// case-insensitively, in insertion order.
func (s *SQLiteStore) SearchNotes(ctx context.Context, subject domain.Subject, query string) ([]domain.Note, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT note_id, subject, content, tags, created_at FROM notes
		 WHERE subject = ? AND (LOWER(content) LIKE ? OR LOWER(COALESCE(tags, '')) LIKE ?)
		 ORDER BY id`,
		string(subject), pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

func scanNotes(rows *sql.Rows) ([]domain.Note, error) {
	notes := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		var rawTags sql.NullString
		if err := rows.Scan(&n.NoteID, &n.Subject, &n.Content, &rawTags, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		tags, err := decodeTags(rawTags)
		if err != nil {
			return nil, err
		}
		n.Tags = tags
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// AddSolution inserts a solution.
func (s *SQLiteStore) AddSolution(ctx context.Context, solution *domain.Solution) error {
	tags, err := encodeTags(solution.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO solutions (solution_id, subject, problem, solution, tags, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		solution.SolutionID, string(solution.Subject), solution.Problem, solution.Solution, tags, solution.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert solution: %w", err)
	}
	return nil
}

// GetSolutions returns all solutions for a subject in insertion order.
func (s *SQLiteStore) GetSolutions(ctx context.Context, subject domain.Subject) ([]domain.Solution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT solution_id, subject, problem, solution, tags, created_at FROM solutions WHERE subject = ? ORDER BY id`,
		string(subject),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query solutions: %w", err)
	}
	defer rows.Close()
	return scanSolutions(rows)
}

// SearchSolutions returns solutions whose problem, fix, or tags contain
// the query, case-insensitively, in insertion order.
func (s *SQLiteStore) SearchSolutions(ctx context.Context, subject domain.Subject, query string) ([]domain.Solution, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT solution_id, subject, problem, solution, tags, created_at FROM solutions
		 WHERE subject = ? AND (LOWER(problem) LIKE ? OR LOWER(solution) LIKE ? OR LOWER(COALESCE(tags, '')) LIKE ?)
		 ORDER BY id`,
		string(subject), pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search solutions: %w", err)
	}
	defer rows.Close()
	return scanSolutions(rows)
}

func scanSolutions(rows *sql.Rows) ([]domain.Solution, error) {
	solutions := []domain.Solution{}
	for rows.Next() {
		var sol domain.Solution
		var rawTags sql.NullString
		if err := rows.Scan(&sol.SolutionID, &sol.Subject, &sol.Problem, &sol.Solution, &rawTags, &sol.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		tags, err := decodeTags(rawTags)
		if err != nil {
			return nil, err
		}
		sol.Tags = tags
		solutions = append(solutions, sol)
	}
	return solutions, rows.Err()
}

// AddMessage appends a conversation turn.
func (s *SQLiteStore) AddMessage(ctx context.Context, message *domain.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (message_id, session_id, subject, role, content, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		message.MessageID, message.SessionID, string(message.Subject), message.Role, message.Content, message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// GetHistory returns the most recent turns for a session and subject,
// oldest first. A non-positive limit means no limit.
func (s *SQLiteStore) GetHistory(ctx context.Context, sessionID string, subject domain.Subject, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, session_id, subject, role, content, created_at FROM messages
		 WHERE session_id = ? AND subject = ? ORDER BY id DESC LIMIT ?`,
		sessionID, string(subject), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	messages, err := scanMessages(rows)
	if err != nil {
		return nil, err
	}
	reverseMessages(messages)
	return messages, nil
}

// GetAllHistory returns the most recent turns for a session across all
// subjects, oldest first.
func (s *SQLiteStore) GetAllHistory(ctx context.Context, sessionID string, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, session_id, subject, role, content, created_at FROM messages
		 WHERE session_id = ? ORDER BY id DESC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	messages, err := scanMessages(rows)
	if err != nil {
		return nil, err
	}
	reverseMessages(messages)
	return messages, nil
}

// ClearHistory removes all turns for a session and subject. Other
// subjects' turns are untouched.
func (s *SQLiteStore) ClearHistory(ctx context.Context, sessionID string, subject domain.Subject) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM messages WHERE session_id = ? AND subject = ?`,
		sessionID, string(subject),
	)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func scanMessages(rows *sql.Rows) ([]domain.Message, error) {
	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.MessageID, &m.SessionID, &m.Subject, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func reverseMessages(messages []domain.Message) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
