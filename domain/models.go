package domain

import "time"

// Note is a study note scoped to a single subject. Notes are
// append-only: they are never mutated or deleted.
type Note struct {
	NoteID    string    `json:"note_id"`
	Subject   Subject   `json:"subject"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Solution is a problem/fix pair recorded from past experience,
// scoped to a single subject. Same lifecycle as Note.
type Solution struct {
	SolutionID string    `json:"solution_id"`
	Subject    Subject   `json:"subject"`
	Problem    string    `json:"problem"`
	Solution   string    `json:"solution"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Message is a single conversation turn (user or assistant) in a
// subject's history.
type Message struct {
	MessageID string    `json:"message_id"`
	SessionID string    `json:"session_id"`
	Subject   Subject   `json:"subject"`
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Roles for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultSessionID is used when a chat or history request carries no
// explicit session identifier.
const DefaultSessionID = "default"
