package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/platform/domain"
	"github.com/studyhub/platform/tests/helpers"
)

func TestNotesSubjectIsolation(t *testing.T) {
	s := helpers.NewTestSQLiteStore(t)
	ctx := context.Background()

	err := s.AddNote(ctx, &domain.Note{
		NoteID:    "note_1",
		Subject:   domain.SubjectPython,
		Content:   "list comprehensions beat map+lambda",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	err = s.AddNote(ctx, &domain.Note{
		NoteID:    "note_2",
		Subject:   domain.SubjectJavaScript,
		Content:   "prefer const over let",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	pyNotes, err := s.GetNotes(ctx, domain.SubjectPython)
	require.NoError(t, err)
	require.Len(t, pyNotes, 1)
	assert.Equal(t, "note_1", pyNotes[0].NoteID)
	assert.Equal(t, domain.SubjectPython, pyNotes[0].Subject)

	jsNotes, err := s.GetNotes(ctx, domain.SubjectJavaScript)
	require.NoError(t, err)
	require.Len(t, jsNotes, 1)
	assert.Equal(t, "note_2", jsNotes[0].NoteID)

	empty, err := s.GetNotes(ctx, domain.SubjectN8N)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNotesOrderAndTags(t *testing.T) {
	s := helpers.NewTestSQLiteStore(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := s.AddNote(ctx, &domain.Note{
			NoteID:    fmt.Sprintf("note_%d", i),
			Subject:   domain.SubjectLLM,
			Content:   fmt.Sprintf("note number %d", i),
			Tags:      []string{"rag", fmt.Sprintf("t%d", i)},
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	notes, err := s.GetNotes(ctx, domain.SubjectLLM)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	for i, n := range notes {
		assert.Equal(t, fmt.Sprintf("note_%d", i+1), n.NoteID)
	}
	assert.Equal(t, []string{"rag", "t1"}, notes[0].Tags)
}

func TestSearchNotes(t *testing.T) {
	s := helpers.NewTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddNote(ctx, &domain.Note{
		NoteID:    "note_1",
		Subject:   domain.SubjectPython,
		Content:   "Use asyncio.gather for concurrent coroutines",
		CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, s.AddNote(ctx, &domain.Note{
		NoteID:    "note_2",
		Subject:   domain.SubjectPython,
		Content:   "pandas merge is like SQL join",
		Tags:      []string{"dataframes"},
		CreatedAt: time.Now().UTC(),
	}))

	// Case-insensitive content match
	found, err := s.SearchNotes(ctx, domain.SubjectPython, "ASYNCIO")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "note_1", found[0].NoteID)

	// Tag match
	found, err = s.SearchNotes(ctx, domain.SubjectPython, "dataframes")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "note_2", found[0].NoteID)

	// Other subject sees nothing
	found, err = s.SearchNotes(ctx, domain.SubjectJavaScript, "asyncio")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSolutions(t *testing.T) {
	s := helpers.NewTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddSolution(ctx, &domain.Solution{
		SolutionID: "sol_1",
		Subject:    domain.SubjectN8N,
		Problem:    "Webhook node returns 404",
		Solution:   "Activate the workflow so the production URL is registered",
		Tags:       []string{"webhook"},
		CreatedAt:  time.Now().UTC(),
	}))

	solutions, err := s.GetSolutions(ctx, domain.SubjectN8N)
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, "sol_1", solutions[0].SolutionID)
	assert.Equal(t, []string{"webhook"}, solutions[0].Tags)

	// Matches on solution text
	found, err := s.SearchSolutions(ctx, domain.SubjectN8N, "production url")
	require.NoError(t, err)
	require.Len(t, found, 1)

	// Matches on problem text
	found, err = s.SearchSolutions(ctx, domain.SubjectN8N, "404")
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = s.SearchSolutions(ctx, domain.SubjectN8N, "kubernetes")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestHistoryOrderingAndLimit(t *testing.T) {
	s := helpers.NewTestSQLiteStore(t)
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		role := domain.RoleUser
		if i%2 == 0 {
			role = domain.RoleAssistant
		}
		require.NoError(t, s.AddMessage(ctx, &domain.Message{
			MessageID: fmt.Sprintf("msg_%d", i),
			SessionID: "s1",
			Subject:   domain.SubjectPython,
			Role:      role,
			Content:   fmt.Sprintf("turn %d", i),
			CreatedAt: time.Now().UTC(),
		}))
	}

	// Full history, oldest first
	all, err := s.GetHistory(ctx, "s1", domain.SubjectPython, 0)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "msg_1", all[0].MessageID)
	assert.Equal(t, "msg_6", all[5].MessageID)

	// Limit keeps the newest turns, still oldest first
	recent, err := s.GetHistory(ctx, "s1", domain.SubjectPython, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "msg_5", recent[0].MessageID)
	assert.Equal(t, "msg_6", recent[1].MessageID)
}

func TestHistorySessionAndSubjectIsolation(t *testing.T) {
	s := helpers.NewTestSQLiteStore(t)
	ctx := context.Background()

	add := func(id, session string, subject domain.Subject) {
		require.NoError(t, s.AddMessage(ctx, &domain.Message{
			MessageID: id,
			SessionID: session,
			Subject:   subject,
			Role:      domain.RoleUser,
			Content:   "hello",
			CreatedAt: time.Now().UTC(),
		}))
	}
	add("m1", "s1", domain.SubjectPython)
	add("m2", "s1", domain.SubjectJavaScript)
	add("m3", "s2", domain.SubjectPython)

	py, err := s.GetHistory(ctx, "s1", domain.SubjectPython, 0)
	require.NoError(t, err)
	require.Len(t, py, 1)
	assert.Equal(t, "m1", py[0].MessageID)

	all, err := s.GetAllHistory(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClearHistory(t *testing.T) {
	s := helpers.NewTestSQLiteStore(t)
	ctx := context.Background()

	add := func(id, session string, subject domain.Subject) {
		require.NoError(t, s.AddMessage(ctx, &domain.Message{
			MessageID: id,
			SessionID: session,
			Subject:   subject,
			Role:      domain.RoleUser,
			Content:   "hello",
			CreatedAt: time.Now().UTC(),
		}))
	}
	add("m1", "s1", domain.SubjectPython)
	add("m2", "s1", domain.SubjectJavaScript)
	add("m3", "s2", domain.SubjectPython)

	require.NoError(t, s.ClearHistory(ctx, "s1", domain.SubjectPython))

	py, err := s.GetHistory(ctx, "s1", domain.SubjectPython, 0)
	require.NoError(t, err)
	assert.Empty(t, py)

	// Other subject and other session untouched
	js, err := s.GetHistory(ctx, "s1", domain.SubjectJavaScript, 0)
	require.NoError(t, err)
	assert.Len(t, js, 1)

	other, err := s.GetHistory(ctx, "s2", domain.SubjectPython, 0)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
