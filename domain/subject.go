// Package domain defines the core domain models for the study platform.
package domain

import (
	"fmt"
	"strings"
)

// Subject identifies one of the fixed study topics.
type Subject string

const (
	SubjectPython      Subject = "python"
	SubjectLangGraph   Subject = "langgraph"
	SubjectLangChain   Subject = "langchain"
	SubjectJavaScript  Subject = "javascript"
	SubjectLLM         Subject = "llm"
	SubjectAutomation  Subject = "automation"
	SubjectN8N         Subject = "n8n"
	SubjectGoHighLevel Subject = "gohighlevel"
	// SubjectGeneral is the router fallback for messages that fit no
	// specific subject. It is not listed by the subjects endpoint.
	SubjectGeneral Subject = "general"
)

// AllSubjects returns the fixed eight-subject set, excluding the
// general fallback.
func AllSubjects() []Subject {
	return []Subject{
		SubjectPython,
		SubjectLangGraph,
		SubjectLangChain,
		SubjectJavaScript,
		SubjectLLM,
		SubjectAutomation,
		SubjectN8N,
		SubjectGoHighLevel,
	}
}

var validSubjects = map[Subject]bool{
	SubjectPython:      true,
	SubjectLangGraph:   true,
	SubjectLangChain:   true,
	SubjectJavaScript:  true,
	SubjectLLM:         true,
	SubjectAutomation:  true,
	SubjectN8N:         true,
	SubjectGoHighLevel: true,
	SubjectGeneral:     true,
}

// ParseSubject converts a raw label into a Subject, ignoring case.
// Unknown labels return an error; callers decide whether to reject
// (path parameters) or fall back to general (router output).
func ParseSubject(raw string) (Subject, error) {
	s := Subject(strings.ToLower(raw))
	if !validSubjects[s] {
		return "", fmt.Errorf("invalid subject: %s", raw)
	}
	return s, nil
}

// IsValidSubject reports whether the label names a known subject.
func IsValidSubject(raw string) bool {
	return validSubjects[Subject(strings.ToLower(raw))]
}
