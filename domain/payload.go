package domain

// ChatRequest is the input for the chat endpoint.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the output of the chat endpoint.
type ChatResponse struct {
	Response        string  `json:"response"`
	DetectedSubject Subject `json:"detected_subject"`
	SessionID       string  `json:"session_id"`
}

// NoteRequest is the input for creating a note.
type NoteRequest struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// NoteResponse wraps a created note.
type NoteResponse struct {
	Note    *Note  `json:"note"`
	Message string `json:"message"`
}

// SolutionRequest is the input for creating a solution.
type SolutionRequest struct {
	Problem  string   `json:"problem"`
	Solution string   `json:"solution"`
	Tags     []string `json:"tags,omitempty"`
}

// SolutionResponse wraps a created solution.
type SolutionResponse struct {
	Solution *Solution `json:"solution"`
	Message  string    `json:"message"`
}

// SubjectListResponse lists the available subjects.
type SubjectListResponse struct {
	Subjects []Subject `json:"subjects"`
	Count    int       `json:"count"`
}
