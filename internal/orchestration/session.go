package orchestration

import (
	"sync"

	"github.com/botatelier/prompt-studio/studio-orchestrator/internal/models"
)

// Session holds the single interactive authoring session: the generated
// artifact, the edited prompt used for testing, the chatbot project binding,
// and the test conversation transcript. The transcript is append-only except
// for the explicit clear operations.
type Session struct {
	mu               sync.Mutex
	generatedPrompt  string
	editedPrompt     string
	exampleQuestions []string
	projectID        string
	transcript       []models.ConversationTurn
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{}
}

// SessionSnapshot is a read-only copy of the session state
type SessionSnapshot struct {
	GeneratedPrompt  string                    `json:"generated_prompt"`
	EditedPrompt     string                    `json:"edited_prompt"`
	ExampleQuestions []string                  `json:"example_questions"`
	ProjectID        string                    `json:"project_id"`
	Transcript       []models.ConversationTurn `json:"transcript"`
}

// StoreArtifact installs a freshly generated artifact. The edited prompt is
// reset to the new artifact; the transcript is kept.
func (s *Session) StoreArtifact(artifact *models.PromptArtifact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generatedPrompt = artifact.SystemPrompt
	s.editedPrompt = artifact.SystemPrompt
	s.exampleQuestions = append([]string(nil), artifact.ExampleQuestions...)
}

// UpdatePrompt replaces the edited prompt used for chat testing. The
// generated artifact itself stays untouched.
func (s *Session) UpdatePrompt(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editedPrompt = prompt
}

// SetProjectID binds the session to a chatbot project. Moving to a different
// project clears the transcript; re-setting the same project is a no-op.
func (s *Session) SetProjectID(projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if projectID == s.projectID {
		return
	}

	s.projectID = projectID
	s.transcript = nil
}

// ProjectID returns the bound chatbot project
func (s *Session) ProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.projectID
}

// EditedPrompt returns the prompt currently used for chat testing
func (s *Session) EditedPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editedPrompt
}

// AppendTurn appends one turn to the transcript
func (s *Session) AppendTurn(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = append(s.transcript, models.ConversationTurn{Role: role, Content: content})
}

// ClearTranscript empties the transcript
func (s *Session) ClearTranscript() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = nil
}

// Snapshot returns a copy of the session state. Mutating the copy does not
// touch the session.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionSnapshot{
		GeneratedPrompt:  s.generatedPrompt,
		EditedPrompt:     s.editedPrompt,
		ExampleQuestions: append([]string{}, s.exampleQuestions...),
		ProjectID:        s.projectID,
		Transcript:       append([]models.ConversationTurn{}, s.transcript...),
	}
}
