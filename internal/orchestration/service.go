package orchestration

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/botatelier/prompt-studio/studio-orchestrator/internal/metrics"
	"github.com/botatelier/prompt-studio/studio-orchestrator/internal/models"
)

// chatErrorTurnPrefix marks assistant turns that record a failed exchange
const chatErrorTurnPrefix = "Erreur: "

// ErrSessionNotReady is returned when a chat message is attempted before a
// project and a prompt are configured
var ErrSessionNotReady = errors.New("session has no project or prompt configured")

// GeneratorFactory builds a prompt generation client for a model profile
type GeneratorFactory func(profileName string, source CredentialSource) (PromptGeneratorInterface, error)

// ChatClientFactory builds a chatbot client bound to a project and a prompt
type ChatClientFactory func(projectID, systemPrompt string) ChatbotClientInterface

// Service handles prompt studio orchestration logic. The factories are
// exported so tests can substitute fake clients.
type Service struct {
	NewGenerator  GeneratorFactory
	NewChatClient ChatClientFactory

	session     *Session
	credentials CredentialSource
	callMetrics *metrics.CallMetrics
}

// NewService creates a new orchestration service
func NewService(source CredentialSource, callMetrics *metrics.CallMetrics) *Service {
	return &Service{
		NewGenerator: func(profileName string, src CredentialSource) (PromptGeneratorInterface, error) {
			return NewPromptGenerator(profileName, src)
		},
		NewChatClient: func(projectID, systemPrompt string) ChatbotClientInterface {
			return NewChatbotClient(projectID, systemPrompt)
		},
		session:     NewSession(),
		credentials: source,
		callMetrics: callMetrics,
	}
}

// GeneratePrompt generates a prompt artifact from the questionnaire answers
// and installs it in the session. The transcript survives regeneration; the
// edited prompt is reset to the fresh artifact.
func (s *Service) GeneratePrompt(ctx context.Context, answers models.GenerationAnswers, profileName string) (*models.PromptArtifact, error) {
	start := time.Now()
	s.callMetrics.RecordGenerationStarted(ctx, profileName)

	generator, err := s.NewGenerator(profileName, s.credentials)
	if err != nil {
		s.callMetrics.RecordGenerationFailed(ctx, profileName, "construction", time.Since(start))
		return nil, err
	}

	artifact, err := generator.Generate(ctx, answers)
	if err != nil {
		s.callMetrics.RecordGenerationFailed(ctx, profileName, "generation", time.Since(start))
		return nil, err
	}

	s.session.StoreArtifact(artifact)
	s.callMetrics.RecordGenerationCompleted(ctx, profileName, time.Since(start))

	log.Printf(`{"level":"info","message":"Prompt generated","profile":"%s","example_questions":%d}`, profileName, len(artifact.ExampleQuestions))

	return artifact, nil
}

// SendMessage runs one chat test exchange. A fresh chatbot client is created
// per call so edits to the prompt take effect immediately. Both the user
// message and the outcome are recorded in the transcript; failed exchanges
// are recorded as error-prefixed assistant turns, never raised.
func (s *Service) SendMessage(ctx context.Context, message, language, model string) (models.ChatResult, error) {
	projectID := s.session.ProjectID()
	prompt := s.session.EditedPrompt()
	if strings.TrimSpace(projectID) == "" || strings.TrimSpace(prompt) == "" {
		return models.ChatResult{}, ErrSessionNotReady
	}

	start := time.Now()
	s.callMetrics.RecordChatMessageSent(ctx, model, language)

	s.session.AppendTurn(models.RoleUser, message)

	client := s.NewChatClient(projectID, prompt)
	result := client.SendMessage(ctx, message, language, model)

	if result.Status == models.ChatStatusSuccess {
		s.session.AppendTurn(models.RoleAssistant, result.Text)
		s.callMetrics.RecordChatMessageCompleted(ctx, model, time.Since(start))
	} else {
		s.session.AppendTurn(models.RoleAssistant, chatErrorTurnPrefix+result.Text)
		s.callMetrics.RecordChatMessageFailed(ctx, model, time.Since(start))
	}

	return result, nil
}

// UpdatePrompt replaces the edited prompt used for chat testing
func (s *Service) UpdatePrompt(prompt string) {
	s.session.UpdatePrompt(prompt)
}

// SetProjectID binds the session to a chatbot project
func (s *Service) SetProjectID(projectID string) {
	s.session.SetProjectID(projectID)
}

// ClearTranscript empties the test conversation transcript
func (s *Service) ClearTranscript() {
	s.session.ClearTranscript()
}

// SessionSnapshot returns a copy of the session state
func (s *Service) SessionSnapshot() SessionSnapshot {
	return s.session.Snapshot()
}
