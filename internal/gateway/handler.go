package gateway

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/botatelier/prompt-studio/studio-orchestrator/internal/models"
	"github.com/botatelier/prompt-studio/studio-orchestrator/internal/orchestration"
)

// Handler handles HTTP requests for the gateway layer
type Handler struct {
	orchestrationService *orchestration.Service
}

// NewHandler creates a new gateway handler
func NewHandler(orchestrationService *orchestration.Service) *Handler {
	return &Handler{
		orchestrationService: orchestrationService,
	}
}

// GenerateAnswers carries the four questionnaire answers
type GenerateAnswers struct {
	Activity    string `json:"activity"`
	Rules       string `json:"rules"`
	Personality string `json:"personality"`
	Scenarios   string `json:"scenarios"`
}

// GenerateRequest represents a prompt generation request
type GenerateRequest struct {
	Answers GenerateAnswers `json:"answers"`
	Profile string          `json:"profile"`
}

// GenerateResponse represents a prompt generation response
type GenerateResponse struct {
	SystemPrompt     string   `json:"system_prompt"`
	ExampleQuestions []string `json:"example_questions"`
}

// GeneratePrompt godoc
// @Summary Generate system prompt
// @Description Generate a system prompt and example questions from the questionnaire answers
// @Tags generation
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Questionnaire answers and model profile"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /generations [post]
func (h *Handler) GeneratePrompt(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request", Code: models.ErrCodeInvalidRequest})
		return
	}

	// The activity answer is the only mandatory one
	if strings.TrimSpace(req.Answers.Activity) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Décrivez au minimum l'activité", Code: models.ErrCodeValidationFailed})
		return
	}

	profile := req.Profile
	if profile == "" {
		profile = orchestration.ProfileFast
	}
	if !orchestration.KnownProfile(profile) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown model profile: " + profile, Code: models.ErrCodeUnknownProfile})
		return
	}

	answers := models.GenerationAnswers{
		Activity:    req.Answers.Activity,
		Rules:       req.Answers.Rules,
		Personality: req.Answers.Personality,
		Scenarios:   req.Answers.Scenarios,
	}

	artifact, err := h.orchestrationService.GeneratePrompt(c.Request.Context(), answers, profile)
	if err != nil {
		var missingCreds *orchestration.MissingCredentialsError
		if errors.As(err, &missingCreds) {
			log.Printf(`{"level":"error","message":"Generation credentials missing","profile":"%s","error":"%v"}`, profile, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error(), Code: models.ErrCodeMissingCredentials})
			return
		}

		log.Printf(`{"level":"error","message":"Prompt generation failed","profile":"%s","error":"%v"}`, profile, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: err.Error(), Code: models.ErrCodeGenerationFailed})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		SystemPrompt:     artifact.SystemPrompt,
		ExampleQuestions: artifact.ExampleQuestions,
	})
}

// SendMessageRequest represents a chat test message
type SendMessageRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
	Model    string `json:"model"`
}

// SendMessageResponse represents the exchange outcome with the updated transcript
type SendMessageResponse struct {
	Result     models.ChatResult         `json:"result"`
	Transcript []models.ConversationTurn `json:"transcript"`
}

// SendMessage godoc
// @Summary Send chat test message
// @Description Send a message to the chatbot using the current edited prompt. A failed exchange is a 200 carrying an error result, not an HTTP failure.
// @Tags session
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message with optional language and model"
// @Success 200 {object} SendMessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /session/messages [post]
func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request", Code: models.ErrCodeInvalidRequest})
		return
	}

	language := req.Language
	if language == "" {
		language = models.DefaultChatLanguage
	}
	if !contains(models.SupportedChatLanguages, language) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unsupported language: " + language, Code: models.ErrCodeValidationFailed})
		return
	}

	model := req.Model
	if model == "" {
		model = models.DefaultChatModel
	}
	if !contains(models.SupportedChatModels, model) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unsupported model: " + model, Code: models.ErrCodeValidationFailed})
		return
	}

	result, err := h.orchestrationService.SendMessage(c.Request.Context(), req.Message, language, model)
	if err != nil {
		if errors.Is(err, orchestration.ErrSessionNotReady) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Entrez un Project ID et générez un prompt avant de tester", Code: models.ErrCodeSessionNotReady})
			return
		}

		log.Printf(`{"level":"error","message":"Chat message failed","error":"%v"}`, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send message", Code: models.ErrCodeInternalError})
		return
	}

	snapshot := h.orchestrationService.SessionSnapshot()

	c.JSON(http.StatusOK, SendMessageResponse{
		Result:     result,
		Transcript: snapshot.Transcript,
	})
}

// UpdatePromptRequest represents a prompt edit
type UpdatePromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// UpdatePrompt godoc
// @Summary Update edited prompt
// @Description Replace the edited system prompt used for chat testing
// @Tags session
// @Accept json
// @Produce json
// @Param request body UpdatePromptRequest true "Edited prompt"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Router /session/prompt [put]
func (h *Handler) UpdatePrompt(c *gin.Context) {
	var req UpdatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request", Code: models.ErrCodeInvalidRequest})
		return
	}

	h.orchestrationService.UpdatePrompt(req.Prompt)

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SetProjectRequest represents a chatbot project binding. An empty project
// ID unbinds the session.
type SetProjectRequest struct {
	ProjectID string `json:"project_id"`
}

// SetProject godoc
// @Summary Set chatbot project
// @Description Bind the session to a chatbot project. Changing the project clears the transcript.
// @Tags session
// @Accept json
// @Produce json
// @Param request body SetProjectRequest true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Router /session/project [put]
func (h *Handler) SetProject(c *gin.Context) {
	var req SetProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request", Code: models.ErrCodeInvalidRequest})
		return
	}

	h.orchestrationService.SetProjectID(req.ProjectID)

	c.JSON(http.StatusOK, gin.H{"status": "updated", "project_id": req.ProjectID})
}

// ClearTranscript godoc
// @Summary Clear transcript
// @Description Empty the test conversation transcript
// @Tags session
// @Produce json
// @Success 200 {object} map[string]string
// @Router /session/messages [delete]
func (h *Handler) ClearTranscript(c *gin.Context) {
	h.orchestrationService.ClearTranscript()

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// SessionResponse represents the session snapshot with the available chat options
type SessionResponse struct {
	orchestration.SessionSnapshot
	Languages []string `json:"languages"`
	Models    []string `json:"models"`
}

// GetSession godoc
// @Summary Get session state
// @Description Return the current prompt, example questions, project binding, transcript and chat options
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session [get]
func (h *Handler) GetSession(c *gin.Context) {
	snapshot := h.orchestrationService.SessionSnapshot()

	c.JSON(http.StatusOK, SessionResponse{
		SessionSnapshot: snapshot,
		Languages:       models.SupportedChatLanguages,
		Models:          models.SupportedChatModels,
	})
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
