package orchestration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/botatelier/prompt-studio/studio-orchestrator/internal/models"
)

const (
	defaultChatbotAPIURL = "https://genii-messages-01.tolk.ai"
	chatRequestTimeout   = 30 * time.Second
)

// ChatbotClientInterface defines the interface for the chatbot test client
type ChatbotClientInterface interface {
	SendMessage(ctx context.Context, message, language, model string) models.ChatResult
}

// ChatbotClient sends test messages to the chatbot answer API on behalf of
// one project and one system prompt. Construction never fails; every failure
// is reported per message.
type ChatbotClient struct {
	projectID    string
	systemPrompt string
	baseURL      string
	httpClient   *http.Client
	tracer       trace.Tracer
}

// NewChatbotClient creates a client bound to a project and a system prompt
func NewChatbotClient(projectID, systemPrompt string) *ChatbotClient {
	baseURL := os.Getenv("CHATBOT_API_URL")
	if baseURL == "" {
		baseURL = defaultChatbotAPIURL
	}

	return &ChatbotClient{
		projectID:    projectID,
		systemPrompt: systemPrompt,
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: chatRequestTimeout,
		},
		tracer: otel.Tracer("chatbot-client"),
	}
}

// SetBaseURL sets the base URL for testing purposes
func (c *ChatbotClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// answerRequest is the chatbot answer API envelope
type answerRequest struct {
	Conversation conversationRef `json:"conversation"`
	Message      messageBody     `json:"message"`
	Trigger      answerTrigger   `json:"trigger"`
	User         answerUser      `json:"user"`
	History      []interface{}   `json:"history"`
	PromptConfig promptConfig    `json:"promptConfig"`
}

type conversationRef struct {
	ID string `json:"id"`
}

type messageBody struct {
	Text string `json:"text"`
}

type answerTrigger struct {
	Type     string      `json:"type"`
	Resource interface{} `json:"resource"`
}

type answerUser struct {
	ID       string `json:"id"`
	Language string `json:"language"`
}

type promptConfig struct {
	Value       string `json:"value"`
	Temperature int    `json:"temperature"`
	Model       string `json:"model"`
}

// answerResponse covers the response shapes the answer API is known to
// return. Content may be a sequence of blocks or plain text.
type answerResponse struct {
	Answer struct {
		Text string `json:"text"`
	} `json:"answer"`
	Content json.RawMessage `json:"content"`
}

// replyText tries the extraction rules in order and returns the first
// non-empty hit. An empty value never satisfies a rule.
func (r *answerResponse) replyText() (string, bool) {
	probes := []func() string{
		r.answerText,
		r.firstContentBlockText,
		r.plainContentText,
	}

	for _, probe := range probes {
		if text := probe(); text != "" {
			return text, true
		}
	}

	return "", false
}

func (r *answerResponse) answerText() string {
	return r.Answer.Text
}

func (r *answerResponse) firstContentBlockText() string {
	if len(r.Content) == 0 {
		return ""
	}

	var blocks []struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(r.Content, &blocks); err != nil {
		return ""
	}

	for _, block := range blocks {
		if block.Text != "" {
			return block.Text
		}
	}

	return ""
}

func (r *answerResponse) plainContentText() string {
	if len(r.Content) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(r.Content, &text); err != nil {
		return ""
	}

	return text
}

// SendMessage sends one message through the answer API and returns the
// outcome as a value. Every invocation makes exactly one outbound request
// with fresh conversation and user identifiers.
func (c *ChatbotClient) SendMessage(ctx context.Context, message, language, model string) models.ChatResult {
	ctx, span := c.tracer.Start(ctx, "chatbot.send_message")
	defer span.End()

	span.SetAttributes(
		attribute.String("project_id", c.projectID),
		attribute.String("language", language),
		attribute.String("model", model),
	)

	result := c.sendMessageInternal(ctx, message, language, model)
	if result.Status == models.ChatStatusError {
		span.SetAttributes(attribute.String("chat.error", result.Text))
		log.Printf(`{"level":"warn","message":"Chat exchange failed","project_id":"%s","error":"%s"}`, c.projectID, result.Text)
	}

	return result
}

// sendMessageInternal performs the actual HTTP request
func (c *ChatbotClient) sendMessageInternal(ctx context.Context, message, language, model string) models.ChatResult {
	reqBody := answerRequest{
		Conversation: conversationRef{ID: uuid.New().String()},
		Message:      messageBody{Text: strings.TrimSpace(message)},
		Trigger:      answerTrigger{Type: "input", Resource: nil},
		User:         answerUser{ID: uuid.New().String(), Language: language},
		History:      []interface{}{},
		PromptConfig: promptConfig{Value: c.systemPrompt, Temperature: 0, Model: model},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return chatError(fmt.Sprintf("Error: %v", err))
	}

	url := fmt.Sprintf("%s/v1/projects/%s/answer", c.baseURL, c.projectID)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return chatError(fmt.Sprintf("Error: %v", err))
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return chatError("Request timed out. Please try again.")
		}
		return chatError(fmt.Sprintf("Error: %v", err))
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return chatError(fmt.Sprintf("Error: %v", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return chatError(fmt.Sprintf("HTTP error! status: %d, body: %s", resp.StatusCode, string(bodyBytes)))
	}

	var payload answerResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return chatError(fmt.Sprintf("Error: %v", err))
	}

	text, ok := payload.replyText()
	if !ok {
		return chatError("Unable to extract text from API response")
	}

	return models.ChatResult{Status: models.ChatStatusSuccess, Text: text}
}

func chatError(text string) models.ChatResult {
	return models.ChatResult{Status: models.ChatStatusError, Text: text}
}

// isTimeout reports whether the request failed by exceeding its deadline
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
