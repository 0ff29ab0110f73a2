package orchestration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botatelier/prompt-studio/studio-orchestrator/internal/models"
)

func TestNewChatbotClient(t *testing.T) {
	t.Run("uses_default_base_url", func(t *testing.T) {
		client := NewChatbotClient("test-project", "You are helpful.")

		assert.Equal(t, "test-project", client.projectID)
		assert.Equal(t, "You are helpful.", client.systemPrompt)
		assert.Contains(t, client.baseURL, "tolk.ai")
		assert.NotNil(t, client.httpClient)
		assert.NotNil(t, client.tracer)
	})

	t.Run("environment_overrides_base_url", func(t *testing.T) {
		t.Setenv("CHATBOT_API_URL", "https://chatbot.internal.example.com")

		client := NewChatbotClient("test-project", "You are helpful.")

		assert.Equal(t, "https://chatbot.internal.example.com", client.baseURL)
	})
}

func TestChatbotClient_SendMessage(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse func(w http.ResponseWriter, r *http.Request)
		expectedStatus string
		expectedText   string
	}{
		{
			name: "reply_in_answer_text",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "POST", r.Method)
				assert.Equal(t, "/v1/projects/test-project/answer", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"answer": {"text": "Bonjour!"}}`))
			},
			expectedStatus: models.ChatStatusSuccess,
			expectedText:   "Bonjour!",
		},
		{
			name: "answer_text_wins_over_content",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"answer": {"text": "Depuis answer"}, "content": [{"text": "Depuis content"}]}`))
			},
			expectedStatus: models.ChatStatusSuccess,
			expectedText:   "Depuis answer",
		},
		{
			name: "reply_in_first_content_block",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"content": [{"type": "text", "text": "Premier bloc"}, {"type": "text", "text": "Second bloc"}]}`))
			},
			expectedStatus: models.ChatStatusSuccess,
			expectedText:   "Premier bloc",
		},
		{
			name: "empty_content_block_is_skipped",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"content": [{"text": ""}, {"text": "Second bloc"}]}`))
			},
			expectedStatus: models.ChatStatusSuccess,
			expectedText:   "Second bloc",
		},
		{
			name: "reply_in_plain_content_string",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"content": "Texte brut"}`))
			},
			expectedStatus: models.ChatStatusSuccess,
			expectedText:   "Texte brut",
		},
		{
			name: "empty_answer_text_falls_through_to_content",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"answer": {"text": ""}, "content": "Repli"}`))
			},
			expectedStatus: models.ChatStatusSuccess,
			expectedText:   "Repli",
		},
		{
			name: "no_extractable_reply",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"status": "ok"}`))
			},
			expectedStatus: models.ChatStatusError,
			expectedText:   "Unable to extract text from API response",
		},
		{
			name: "content_blocks_without_text_fields",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"content": ["juste une chaîne"]}`))
			},
			expectedStatus: models.ChatStatusError,
			expectedText:   "Unable to extract text from API response",
		},
		{
			name: "http_error_includes_status_and_body",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("oops"))
			},
			expectedStatus: models.ChatStatusError,
			expectedText:   "HTTP error! status: 500, body: oops",
		},
		{
			name: "error_body_is_carried_verbatim",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"message": "project not found"}`))
			},
			expectedStatus: models.ChatStatusError,
			expectedText:   `HTTP error! status: 404, body: {"message": "project not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResponse))
			defer server.Close()

			client := NewChatbotClient("test-project", "You are helpful.")
			client.SetBaseURL(server.URL)

			result := client.SendMessage(context.Background(), "Bonjour", "fr", "gpt-4o-mini")

			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, tt.expectedText, result.Text)
		})
	}
}

func TestChatbotClient_SendMessage_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewChatbotClient("test-project", "You are helpful.")
	client.SetBaseURL(server.URL)

	result := client.SendMessage(context.Background(), "Bonjour", "fr", "gpt-4o-mini")

	assert.Equal(t, models.ChatStatusError, result.Status)
	assert.True(t, strings.HasPrefix(result.Text, "Error: "))
}

func TestChatbotClient_SendMessage_Envelope(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&captured)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"answer": {"text": "Bonjour!"}}`))
	}))
	defer server.Close()

	client := NewChatbotClient("test-project", "You are a ski shop assistant.")
	client.SetBaseURL(server.URL)

	result := client.SendMessage(context.Background(), "  Bonjour  ", "en", "gpt-4o")
	require.Equal(t, models.ChatStatusSuccess, result.Status)

	conversation := captured["conversation"].(map[string]interface{})
	_, err := uuid.Parse(conversation["id"].(string))
	assert.NoError(t, err)

	message := captured["message"].(map[string]interface{})
	assert.Equal(t, "Bonjour", message["text"], "message text should be trimmed")

	trigger := captured["trigger"].(map[string]interface{})
	assert.Equal(t, "input", trigger["type"])
	assert.Nil(t, trigger["resource"])

	user := captured["user"].(map[string]interface{})
	_, err = uuid.Parse(user["id"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "en", user["language"])

	// history must serialize as an empty array, not null
	history, ok := captured["history"].([]interface{})
	require.True(t, ok)
	assert.Len(t, history, 0)

	promptCfg := captured["promptConfig"].(map[string]interface{})
	assert.Equal(t, "You are a ski shop assistant.", promptCfg["value"])
	assert.Equal(t, float64(0), promptCfg["temperature"])
	assert.Equal(t, "gpt-4o", promptCfg["model"])
}

func TestChatbotClient_SendMessage_FreshIdentifiers(t *testing.T) {
	var conversationIDs, userIDs []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&payload)
		assert.NoError(t, err)

		conversationIDs = append(conversationIDs, payload["conversation"].(map[string]interface{})["id"].(string))
		userIDs = append(userIDs, payload["user"].(map[string]interface{})["id"].(string))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"answer": {"text": "Bonjour!"}}`))
	}))
	defer server.Close()

	client := NewChatbotClient("test-project", "You are helpful.")
	client.SetBaseURL(server.URL)

	client.SendMessage(context.Background(), "Premier", "fr", "gpt-4o-mini")
	client.SendMessage(context.Background(), "Second", "fr", "gpt-4o-mini")

	require.Len(t, conversationIDs, 2)
	assert.NotEqual(t, conversationIDs[0], conversationIDs[1])
	assert.NotEqual(t, userIDs[0], userIDs[1])
}

func TestChatbotClient_SendMessage_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"answer": {"text": "Trop tard"}}`))
	}))
	defer server.Close()

	client := NewChatbotClient("test-project", "You are helpful.")
	client.SetBaseURL(server.URL)
	client.httpClient.Timeout = 50 * time.Millisecond

	result := client.SendMessage(context.Background(), "Bonjour", "fr", "gpt-4o-mini")

	assert.Equal(t, models.ChatStatusError, result.Status)
	assert.Equal(t, "Request timed out. Please try again.", result.Text)
}

func TestChatbotClient_SendMessage_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"answer": {"text": "Trop tard"}}`))
	}))
	defer server.Close()

	client := NewChatbotClient("test-project", "You are helpful.")
	client.SetBaseURL(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result := client.SendMessage(ctx, "Bonjour", "fr", "gpt-4o-mini")

	assert.Equal(t, models.ChatStatusError, result.Status)
	assert.Equal(t, "Request timed out. Please try again.", result.Text)
}
