package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
)

// TestBackends stands in for the two remote services the orchestrator talks
// to: the completion endpoint and the chatbot answer API. Both record the
// traffic they receive so tests can assert on the outbound requests.
type TestBackends struct {
	Completion *httptest.Server
	Chatbot    *httptest.Server

	mu                 sync.Mutex
	completionCalls    int
	chatbotCalls       int
	lastChatbotRequest map[string]interface{}
}

// NewTestBackends starts both fake backends. The completion endpoint always
// returns the given artifact; the answer API always replies with the given
// text. Both are shut down automatically when the test finishes.
func NewTestBackends(t *testing.T, artifact TestArtifact, reply string) *TestBackends {
	t.Helper()

	backends := &TestBackends{}

	backends.Completion = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backends.mu.Lock()
		backends.completionCalls++
		backends.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MockCompletionResponse(MockArtifactContent(artifact)))
	}))

	backends.Chatbot = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)

		backends.mu.Lock()
		backends.chatbotCalls++
		backends.lastChatbotRequest = payload
		backends.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MockAnswerTextResponse(reply))
	}))

	t.Cleanup(backends.Close)

	return backends
}

// ConfigureEnvironment points the fast profile credentials and the chatbot
// base URL at the fake backends. SECRETS_FILE is redirected to a missing
// path so a local secret store cannot shadow the test credentials.
func (b *TestBackends) ConfigureEnvironment(t *testing.T) {
	t.Helper()

	t.Setenv("SECRETS_FILE", filepath.Join(t.TempDir(), "secrets.yaml"))
	t.Setenv("GPT4_MINI_API_KEY", "test-api-key")
	t.Setenv("GPT4_MINI_ENDPOINT", b.Completion.URL)
	t.Setenv("GPT4_MINI_DEPLOYMENT", "gpt-4o-mini-deploy")
	t.Setenv("CHATBOT_API_URL", b.Chatbot.URL)
}

// Close shuts both backends down
func (b *TestBackends) Close() {
	b.Completion.Close()
	b.Chatbot.Close()
}

// CompletionCalls returns the number of completion requests received
func (b *TestBackends) CompletionCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.completionCalls
}

// ChatbotCalls returns the number of answer requests received
func (b *TestBackends) ChatbotCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.chatbotCalls
}

// LastChatbotRequest returns the most recent answer request envelope
func (b *TestBackends) LastChatbotRequest() map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.lastChatbotRequest
}
