package integration

import (
	"os"
)

// LiveConfig holds endpoints and credentials for tests that exercise real services
type LiveConfig struct {
	CompletionAPIKey     string
	CompletionEndpoint   string
	CompletionDeployment string
	ChatbotAPIURL        string
	ProjectID            string
}

// SetupLiveEnvironment resolves the live test configuration from the environment
func SetupLiveEnvironment() *LiveConfig {
	return &LiveConfig{
		CompletionAPIKey:     os.Getenv("GPT4_MINI_API_KEY"),
		CompletionEndpoint:   os.Getenv("GPT4_MINI_ENDPOINT"),
		CompletionDeployment: os.Getenv("GPT4_MINI_DEPLOYMENT"),
		ChatbotAPIURL:        chatbotAPIURL(),
		ProjectID:            os.Getenv("TEST_PROJECT_ID"),
	}
}

// HasGenerationCredentials reports whether the Azure OpenAI profile is fully configured
func (c *LiveConfig) HasGenerationCredentials() bool {
	return c.CompletionAPIKey != "" && c.CompletionEndpoint != "" && c.CompletionDeployment != ""
}

// HasChatbotProject reports whether a live chatbot project is available for testing
func (c *LiveConfig) HasChatbotProject() bool {
	return c.ProjectID != ""
}

// chatbotAPIURL returns the answer API base URL, falling back to production
func chatbotAPIURL() string {
	if url := os.Getenv("CHATBOT_API_URL"); url != "" {
		return url
	}

	return "https://genii-messages-01.tolk.ai"
}
