package models

// Conversation turn roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn represents one entry in the test conversation transcript
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat result statuses
const (
	ChatStatusSuccess = "success"
	ChatStatusError   = "error"
)

// ChatResult represents the terminal outcome of one chatbot exchange.
// Failures are carried here as values, never raised.
type ChatResult struct {
	Status string `json:"status"`
	Text   string `json:"text"`
}

// Chat defaults applied when a request leaves the field empty
const (
	DefaultChatLanguage = "fr"
	DefaultChatModel    = "gpt-4o-mini"
)

// SupportedChatLanguages lists the languages the chatbot answer API accepts
var SupportedChatLanguages = []string{"fr", "en", "es", "de", "it", "pt", "nl"}

// SupportedChatModels lists the models the chatbot answer API accepts
var SupportedChatModels = []string{"gpt-4o-mini", "gpt-4o", "gpt-3.5-turbo"}
