package models

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// Error codes
const (
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeUnknownProfile     = "UNKNOWN_PROFILE"
	ErrCodeMissingCredentials = "MISSING_CREDENTIALS"
	ErrCodeGenerationFailed   = "GENERATION_FAILED"
	ErrCodeSessionNotReady    = "SESSION_NOT_READY"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)
