package orchestration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/botatelier/prompt-studio/studio-orchestrator/internal/models"
)

// Selectable generation profiles
const (
	ProfileFast      = "gpt-4o-mini"
	ProfileReasoning = "gpt-o3-mini"
)

const (
	azureAPIVersion       = "2024-12-01-preview"
	generationTemperature = 0.7
	generationMaxTokens   = 3000
)

// CredentialSource resolves deployment credentials by key. The boolean
// reports whether a non-empty value was found.
type CredentialSource interface {
	Resolve(key string) (string, bool)
}

// PromptGeneratorInterface defines the interface for the prompt generation client
type PromptGeneratorInterface interface {
	Generate(ctx context.Context, answers models.GenerationAnswers) (*models.PromptArtifact, error)
}

// modelProfile names the credential keys backing one generation profile
type modelProfile struct {
	apiKeyName     string
	endpointName   string
	deploymentName string
}

// modelProfiles is the closed set of selectable profiles. Adding a profile
// means adding a row here, not a branch elsewhere.
var modelProfiles = map[string]modelProfile{
	ProfileFast: {
		apiKeyName:     "GPT4_MINI_API_KEY",
		endpointName:   "GPT4_MINI_ENDPOINT",
		deploymentName: "GPT4_MINI_DEPLOYMENT",
	},
	ProfileReasoning: {
		apiKeyName:     "GPT3_MINI_API_KEY",
		endpointName:   "GPT3_MINI_ENDPOINT",
		deploymentName: "GPT3_MINI_DEPLOYMENT",
	},
}

// ErrUnknownProfile is returned when a profile name is not in the profile table
var ErrUnknownProfile = errors.New("unknown model profile")

// KnownProfile reports whether name selects one of the generation profiles
func KnownProfile(name string) bool {
	_, ok := modelProfiles[name]
	return ok
}

// MissingCredentialsError reports every credential field absent for a profile
type MissingCredentialsError struct {
	Profile string
	Missing []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("missing %s credentials: %s", e.Profile, strings.Join(e.Missing, ", "))
}

// GenerationError wraps any failure of a prompt generation call. The message
// carries the French prefix the frontend displays verbatim.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("Erreur lors de la génération du prompt: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// PromptGenerator handles schema-constrained prompt generation against the
// Azure OpenAI chat completions endpoint
type PromptGenerator struct {
	profile    string
	apiKey     string
	endpoint   string
	deployment string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewPromptGenerator creates a generation client for the named model profile.
// All three profile credentials must resolve; otherwise construction fails
// with a MissingCredentialsError listing every absent field.
func NewPromptGenerator(profileName string, source CredentialSource) (*PromptGenerator, error) {
	profile, ok := modelProfiles[profileName]
	if !ok {
		return nil, fmt.Errorf("%w %q (known profiles: %s, %s)", ErrUnknownProfile, profileName, ProfileFast, ProfileReasoning)
	}

	apiKey, _ := source.Resolve(profile.apiKeyName)
	endpoint, _ := source.Resolve(profile.endpointName)
	deployment, _ := source.Resolve(profile.deploymentName)

	var missing []string
	if apiKey == "" {
		missing = append(missing, "API Key")
	}
	if endpoint == "" {
		missing = append(missing, "Endpoint")
	}
	if deployment == "" {
		missing = append(missing, "Deployment")
	}
	if len(missing) > 0 {
		return nil, &MissingCredentialsError{Profile: profileName, Missing: missing}
	}

	return &PromptGenerator{
		profile:    profileName,
		apiKey:     apiKey,
		endpoint:   strings.TrimRight(endpoint, "/"),
		deployment: deployment,
		// No fixed timeout here: generation calls are bounded by the
		// caller's context, not a client-side deadline.
		httpClient: &http.Client{},
		tracer:     otel.Tracer("prompt-generator-client"),
	}, nil
}

// chatCompletionRequest is the Azure OpenAI chat completions payload
type chatCompletionRequest struct {
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// chatMessage represents one message in the completion request
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// responseFormat constrains the completion output to a JSON schema
type responseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *jsonSchema `json:"json_schema,omitempty"`
}

type jsonSchema struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

// promptArtifactSchema is the strict output schema for the completion call.
// The 4-5 question count is enforced after parsing; strict mode rejects
// minItems/maxItems constraints.
const promptArtifactSchema = `{
	"type": "object",
	"properties": {
		"system_prompt": {"type": "string"},
		"example_questions": {
			"type": "array",
			"items": {"type": "string"}
		}
	},
	"required": ["system_prompt", "example_questions"],
	"additionalProperties": false
}`

// chatCompletionResponse is the subset of the completion response we read
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate runs exactly one completion call and returns the parsed artifact.
// Any failure comes back as a *GenerationError; a partial artifact is never
// produced. There is no automatic retry.
func (g *PromptGenerator) Generate(ctx context.Context, answers models.GenerationAnswers) (*models.PromptArtifact, error) {
	ctx, span := g.tracer.Start(ctx, "prompt_generator.generate")
	defer span.End()

	span.SetAttributes(
		attribute.String("profile", g.profile),
		attribute.String("deployment", g.deployment),
	)

	artifact, err := g.generateInternal(ctx, answers)
	if err != nil {
		span.RecordError(err)
		return nil, &GenerationError{Err: err}
	}

	span.SetAttributes(attribute.Int("example_questions", len(artifact.ExampleQuestions)))

	return artifact, nil
}

// generateInternal performs the actual HTTP request
func (g *PromptGenerator) generateInternal(ctx context.Context, answers models.GenerationAnswers) (*models.PromptArtifact, error) {
	reqBody := chatCompletionRequest{
		Messages: []chatMessage{
			{Role: "system", Content: generationSystemMessage},
			{Role: "user", Content: buildGenerationPrompt(answers)},
		},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
		ResponseFormat: &responseFormat{
			Type: "json_schema",
			JSONSchema: &jsonSchema{
				Name:   "prompt_with_examples",
				Strict: true,
				Schema: json.RawMessage(promptArtifactSchema),
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s", g.endpoint, g.deployment, azureAPIVersion)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("completion endpoint returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("completion endpoint returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("completion response contained no choices")
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("completion response contained no content")
	}

	return parsePromptArtifact(content)
}

// parsePromptArtifact normalizes the model output, which may arrive fenced or
// with minor JSON defects, then validates the artifact contract.
func parsePromptArtifact(content string) (*models.PromptArtifact, error) {
	repaired, err := jsonrepair.RepairJSON(content)
	if err != nil {
		return nil, fmt.Errorf("failed to repair model output: %w", err)
	}

	var artifact models.PromptArtifact
	if err := json.Unmarshal([]byte(repaired), &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}

	if strings.TrimSpace(artifact.SystemPrompt) == "" {
		return nil, fmt.Errorf("model output contained an empty system prompt")
	}
	if n := len(artifact.ExampleQuestions); n < 4 || n > 5 {
		return nil, fmt.Errorf("model output contained %d example questions, expected 4 to 5", n)
	}

	return &artifact, nil
}
