package models

// GenerationAnswers represents the questionnaire answers driving prompt generation.
// Every field may be empty; empty fields are rendered as an explicit placeholder
// in the generation request.
type GenerationAnswers struct {
	Activity    string `json:"activity"`
	Rules       string `json:"rules"`
	Personality string `json:"personality"`
	Scenarios   string `json:"scenarios"`
}

// PromptArtifact represents a generated system prompt with its example questions
type PromptArtifact struct {
	SystemPrompt     string   `json:"system_prompt"`
	ExampleQuestions []string `json:"example_questions"`
}
