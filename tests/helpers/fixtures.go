package helpers

import (
	"encoding/json"
)

// TestAnswers represents a questionnaire answers fixture
type TestAnswers struct {
	Activity    string `json:"activity"`
	Rules       string `json:"rules"`
	Personality string `json:"personality"`
	Scenarios   string `json:"scenarios"`
}

// TestArtifact represents a generated prompt artifact fixture
type TestArtifact struct {
	SystemPrompt     string   `json:"system_prompt"`
	ExampleQuestions []string `json:"example_questions"`
}

// Default test fixtures
var (
	DefaultTestAnswers = TestAnswers{
		Activity:    "Vente en ligne de matériel de ski et de snowboard, conseils sur les tailles et l'entretien",
		Rules:       "Ne jamais inventer de prix ni de références produit, toujours vouvoyer le client",
		Personality: "Chaleureux, passionné de montagne, réponses courtes et concrètes",
		Scenarios:   "Pour toute réclamation ou retour, rediriger vers le service client",
	}

	DefaultTestArtifact = TestArtifact{
		SystemPrompt: "You are a ski shop assistant for an online winter sports store. Guide customers toward the right gear, never invent prices, and always use the formal \"vous\" form.",
		ExampleQuestions: []string{
			"Quels skis recommandez-vous pour un débutant ?",
			"Comment choisir la taille de mes chaussures de ski ?",
			"Avez-vous des promotions en cours ?",
			"Quelle est la durée de livraison ?",
		},
	}
)

// ToJSON converts a fixture to JSON string
func ToJSON(fixture interface{}) string {
	data, _ := json.Marshal(fixture)
	return string(data)
}

// FromJSON parses JSON string to map
func FromJSON(jsonStr string) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal([]byte(jsonStr), &result)
	return result
}

// CreateGenerateRequest creates a prompt generation request payload
func CreateGenerateRequest(answers TestAnswers, profile string) map[string]interface{} {
	request := map[string]interface{}{
		"answers": map[string]interface{}{
			"activity":    answers.Activity,
			"rules":       answers.Rules,
			"personality": answers.Personality,
			"scenarios":   answers.Scenarios,
		},
	}

	if profile != "" {
		request["profile"] = profile
	}

	return request
}

// CreateSendMessageRequest creates a chat test message payload
func CreateSendMessageRequest(message, language, model string) map[string]interface{} {
	request := map[string]interface{}{
		"message": message,
	}

	if language != "" {
		request["language"] = language
	}
	if model != "" {
		request["model"] = model
	}

	return request
}

// MockCompletionResponse creates a chat completions response wrapping the
// given message content
func MockCompletionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

// MockArtifactContent creates the completion message content carrying an artifact
func MockArtifactContent(artifact TestArtifact) string {
	return ToJSON(artifact)
}

// MockAnswerTextResponse creates an answer API response with the reply under answer.text
func MockAnswerTextResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"answer": map[string]interface{}{
			"text": text,
		},
	}
}

// MockContentBlocksResponse creates an answer API response with the reply as content blocks
func MockContentBlocksResponse(texts ...string) map[string]interface{} {
	blocks := make([]map[string]interface{}, 0, len(texts))
	for _, text := range texts {
		blocks = append(blocks, map[string]interface{}{
			"type": "text",
			"text": text,
		})
	}

	return map[string]interface{}{
		"content": blocks,
	}
}
