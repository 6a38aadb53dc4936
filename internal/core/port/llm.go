package port

import (
	"context"

	"creative-factory/internal/core/domain"
)

// Completion is the text returned by a language model call.
type Completion struct {
	Content string
	// Model is the model that produced Content, which differs from the
	// requested one after a fallback.
	Model string
	// API names the endpoint used, "responses" or "chat".
	API   string
	Usage TokenUsage
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CreativeLLM generates creative copy from a structured prompt.
type CreativeLLM interface {
	GenerateCreativeContent(ctx context.Context, prompt domain.CreativePrompt, model string) (*Completion, error)
}

// Translator translates a batch of strings to the product language. The
// result always has len(texts) entries.
type Translator interface {
	Translate(ctx context.Context, texts []string, model, sourceLanguage, countryCode string) ([]string, error)
}

// ModelInfo describes a supported model.
type ModelInfo struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"display_name"`
	Advanced         bool     `json:"advanced"`
	ReasoningEfforts []string `json:"reasoning_efforts,omitempty"`
}

// ModelCatalog lists the models a client accepts.
type ModelCatalog interface {
	Models() []ModelInfo
}
