package domain

import (
	"sort"
	"time"
)

// DraftOrigin tells how a draft's text was produced.
type DraftOrigin string

const (
	// OriginAI drafts were parsed from a structured model response.
	OriginAI DraftOrigin = "ai"
	// OriginText drafts were cut from an unstructured model response.
	OriginText DraftOrigin = "text"
	// OriginTemplate drafts were assembled locally from option templates.
	OriginTemplate DraftOrigin = "template"
	// OriginSynthetic drafts are placeholders that keep the requested count.
	OriginSynthetic DraftOrigin = "synthetic"
)

// GenerationMode distinguishes the two generator entry points.
type GenerationMode string

const (
	ModeStructured GenerationMode = "structured"
	ModeSimple     GenerationMode = "simple"
)

// Draft is a generated, not yet persisted creative candidate.
type Draft struct {
	Index              int                     `json:"index"`
	Title              string                  `json:"title"`
	Content            string                  `json:"content"`
	CoreConcept        string                  `json:"core_concept,omitempty"`
	SceneDescription   string                  `json:"scene_description,omitempty"`
	CameraLighting     string                  `json:"camera_lighting,omitempty"`
	ColorProps         string                  `json:"color_props,omitempty"`
	KeyNotes           string                  `json:"key_notes,omitempty"`
	ChosenDimensions   []string                `json:"chosen_dimensions"`
	DimensionDetails   map[string]OptionDetail `json:"dimension_details"`
	Keywords           []string                `json:"keywords"`
	VisualHints        []string                `json:"visual_hints"`
	SelectedDimensions Selection               `json:"selected_dimensions,omitempty"`
	AIGenerated        bool                    `json:"ai_generated"`
	Origin             DraftOrigin             `json:"origin"`
	FallbackGenerated  bool                    `json:"fallback_generated,omitempty"`
	GenerationParams   GenerationParams        `json:"generation_params"`
}

// GenerationParams records the inputs that produced a batch of drafts.
type GenerationParams struct {
	BatchID      string            `json:"batch_id,omitempty"`
	Mode         GenerationMode    `json:"mode,omitempty"`
	Selection    Selection         `json:"selected_dimensions,omitempty"`
	Count        int               `json:"count"`
	UserIdea     string            `json:"user_idea,omitempty"`
	CustomInputs map[string]string `json:"custom_inputs,omitempty"`
	Template     string            `json:"template,omitempty"`
	Model        string            `json:"ai_model,omitempty"`
	ModelUsed    string            `json:"model_used,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

// CreativePrompt is the structured payload sent to the model.
type CreativePrompt struct {
	Task         string                    `json:"task"`
	Instruction  string                    `json:"instruction,omitempty"`
	UserInput    PromptUserInput           `json:"user_input"`
	Dimensions   map[string][]PromptOption `json:"selected_dimensions"`
	Requirements PromptRequirements        `json:"requirements"`
	Instructions map[string]string         `json:"instructions,omitempty"`
}

type PromptUserInput struct {
	Idea         string            `json:"idea"`
	CustomInputs map[string]string `json:"custom_inputs"`
}

type PromptOption struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	VisualHints []string `json:"visual_hints"`
}

type PromptRequirements struct {
	Count          int    `json:"count"`
	Language       string `json:"language"`
	TargetAudience string `json:"target_audience,omitempty"`
	ContentType    string `json:"content_type,omitempty"`
	OutputFormat   string `json:"output_format,omitempty"`
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
