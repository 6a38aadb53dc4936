package llm

import (
	"slices"
	"strings"

	"creative-factory/internal/core/port"
)

type modelSpec struct {
	name        string
	displayName string
	efforts     []string
}

var supportedModels = []modelSpec{
	{name: "gpt-5-nano", displayName: "GPT-5 Nano", efforts: []string{"minimal", "low"}},
	{name: "gpt-5-mini", displayName: "GPT-5 Mini", efforts: []string{"minimal", "low", "medium"}},
	{name: "gpt-5", displayName: "GPT-5", efforts: []string{"minimal", "low", "medium", "high"}},
	{name: "gpt-4o-mini", displayName: "GPT-4o Mini"},
	{name: "gpt-4o", displayName: "GPT-4o"},
}

// IsAdvanced reports whether model belongs to the family that takes
// max_completion_tokens, rejects a custom temperature and is served through
// the responses API first.
func IsAdvanced(model string) bool {
	return strings.HasPrefix(model, "gpt-5")
}

func lookupModel(name string) (modelSpec, bool) {
	for _, m := range supportedModels {
		if m.name == name {
			return m, true
		}
	}
	return modelSpec{}, false
}

func (m modelSpec) supportsEffort(effort string) bool {
	return effort != "" && slices.Contains(m.efforts, effort)
}

// Models lists the supported models in display order.
func (c *Client) Models() []port.ModelInfo {
	out := make([]port.ModelInfo, 0, len(supportedModels))
	for _, m := range supportedModels {
		out = append(out, port.ModelInfo{
			Name:             m.name,
			DisplayName:      m.displayName,
			Advanced:         IsAdvanced(m.name),
			ReasoningEfforts: slices.Clone(m.efforts),
		})
	}
	return out
}
