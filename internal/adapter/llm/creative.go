package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"creative-factory/internal/core/domain"
	"creative-factory/internal/core/port"
)

const creativeInstructions = `你是专业的手机游戏广告创意专家。根据用户提供的JSON输入（创意想法、自定义输入、选中的维度选项）生成广告创意。

要求：
1. 严格生成 requirements.count 个创意，彼此差异明显
2. 优先体现 user_input 中的想法，再融合 selected_dimensions 中的选项
3. 画面中严禁出现任何文字、Logo、字幕与标识
4. 只输出JSON，不要输出解释

输出格式：
{"creatives": [{"core_concept": "核心概念", "scene_description": "画面描述", "camera_lighting": "镜头与光线", "color_props": "色彩与道具", "key_notes": "注意事项", "chosen_dimensions": ["维度名"], "dimension_details": {"维度名": {"name": "选项名"}}, "keywords": ["关键词"], "visual_hints": ["视觉提示"]}]}`

type tokenBudget struct {
	base, perItem, min, max int
}

// forCount returns base + perItem*count clamped to [min, max].
func (b tokenBudget) forCount(count int) int {
	n := b.base + b.perItem*max(count, 1)
	if b.min > 0 && n < b.min {
		n = b.min
	}
	if b.max > 0 && n > b.max {
		n = b.max
	}
	return n
}

// GenerateCreativeContent sends prompt to model. Advanced models go through
// the responses API first; when that fails or returns nothing the configured
// fallback model is asked through the chat API with retries.
func (c *Client) GenerateCreativeContent(ctx context.Context, prompt domain.CreativePrompt, model string) (*port.Completion, error) {
	if model == "" {
		model = c.defaultModel
	}
	payload, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return nil, newError(KindUnknown, "encode prompt", err)
	}
	maxTokens := c.budget.forCount(prompt.Requirements.Count)

	if IsAdvanced(model) {
		res, err := c.CompleteAlternate(ctx, AlternateRequest{
			Input:           string(payload),
			Model:           model,
			Instructions:    creativeInstructions,
			ReasoningEffort: "minimal",
			MaxOutputTokens: maxTokens,
		})
		if err == nil && strings.TrimSpace(res.Content) != "" {
			return res, nil
		}
		c.logger.Warn("advanced model failed, switching to fallback model",
			slog.String("model", model),
			slog.String("fallback", c.fallbackModel),
			slog.Any("error", err))
		model = c.fallbackModel
	}

	temperature := 0.8
	return c.CompleteWithFallback(ctx, ChatRequest{
		Messages: []Message{
			{Role: "system", Content: creativeInstructions},
			{Role: "user", Content: string(payload)},
		},
		Model:           model,
		MaxTokens:       maxTokens,
		Temperature:     &temperature,
		ResponseFormat:  "json_object",
		ReasoningEffort: "minimal",
	})
}
