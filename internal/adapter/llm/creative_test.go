package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative-factory/internal/core/domain"
)

func TestTokenBudget(t *testing.T) {
	b := tokenBudget{base: 1500, perItem: 600, min: 1200, max: 8000}
	assert.Equal(t, 2100, b.forCount(1))
	assert.Equal(t, 4500, b.forCount(5))
	assert.Equal(t, 8000, b.forCount(20))
	assert.Equal(t, 2100, b.forCount(0))

	small := tokenBudget{base: 100, perItem: 10, min: 1200, max: 8000}
	assert.Equal(t, 1200, small.forCount(3))
}

func TestGenerateCreativeContentAdvancedModelUsesResponsesAPI(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/responses", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(t, w, http.StatusOK, map[string]any{"output_text": `{"creatives":[]}`})
	}))
	defer srv.Close()

	c := newTestClient(t, testConfig(srv.URL))
	prompt := domain.CreativePrompt{Task: "creative_advertising_generation", Requirements: domain.PromptRequirements{Count: 3}}
	res, err := c.GenerateCreativeContent(context.Background(), prompt, "gpt-5-mini")
	require.NoError(t, err)
	assert.Equal(t, "gpt-5-mini", res.Model)
	assert.Equal(t, apiResponses, res.API)
	assert.Equal(t, float64(3300), body["max_output_tokens"])
	assert.Equal(t, map[string]any{"effort": "minimal"}, body["reasoning"])
	assert.Contains(t, body["input"], "creative_advertising_generation")
}

func TestGenerateCreativeContentFallsBackToChatModel(t *testing.T) {
	var paths []string
	var chatBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/responses" {
			writeJSON(t, w, http.StatusOK, map[string]any{"output": []any{}})
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&chatBody))
		writeJSON(t, w, http.StatusOK, chatReply(`{"creatives":[{"core_concept":"a"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, testConfig(srv.URL))
	res, err := c.GenerateCreativeContent(context.Background(), domain.CreativePrompt{Requirements: domain.PromptRequirements{Count: 1}}, "gpt-5-nano")
	require.NoError(t, err)
	assert.Equal(t, []string{"/responses", "/chat/completions"}, paths)
	assert.Equal(t, "gpt-4o-mini", res.Model)
	assert.Equal(t, "gpt-4o-mini", chatBody["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, chatBody["response_format"])
	assert.Equal(t, 0.8, chatBody["temperature"])
}

func TestGenerateCreativeContentConventionalModelSkipsResponsesAPI(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		writeJSON(t, w, http.StatusOK, chatReply(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, testConfig(srv.URL))
	res, err := c.GenerateCreativeContent(context.Background(), domain.CreativePrompt{}, "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, []string{"/chat/completions"}, paths)
	assert.Equal(t, "gpt-4o", res.Model)
}
