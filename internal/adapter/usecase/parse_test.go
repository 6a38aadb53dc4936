package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreatives(t *testing.T) {
	t.Run("wrapped object", func(t *testing.T) {
		got, ok := parseCreatives(`{"creatives":[{"core_concept":"王冠","keywords":"胜利，荣耀、胜利","chosen_dimensions":["visual_hook"]}]}`)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "王冠", got[0].CoreConcept)
		assert.Equal(t, []string{"胜利", "荣耀"}, got[0].Keywords)
		assert.Equal(t, []string{"visual_hook"}, got[0].ChosenDimensions)
		assert.NotNil(t, got[0].VisualHints)
	})

	t.Run("top-level list in fence", func(t *testing.T) {
		got, ok := parseCreatives("```json\n[{\"title\":\"一\"}, 42, {\"title\":\"二\"}]\n```")
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, "二", got[1].Title)
	})

	t.Run("repairs trailing comma", func(t *testing.T) {
		got, ok := parseCreatives(`{"creatives":[{"title":"一",},]}`)
		require.True(t, ok)
		assert.Equal(t, "一", got[0].Title)
	})

	t.Run("dimension details", func(t *testing.T) {
		got, ok := parseCreatives(`[{"dimension_details":{"visual_hook":{"name":"极近特写","keywords":["细节"]},"value_proof":"零门槛"}}]`)
		require.True(t, ok)
		assert.Equal(t, "极近特写", got[0].DimensionDetails["visual_hook"].Name)
		assert.Equal(t, []string{"细节"}, got[0].DimensionDetails["visual_hook"].Keywords)
		assert.Equal(t, "零门槛", got[0].DimensionDetails["value_proof"].Name)
	})

	for name, raw := range map[string]string{
		"empty":          "",
		"object":         `{"message":"no"}`,
		"empty list":     `{"creatives":[]}`,
		"scalars":        `["a","b"]`,
		"creatives text": `{"creatives":"none"}`,
	} {
		t.Run("rejects "+name, func(t *testing.T) {
			_, ok := parseCreatives(raw)
			assert.False(t, ok)
		})
	}
}

func TestSplitChunks(t *testing.T) {
	got := splitChunks("第一段\r\n\r\n  \n\n第二段\n续行\n\n")
	assert.Equal(t, []string{"第一段", "第二段\n续行"}, got)
}

func TestText(t *testing.T) {
	assert.Equal(t, "3.5", text(3.5))
	assert.Equal(t, "true", text(true))
	assert.Equal(t, "甲；乙", text([]any{"甲", " 乙 "}))
	assert.Equal(t, "极近特写", text(map[string]any{"name": "极近特写"}))
	assert.Empty(t, text(nil))
}
