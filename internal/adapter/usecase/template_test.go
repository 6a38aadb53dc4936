package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTemplate(t *testing.T) {
	values := map[string]string{"game": "这款游戏", "item": "神秘道具"}

	tests := []struct {
		name    string
		tmpl    string
		want    string
		missing []string
	}{
		{name: "plain", tmpl: "立即体验", want: "立即体验"},
		{name: "substitutes", tmpl: "在{game}中获得{item}！", want: "在这款游戏中获得神秘道具！"},
		{name: "escaped braces", tmpl: "{{game}} {game}", want: "{game} 这款游戏"},
		{name: "unknown placeholder", tmpl: "{weapon}登场", missing: []string{"weapon"}},
		{name: "empty placeholder", tmpl: "{}登场", missing: []string{""}},
		{name: "unclosed", tmpl: "加入{guild", missing: []string{"{guild"}},
		{name: "stray close", tmpl: "加入}", missing: []string{"}"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := formatTemplate(tt.tmpl, values)
			assert.Equal(t, tt.missing, missing)
			if tt.missing == nil {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "短标题", truncateTitle("短标题"))
	assert.Equal(t, "一二三四五六七八九十一二三四五六七八九十", truncateTitle("一二三四五六七八九十一二三四五六七八九十"))
	assert.Equal(t, "一二三四五六七八九十一二三四五六七八九十...", truncateTitle("一二三四五六七八九十一二三四五六七八九十一"))
	assert.Empty(t, truncateTitle(""))
}
