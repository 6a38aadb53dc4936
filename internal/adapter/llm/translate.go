package llm

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"creative-factory/internal/core/domain"
)

// enumerationMarker matches a leading "1." / "2)" / "3、" number or a bullet.
var enumerationMarker = regexp.MustCompile(`^\s*(?:\d+[.)、:：]\s*|[-•*]\s*)`)

// Translate translates texts to Simplified Chinese in one call. The result
// has exactly len(texts) entries: missing lines are filled with the
// corresponding originals and extra lines are dropped.
func (c *Client) Translate(ctx context.Context, texts []string, model, sourceLanguage, countryCode string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}
	if model == "" {
		model = c.defaultModel
	}
	language := sourceLanguageFor(countryCode, sourceLanguage)

	var numbered strings.Builder
	for i, t := range texts {
		fmt.Fprintf(&numbered, "%d. %s\n", i+1, t)
	}

	temperature := 0.3
	res, err := c.CompleteWithFallback(ctx, ChatRequest{
		Messages: []Message{
			{Role: "system", Content: fmt.Sprintf("You are an expert linguist, specializing in translation from %s to 简体中文. translate directly without explanation", language)},
			{Role: "user", Content: fmt.Sprintf("请翻译以下%d个热门话题：\n\n%s", len(texts), strings.TrimRight(numbered.String(), "\n"))},
		},
		Model:           model,
		MaxTokens:       max(1000, 80*len(texts)),
		Temperature:     &temperature,
		ReasoningEffort: "minimal",
	})
	if err != nil {
		return nil, err
	}

	translations := splitTranslations(res.Content)
	if len(translations) != len(texts) {
		c.logger.Warn("translation count mismatch",
			slog.Int("expected", len(texts)),
			slog.Int("got", len(translations)))
	}
	return alignTranslations(texts, translations), nil
}

func sourceLanguageFor(countryCode, hint string) string {
	if country, ok := domain.CountryByCode(strings.ToUpper(countryCode)); ok {
		return country.Language
	}
	if hint != "" {
		return hint
	}
	return "English"
}

// splitTranslations returns the non-blank lines of content with leading
// enumeration markers removed.
func splitTranslations(content string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(enumerationMarker.ReplaceAllString(line, ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func alignTranslations(originals, translations []string) []string {
	out := make([]string, len(originals))
	for i := range originals {
		if i < len(translations) {
			out[i] = translations[i]
		} else {
			out[i] = originals[i]
		}
	}
	return out
}
