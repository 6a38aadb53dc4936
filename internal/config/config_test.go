package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative-factory/internal/config/configs"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 180*time.Second, cfg.HTTP.WriteTimeout)
	assert.True(t, cfg.Psql.Bootstrap)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.FallbackModel)
	assert.Equal(t, []string{"game", "mobile game", "gaming", "esports"}, cfg.Trends.SeedKeywords)
	assert.Equal(t, 5, cfg.Generator.DefaultCount)
	assert.Equal(t, "越南", cfg.Generator.TargetRegion)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MAX_RETRIES", "5")
	t.Setenv("TRENDS_SEED_KEYWORDS", "moba,rpg")
	t.Setenv("GENERATOR_MAX_COUNT", "10")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/cf?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, uint64(5), cfg.LLM.MaxRetries)
	assert.Equal(t, []string{"moba", "rpg"}, cfg.Trends.SeedKeywords)
	assert.Equal(t, 10, cfg.Generator.MaxCount)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestEffectiveGenerateTimeout(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 150*time.Second, cfg.HTTP.EffectiveGenerateTimeout())
	assert.Less(t, cfg.HTTP.EffectiveGenerateTimeout(), cfg.HTTP.WriteTimeout)

	capped := configs.HTTP{WriteTimeout: 60 * time.Second, GenerateTimeout: 90 * time.Second}
	assert.Equal(t, 55*time.Second, capped.EffectiveGenerateTimeout())

	unset := configs.HTTP{WriteTimeout: 30 * time.Second}
	assert.Equal(t, 25*time.Second, unset.EffectiveGenerateTimeout())

	unbounded := configs.HTTP{GenerateTimeout: 10 * time.Second}
	assert.Equal(t, 10*time.Second, unbounded.EffectiveGenerateTimeout())
}

func TestLogger(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, configs.Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, configs.Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, configs.Logger{Level: "verbose"}.SlogLevel())
	assert.Equal(t, "text", configs.Logger{Format: "yaml"}.SlogFormat())

	var buf bytes.Buffer
	logger := slog.New(configs.Logger{Level: "warn", Format: "json"}.NewHandler(&buf))
	logger.Info("dropped")
	logger.Warn("kept", slog.String("k", "v"))

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"k":"v"`)
}
