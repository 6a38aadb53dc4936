package configs

import "time"

// Trends configures the Google Trends source and topic aggregation.
type Trends struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://trends.google.com"`
	// Language is the hl parameter sent upstream.
	Language string `env:"LANGUAGE" envDefault:"en-US"`
	// TZOffset is the tz parameter in minutes.
	TZOffset int           `env:"TZ_OFFSET" envDefault:"-480"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"20s"`

	// MaxRetries applies per seed keyword lookup.
	MaxRetries     uint64        `env:"MAX_RETRIES" envDefault:"2"`
	InitialBackoff time.Duration `env:"INITIAL_BACKOFF" envDefault:"2s"`

	SeedKeywords []string `env:"SEED_KEYWORDS" envSeparator:"," envDefault:"game,mobile game,gaming,esports"`
	// TranslateModel is used for topic translation.
	TranslateModel string `env:"TRANSLATE_MODEL" envDefault:"gpt-4o-mini"`
}
