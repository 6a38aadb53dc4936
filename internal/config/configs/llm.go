package configs

import "time"

// LLM configures the OpenAI-compatible client.
type LLM struct {
	// APIKey authorises requests. An empty key makes every call fail with
	// an unavailable error, which the generator turns into local drafts.
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"BASE_URL" envDefault:"https://api.openai.com/v1"`
	// Timeout applies to a single upstream round trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`

	// MaxRetries is the number of retries after the first attempt of a
	// chat call with a retryable failure.
	MaxRetries     uint64        `env:"MAX_RETRIES" envDefault:"3"`
	InitialBackoff time.Duration `env:"INITIAL_BACKOFF" envDefault:"1s"`
	MaxBackoff     time.Duration `env:"MAX_BACKOFF" envDefault:"10s"`

	DefaultModel  string `env:"DEFAULT_MODEL" envDefault:"gpt-5-nano"`
	FallbackModel string `env:"FALLBACK_MODEL" envDefault:"gpt-4o-mini"`

	// RequestsPerSecond limits outbound calls. Zero disables the limiter.
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND" envDefault:"0"`

	// Token budget of creative generation: base + per item, clamped.
	BaseTokens    int `env:"BASE_TOKENS" envDefault:"1500"`
	TokensPerItem int `env:"TOKENS_PER_ITEM" envDefault:"600"`
	MinTokens     int `env:"MIN_TOKENS" envDefault:"1200"`
	MaxTokens     int `env:"MAX_TOKENS" envDefault:"8000"`
}
