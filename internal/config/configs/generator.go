package configs

// Generator tunes creative generation.
type Generator struct {
	DefaultCount int `env:"DEFAULT_COUNT" envDefault:"5"`
	// MaxCount rejects oversized batches at the HTTP boundary.
	MaxCount int `env:"MAX_COUNT" envDefault:"50"`
	// TargetRegion is embedded in the brief-based instruction.
	TargetRegion string `env:"TARGET_REGION" envDefault:"越南"`
	// Language and Audience end up in the structured prompt requirements.
	Language string `env:"LANGUAGE" envDefault:"zh-CN"`
	Audience string `env:"AUDIENCE" envDefault:"游戏玩家"`
}
