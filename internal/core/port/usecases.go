package port

import (
	"context"

	"creative-factory/internal/core/domain"
)

// GeneratorUseCase defines the creative generation operations exposed to
// the HTTP layer. Generation always yields exactly the requested number of
// drafts or an error.
type GeneratorUseCase interface {
	// Generate builds drafts from a dimension selection and optional free
	// text. The AI path is tried first; local template assembly is used
	// when it fails or when nothing in the request resolves.
	Generate(ctx context.Context, req GenerateRequest) ([]domain.Draft, error)
	// GenerateSimple builds drafts from a plain game background.
	GenerateSimple(ctx context.Context, req SimpleRequest) ([]domain.Draft, error)
	// Persist stores drafts as selected creatives.
	Persist(ctx context.Context, drafts []domain.Draft) ([]domain.Creative, error)
	ListCreatives(ctx context.Context, filter domain.CreativeFilter) ([]domain.Creative, error)
}

// GenerateRequest is the input of structured generation.
type GenerateRequest struct {
	Selection    domain.Selection  `json:"selected_dimensions"`
	Count        int               `json:"count"`
	UserIdea     string            `json:"user_idea"`
	CustomInputs map[string]string `json:"custom_inputs"`
	Model        string            `json:"ai_model"`
}

// SimpleRequest is the input of brief-based generation.
type SimpleRequest struct {
	Brief string `json:"game_background"`
	Count int    `json:"count"`
	Model string `json:"ai_model"`
}

// CatalogUseCase manages dimensions and options.
type CatalogUseCase interface {
	Dimensions(ctx context.Context) ([]domain.Dimension, error)
	AddOption(ctx context.Context, dimensionID int64, in domain.OptionInput) (*domain.Option, error)
	UpdateDimension(ctx context.Context, id int64, patch domain.DimensionPatch) (*domain.Dimension, error)
	// Bootstrap seeds the default dimensions that do not exist yet and
	// returns how many were created.
	Bootstrap(ctx context.Context) (int, error)
}

// TrendsRequest selects a market for FetchTrendingTopics.
type TrendsRequest struct {
	CountryCode string `json:"country_code"`
	TimeRange   string `json:"time_range"`
	TopN        int    `json:"top_n"`
	Translate   bool   `json:"translate"`
}

// TrendsUseCase exposes live trending topics per market.
type TrendsUseCase interface {
	FetchTrendingTopics(ctx context.Context, req TrendsRequest) (*domain.TrendingTopics, error)
	Countries() []domain.Country
	TimeRanges() []domain.TimeRange
	// TestConnectivity checks the upstream with a single request.
	TestConnectivity(ctx context.Context) error
}

// ABTestUseCase manages experiments between two creative groups.
type ABTestUseCase interface {
	CreateABTest(ctx context.Context, in domain.ABTestInput) (*domain.ABTest, error)
	ABTests(ctx context.Context) ([]domain.ABTest, error)
	ABTest(ctx context.Context, id int64) (*domain.ABTest, error)
	RecordEvent(ctx context.Context, id int64, variant domain.Variant, kind domain.EventKind) error
}
