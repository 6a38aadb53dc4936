package port

import (
	"context"

	"creative-factory/internal/core/domain"
)

// OptionRepository persists dimensions and their options. It is an
// outbound port; the generator only reads through it.
type OptionRepository interface {
	// ListDimensions returns dimensions ordered by sort order, each with
	// all of its options. When activeOnly is set inactive dimensions are
	// skipped.
	ListDimensions(ctx context.Context, activeOnly bool) ([]domain.Dimension, error)
	// GetDimension returns a dimension without options, or nil when absent.
	GetDimension(ctx context.Context, id int64) (*domain.Dimension, error)
	// UpdateDimension applies patch and reports whether the dimension exists.
	UpdateDimension(ctx context.Context, id int64, patch domain.DimensionPatch) (bool, error)
	// CreateOption appends an option to the end of a dimension.
	CreateOption(ctx context.Context, dimensionID int64, in domain.OptionInput) (*domain.Option, error)
	// FindActiveOptions returns the active options among ids whose
	// dimension is active too, with DimensionName populated. Unknown ids
	// are ignored.
	FindActiveOptions(ctx context.Context, ids []int64) ([]domain.Option, error)
	// EnsureDimension inserts dim and its options unless a dimension with
	// the same name exists. Existing rows are left untouched. It reports
	// whether the dimension was created.
	EnsureDimension(ctx context.Context, dim domain.Dimension) (bool, error)
}
