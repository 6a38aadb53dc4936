package port

import (
	"context"

	"creative-factory/internal/core/domain"
)

// ABTestRepository persists experiments and their counters.
type ABTestRepository interface {
	// CreateABTest inserts the test and its assignments atomically.
	CreateABTest(ctx context.Context, test domain.ABTest, assignments []domain.ABTestAssignment) (*domain.ABTest, error)
	ListABTests(ctx context.Context) ([]domain.ABTest, error)
	// GetABTest returns the test with assignments, or nil when absent.
	GetABTest(ctx context.Context, id int64) (*domain.ABTest, error)
	// IncrementCounter adds one to the counter selected by variant and
	// kind. It reports whether the test exists.
	IncrementCounter(ctx context.Context, id int64, variant domain.Variant, kind domain.EventKind) (bool, error)
}
