package port

import (
	"context"

	"creative-factory/internal/core/domain"
)

// CreativeRepository persists creatives.
type CreativeRepository interface {
	// CreateCreatives inserts creatives in one transaction and returns them
	// with ids and timestamps set.
	CreateCreatives(ctx context.Context, creatives []domain.Creative) ([]domain.Creative, error)
	// ListCreatives returns creatives matching filter, newest first.
	ListCreatives(ctx context.Context, filter domain.CreativeFilter) ([]domain.Creative, error)
}
