package port

import "context"

// RelatedQueries holds the related searches of one keyword lookup.
type RelatedQueries struct {
	Top    []string
	Rising []string
}

// TrendsSource fetches related search queries from a trends provider.
type TrendsSource interface {
	RelatedQueries(ctx context.Context, keyword, geo, timeframe string) (RelatedQueries, error)
	// Name identifies the provider in responses.
	Name() string
}
