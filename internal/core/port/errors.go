package port

import "errors"

// Validation errors. Handlers map them to 4xx responses.
var (
	ErrInvalidCount         = errors.New("count must be at least 1")
	ErrEmptyBrief           = errors.New("game background is required")
	ErrNoDrafts             = errors.New("no creatives to save")
	ErrOptionNameRequired   = errors.New("option name is required")
	ErrUnsupportedCountry   = errors.New("unsupported country code")
	ErrUnsupportedTimeRange = errors.New("unsupported time range")
	ErrInvalidTopN          = errors.New("top_n must be between 1 and 50")
	ErrInvalidABTest        = errors.New("invalid ab test")
	ErrInvalidVariant       = errors.New("variant must be A or B")
	ErrInvalidEventKind     = errors.New("event kind must be impression or click")
)

// Lookup errors.
var (
	ErrDimensionNotFound = errors.New("dimension not found")
	ErrABTestNotFound    = errors.New("ab test not found")
)

// ErrNoLiveTrends is returned when no live trending topic could be fetched.
var ErrNoLiveTrends = errors.New("no live trending topics available")
