package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/cenkalti/backoff/v4"

	"creative-factory/internal/config/configs"
	"creative-factory/internal/core/domain"
	"creative-factory/internal/core/port"
	"creative-factory/internal/metrics"
)

const (
	maxTopN = 50
	// hanThreshold is the Han share at or below which a topic is translated.
	hanThreshold = 0.3

	connectivityCountry   = "VN"
	connectivityTimeframe = "now 7-d"
)

// TrendsUseCase aggregates live related searches into trending topics.
type TrendsUseCase struct {
	source     port.TrendsSource
	translator port.Translator
	cfg        configs.Trends
	logger     *slog.Logger
	metrics    *metrics.Metrics
	newBackOff func() backoff.BackOff
}

// TrendsOption customises a TrendsUseCase.
type TrendsOption func(*TrendsUseCase)

// WithLookupBackOff replaces the per-lookup retry schedule.
func WithLookupBackOff(f func() backoff.BackOff) TrendsOption {
	return func(u *TrendsUseCase) { u.newBackOff = f }
}

// NewTrendsUseCase wires the use case. translator and m may be nil.
func NewTrendsUseCase(
	source port.TrendsSource,
	translator port.Translator,
	cfg configs.Trends,
	logger *slog.Logger,
	m *metrics.Metrics,
	opts ...TrendsOption,
) *TrendsUseCase {
	u := &TrendsUseCase{
		source:     source,
		translator: translator,
		cfg:        cfg,
		logger:     logger.With(slog.String("component", "trends")),
		metrics:    m,
	}
	u.newBackOff = func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		if cfg.InitialBackoff > 0 {
			b.InitialInterval = cfg.InitialBackoff
		}
		return b
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Countries returns the supported markets in display order.
func (u *TrendsUseCase) Countries() []domain.Country {
	return domain.Countries()
}

// TimeRanges returns the supported time ranges in display order.
func (u *TrendsUseCase) TimeRanges() []domain.TimeRange {
	return domain.TimeRanges()
}

// FetchTrendingTopics validates the request before contacting the source.
func (u *TrendsUseCase) FetchTrendingTopics(ctx context.Context, req port.TrendsRequest) (*domain.TrendingTopics, error) {
	country, ok := domain.CountryByCode(strings.ToUpper(strings.TrimSpace(req.CountryCode)))
	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedCountry, req.CountryCode)
	}
	timeRange, ok := domain.TimeRangeByKey(req.TimeRange)
	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedTimeRange, req.TimeRange)
	}
	if req.TopN < 1 || req.TopN > maxTopN {
		return nil, port.ErrInvalidTopN
	}

	var (
		topics  []string
		queried []string
		seen    = map[string]struct{}{}
	)
	for _, seed := range u.cfg.SeedKeywords {
		if len(topics) >= req.TopN {
			break
		}
		related, err := u.lookup(ctx, seed, country.Code, timeRange.Timeframe)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			u.logger.Warn("trends lookup failed",
				slog.String("keyword", seed),
				slog.String("country", country.Code),
				slog.Any("error", err))
			continue
		}
		queried = append(queried, seed)
		for _, q := range append(related.Rising, related.Top...) {
			q = strings.TrimSpace(q)
			key := strings.ToLower(q)
			if q == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			topics = append(topics, q)
		}
	}
	if len(topics) == 0 {
		return nil, port.ErrNoLiveTrends
	}
	if len(topics) > req.TopN {
		topics = topics[:req.TopN]
	}

	res := &domain.TrendingTopics{
		Country:   country,
		TimeRange: timeRange,
		Topics:    topics,
		Source:    u.source.Name(),
		Seeds:     queried,
	}
	if req.Translate {
		u.translate(ctx, res)
	}
	return res, nil
}

// TestConnectivity runs one lookup with the first seed keyword.
func (u *TrendsUseCase) TestConnectivity(ctx context.Context) error {
	seed := "game"
	if len(u.cfg.SeedKeywords) > 0 {
		seed = u.cfg.SeedKeywords[0]
	}
	_, err := u.source.RelatedQueries(ctx, seed, connectivityCountry, connectivityTimeframe)
	u.observe(connectivityCountry, err)
	return err
}

// lookup queries one seed keyword, retrying temporary failures.
func (u *TrendsUseCase) lookup(ctx context.Context, keyword, geo, timeframe string) (port.RelatedQueries, error) {
	var related port.RelatedQueries
	op := func() error {
		r, err := u.source.RelatedQueries(ctx, keyword, geo, timeframe)
		if err != nil {
			if ctx.Err() != nil || !temporary(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		related = r
		return nil
	}
	notify := func(err error, wait time.Duration) {
		u.logger.Debug("retrying trends lookup",
			slog.String("keyword", keyword),
			slog.Duration("wait", wait),
			slog.Any("error", err))
	}
	b := backoff.WithContext(backoff.WithMaxRetries(u.newBackOff(), u.cfg.MaxRetries), ctx)
	err := backoff.RetryNotify(op, b, notify)
	u.observe(geo, err)
	return related, err
}

func (u *TrendsUseCase) observe(country string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	u.metrics.ObserveTrendsLookup(country, outcome)
}

// translate rewrites mostly non-Chinese topics in place. On failure the
// originals are kept and Translated stays false.
func (u *TrendsUseCase) translate(ctx context.Context, res *domain.TrendingTopics) {
	var (
		idx   []int
		texts []string
	)
	for i, t := range res.Topics {
		if hanRatio(t) <= hanThreshold {
			idx = append(idx, i)
			texts = append(texts, t)
		}
	}
	if len(idx) == 0 {
		res.Translated = true
		return
	}
	if u.translator == nil {
		return
	}
	out, err := u.translator.Translate(ctx, texts, u.cfg.TranslateModel, res.Country.Language, res.Country.Code)
	if err != nil {
		u.logger.Warn("topic translation failed, keeping originals",
			slog.String("country", res.Country.Code),
			slog.Any("error", err))
		return
	}

	res.Originals = append([]string(nil), res.Topics...)
	for j, i := range idx {
		if j < len(out) && strings.TrimSpace(out[j]) != "" {
			res.Topics[i] = strings.TrimSpace(out[j])
		}
	}
	res.Translated = true
}

// hanRatio is the share of Han characters among the non-space runes of s.
func hanRatio(s string) float64 {
	var han, total int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.Is(unicode.Han, r) {
			han++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(han) / float64(total)
}

// temporary reports whether err says retrying may succeed. Errors that do
// not say so, such as a missing widget or an undecodable body, are final.
func temporary(err error) bool {
	var t interface{ Temporary() bool }
	return errors.As(err, &t) && t.Temporary()
}
