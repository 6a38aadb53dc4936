package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creative-factory/internal/adapter/trends"
	"creative-factory/internal/config/configs"
	"creative-factory/internal/core/port"
	"creative-factory/internal/core/port/mocks"
)

type statusError struct{ temporary bool }

func (e statusError) Error() string   { return "upstream status" }
func (e statusError) Temporary() bool { return e.temporary }

func newTestTrends(t *testing.T, seeds ...string) (*TrendsUseCase, *mocks.MockTrendsSource, *mocks.MockTranslator) {
	t.Helper()
	source := mocks.NewMockTrendsSource(t)
	translator := mocks.NewMockTranslator(t)
	cfg := configs.Trends{
		MaxRetries:     2,
		SeedKeywords:   seeds,
		TranslateModel: "gpt-4o-mini",
	}
	u := NewTrendsUseCase(source, translator, cfg, slog.New(slog.DiscardHandler), nil,
		WithLookupBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }))
	return u, source, translator
}

func TestFetchTrendingTopics_Validation(t *testing.T) {
	u, _, _ := newTestTrends(t, "game")

	tests := []struct {
		name string
		req  port.TrendsRequest
		want error
	}{
		{"unsupported country", port.TrendsRequest{CountryCode: "US", TimeRange: "week", TopN: 10}, port.ErrUnsupportedCountry},
		{"unsupported range", port.TrendsRequest{CountryCode: "VN", TimeRange: "year", TopN: 10}, port.ErrUnsupportedTimeRange},
		{"top_n zero", port.TrendsRequest{CountryCode: "VN", TimeRange: "week", TopN: 0}, port.ErrInvalidTopN},
		{"top_n too big", port.TrendsRequest{CountryCode: "VN", TimeRange: "week", TopN: 51}, port.ErrInvalidTopN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := u.FetchTrendingTopics(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFetchTrendingTopics_DedupAndTranslate(t *testing.T) {
	u, source, translator := newTestTrends(t, "game")

	source.EXPECT().RelatedQueries(mock.Anything, "game", "VN", "now 7-d").Return(port.RelatedQueries{
		Rising: []string{"Liên Quân", "王者荣耀"},
		Top:    []string{"Free Fire", "liên quân", "PUBG", "Roblox"},
	}, nil)
	source.EXPECT().Name().Return("google_trends")
	translator.EXPECT().
		Translate(mock.Anything, []string{"Liên Quân", "Free Fire", "PUBG"}, "gpt-4o-mini", "Tiếng Việt", "VN").
		Return([]string{"传说对决", "自由之火"}, nil)

	res, err := u.FetchTrendingTopics(context.Background(), port.TrendsRequest{
		CountryCode: "vn",
		TimeRange:   "week",
		TopN:        4,
		Translate:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"传说对决", "王者荣耀", "自由之火", "PUBG"}, res.Topics)
	assert.Equal(t, []string{"Liên Quân", "王者荣耀", "Free Fire", "PUBG"}, res.Originals)
	assert.True(t, res.Translated)
	assert.Equal(t, "google_trends", res.Source)
	assert.Equal(t, []string{"game"}, res.Seeds)
	assert.Equal(t, "VN", res.Country.Code)
}

func TestFetchTrendingTopics_TranslationFailureKeepsOriginals(t *testing.T) {
	u, source, translator := newTestTrends(t, "game")

	source.EXPECT().RelatedQueries(mock.Anything, "game", "TH", "now 1-d").
		Return(port.RelatedQueries{Top: []string{"ROV", "Genshin"}}, nil)
	source.EXPECT().Name().Return("google_trends")
	translator.EXPECT().Translate(mock.Anything, mock.Anything, mock.Anything, mock.Anything, "TH").
		Return(nil, errors.New("rate limited"))

	res, err := u.FetchTrendingTopics(context.Background(), port.TrendsRequest{
		CountryCode: "TH", TimeRange: "today", TopN: 10, Translate: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ROV", "Genshin"}, res.Topics)
	assert.False(t, res.Translated)
	assert.Nil(t, res.Originals)
}

func TestFetchTrendingTopics_RetriesTemporaryFailures(t *testing.T) {
	u, source, _ := newTestTrends(t, "game", "esports")

	source.EXPECT().RelatedQueries(mock.Anything, "game", "SG", "today 1-m").
		Return(port.RelatedQueries{}, statusError{temporary: true}).Twice()
	source.EXPECT().RelatedQueries(mock.Anything, "game", "SG", "today 1-m").
		Return(port.RelatedQueries{Top: []string{"valorant"}}, nil).Once()
	source.EXPECT().RelatedQueries(mock.Anything, "esports", "SG", "today 1-m").
		Return(port.RelatedQueries{}, statusError{temporary: false}).Once()
	source.EXPECT().Name().Return("google_trends")

	res, err := u.FetchTrendingTopics(context.Background(), port.TrendsRequest{
		CountryCode: "SG", TimeRange: "month", TopN: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"valorant"}, res.Topics)
	assert.Equal(t, []string{"game"}, res.Seeds)
	assert.False(t, res.Translated)
}

func TestFetchTrendingTopics_FinalErrorsAreNotRetried(t *testing.T) {
	u, source, _ := newTestTrends(t, "game", "esports")

	source.EXPECT().RelatedQueries(mock.Anything, "game", "MY", "now 7-d").
		Return(port.RelatedQueries{}, trends.ErrNoWidget).Once()
	source.EXPECT().RelatedQueries(mock.Anything, "esports", "MY", "now 7-d").
		Return(port.RelatedQueries{}, errors.New("decode related searches: unexpected EOF")).Once()

	_, err := u.FetchTrendingTopics(context.Background(), port.TrendsRequest{
		CountryCode: "MY", TimeRange: "week", TopN: 5,
	})
	assert.ErrorIs(t, err, port.ErrNoLiveTrends)
	source.AssertNumberOfCalls(t, "RelatedQueries", 2)
}

func TestFetchTrendingTopics_NoLiveTopics(t *testing.T) {
	u, source, _ := newTestTrends(t, "game", "gaming")

	source.EXPECT().RelatedQueries(mock.Anything, "game", "PH", "now 7-d").
		Return(port.RelatedQueries{}, nil)
	source.EXPECT().RelatedQueries(mock.Anything, "gaming", "PH", "now 7-d").
		Return(port.RelatedQueries{}, statusError{temporary: true}).Times(3)

	_, err := u.FetchTrendingTopics(context.Background(), port.TrendsRequest{
		CountryCode: "PH", TimeRange: "week", TopN: 5,
	})
	assert.ErrorIs(t, err, port.ErrNoLiveTrends)
}

func TestTestConnectivity(t *testing.T) {
	u, source, _ := newTestTrends(t, "mobile game")
	lookupErr := statusError{temporary: true}

	source.EXPECT().RelatedQueries(mock.Anything, "mobile game", "VN", "now 7-d").
		Return(port.RelatedQueries{}, lookupErr).Once()

	assert.ErrorIs(t, u.TestConnectivity(context.Background()), lookupErr)
}

func TestHanRatio(t *testing.T) {
	assert.Equal(t, 1.0, hanRatio("王者荣耀"))
	assert.Equal(t, 0.0, hanRatio("Free Fire"))
	assert.Equal(t, 0.0, hanRatio(""))
	assert.InDelta(t, 0.5, hanRatio("PUBG 手游吃鸡"), 0.01)
}
