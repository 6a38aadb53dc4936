package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creative-factory/internal/core/domain"
	"creative-factory/internal/core/port"
	"creative-factory/internal/core/port/mocks"
	"creative-factory/internal/metrics"
)

type testServices struct {
	generator *mocks.MockGeneratorUseCase
	catalog   *mocks.MockCatalogUseCase
	trends    *mocks.MockTrendsUseCase
	abtests   *mocks.MockABTestUseCase
	models    *mocks.MockModelCatalog
}

func newTestServer(t *testing.T) (*httptest.Server, testServices, *metrics.Metrics) {
	t.Helper()
	s := testServices{
		generator: mocks.NewMockGeneratorUseCase(t),
		catalog:   mocks.NewMockCatalogUseCase(t),
		trends:    mocks.NewMockTrendsUseCase(t),
		abtests:   mocks.NewMockABTestUseCase(t),
		models:    mocks.NewMockModelCatalog(t),
	}
	m := metrics.New()
	h := NewHandler(Services{
		Generator: s.generator,
		Catalog:   s.catalog,
		Trends:    s.trends,
		ABTests:   s.abtests,
		Models:    s.models,
	}, Limits{DefaultCount: 5, GenerateTimeout: time.Minute}, slog.New(slog.DiscardHandler), m)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, s, m
}

type testEnvelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Suggestion string          `json:"suggestion"`
	Data       json.RawMessage `json:"data"`
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, testEnvelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env testEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestGenerate_DefaultsCount(t *testing.T) {
	srv, s, _ := newTestServer(t)

	var hasDeadline bool
	s.generator.EXPECT().Generate(mock.Anything, port.GenerateRequest{
		Selection: domain.Selection{"visual_hook": {1, 2}},
		Count:     5,
		UserIdea:  "仙侠",
	}).Run(func(ctx context.Context, _ port.GenerateRequest) {
		_, hasDeadline = ctx.Deadline()
	}).Return([]domain.Draft{{Index: 1, Title: "t", Content: "c", Origin: domain.OriginTemplate}}, nil)

	status, env := do(t, srv, http.MethodPost, "/api/creatives/generate",
		`{"selected_dimensions":{"visual_hook":[1,2]},"user_idea":"仙侠"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var drafts []domain.Draft
	require.NoError(t, json.Unmarshal(env.Data, &drafts))
	require.Len(t, drafts, 1)
	assert.Equal(t, domain.OriginTemplate, drafts[0].Origin)
	assert.True(t, hasDeadline, "generation must run under a deadline")
}

func TestGenerateSimple_ValidationErrors(t *testing.T) {
	srv, s, _ := newTestServer(t)

	s.generator.EXPECT().GenerateSimple(mock.Anything, port.SimpleRequest{Count: 3}).
		Return(nil, port.ErrEmptyBrief)

	status, env := do(t, srv, http.MethodPost, "/api/creatives/generate-simple", `{"count":3}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, port.ErrEmptyBrief.Error(), env.Message)

	status, _ = do(t, srv, http.MethodPost, "/api/creatives/generate-simple", `{"count":`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSaveCreatives(t *testing.T) {
	srv, s, _ := newTestServer(t)

	s.generator.EXPECT().Persist(mock.Anything, mock.MatchedBy(func(d []domain.Draft) bool {
		return len(d) == 1 && d[0].Content == "内容"
	})).Return([]domain.Creative{{ID: 9, Title: "内容", Status: domain.StatusSelected, IsSelected: true}}, nil)

	status, env := do(t, srv, http.MethodPost, "/api/creatives", `{"creatives":[{"content":"内容"}]}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "成功保存 1 个创意", env.Message)
}

func TestSaveCreatives_InternalErrorIsHidden(t *testing.T) {
	srv, s, _ := newTestServer(t)

	s.generator.EXPECT().Persist(mock.Anything, mock.Anything).Return(nil, errors.New("pq: relation missing"))

	status, env := do(t, srv, http.MethodPost, "/api/creatives", `{"creatives":[{"content":"x"}]}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal error", env.Message)
}

func TestListCreatives_Filters(t *testing.T) {
	srv, s, _ := newTestServer(t)

	s.generator.EXPECT().ListCreatives(mock.Anything, mock.MatchedBy(func(f domain.CreativeFilter) bool {
		return f.Selected != nil && *f.Selected && f.Representative == nil && f.Scored
	})).Return(nil, nil)

	status, env := do(t, srv, http.MethodGet, "/api/creatives?selected=true&scored=1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))

	status, _ = do(t, srv, http.MethodGet, "/api/creatives?representative=maybe", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUpdateDimension_RejectsUnknownFields(t *testing.T) {
	srv, s, _ := newTestServer(t)

	status, _ := do(t, srv, http.MethodPut, "/api/dimensions/2", `{"name":"renamed"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	active := false
	s.catalog.EXPECT().UpdateDimension(mock.Anything, int64(2), domain.DimensionPatch{IsActive: &active}).
		Return(&domain.Dimension{ID: 2, IsActive: false}, nil)
	status, env := do(t, srv, http.MethodPut, "/api/dimensions/2", `{"is_active":false}`)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	s.catalog.EXPECT().UpdateDimension(mock.Anything, int64(404), mock.Anything).
		Return(nil, port.ErrDimensionNotFound)
	status, _ = do(t, srv, http.MethodPut, "/api/dimensions/404", `{"sort_order":1}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, srv, http.MethodPut, "/api/dimensions/abc", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAddOption(t *testing.T) {
	srv, s, _ := newTestServer(t)

	s.catalog.EXPECT().AddOption(mock.Anything, int64(3), domain.OptionInput{Name: "慢动作", Keywords: []string{"慢镜头"}}).
		Return(&domain.Option{ID: 30, DimensionID: 3, Name: "慢动作"}, nil)

	status, env := do(t, srv, http.MethodPost, "/api/dimensions/3/options", `{"name":"慢动作","keywords":["慢镜头"]}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "选项添加成功", env.Message)
}

func TestTrendingTopics_Defaults(t *testing.T) {
	srv, s, _ := newTestServer(t)

	s.trends.EXPECT().FetchTrendingTopics(mock.Anything, port.TrendsRequest{
		CountryCode: "VN", TimeRange: "week", TopN: 10, Translate: true,
	}).Return(&domain.TrendingTopics{Topics: []string{"王者荣耀"}, Translated: true}, nil)

	status, env := do(t, srv, http.MethodPost, "/api/trending-topics", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
}

func TestTrendingTopics_Errors(t *testing.T) {
	srv, s, _ := newTestServer(t)

	s.trends.EXPECT().FetchTrendingTopics(mock.Anything, mock.MatchedBy(func(r port.TrendsRequest) bool { return r.TopN == 0 })).
		Return(nil, port.ErrInvalidTopN)
	s.trends.EXPECT().FetchTrendingTopics(mock.Anything, mock.MatchedBy(func(r port.TrendsRequest) bool { return r.CountryCode == "TH" })).
		Return(nil, port.ErrNoLiveTrends)

	status, _ := do(t, srv, http.MethodPost, "/api/trending-topics", `{"top_n":0}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env := do(t, srv, http.MethodPost, "/api/trending-topics", `{"country_code":"TH","translate_to_chinese":false}`)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Suggestion)
}

func TestTrendsTest(t *testing.T) {
	srv, s, _ := newTestServer(t)

	s.trends.EXPECT().TestConnectivity(mock.Anything).Return(errors.New("status 429")).Once()
	s.trends.EXPECT().TestConnectivity(mock.Anything).Return(nil).Once()

	status, env := do(t, srv, http.MethodGet, "/api/trending-topics/test", "")
	assert.Equal(t, http.StatusBadGateway, status)
	assert.NotEmpty(t, env.Suggestion)

	status, _ = do(t, srv, http.MethodGet, "/api/trending-topics/test", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestCountriesAndModels(t *testing.T) {
	srv, s, _ := newTestServer(t)

	s.trends.EXPECT().Countries().Return(domain.Countries())
	s.models.EXPECT().Models().Return([]port.ModelInfo{{Name: "gpt-5-nano", Advanced: true}})

	_, env := do(t, srv, http.MethodGet, "/api/trending-topics/countries", "")
	var countries []domain.Country
	require.NoError(t, json.Unmarshal(env.Data, &countries))
	assert.Len(t, countries, 6)

	_, env = do(t, srv, http.MethodGet, "/api/models", "")
	assert.Contains(t, string(env.Data), "gpt-5-nano")
}

func TestABTests(t *testing.T) {
	srv, s, _ := newTestServer(t)

	s.abtests.EXPECT().CreateABTest(mock.Anything, mock.MatchedBy(func(in domain.ABTestInput) bool {
		return in.Name == "t1" && len(in.VariantA) == 1 && len(in.VariantB) == 1
	})).Return(&domain.ABTest{ID: 1, Name: "t1", Status: domain.ABTestDraft, TrafficSplit: 0.5}, nil)
	s.abtests.EXPECT().ABTest(mock.Anything, int64(1)).
		Return(&domain.ABTest{ID: 1, TotalImpressionsA: 10, TotalClicksA: 1}, nil)
	s.abtests.EXPECT().ABTest(mock.Anything, int64(2)).Return(nil, port.ErrABTestNotFound)
	s.abtests.EXPECT().RecordEvent(mock.Anything, int64(1), domain.VariantA, domain.EventClick).Return(nil)
	s.abtests.EXPECT().RecordEvent(mock.Anything, int64(1), domain.Variant("C"), domain.EventClick).Return(port.ErrInvalidVariant)

	status, _ := do(t, srv, http.MethodPost, "/api/ab-tests", `{"name":"t1","variant_a":[1],"variant_b":[2]}`)
	assert.Equal(t, http.StatusCreated, status)

	status, env := do(t, srv, http.MethodGet, "/api/ab-tests/1", "")
	assert.Equal(t, http.StatusOK, status)
	var view struct {
		CTRA float64 `json:"ctr_a"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.InDelta(t, 0.1, view.CTRA, 1e-9)

	status, _ = do(t, srv, http.MethodGet, "/api/ab-tests/2", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, srv, http.MethodPost, "/api/ab-tests/1/events", `{"variant":"A","kind":"click"}`)
	assert.Equal(t, http.StatusOK, status)
	status, _ = do(t, srv, http.MethodPost, "/api/ab-tests/1/events", `{"variant":"C","kind":"click"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _, _ := newTestServer(t)

	status, env := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `creative_factory_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}
