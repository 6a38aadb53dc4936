package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"creative-factory/internal/core/port"
)

const trendsSuggestion = "请检查网络连接或稍后重试，Google Trends 可能暂时限制了访问频率"

type trendingTopicsRequest struct {
	CountryCode string `json:"country_code"`
	TimeRange   string `json:"time_range"`
	TopN        *int   `json:"top_n"`
	Translate   *bool  `json:"translate_to_chinese"`
}

// handleTrendingTopics defaults to the weekly top ten of VN, translated.
func (h *Handler) handleTrendingTopics(w http.ResponseWriter, r *http.Request) {
	var body trendingTopicsRequest
	if err := decodeJSON(r, &body, false); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, "trending topics", err)
		return
	}
	req := port.TrendsRequest{
		CountryCode: body.CountryCode,
		TimeRange:   body.TimeRange,
		TopN:        10,
		Translate:   true,
	}
	if req.CountryCode == "" {
		req.CountryCode = "VN"
	}
	if req.TimeRange == "" {
		req.TimeRange = "week"
	}
	if body.TopN != nil {
		req.TopN = *body.TopN
	}
	if body.Translate != nil {
		req.Translate = *body.Translate
	}

	topics, err := h.svc.Trends.FetchTrendingTopics(r.Context(), req)
	if err != nil {
		h.writeTrendsError(w, r, err)
		return
	}
	h.writeOK(w, "", topics)
}

// handleCountries lists the markets accepted by country_code.
func (h *Handler) handleCountries(w http.ResponseWriter, _ *http.Request) {
	h.writeOK(w, "", h.svc.Trends.Countries())
}

// handleTimeRanges lists the keys accepted by time_range.
func (h *Handler) handleTimeRanges(w http.ResponseWriter, _ *http.Request) {
	h.writeOK(w, "", h.svc.Trends.TimeRanges())
}

// handleTrendsTest runs a single upstream lookup. A failure is reported as
// HTTP 502 with a suggestion, like a failed topic lookup.
func (h *Handler) handleTrendsTest(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Trends.TestConnectivity(r.Context()); err != nil {
		h.writeTrendsError(w, r, err)
		return
	}
	h.writeOK(w, "Google Trends 服务连接正常", map[string]string{"status": "ok"})
}

// writeTrendsError reports upstream failures as 502 with a hint for the
// user. Validation errors keep their 400.
func (h *Handler) writeTrendsError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrUnsupportedCountry),
		errors.Is(err, port.ErrUnsupportedTimeRange),
		errors.Is(err, port.ErrInvalidTopN),
		errors.Is(err, errBadJSON):
		h.writeError(w, r, "trending topics", err)
		return
	}
	h.logger.Warn("trends unavailable",
		slog.String("request_id", requestID(r)),
		slog.Any("error", err))
	message := "无法获取实时热门话题"
	if !errors.Is(err, port.ErrNoLiveTrends) {
		message = "Google Trends 服务暂时不可用"
	}
	h.writeJSON(w, http.StatusBadGateway, envelope{
		Success:    false,
		Message:    message,
		Suggestion: trendsSuggestion,
	})
}
