package trends

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"creative-factory/internal/config/configs"
	"creative-factory/internal/core/port"
)

const (
	relatedQueriesWidget = "RELATED_QUERIES"
	userAgent            = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxBodyBytes         = 4 << 20
)

// ErrNoWidget is returned when explore does not offer a related queries widget,
// typically for keywords without enough search volume.
var ErrNoWidget = errors.New("related queries widget not available")

// HTTPError is a non-2xx answer from Google Trends.
type HTTPError struct {
	Status int
	Path   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("google trends %s: status %d", e.Path, e.Status)
}

// Temporary reports whether retrying may succeed.
func (e *HTTPError) Temporary() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// TransportError wraps a failed round trip, e.g. a reset connection or a
// client timeout. It is always worth retrying.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("google trends %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Temporary reports true.
func (e *TransportError) Temporary() bool { return true }

// Google implements port.TrendsSource against the Google Trends web API.
type Google struct {
	base       *url.URL
	language   string
	tz         string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGoogle returns a source with its own cookie jar.
func NewGoogle(cfg configs.Trends, logger *slog.Logger) (*Google, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse trends base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Google{
		base:       base,
		language:   cfg.Language,
		tz:         strconv.Itoa(cfg.TZOffset),
		httpClient: &http.Client{Timeout: cfg.Timeout, Jar: jar},
		logger:     logger.With(slog.String("component", "trends")),
	}, nil
}

// Name identifies the source in responses.
func (g *Google) Name() string {
	return "google_trends"
}

// RelatedQueries returns the top and rising related searches of keyword in
// geo over timeframe.
func (g *Google) RelatedQueries(ctx context.Context, keyword, geo, timeframe string) (port.RelatedQueries, error) {
	if err := g.warmUp(ctx, geo); err != nil {
		return port.RelatedQueries{}, err
	}
	widget, err := g.explore(ctx, keyword, geo, timeframe)
	if err != nil {
		return port.RelatedQueries{}, err
	}
	return g.relatedSearches(ctx, widget)
}

// warmUp fetches the landing page once so the jar holds the NID cookie the
// API endpoints expect.
func (g *Google) warmUp(ctx context.Context, geo string) error {
	if len(g.httpClient.Jar.Cookies(g.base)) > 0 {
		return nil
	}
	_, err := g.get(ctx, "/", url.Values{"geo": {geo}})
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			g.logger.Debug("cookie warm-up answered with error status", slog.Int("status", httpErr.Status))
			return nil
		}
		return err
	}
	return nil
}

type widget struct {
	ID      string          `json:"id"`
	Token   string          `json:"token"`
	Request json.RawMessage `json:"request"`
}

func (g *Google) explore(ctx context.Context, keyword, geo, timeframe string) (widget, error) {
	req, err := json.Marshal(map[string]any{
		"comparisonItem": []map[string]string{{"keyword": keyword, "geo": geo, "time": timeframe}},
		"category":       0,
		"property":       "",
	})
	if err != nil {
		return widget{}, err
	}
	body, err := g.get(ctx, "/trends/api/explore", url.Values{
		"hl":  {g.language},
		"tz":  {g.tz},
		"req": {string(req)},
	})
	if err != nil {
		return widget{}, err
	}

	var payload struct {
		Widgets []widget `json:"widgets"`
	}
	if err = decodeGuarded(body, &payload); err != nil {
		return widget{}, fmt.Errorf("decode explore: %w", err)
	}
	for _, w := range payload.Widgets {
		if strings.HasPrefix(w.ID, relatedQueriesWidget) {
			return w, nil
		}
	}
	return widget{}, ErrNoWidget
}

func (g *Google) relatedSearches(ctx context.Context, w widget) (port.RelatedQueries, error) {
	body, err := g.get(ctx, "/trends/api/widgetdata/relatedsearches", url.Values{
		"hl":    {g.language},
		"tz":    {g.tz},
		"req":   {string(w.Request)},
		"token": {w.Token},
	})
	if err != nil {
		return port.RelatedQueries{}, err
	}

	var payload struct {
		Default struct {
			RankedList []struct {
				RankedKeyword []struct {
					Query string `json:"query"`
				} `json:"rankedKeyword"`
			} `json:"rankedList"`
		} `json:"default"`
	}
	if err = decodeGuarded(body, &payload); err != nil {
		return port.RelatedQueries{}, fmt.Errorf("decode related searches: %w", err)
	}

	var out port.RelatedQueries
	for i, list := range payload.Default.RankedList {
		queries := make([]string, 0, len(list.RankedKeyword))
		for _, k := range list.RankedKeyword {
			if q := strings.TrimSpace(k.Query); q != "" {
				queries = append(queries, q)
			}
		}
		switch i {
		case 0:
			out.Top = queries
		case 1:
			out.Rising = queries
		}
	}
	return out, nil
}

func (g *Google) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := *g.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", g.language)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{Status: resp.StatusCode, Path: path}
	}
	return body, nil
}

// decodeGuarded strips the anti-XSSI prefix Google puts before JSON bodies.
func decodeGuarded(body []byte, v any) error {
	i := bytes.IndexByte(body, '{')
	if i < 0 {
		return errors.New("no json object in response")
	}
	return json.Unmarshal(body[i:], v)
}
