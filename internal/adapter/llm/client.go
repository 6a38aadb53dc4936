package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"creative-factory/internal/config/configs"
	"creative-factory/internal/core/port"
	"creative-factory/internal/metrics"
)

const (
	apiChat      = "chat"
	apiResponses = "responses"

	maxResponseBytes = 8 << 20
)

// Client talks to an OpenAI-compatible API. It implements port.CreativeLLM,
// port.Translator and port.ModelCatalog.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	metrics    *metrics.Metrics

	maxRetries    uint64
	newBackOff    func() backoff.BackOff
	defaultModel  string
	fallbackModel string
	budget        tokenBudget
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBackOff replaces the retry schedule of CompleteWithFallback.
func WithBackOff(factory func() backoff.BackOff) Option {
	return func(c *Client) { c.newBackOff = factory }
}

// New builds a client from cfg. m may be nil.
func New(cfg configs.LLM, logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Client {
	c := &Client{
		apiKey:        strings.TrimSpace(cfg.APIKey),
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		logger:        logger.With(slog.String("component", "llm")),
		metrics:       m,
		maxRetries:    cfg.MaxRetries,
		defaultModel:  cfg.DefaultModel,
		fallbackModel: cfg.FallbackModel,
		budget: tokenBudget{
			base:    cfg.BaseTokens,
			perItem: cfg.TokensPerItem,
			min:     cfg.MinTokens,
			max:     cfg.MaxTokens,
		},
	}
	c.newBackOff = func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		if cfg.InitialBackoff > 0 {
			b.InitialInterval = cfg.InitialBackoff
		}
		if cfg.MaxBackoff > 0 {
			b.MaxInterval = cfg.MaxBackoff
		}
		b.MaxElapsedTime = 2 * time.Minute
		return b
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether an API key is configured.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the input of Complete. A nil Temperature uses 0.7 for
// models that accept one.
type ChatRequest struct {
	Messages        []Message
	Model           string
	MaxTokens       int
	Temperature     *float64
	ResponseFormat  string
	ReasoningEffort string
}

// AlternateRequest is the input of CompleteAlternate.
type AlternateRequest struct {
	Input           string
	Model           string
	Instructions    string
	ReasoningEffort string
	MaxOutputTokens int
}

// Complete performs one chat completion call.
func (c *Client) Complete(ctx context.Context, req ChatRequest) (*port.Completion, error) {
	entry, err := c.precheck(req.Model)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"model":    req.Model,
		"messages": req.Messages,
	}
	if IsAdvanced(req.Model) {
		if req.MaxTokens > 0 {
			body["max_completion_tokens"] = req.MaxTokens
		}
		if entry.supportsEffort(req.ReasoningEffort) {
			body["reasoning_effort"] = req.ReasoningEffort
		}
	} else {
		temperature := 0.7
		if req.Temperature != nil {
			temperature = *req.Temperature
		}
		body["temperature"] = temperature
		if req.MaxTokens > 0 {
			body["max_tokens"] = req.MaxTokens
		}
	}
	if req.ResponseFormat != "" {
		body["response_format"] = map[string]string{"type": req.ResponseFormat}
	}

	start := time.Now()
	raw, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		c.observe(req.Model, apiChat, err, start)
		return nil, err
	}

	var resp struct {
		Model   string `json:"model"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
			FinishReason string `json:"finish_reason"`
		} `json:"choices"`
		Usage port.TokenUsage `json:"usage"`
	}
	if err = json.Unmarshal(raw, &resp); err != nil {
		err = newError(KindUnknown, "decode chat response", err)
		c.observe(req.Model, apiChat, err, start)
		return nil, err
	}
	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}
	if strings.TrimSpace(content) == "" {
		err = newError(KindEmptyResponse, "chat completion returned no text", nil)
		c.observe(req.Model, apiChat, err, start)
		return nil, err
	}
	c.observe(req.Model, apiChat, nil, start)
	return &port.Completion{Content: content, Model: req.Model, API: apiChat, Usage: resp.Usage}, nil
}

// CompleteAlternate performs one call against the single-input responses
// API and concatenates every returned text fragment.
func (c *Client) CompleteAlternate(ctx context.Context, req AlternateRequest) (*port.Completion, error) {
	entry, err := c.precheck(req.Model)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"model": req.Model,
		"input": req.Input,
	}
	if req.Instructions != "" {
		body["instructions"] = req.Instructions
	}
	if entry.supportsEffort(req.ReasoningEffort) {
		body["reasoning"] = map[string]string{"effort": req.ReasoningEffort}
	}
	if req.MaxOutputTokens > 0 {
		body["max_output_tokens"] = req.MaxOutputTokens
	}

	start := time.Now()
	raw, err := c.post(ctx, "/responses", body)
	if err != nil {
		c.observe(req.Model, apiResponses, err, start)
		return nil, err
	}

	var resp responsesResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		err = newError(KindUnknown, "decode responses output", err)
		c.observe(req.Model, apiResponses, err, start)
		return nil, err
	}
	content := resp.text()
	if strings.TrimSpace(content) == "" {
		err = newError(KindEmptyResponse, "responses call returned no text", nil)
		c.observe(req.Model, apiResponses, err, start)
		return nil, err
	}
	c.observe(req.Model, apiResponses, nil, start)
	return &port.Completion{
		Content: content,
		Model:   req.Model,
		API:     apiResponses,
		Usage: port.TokenUsage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// CompleteWithFallback retries Complete with exponential backoff while the
// failure is retryable, at most maxRetries times after the first attempt.
func (c *Client) CompleteWithFallback(ctx context.Context, req ChatRequest) (*port.Completion, error) {
	var out *port.Completion
	operation := func() error {
		res, err := c.Complete(ctx, req)
		if err != nil {
			if !IsRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = res
		return nil
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("chat completion failed, retrying",
			slog.String("model", req.Model),
			slog.Duration("wait", wait),
			slog.Any("error", err))
	}
	b := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.maxRetries), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) precheck(model string) (modelSpec, error) {
	if !c.Available() {
		return modelSpec{}, newError(KindUnavailable, "api key is not configured", nil)
	}
	entry, ok := lookupModel(model)
	if !ok {
		return modelSpec{}, newError(KindInvalidModel, fmt.Sprintf("unsupported model %q", model), nil)
	}
	return entry, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, transportError(ctx, err)
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, newError(KindUnknown, "encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, newError(KindUnknown, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("llm request", slog.String("path", path), slog.Int("bytes", len(body)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(ctx, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, raw)
	}
	return raw, nil
}

func (c *Client) observe(model, api string, err error, start time.Time) {
	outcome := "ok"
	if err != nil {
		outcome = string(KindOf(err))
	}
	c.metrics.ObserveLLM(model, api, outcome, time.Since(start))
}

type responsesResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	OutputText any `json:"output_text"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// text joins the output_text fragments of all output items. The top-level
// output_text convenience field is used when no fragment carries text.
func (r responsesResponse) text() string {
	var sb strings.Builder
	for _, item := range r.Output {
		for _, part := range item.Content {
			switch strings.ToLower(strings.TrimSpace(part.Type)) {
			case "output_text", "text":
				sb.WriteString(part.Text)
			}
		}
	}
	if strings.TrimSpace(sb.String()) != "" {
		return sb.String()
	}
	switch v := r.OutputText.(type) {
	case string:
		return v
	case []any:
		sb.Reset()
		for _, item := range v {
			if s, ok := item.(string); ok {
				sb.WriteString(s)
			}
		}
		return sb.String()
	}
	return ""
}
