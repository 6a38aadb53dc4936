package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a failed language model call.
type ErrorKind string

const (
	// KindUnavailable means the client is not configured or the credentials
	// were rejected.
	KindUnavailable      ErrorKind = "unavailable"
	KindInvalidModel     ErrorKind = "invalid_model"
	KindNetworkOrTimeout ErrorKind = "network_or_timeout"
	KindRateLimited      ErrorKind = "rate_limited"
	KindOverloaded       ErrorKind = "overloaded"
	// KindEmptyResponse means the service answered without any text.
	KindEmptyResponse ErrorKind = "empty_response"
	KindUnknown       ErrorKind = "unknown"
)

// Error is returned by every Client call that fails.
type Error struct {
	Kind ErrorKind
	// Detail is a human-readable description of the failure.
	Detail string
	// Retryable tells the retry wrapper whether another attempt may help.
	Retryable bool
	// StatusCode is the upstream HTTP status, 0 when no response arrived.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("llm %s: %s", e.Kind, e.Detail)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, detail string, err error) *Error {
	retryable := false
	switch kind {
	case KindNetworkOrTimeout, KindRateLimited, KindOverloaded, KindUnknown:
		retryable = true
	}
	return &Error{Kind: kind, Detail: detail, Retryable: retryable, Err: err}
}

// IsRetryable reports whether err is an *Error flagged as retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}

// KindOf returns the kind of err, KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// transportError classifies a failure to get any HTTP response. A request
// aborted by its own context is never retried.
func transportError(ctx context.Context, err error) *Error {
	e := newError(KindNetworkOrTimeout, "request failed", err)
	if ctx.Err() != nil {
		e.Detail = "request cancelled"
		e.Retryable = false
	}
	return e
}

// statusError classifies a non-2xx response.
func statusError(status int, body []byte) *Error {
	message, code := upstreamMessage(body)
	detail := fmt.Sprintf("status %d", status)
	if message != "" {
		detail += ": " + message
	}

	var e *Error
	switch {
	case code == "model_not_found" || status == http.StatusNotFound:
		e = newError(KindInvalidModel, detail, nil)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e = newError(KindUnavailable, detail, nil)
	case status == http.StatusRequestTimeout:
		e = newError(KindNetworkOrTimeout, detail, nil)
	case status == http.StatusTooManyRequests:
		e = newError(KindRateLimited, detail, nil)
	case status >= 500:
		e = newError(KindOverloaded, detail, nil)
	default:
		e = newError(KindUnknown, detail, nil)
		if status == http.StatusBadRequest || status == http.StatusUnprocessableEntity {
			e.Retryable = false
		}
	}
	e.StatusCode = status
	return e
}

// upstreamMessage extracts error.message and error.code from an OpenAI
// style error body, falling back to the trimmed raw body.
func upstreamMessage(body []byte) (message, code string) {
	var payload struct {
		Error struct {
			Message string          `json:"message"`
			Code    json.RawMessage `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		_ = json.Unmarshal(payload.Error.Code, &code)
		return payload.Error.Message, code
	}
	raw := strings.TrimSpace(string(body))
	if r := []rune(raw); len(r) > 200 {
		raw = string(r[:200]) + "..."
	}
	return raw, ""
}
