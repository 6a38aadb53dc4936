package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"creative-factory/internal/core/port"
)

const maxBodyBytes = 4 << 20

// envelope is the body of every JSON response.
type envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Data       any    `json:"data,omitempty"`
}

var errBadJSON = errors.New("invalid JSON body")

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeOK(w http.ResponseWriter, message string, data any) {
	h.writeJSON(w, http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

func (h *Handler) writeFail(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, envelope{Success: false, Message: message})
}

// writeError maps use case errors to status codes. Unknown errors are
// logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, errBadJSON),
		errors.Is(err, port.ErrInvalidCount),
		errors.Is(err, port.ErrEmptyBrief),
		errors.Is(err, port.ErrNoDrafts),
		errors.Is(err, port.ErrOptionNameRequired),
		errors.Is(err, port.ErrUnsupportedCountry),
		errors.Is(err, port.ErrUnsupportedTimeRange),
		errors.Is(err, port.ErrInvalidTopN),
		errors.Is(err, port.ErrInvalidABTest),
		errors.Is(err, port.ErrInvalidVariant),
		errors.Is(err, port.ErrInvalidEventKind):
		h.writeFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrDimensionNotFound),
		errors.Is(err, port.ErrABTestNotFound):
		h.writeFail(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(op+" error",
			slog.String("request_id", requestID(r)),
			slog.Any("error", err))
		h.writeFail(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads a size-limited body into dst. Unknown fields are
// rejected when strict is set.
func decodeJSON(r *http.Request, dst any, strict bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadJSON, err)
	}
	return nil
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
