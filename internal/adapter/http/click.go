package httpadapter

import (
	"net/http"

	"creative-factory/internal/core/domain"
)

type abEventRequest struct {
	Variant domain.Variant   `json:"variant"`
	Kind    domain.EventKind `json:"kind"`
}

// handleRecordEvent counts one impression or click for a test variant. It
// expects an {id} path parameter bound by the router.
func (h *Handler) handleRecordEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeFail(w, http.StatusBadRequest, "invalid ab test id")
		return
	}
	var req abEventRequest
	if err := decodeJSON(r, &req, true); err != nil {
		h.writeError(w, r, "record event", err)
		return
	}
	if err := h.svc.ABTests.RecordEvent(r.Context(), id, req.Variant, req.Kind); err != nil {
		h.writeError(w, r, "record event", err)
		return
	}
	h.writeOK(w, "", nil)
}
