package httpadapter

import (
	"net/http"

	"creative-factory/internal/core/domain"
)

// abTestView adds the derived click-through rates to a test.
type abTestView struct {
	domain.ABTest
	CTRA float64 `json:"ctr_a"`
	CTRB float64 `json:"ctr_b"`
}

func newABTestView(t domain.ABTest) abTestView {
	return abTestView{ABTest: t, CTRA: t.CTRA(), CTRB: t.CTRB()}
}

// handleCreateABTest stores a draft experiment from the posted
// ABTestInput. Invalid input produces HTTP 400; on success it answers
// HTTP 201 with the test and its assignments.
func (h *Handler) handleCreateABTest(w http.ResponseWriter, r *http.Request) {
	var in domain.ABTestInput
	if err := decodeJSON(r, &in, false); err != nil {
		h.writeError(w, r, "create ab test", err)
		return
	}
	test, err := h.svc.ABTests.CreateABTest(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "create ab test", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, envelope{Success: true, Data: newABTestView(*test)})
}

// handleListABTests returns every experiment, newest first, with its
// counters and derived click-through rates.
func (h *Handler) handleListABTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.svc.ABTests.ABTests(r.Context())
	if err != nil {
		h.writeError(w, r, "list ab tests", err)
		return
	}
	views := make([]abTestView, 0, len(tests))
	for _, t := range tests {
		views = append(views, newABTestView(t))
	}
	h.writeOK(w, "", views)
}

// handleGetABTest returns one test with its assignments and rates.
func (h *Handler) handleGetABTest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeFail(w, http.StatusBadRequest, "invalid ab test id")
		return
	}
	test, err := h.svc.ABTests.ABTest(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get ab test", err)
		return
	}
	h.writeOK(w, "", newABTestView(*test))
}
