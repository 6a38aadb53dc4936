package httpadapter

import (
	"context"
	"fmt"
	"net/http"

	"creative-factory/internal/core/port"
)

// generationContext bounds a generation request by Limits.GenerateTimeout.
// When the deadline passes the generator still answers with local drafts.
func (h *Handler) generationContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.limits.GenerateTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.limits.GenerateTimeout)
}

// handleGenerate builds drafts from a dimension selection and optional
// free text. A missing count falls back to the configured default. The
// response always holds exactly count drafts; validation failures give 400.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req port.GenerateRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.writeError(w, r, "generate", err)
		return
	}
	if req.Count == 0 {
		req.Count = h.limits.DefaultCount
	}
	ctx, cancel := h.generationContext(r)
	defer cancel()
	drafts, err := h.svc.Generator.Generate(ctx, req)
	if err != nil {
		h.writeError(w, r, "generate", err)
		return
	}
	h.writeOK(w, fmt.Sprintf("成功生成 %d 个创意", len(drafts)), drafts)
}

// handleGenerateSimple builds drafts from a game background. An empty
// background is rejected with 400 before the model is called.
func (h *Handler) handleGenerateSimple(w http.ResponseWriter, r *http.Request) {
	var req port.SimpleRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.writeError(w, r, "generate simple", err)
		return
	}
	if req.Count == 0 {
		req.Count = h.limits.DefaultCount
	}
	ctx, cancel := h.generationContext(r)
	defer cancel()
	drafts, err := h.svc.Generator.GenerateSimple(ctx, req)
	if err != nil {
		h.writeError(w, r, "generate simple", err)
		return
	}
	h.writeOK(w, fmt.Sprintf("成功生成 %d 个创意", len(drafts)), drafts)
}

// handleModels lists the models the generator accepts in ai_model.
func (h *Handler) handleModels(w http.ResponseWriter, _ *http.Request) {
	var models []port.ModelInfo
	if h.svc.Models != nil {
		models = h.svc.Models.Models()
	}
	if models == nil {
		models = []port.ModelInfo{}
	}
	h.writeOK(w, "", models)
}
