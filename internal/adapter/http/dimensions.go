package httpadapter

import (
	"net/http"

	"creative-factory/internal/core/domain"
)

// handleListDimensions returns the active dimensions in sort order, each
// with all of its options. Repository errors produce HTTP 500.
func (h *Handler) handleListDimensions(w http.ResponseWriter, r *http.Request) {
	dims, err := h.svc.Catalog.Dimensions(r.Context())
	if err != nil {
		h.writeError(w, r, "list dimensions", err)
		return
	}
	if dims == nil {
		dims = []domain.Dimension{}
	}
	h.writeOK(w, "", dims)
}

// handleAddOption appends an option to the dimension bound by the {id} path
// parameter. A missing name gives HTTP 400 and an unknown dimension HTTP
// 404. On success it returns the stored option.
func (h *Handler) handleAddOption(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeFail(w, http.StatusBadRequest, "invalid dimension id")
		return
	}
	var in domain.OptionInput
	if err := decodeJSON(r, &in, false); err != nil {
		h.writeError(w, r, "add option", err)
		return
	}
	opt, err := h.svc.Catalog.AddOption(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, "add option", err)
		return
	}
	h.writeOK(w, "选项添加成功", opt)
}

// handleUpdateDimension applies a typed patch. Fields other than
// display_name, description, is_active and sort_order are rejected.
func (h *Handler) handleUpdateDimension(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeFail(w, http.StatusBadRequest, "invalid dimension id")
		return
	}
	var patch domain.DimensionPatch
	if err := decodeJSON(r, &patch, true); err != nil {
		h.writeError(w, r, "update dimension", err)
		return
	}
	dim, err := h.svc.Catalog.UpdateDimension(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, "update dimension", err)
		return
	}
	h.writeOK(w, "维度更新成功", dim)
}
