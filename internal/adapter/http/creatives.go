package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"

	"creative-factory/internal/core/domain"
)

type saveCreativesRequest struct {
	Creatives []domain.Draft `json:"creatives"`
}

// handleSaveCreatives persists the drafts posted under "creatives" as
// selected creatives. An empty list is rejected with HTTP 400, storage
// failures produce HTTP 500. On success it returns the stored records.
func (h *Handler) handleSaveCreatives(w http.ResponseWriter, r *http.Request) {
	var req saveCreativesRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.writeError(w, r, "save creatives", err)
		return
	}
	saved, err := h.svc.Generator.Persist(r.Context(), req.Creatives)
	if err != nil {
		h.writeError(w, r, "save creatives", err)
		return
	}
	h.writeOK(w, fmt.Sprintf("成功保存 %d 个创意", len(saved)), saved)
}

// handleListCreatives accepts the optional boolean filters selected and
// representative, and scored=true for creatives with a positive score.
func (h *Handler) handleListCreatives(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filter domain.CreativeFilter
	for name, dst := range map[string]**bool{
		"selected":       &filter.Selected,
		"representative": &filter.Representative,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeFail(w, http.StatusBadRequest, "invalid '"+name+"' parameter")
			return
		}
		*dst = &v
	}
	if raw := q.Get("scored"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeFail(w, http.StatusBadRequest, "invalid 'scored' parameter")
			return
		}
		filter.Scored = v
	}

	creatives, err := h.svc.Generator.ListCreatives(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, "list creatives", err)
		return
	}
	if creatives == nil {
		creatives = []domain.Creative{}
	}
	h.writeOK(w, "", creatives)
}
