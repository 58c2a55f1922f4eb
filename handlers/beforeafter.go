package handlers

import (
	"errors"
	"net/http"

	"surgeonsite/models"
	"surgeonsite/store"
)

// ListBeforeAfter handles GET /api/before-after?limit=. Same policy as the
// testimonial list: empty list without a store, server error on a failing
// fetch.
func (h *Handler) ListBeforeAfter(w http.ResponseWriter, r *http.Request) {
	items := []models.BeforeAfter{}
	err := h.store.Fetch(r.Context(), models.BeforeAfterCollection, parseLimit(r), &items)
	if err != nil && !errors.Is(err, store.ErrNotConfigured) {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}
