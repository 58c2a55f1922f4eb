package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"surgeonsite/models"
	"surgeonsite/store"
)

// SubmitContact handles POST /api/contact. Without a store the message is
// accepted and reported as not stored: the site must keep working without
// persistence.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var payload models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.store.Insert(r.Context(), models.ContactCollection, payload)
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			log.Warn().Str("name", payload.Name).Msg("contact message accepted without persistence")
			respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "stored": false})
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "stored": true, "id": id})
}
