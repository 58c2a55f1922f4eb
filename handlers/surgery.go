package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"surgeonsite/models"
	"surgeonsite/services"
	"surgeonsite/store"
)

// ListSurgeries handles GET /api/surgeries. The fallback policy is explicit:
// attempt the fetch, then on a missing store, a fetch error or an empty
// collection serve the curated default list.
func (h *Handler) ListSurgeries(w http.ResponseWriter, r *http.Request) {
	var items []models.Surgery
	err := h.store.Fetch(r.Context(), models.SurgeryCollection, 0, &items)
	if err != nil || len(items) == 0 {
		if err != nil && !errors.Is(err, store.ErrNotConfigured) {
			log.Warn().Err(err).Msg("surgery fetch failed, serving defaults")
		}
		items = services.DefaultSurgeries()
	}
	respondWithJSON(w, http.StatusOK, items)
}

// GetDoctor handles GET /api/doctor with the same fallback policy as the
// surgery list.
func (h *Handler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	var profiles []models.DoctorProfile
	err := h.store.Fetch(r.Context(), models.DoctorProfileCollection, 1, &profiles)
	if err != nil || len(profiles) == 0 {
		if err != nil && !errors.Is(err, store.ErrNotConfigured) {
			log.Warn().Err(err).Msg("doctor profile fetch failed, serving default")
		}
		respondWithJSON(w, http.StatusOK, services.DefaultDoctorProfile())
		return
	}
	respondWithJSON(w, http.StatusOK, profiles[0])
}
