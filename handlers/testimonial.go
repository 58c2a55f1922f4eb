package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"surgeonsite/models"
	"surgeonsite/store"
)

// ListTestimonials handles GET /api/testimonials?limit=. Without a store it
// returns an empty list; a failing fetch surfaces as a server error.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items := []models.Testimonial{}
	err := h.store.Fetch(r.Context(), models.TestimonialCollection, parseLimit(r), &items)
	if err != nil && !errors.Is(err, store.ErrNotConfigured) {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for i := range items {
		if items[i].Rating == nil {
			rating := models.DefaultRating
			items[i].Rating = &rating
		}
	}
	respondWithJSON(w, http.StatusOK, items)
}

// CreateTestimonial handles POST /api/testimonials. The payload is validated
// before any store interaction; creation requires persistence, so a missing
// store is a server error.
func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var payload models.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Rating == nil {
		rating := models.DefaultRating
		payload.Rating = &rating
	}
	if err := h.validate.Struct(payload); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.store.Insert(r.Context(), models.TestimonialCollection, payload)
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			respondWithError(w, http.StatusInternalServerError, "Database not available")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"id": id, "ok": true})
}
