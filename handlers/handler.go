package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"surgeonsite/store"
)

const defaultLimit = 12

// Handler serves the site API. The store is injected at construction and is
// store.NotConfigured when no database was configured at startup.
type Handler struct {
	store    store.Store
	validate *validator.Validate
}

func New(s store.Store) *Handler {
	return &Handler{store: s, validate: validator.New()}
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{"detail": message})
}

func parseLimit(r *http.Request) int64 {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return int64(n)
		}
	}
	return defaultLimit
}
