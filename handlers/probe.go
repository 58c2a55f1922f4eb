package handlers

import (
	"errors"
	"net/http"
	"os"

	"surgeonsite/store"
)

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Surgeon site backend is running"})
}

// TestDatabase handles GET /test. The probe never fails observably: every
// internal error is rendered as a degraded status string.
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	names, err := h.store.Collections(r.Context())
	if errors.Is(err, store.ErrNotConfigured) {
		status["database"] = "⚠️  Available but not initialized"
	} else {
		if os.Getenv("DATABASE_URL") != "" {
			status["database_url"] = "✅ Set"
		} else {
			status["database_url"] = "❌ Not Set"
		}
		if name := os.Getenv("DATABASE_NAME"); name != "" {
			status["database_name"] = name
		} else {
			status["database_name"] = "❌ Not Set"
		}
		status["connection_status"] = "Connected"

		if err != nil {
			status["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			if names == nil {
				names = []string{}
			}
			status["collections"] = names
			status["database"] = "✅ Connected & Working"
		}
	}

	respondWithJSON(w, http.StatusOK, status)
}

// truncate cuts on runes so Cyrillic error text is never split mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
