package handlers

import (
	"encoding/json"
	"net/http"

	"surgeonsite/models"
	"surgeonsite/services"
)

// CalculateBMI handles POST /api/bmi. Stateless: nothing is persisted.
func (h *Handler) CalculateBMI(w http.ResponseWriter, r *http.Request) {
	var query models.BMIQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	bmi, category, err := services.CalculateBMI(query.HeightCM, query.WeightKG)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, models.BMIResult{BMI: bmi, Category: category})
}
