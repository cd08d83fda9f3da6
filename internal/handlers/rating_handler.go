package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/dave9314/online-market/internal/models"
	"github.com/dave9314/online-market/internal/services"
)

type RatingHandler struct {
	Service *services.RatingService
}

func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	rating, err := h.Service.Submit(r.Context(), callerFromRequest(r), req)
	if err != nil {
		log.Printf("SubmitRating error: %v", err)
		writeServiceError(w, err, "Failed to submit rating")
		return
	}
	json.NewEncoder(w).Encode(rating)
}

func (h *RatingHandler) GetRatingsByItemID(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(getParam(r, "item_id"))
	if err != nil {
		http.Error(w, "Invalid item_id", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.ListForItem(r.Context(), itemID)
	if err != nil {
		writeServiceError(w, err, "Failed to get ratings")
		return
	}
	json.NewEncoder(w).Encode(resp)
}
