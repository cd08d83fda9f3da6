package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dave9314/online-market/internal/models"
	"github.com/dave9314/online-market/internal/services"
)

type CategoryHandler struct {
	Service     *services.CategoryService
	ItemService *services.ItemService
}

func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.GetAllCategories(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to fetch categories")
		return
	}
	json.NewEncoder(w).Encode(categories)
}

func (h *CategoryHandler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := getParam(r, "slug")
	if slug == "" {
		http.Error(w, "Invalid category slug", http.StatusBadRequest)
		return
	}
	category, err := h.Service.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch category")
		return
	}
	items, err := h.ItemService.ListItems(r.Context(), category.ID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch category items")
		return
	}
	json.NewEncoder(w).Encode(struct {
		Category models.Category `json:"category"`
		Items    []models.Item   `json:"items"`
	}{Category: category, Items: items})
}
