package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/dave9314/online-market/internal/models"
	"github.com/dave9314/online-market/internal/services"
)

type ItemHandler struct {
	Service *services.ItemService
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	item, err := h.Service.CreateItem(r.Context(), callerFromRequest(r), req)
	if err != nil {
		log.Printf("CreateItem error: %v", err)
		writeServiceError(w, err, "Failed to create item")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("category_id"))
	items, err := h.Service.ListItems(r.Context(), categoryID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch items")
		return
	}
	json.NewEncoder(w).Encode(items)
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}
	item, err := h.Service.GetItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch item")
		return
	}
	json.NewEncoder(w).Encode(item)
}

func (h *ItemHandler) GetTopRated(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.TopRated(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to fetch top rated items")
		return
	}
	json.NewEncoder(w).Encode(items)
}

func (h *ItemHandler) GetMyItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItemsByOwner(r.Context(), callerFromRequest(r))
	if err != nil {
		writeServiceError(w, err, "Failed to fetch items")
		return
	}
	json.NewEncoder(w).Encode(items)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}
	var req models.ItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	item, err := h.Service.UpdateItem(r.Context(), callerFromRequest(r), id, req)
	if err != nil {
		writeServiceError(w, err, "Failed to update item")
		return
	}
	json.NewEncoder(w).Encode(item)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteItem(r.Context(), callerFromRequest(r), id); err != nil {
		writeServiceError(w, err, "Failed to delete item")
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Item deleted successfully"})
}
