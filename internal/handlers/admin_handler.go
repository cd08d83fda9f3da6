package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/dave9314/online-market/internal/models"
	"github.com/dave9314/online-market/internal/repositories"
	"github.com/dave9314/online-market/internal/services"
)

type AdminHandler struct {
	UserService *services.UserService
	ItemService *services.ItemService
	StatsRepo   *repositories.StatsRepository
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsRepo.GetDashboardStats(r.Context())
	if err != nil {
		log.Printf("GetStats error: %v", err)
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(stats)
}

func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.GetAllUsers(r.Context(), callerFromRequest(r))
	if err != nil {
		writeServiceError(w, err, "Failed to fetch users")
		return
	}
	json.NewEncoder(w).Encode(users)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	if err := h.UserService.DeleteUser(r.Context(), callerFromRequest(r), id); err != nil {
		writeServiceError(w, err, "Failed to delete user")
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "User deleted successfully"})
}

func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	var req models.RoleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.UserService.ChangeRole(r.Context(), callerFromRequest(r), id, req.Role)
	if err != nil {
		writeServiceError(w, err, "Failed to update user")
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *AdminHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}
	if err := h.ItemService.DeleteItem(r.Context(), callerFromRequest(r), id); err != nil {
		writeServiceError(w, err, "Failed to delete item")
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Item deleted successfully"})
}
