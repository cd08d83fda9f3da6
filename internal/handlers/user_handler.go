package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dave9314/online-market/internal/models"
	"github.com/dave9314/online-market/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		log.Printf("SignUp error: %v", err)
		writeServiceError(w, err, "Failed to sign up")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	tokens, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Failed to sign in")
		return
	}
	json.NewEncoder(w).Encode(tokens)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetProfile(r.Context(), callerFromRequest(r))
	if err != nil {
		writeServiceError(w, err, "Failed to get profile")
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.Service.UpdateProfile(r.Context(), callerFromRequest(r), req)
	if err != nil {
		writeServiceError(w, err, "Failed to update profile")
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.LogOut(r.Context(), callerFromRequest(r)); err != nil {
		writeServiceError(w, err, "Failed to log out")
		return
	}
	w.WriteHeader(http.StatusOK)
}
