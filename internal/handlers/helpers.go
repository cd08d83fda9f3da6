package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dave9314/online-market/internal/models"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	if val := r.URL.Query().Get(name); val != "" {
		return val
	}
	return r.PathValue(name)
}

// callerFromRequest builds the caller identity from the values the JWT
// middleware put on the context. Nil means an unauthenticated request.
func callerFromRequest(r *http.Request) *models.Caller {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok || userID <= 0 {
		return nil
	}
	role, _ := r.Context().Value("role").(string)
	return &models.Caller{ID: userID, Role: role}
}

// writeServiceError maps service-layer failures onto HTTP statuses.
// Validation problems keep their field detail; everything unclassified
// is a generic 500.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.Is(err, models.ErrUnauthorized):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrCategoryNotFound),
		errors.Is(err, models.ErrRatingNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, models.ErrDuplicateUsername):
		http.Error(w, "Username already exists", http.StatusConflict)
	case errors.Is(err, models.ErrInvalidPassword):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	default:
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
