package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dave9314/online-market/internal/models"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: models.NewValidationError("price", "price must be positive"), wantStatus: http.StatusUnprocessableEntity},
		{name: "unauthorized", err: models.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "forbidden", err: models.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "item not found", err: models.ErrItemNotFound, wantStatus: http.StatusNotFound},
		{name: "user not found", err: models.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "duplicate username", err: models.ErrDuplicateUsername, wantStatus: http.StatusConflict},
		{name: "invalid password", err: models.ErrInvalidPassword, wantStatus: http.StatusUnauthorized},
		{name: "unclassified", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tt.err, "Something went wrong")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestWriteServiceErrorValidationBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, models.NewValidationError("rating", "rating must be between 1 and 5"), "")

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["field"] != "rating" {
		t.Errorf("field = %q; want %q", body["field"], "rating")
	}
	if body["error"] == "" {
		t.Error("error message missing from body")
	}
}

func TestCallerFromRequest(t *testing.T) {
	base := httptest.NewRequest(http.MethodGet, "/item", nil)

	if caller := callerFromRequest(base); caller != nil {
		t.Errorf("bare request: caller = %+v; want nil", caller)
	}

	ctx := context.WithValue(base.Context(), "user_id", 7)
	ctx = context.WithValue(ctx, "role", models.RoleAdmin)
	caller := callerFromRequest(base.WithContext(ctx))
	if caller == nil || caller.ID != 7 || caller.Role != models.RoleAdmin {
		t.Errorf("caller = %+v; want ID 7 role ADMIN", caller)
	}
}

func TestGetParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/item/5?:id=5", nil)
	if got := getParam(r, "id"); got != "5" {
		t.Errorf("colon-prefixed param = %q; want %q", got, "5")
	}

	r = httptest.NewRequest(http.MethodGet, "/item?category=3", nil)
	if got := getParam(r, "category"); got != "3" {
		t.Errorf("query param = %q; want %q", got, "3")
	}
}
