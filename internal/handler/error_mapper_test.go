package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/forgo/hangs/internal/database"
	"github.com/forgo/hangs/internal/model"
	"github.com/forgo/hangs/internal/service"
)

func TestMapServiceError_Nil(t *testing.T) {
	t.Parallel()

	if MapServiceError(nil) != nil {
		t.Error("expected nil for nil error")
	}
}

func TestMapServiceError_Statuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not owner", service.ErrNotHangOwner, http.StatusForbidden},
		{"hang not found", service.ErrHangNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("rsvp: %w", service.ErrHangNotFound), http.StatusNotFound},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound},
		{"email taken", service.ErrEmailAlreadyExists, http.StatusConflict},
		{"invalid hang", service.ErrInvalidHang, http.StatusUnprocessableEntity},
		{"field errors", &service.ValidationError{Fields: []model.FieldError{{Field: "title", Message: "title is required"}}}, http.StatusUnprocessableEntity},
		{"invalid email", service.ErrInvalidEmail, http.StatusUnprocessableEntity},
		{"password too long", service.ErrPasswordTooLong, http.StatusUnprocessableEntity},
		{"password required", service.ErrPasswordRequired, http.StatusUnprocessableEntity},
		{"incorrect password", service.ErrIncorrectPassword, http.StatusUnprocessableEntity},
		{"query error", database.ErrQuery, http.StatusInternalServerError},
		{"connection error", database.ErrConnection, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		got := MapServiceError(tt.err)
		if got.Status != tt.status {
			t.Errorf("%s: expected status %d, got %d", tt.name, tt.status, got.Status)
		}
	}
}

func TestMapServiceError_StorageDetailNotExposed(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: %v", service.ErrInvalidHang, "Found 'x' for field `owner` on hang:abc")

	got := MapServiceError(err)

	if len(got.Errors) != 1 || got.Errors[0].Message != service.ErrInvalidHang.Error() {
		t.Errorf("expected generic field error, got %+v", got.Errors)
	}
}

func TestMapServiceError_ValidationFieldsPassThrough(t *testing.T) {
	t.Parallel()

	fields := []model.FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "time", Message: "time must be a string"},
	}

	got := MapServiceError(&service.ValidationError{Fields: fields})

	if len(got.Errors) != 2 || got.Errors[1].Field != "time" {
		t.Errorf("expected field errors to be carried through, got %+v", got.Errors)
	}
	if got.Code != model.ErrCodeValidation {
		t.Errorf("expected validation code, got %d", got.Code)
	}
}
