package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/hangs/internal/middleware"
	"github.com/forgo/hangs/internal/model"
	"github.com/forgo/hangs/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// Anything it does not recognise becomes an opaque 500.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var validation *service.ValidationError
	if errors.As(err, &validation) {
		return model.NewValidationError(validation.Fields)
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error()).WithCode(model.ErrCodeLoginFailed)

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotHangOwner):
		return model.NewNotOwnerError("hang")

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrHangNotFound):
		return model.NewNotFoundError("hang")
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewConflictError(err.Error()).WithCode(model.ErrCodeAlreadyExists)

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidHang):
		return model.NewValidationError([]model.FieldError{{Field: "hang", Message: service.ErrInvalidHang.Error()}})
	case errors.Is(err, service.ErrInvalidEmail):
		return model.NewValidationError([]model.FieldError{{Field: "email", Message: err.Error()}})
	case errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "password", Message: err.Error()}})
	case errors.Is(err, service.ErrPasswordMismatch):
		return model.NewValidationError([]model.FieldError{{Field: "password_confirmation", Message: err.Error()}})
	case errors.Is(err, service.ErrIncorrectPassword):
		return model.NewValidationError([]model.FieldError{{Field: "old", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// writeServiceError maps err and writes it. Unexpected errors are logged with
// the request id since the client only sees an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	problem := MapServiceError(err)
	if problem.Status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), operation+" failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
	}
	WriteError(w, problem)
}

// writeDecodeError writes a 400 for an unreadable request body
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		WriteError(w, model.NewBadRequestError("request body too large"))
	case errors.Is(err, errEmptyBody):
		WriteError(w, model.NewBadRequestError("request body is required"))
	default:
		WriteError(w, model.NewBadRequestError("invalid request body"))
	}
}
