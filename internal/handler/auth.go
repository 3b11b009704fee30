package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/forgo/hangs/internal/middleware"
	"github.com/forgo/hangs/internal/model"
)

// AuthService interface for the handler
type AuthService interface {
	SignUp(ctx context.Context, creds model.Credentials) (*model.User, error)
	SignIn(ctx context.Context, creds model.Credentials) (*model.User, error)
	ChangePassword(ctx context.Context, userID string, pw model.Passwords) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignUp handles POST /sign-up
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	user, err := h.authService.SignUp(r.Context(), req.Credentials)
	if err != nil {
		writeServiceError(w, r, "sign up", err)
		return
	}

	slog.InfoContext(r.Context(), "user signed up", slog.String("user_id", user.ID))
	WriteJSON(w, http.StatusCreated, model.UserResponse{User: user})
}

// SignIn handles POST /sign-in. The response user carries a bearer token.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	user, err := h.authService.SignIn(r.Context(), req.Credentials)
	if err != nil {
		writeServiceError(w, r, "sign in", err)
		return
	}

	WriteJSON(w, http.StatusCreated, model.UserResponse{User: user})
}

// ChangePassword handles PATCH /change-password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.ChangePasswordRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), userID, req.Passwords); err != nil {
		writeServiceError(w, r, "change password", err)
		return
	}

	WriteNoContent(w)
}
