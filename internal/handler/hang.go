package handler

import (
	"context"
	"net/http"

	"github.com/forgo/hangs/internal/middleware"
	"github.com/forgo/hangs/internal/model"
)

// HangService interface for the handler
type HangService interface {
	List(ctx context.Context) ([]*model.Hang, error)
	Get(ctx context.Context, id string) (*model.Hang, error)
	Create(ctx context.Context, callerID string, payload model.Fields) (*model.Hang, error)
	Update(ctx context.Context, callerID, id string, patch model.Fields) error
	Delete(ctx context.Context, callerID, id string) error
	RSVP(ctx context.Context, id string, entry model.Fields) error
}

// HangHandler handles hang HTTP requests
type HangHandler struct {
	hangService HangService
}

// NewHangHandler creates a new hang handler
func NewHangHandler(hangService HangService) *HangHandler {
	return &HangHandler{hangService: hangService}
}

// Index handles GET /hangs
func (h *HangHandler) Index(w http.ResponseWriter, r *http.Request) {
	hangs, err := h.hangService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "list hangs", err)
		return
	}

	WriteJSON(w, http.StatusOK, model.HangListResponse{Hangs: hangs})
}

// Show handles GET /hangs/{id}
func (h *HangHandler) Show(w http.ResponseWriter, r *http.Request) {
	hang, err := h.hangService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get hang", err)
		return
	}

	WriteJSON(w, http.StatusOK, model.HangResponse{Hang: hang})
}

// Create handles POST /hangs. The caller becomes the owner.
func (h *HangHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	payload, ok := decodeHangPayload(w, r)
	if !ok {
		return
	}

	hang, err := h.hangService.Create(r.Context(), userID, payload)
	if err != nil {
		writeServiceError(w, r, "create hang", err)
		return
	}

	WriteJSON(w, http.StatusCreated, model.HangResponse{Hang: hang})
}

// Update handles PATCH /hangs/{id}
func (h *HangHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	patch, ok := decodeHangPayload(w, r)
	if !ok {
		return
	}

	if err := h.hangService.Update(r.Context(), userID, r.PathValue("id"), patch); err != nil {
		writeServiceError(w, r, "update hang", err)
		return
	}

	WriteNoContent(w)
}

// Delete handles DELETE /hangs/{id}
func (h *HangHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.hangService.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, "delete hang", err)
		return
	}

	WriteNoContent(w)
}

// RSVP handles PATCH /rsvp/{id}. The "hang" object is the RSVP entry.
func (h *HangHandler) RSVP(w http.ResponseWriter, r *http.Request) {
	entry, ok := decodeHangPayload(w, r)
	if !ok {
		return
	}

	if err := h.hangService.RSVP(r.Context(), r.PathValue("id"), entry); err != nil {
		writeServiceError(w, r, "rsvp", err)
		return
	}

	WriteNoContent(w)
}

// decodeHangPayload reads a {"hang": {...}} body, writing a 400 on failure
func decodeHangPayload(w http.ResponseWriter, r *http.Request) (model.Fields, bool) {
	var req model.HangRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return nil, false
	}
	if req.Hang == nil {
		WriteError(w, model.NewBadRequestError("hang is required"))
		return nil, false
	}
	return req.Hang, true
}
