package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/forgo/hangs/internal/database"
	"github.com/forgo/hangs/internal/model"
)

// HangRepository defines the interface for hang storage
type HangRepository interface {
	List(ctx context.Context) ([]*model.Hang, error)
	Get(ctx context.Context, id string) (*model.Hang, error)
	Create(ctx context.Context, hang *model.Hang) error
	Update(ctx context.Context, id string, patch model.Fields) (*model.Hang, error)
	Delete(ctx context.Context, id string) error
	AppendRSVP(ctx context.Context, id string, entry model.Fields) (*model.Hang, error)
}

// HangRecorder is notified of successful writes
type HangRecorder interface {
	HangCreated()
	HangDeleted()
	RSVPAppended()
}

type noopRecorder struct{}

func (noopRecorder) HangCreated()  {}
func (noopRecorder) HangDeleted()  {}
func (noopRecorder) RSVPAppended() {}

// HangService handles hang business logic
type HangService struct {
	repo     HangRepository
	recorder HangRecorder
}

// HangServiceConfig holds configuration for the hang service
type HangServiceConfig struct {
	HangRepo HangRepository
	Recorder HangRecorder // optional
}

// NewHangService creates a new hang service
func NewHangService(cfg HangServiceConfig) *HangService {
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &HangService{
		repo:     cfg.HangRepo,
		recorder: recorder,
	}
}

// List returns every hang
func (s *HangService) List(ctx context.Context) ([]*model.Hang, error) {
	return s.repo.List(ctx)
}

// Get returns one hang
func (s *HangService) Get(ctx context.Context, id string) (*model.Hang, error) {
	return requireFound(s.repo.Get(ctx, id))
}

// Create stores a hang owned by the caller. Any owner in the payload is ignored.
func (s *HangService) Create(ctx context.Context, callerID string, payload model.Fields) (*model.Hang, error) {
	hang, fieldErrs := model.NewHang(callerID, payload)
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	if err := s.repo.Create(ctx, hang); err != nil {
		return nil, storageError(err)
	}

	s.recorder.HangCreated()
	slog.InfoContext(ctx, "hang created", slog.String("hang_id", hang.ID), slog.String("owner", callerID))
	return hang, nil
}

// Update merges patch into a hang the caller owns.
// Only the text fields are kept; blank strings, unknown keys and owner or
// system fields never reach storage. Lookup and ownership are checked before
// the patch is validated.
func (s *HangService) Update(ctx context.Context, callerID, id string, patch model.Fields) error {
	patch = patch.WithoutBlanks().Only(model.HangTextFields()...)

	hang, err := requireFound(s.repo.Get(ctx, id))
	if err != nil {
		return err
	}
	if err := requireOwnership(callerID, hang); err != nil {
		return err
	}

	if fieldErrs := model.ValidatePatch(patch); len(fieldErrs) > 0 {
		return &ValidationError{Fields: fieldErrs}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return storageError(err)
	}
	if updated == nil {
		// Deleted between lookup and write
		return ErrHangNotFound
	}
	return nil
}

// Delete removes a hang the caller owns
func (s *HangService) Delete(ctx context.Context, callerID, id string) error {
	hang, err := requireFound(s.repo.Get(ctx, id))
	if err != nil {
		return err
	}
	if err := requireOwnership(callerID, hang); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.HangDeleted()
	slog.InfoContext(ctx, "hang deleted", slog.String("hang_id", id), slog.String("owner", callerID))
	return nil
}

// RSVP appends entry to a hang's RSVP list. Anyone may RSVP.
func (s *HangService) RSVP(ctx context.Context, id string, entry model.Fields) error {
	entry = entry.WithoutBlanks().Without(model.FieldOwner)

	if _, err := requireFound(s.repo.Get(ctx, id)); err != nil {
		return err
	}

	updated, err := s.repo.AppendRSVP(ctx, id, entry)
	if err != nil {
		return storageError(err)
	}
	if updated == nil {
		return ErrHangNotFound
	}

	s.recorder.RSVPAppended()
	return nil
}

// requireFound turns a missing record into ErrHangNotFound
func requireFound(hang *model.Hang, err error) (*model.Hang, error) {
	if err != nil {
		return nil, err
	}
	if hang == nil {
		return nil, ErrHangNotFound
	}
	return hang, nil
}

// requireOwnership rejects callers other than the hang's owner
func requireOwnership(callerID string, hang *model.Hang) error {
	if callerID == "" || hang.Owner != callerID {
		return ErrNotHangOwner
	}
	return nil
}

// storageError maps schema violations onto ErrInvalidHang
func storageError(err error) error {
	if errors.Is(err, database.ErrConstraint) {
		return fmt.Errorf("%w: %v", ErrInvalidHang, err)
	}
	return err
}
