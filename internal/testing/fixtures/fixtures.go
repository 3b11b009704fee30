// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories insert through the
// repositories and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	hang := f.CreateHang(t, user)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/hangs/internal/database"
	"github.com/forgo/hangs/internal/model"
	"github.com/forgo/hangs/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext password of users built by CreateUser
const DefaultPassword = "testpass123"

// Factory creates test entities in the database
type Factory struct {
	users *repository.UserRepository
	hangs *repository.HangRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		users: repository.NewUserRepository(db),
		hangs: repository.NewHangRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Email    string
	Password string
}

// CreateUser creates a user with optional customizations.
// The returned user carries no hash.
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Email:    fmt.Sprintf("user_%s@test.local", randomID()),
		Password: DefaultPassword,
	}
	for _, fn := range opts {
		fn(o)
	}

	// MinCost keeps suites fast
	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	user := &model.User{Email: o.Email, Hash: string(hash)}
	if err := f.users.Create(testContext(t), user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}

	user.Hash = ""
	return user
}

// WithEmail sets the user's email
func WithEmail(email string) func(*UserOpts) {
	return func(o *UserOpts) { o.Email = email }
}

// WithPassword sets the user's plaintext password
func WithPassword(password string) func(*UserOpts) {
	return func(o *UserOpts) { o.Password = password }
}

// ============================================================================
// Hang Fixtures
// ============================================================================

// HangOpts customizes hang creation
type HangOpts struct {
	Title       string
	Date        string
	Time        string
	Location    string
	Description string
}

// CreateHang creates a hang owned by owner
func (f *Factory) CreateHang(t *testing.T, owner *model.User, opts ...func(*HangOpts)) *model.Hang {
	t.Helper()

	o := &HangOpts{
		Title:       fmt.Sprintf("Hang %s", randomID()),
		Date:        "2026-11-02",
		Time:        "19:00",
		Location:    "Dolores Park",
		Description: "Bring snacks",
	}
	for _, fn := range opts {
		fn(o)
	}

	hang := &model.Hang{
		Title:       o.Title,
		Date:        o.Date,
		Time:        o.Time,
		Location:    o.Location,
		Description: o.Description,
		Owner:       owner.ID,
	}
	if err := f.hangs.Create(testContext(t), hang); err != nil {
		t.Fatalf("fixtures: failed to create hang: %v", err)
	}
	return hang
}

// AddRSVP appends an entry to a hang and returns the updated hang
func (f *Factory) AddRSVP(t *testing.T, hang *model.Hang, entry model.Fields) *model.Hang {
	t.Helper()

	updated, err := f.hangs.AppendRSVP(testContext(t), hang.ID, entry)
	if err != nil {
		t.Fatalf("fixtures: failed to append rsvp: %v", err)
	}
	if updated == nil {
		t.Fatalf("fixtures: hang %s not found", hang.ID)
	}
	return updated
}

// HangPayload returns a complete create payload with unique title
func HangPayload() model.Fields {
	return model.Fields{
		model.FieldTitle:       fmt.Sprintf("Hang %s", randomID()),
		model.FieldDate:        "2026-11-02",
		model.FieldTime:        "19:00",
		model.FieldLocation:    "Dolores Park",
		model.FieldDescription: "Bring snacks",
	}
}
