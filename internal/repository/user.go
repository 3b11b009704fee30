package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/hangs/internal/database"
	"github.com/forgo/hangs/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `CREATE user CONTENT { email: $email, hash: $hash }`
	vars := map[string]interface{}{
		"email": user.Email,
		"hash":  user.Hash,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	data, err := firstRecord(result)
	if err != nil {
		return err
	}
	if data == nil {
		return errUnexpectedResult
	}

	created := parseUser(data)
	user.ID = created.ID
	user.CreatedAt = created.CreatedAt
	user.UpdatedAt = created.UpdatedAt
	return nil
}

// GetByID retrieves a user by key
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM $id`
	vars := map[string]interface{}{"id": recordID(model.UserTable, id)}

	return r.getOne(ctx, query, vars)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	return r.getOne(ctx, query, vars)
}

// UpdatePassword updates a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID, hash string) error {
	query := `UPDATE $id SET hash = $hash`
	vars := map[string]interface{}{
		"id":   recordID(model.UserTable, userID),
		"hash": hash,
	}

	return r.db.Execute(ctx, query, vars)
}

func (r *UserRepository) getOne(ctx context.Context, query string, vars map[string]interface{}) (*model.User, error) {
	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := firstRecord(result)
	if err != nil || data == nil {
		return nil, err
	}
	return parseUser(data), nil
}

func parseUser(data map[string]interface{}) *model.User {
	return &model.User{
		ID:        recordKey(data["id"]),
		Email:     getString(data, "email"),
		Hash:      getString(data, "hash"),
		CreatedAt: parseTime(data[model.FieldCreatedAt]),
		UpdatedAt: parseTime(data[model.FieldUpdatedAt]),
	}
}
