package model

import (
	"time"

	"github.com/forgo/hangs/internal/database"
)

// UserTable is the SurrealDB table holding accounts
const UserTable = "user"

// Password length constraints
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// User represents an account that can own hangs
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"` // Never expose password hash
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserSchema describes the user table
func UserSchema() database.Schema {
	return database.Schema{
		Table: UserTable,
		Fields: []database.Field{
			{Name: "email", Type: "string", Required: true, Assert: "string::is::email($value)"},
			{Name: "hash", Type: "string", Required: true},
			{Name: FieldCreatedAt, Type: "datetime", Default: "time::now()", ReadOnly: true},
			{Name: FieldUpdatedAt, Type: "datetime", Value: "time::now()"},
		},
		Indexes: []database.Index{
			{Name: "user_email", Fields: []string{"email"}, Unique: true},
		},
	}
}

// Credentials is the sign-up and sign-in payload
type Credentials struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// CredentialsRequest wraps credentials as {"credentials": {...}}
type CredentialsRequest struct {
	Credentials Credentials `json:"credentials"`
}

// Passwords is the change-password payload
type Passwords struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// ChangePasswordRequest wraps passwords as {"passwords": {...}}
type ChangePasswordRequest struct {
	Passwords Passwords `json:"passwords"`
}

// UserResponse wraps a single user
type UserResponse struct {
	User *User `json:"user"`
}
