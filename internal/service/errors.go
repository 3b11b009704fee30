package service

import (
	"errors"

	"github.com/forgo/hangs/internal/model"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here so handlers can
// translate them with errors.Is.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// ===== Hang Errors =====
var (
	ErrHangNotFound = errors.New("hang not found")
	ErrNotHangOwner = errors.New("not the owner of this hang")
	ErrInvalidHang  = errors.New("hang failed validation")
)

// ValidationError carries field level problems for a rejected payload
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidHang.Error()
	}
	return ErrInvalidHang.Error() + ": " + e.Fields[0].Message
}

// Unwrap lets errors.Is(err, ErrInvalidHang) match
func (e *ValidationError) Unwrap() error {
	return ErrInvalidHang
}
