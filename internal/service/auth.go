package service

import (
	"context"
	"errors"
	"strings"

	"github.com/forgo/hangs/internal/database"
	"github.com/forgo/hangs/internal/model"
	"github.com/forgo/hangs/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost factor (10-14 recommended for production)
const bcryptCost = 12

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdatePassword(ctx context.Context, userID, hash string) error
}

// AuthService handles account operations
type AuthService struct {
	userRepo     UserRepository
	tokenService *TokenService
	hashCost     int
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo     UserRepository
	TokenService *TokenService
	HashCost     int // Default: bcryptCost
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	if cfg.HashCost == 0 {
		cfg.HashCost = bcryptCost
	}
	return &AuthService{
		userRepo:     cfg.UserRepo,
		tokenService: cfg.TokenService,
		hashCost:     cfg.HashCost,
	}
}

// SignUp creates a new account with email and password
func (s *AuthService) SignUp(ctx context.Context, creds model.Credentials) (*model.User, error) {
	email := normalizeEmail(creds.Email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	if err := validatePassword(creds.Password); err != nil {
		return nil, err
	}
	if creds.Password != creds.PasswordConfirmation {
		return nil, ErrPasswordMismatch
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := s.hashPassword(creds.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email: email,
		Hash:  hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent sign-up
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// SignIn verifies credentials and returns the user with a fresh token
func (s *AuthService) SignIn(ctx context.Context, creds model.Credentials) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.Hash == "" {
		return nil, ErrInvalidCredentials
	}

	if !checkPassword(creds.Password, user.Hash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	user.Token = token

	return user, nil
}

// ChangePassword replaces the caller's password after checking the old one
func (s *AuthService) ChangePassword(ctx context.Context, userID string, pw model.Passwords) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !checkPassword(pw.Old, user.Hash) {
		return ErrIncorrectPassword
	}

	if err := validatePassword(pw.New); err != nil {
		return err
	}

	hash, err := s.hashPassword(pw.New)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

// ValidateAccessToken validates an access token and returns the claims
func (s *AuthService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.tokenService.ValidateAccessToken(token)
}

// Helper functions

func (s *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < model.MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > model.MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func isValidEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex < 1 {
		return false
	}
	dotIndex := strings.LastIndex(email, ".")
	if dotIndex < atIndex+2 {
		return false
	}
	return dotIndex < len(email)-1
}
