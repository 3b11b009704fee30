package service

import (
	"github.com/forgo/hangs/internal/model"
	"github.com/forgo/hangs/pkg/jwt"
)

// TokenService issues and verifies bearer tokens
type TokenService struct {
	jwtService *jwt.Service
}

// TokenServiceConfig holds configuration for the token service
type TokenServiceConfig struct {
	JWTService *jwt.Service
}

// NewTokenService creates a new token service
func NewTokenService(cfg TokenServiceConfig) *TokenService {
	return &TokenService{
		jwtService: cfg.JWTService,
	}
}

// GenerateAccessToken signs a token whose subject is the user's key
func (s *TokenService) GenerateAccessToken(user *model.User) (string, error) {
	return s.jwtService.Sign(jwt.Claims{
		Subject: user.ID,
		Email:   user.Email,
	})
}

// ValidateAccessToken validates an access token and returns the claims
func (s *TokenService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.jwtService.Validate(token)
}

// ExpiresIn returns the access token lifetime in seconds
func (s *TokenService) ExpiresIn() int {
	return int(s.jwtService.GetExpiration().Seconds())
}
