package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the session tokens that carry
// (user_id, roles) into every role-gated operation.
type TokenService interface {
	// GenerateTokens creates an access and a refresh token for a user.
	GenerateTokens(userID string, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
