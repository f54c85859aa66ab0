package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess tags access tokens. Tokens of any other type are rejected by Verify.
const TokenTypeAccess = "access"

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenTypeMismatch = errors.New("token type mismatch")
)

// Claims defines the custom claims for the JWT tokens.
// The account ID travels in the registered "sub" claim.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies bearer access tokens.
type TokenService interface {
	// Issue signs an access token for the account valid for ttl.
	Issue(accountID uuid.UUID, ttl time.Duration) (string, error)

	// IssueAccessToken signs an access token with the configured TTL.
	IssueAccessToken(accountID uuid.UUID) (string, error)

	// Verify returns the account ID the token was issued for.
	// It fails with ErrTokenExpired, ErrTokenMalformed or ErrTokenTypeMismatch.
	Verify(token string) (uuid.UUID, error)

	// AccessTTL returns the configured access token lifetime.
	AccessTTL() time.Duration
}
