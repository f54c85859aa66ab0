// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"slices"
	"time"

	"wordtrainer/config"
	"wordtrainer/internal/domain/constants"
	"wordtrainer/internal/domain/service"
	"wordtrainer/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// minSecretLength is the shortest HS256 key accepted outside local development.
const minSecretLength = 32

// placeholderSecrets are sample values from docs and old config files.
var placeholderSecrets = []string{"change-me-in-every-environment", "changeme", "secret"}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte           // Secret key for signing access tokens.
	accessTTL    time.Duration    // Time-to-live for access tokens.
	now          func() time.Time // Clock, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
// The secret is read once here and never changes for the life of the process.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if err := validateSecret(cfg.SecretKey.Access, cfg.Env.Env); err != nil {
		return nil, err
	}

	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.AccessTokenDuration()
	}
	if ttl <= 0 {
		ttl = 60 * time.Minute
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

func validateSecret(secret, env string) error {
	switch {
	case secret == "":
		return errors.New("jwt secret must be provided")
	case slices.Contains(placeholderSecrets, secret):
		return errors.New("jwt secret is a placeholder value")
	case len(secret) < minSecretLength && env != constants.EnvLocal:
		return errors.Errorf("jwt secret must be at least %d bytes", minSecretLength)
	}

	return nil
}

// Issue creates a signed access token for the account.
func (s *jwtService) Issue(accountID uuid.UUID, ttl time.Duration) (string, error) {
	return s.generateToken(accountID, ttl, service.TokenTypeAccess)
}

// IssueAccessToken creates a signed access token with the configured TTL.
func (s *jwtService) IssueAccessToken(accountID uuid.UUID) (string, error) {
	return s.Issue(accountID, s.accessTTL)
}

// AccessTTL returns the configured access token lifetime.
func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

// Verify checks signature, type and expiry, and returns the subject.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, errors.WithStack(service.ErrTokenExpired)
		}

		return uuid.Nil, errors.Wrap(service.ErrTokenMalformed, err.Error())
	}

	if claims.Type != service.TokenTypeAccess {
		return uuid.Nil, errors.Wrapf(service.ErrTokenTypeMismatch, "got %q", claims.Type)
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(service.ErrTokenMalformed, "subject is not an account id")
	}

	return accountID, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(accountID uuid.UUID, ttl time.Duration, tokenType string) (string, error) {
	now := s.now()
	claims := service.Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
