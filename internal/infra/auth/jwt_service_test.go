package auth

import (
	"testing"
	"time"

	"wordtrainer/config"
	"wordtrainer/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string, ttlMinutes int) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: ttlMinutes},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	jwtService, err := NewJWTService(newTestConfig(testAccessSecret, 60))
	require.NoError(t, err)

	return jwtService
}

func signRawClaims(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService := newTestJWTService(t)
	accountID := uuid.New()

	token, err := jwtService.IssueAccessToken(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestJWTService_ClaimsShape(t *testing.T) {
	jwtService := newTestJWTService(t)
	accountID := uuid.New()

	token, err := jwtService.Issue(accountID, 5*time.Minute)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, accountID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
	assert.Contains(t, claims, "iat")
	assert.Contains(t, claims, "exp")

	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, exp.Sub(iat.Time))
}

func TestJWTService_DefaultTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret, 0))
	require.NoError(t, err)

	assert.Equal(t, 60*time.Minute, jwtService.AccessTTL())
}

func TestJWTService_ZeroTTLIsExpired(t *testing.T) {
	jwtService := newTestJWTService(t)

	token, err := jwtService.Issue(uuid.New(), 0)
	require.NoError(t, err)

	_, err = jwtService.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenExpired), "got %v", err)
}

func TestJWTService_PastTTLIsExpired(t *testing.T) {
	jwtService := newTestJWTService(t)

	token, err := jwtService.Issue(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = jwtService.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenExpired), "got %v", err)
}

func TestJWTService_ExpiresAfterTTL(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &jwtService{
		accessSecret: []byte(testAccessSecret),
		accessTTL:    time.Hour,
		now:          func() time.Time { return issuedAt },
	}
	accountID := uuid.New()

	token, err := svc.IssueAccessToken(accountID)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)

	svc.now = func() time.Time { return issuedAt.Add(time.Hour) }
	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenExpired), "got %v", err)
}

func TestJWTService_Malformed(t *testing.T) {
	jwtService := newTestJWTService(t)
	valid, err := jwtService.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	last := valid[len(valid)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := valid[:len(valid)-1] + string(replacement)

	otherSecret := signRawClaims(t, jwt.SigningMethodHS256, []byte("another-secret"), service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	hs512 := signRawClaims(t, jwt.SigningMethodHS512, []byte(testAccessSecret), service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	badSubject := signRawClaims(t, jwt.SigningMethodHS256, []byte(testAccessSecret), service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	noExpiry := signRawClaims(t, jwt.SigningMethodHS256, []byte(testAccessSecret), service.Claims{
		Type:             service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()},
	})

	tests := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "clearly-not-a-jwt-token-format"},
		{name: "empty", token: ""},
		{name: "tampered signature", token: tampered},
		{name: "wrong secret", token: otherSecret},
		{name: "unexpected algorithm", token: hs512},
		{name: "subject is not a uuid", token: badSubject},
		{name: "missing expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountID, err := jwtService.Verify(tt.token)
			assert.Equal(t, uuid.Nil, accountID)
			assert.True(t, errors.Is(err, service.ErrTokenMalformed), "got %v", err)
		})
	}
}

func TestJWTService_TypeMismatch(t *testing.T) {
	jwtService := newTestJWTService(t)

	refresh := signRawClaims(t, jwt.SigningMethodHS256, []byte(testAccessSecret), service.Claims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := jwtService.Verify(refresh)
	assert.True(t, errors.Is(err, service.ErrTokenTypeMismatch), "got %v", err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("", 60))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_RejectsWeakSecrets(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		env     string
		wantErr string
	}{
		{name: "placeholder", secret: "change-me-in-every-environment", env: "production", wantErr: "placeholder"},
		{name: "placeholder even locally", secret: "change-me-in-every-environment", env: "local", wantErr: "placeholder"},
		{name: "short in production", secret: "too-short-secret", env: "production", wantErr: "at least 32 bytes"},
		{name: "short without env", secret: "too-short-secret", wantErr: "at least 32 bytes"},
		{name: "short locally", secret: "too-short-secret", env: "local"},
		{name: "long enough", secret: testAccessSecret, env: "production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(tt.secret, 60)
			cfg.Env.Env = tt.env

			jwtService, err := NewJWTService(cfg)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, jwtService)

				return
			}
			require.Error(t, err)
			assert.Nil(t, jwtService)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// A token signed with the old sample secret must not verify against a configured service.
func TestJWTService_PlaceholderTokenRejected(t *testing.T) {
	jwtService := newTestJWTService(t)
	forged := signRawClaims(t, jwt.SigningMethodHS256, []byte("change-me-in-every-environment"), jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": service.TokenTypeAccess,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	_, err := jwtService.Verify(forged)

	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}
