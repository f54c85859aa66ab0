package auth

import (
	"slices"
	"strings"
	"unicode"

	"wordtrainer/config"
	"wordtrainer/internal/domain/service"
	"wordtrainer/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// commonPasswords are rejected regardless of the configured policy.
var commonPasswords = []string{
	"password",
	"password1",
	"12345678",
	"123456789",
	"qwertyui",
	"11111111",
	"iloveyou",
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost, cfg.PasswordStrength)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost, clamped to bcrypt's range.
// A nil policy only enforces the bcrypt length limits.
func NewBcryptHasherWithCost(cost int, policy *config.PasswordStrengthConfig) service.PasswordHasher {
	cost = max(bcrypt.MinCost, min(cost, bcrypt.MaxCost))

	h := &bcryptHasher{cost: cost}
	if policy != nil {
		h.policy = *policy
	}
	if h.policy.MaxLength <= 0 || h.policy.MaxLength > maxPasswordBytes {
		h.policy.MaxLength = maxPasswordBytes
	}

	return h
}

// bcrypt only reads the first 72 bytes of its input.
const maxPasswordBytes = 72

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match; a malformed hash is just a mismatch.
	return err == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy

	if len([]rune(password)) < p.MinLength {
		return errors.Errorf("password must be at least %d characters long", p.MinLength)
	}
	if len(password) > p.MaxLength {
		return errors.Errorf("password must be at most %d bytes long", p.MaxLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case p.RequireLowercase && !hasLower:
		return errors.New("password must contain at least one lowercase letter")
	case p.RequireUppercase && !hasUpper:
		return errors.New("password must contain at least one uppercase letter")
	case p.RequireNumbers && !hasNumber:
		return errors.New("password must contain at least one number")
	case p.RequireSpecial && !hasSpecial:
		return errors.New("password must contain at least one special character")
	}

	if slices.Contains(commonPasswords, strings.ToLower(password)) {
		return errors.New("password is too common")
	}

	return nil
}
