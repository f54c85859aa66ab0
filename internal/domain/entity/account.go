// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity that can sign in with email and password.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email        string    // Sign-in handle. Unique across all accounts and compared exactly.
	PasswordHash string    // bcrypt hash of the password. Never serialized.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
