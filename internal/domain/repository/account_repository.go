// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"wordtrainer/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned when the storage-layer uniqueness constraint on email rejects an insert.
	ErrAccountAlreadyExists = errors.New("account with this email already exists")
)

// AccountRepository is the credential store.
type AccountRepository interface {
	// Create persists a new account. The email uniqueness check happens in the same statement,
	// so concurrent inserts for one email cannot both succeed.
	Create(ctx context.Context, account *entity.Account) error

	// FindByEmail retrieves an account by its exact email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID retrieves an account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
