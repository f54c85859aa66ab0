package repository

import (
	"context"
	"errors"

	"wordtrainer/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

// ProfileRepository defines persistence operations for learner profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
}
