package usecase

import (
	"context"

	"wordtrainer/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	CreateProfile(ctx context.Context, accountID uuid.UUID, input *CreateProfileInput) (*entity.Profile, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// CreateProfileInput defines the data required to create a profile.
type CreateProfileInput struct {
	Name           string
	NativeLanguage string
	TargetLanguage string
}

// UpdateProfileInput holds the fields to change; nil fields are left untouched.
type UpdateProfileInput struct {
	Name           *string
	NativeLanguage *string
	TargetLanguage *string
}

// ApplyTo copies the set fields onto profile.
func (in *UpdateProfileInput) ApplyTo(profile *entity.Profile) {
	if in.Name != nil {
		profile.Name = *in.Name
	}
	if in.NativeLanguage != nil {
		profile.NativeLanguage = *in.NativeLanguage
	}
	if in.TargetLanguage != nil {
		profile.TargetLanguage = *in.TargetLanguage
	}
}
