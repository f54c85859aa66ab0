// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"wordtrainer/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Email    string
	Password string
}

// SigninInput defines the credentials presented at sign-in.
type SigninInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SigninOutput carries the issued access token.
type SigninOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
}

// AccountUsecase defines the account and authentication operations.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*entity.Account, error)
	Signin(ctx context.Context, input *SigninInput) (*SigninOutput, error)
	// Authenticate resolves a bearer token to its account. Every token or account
	// problem is reported as ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*entity.Account, error)
}
