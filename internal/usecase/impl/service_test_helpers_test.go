package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// memoryAccountRepository enforces email uniqueness the way the accounts table does.
type memoryAccountRepository struct {
	mu      sync.Mutex
	byEmail map[string]*entity.Account
}

func newMemoryAccountRepository() *memoryAccountRepository {
	return &memoryAccountRepository{byEmail: make(map[string]*entity.Account)}
}

func (r *memoryAccountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return repository.ErrAccountAlreadyExists
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()

	stored := *account
	r.byEmail[account.Email] = &stored

	return nil
}

func (r *memoryAccountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	found := *account

	return &found, nil
}

func (r *memoryAccountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.byEmail {
		if account.ID == id {
			found := *account

			return &found, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byEmail)
}
