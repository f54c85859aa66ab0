package repository

import (
	"context"

	"wordtrainer/internal/domain/repository"
)

// RunInTx is a return value for MockTransactionManager.Execute that runs the
// callback against factory, as a real transaction would.
func RunInTx(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}

// Factory is a RepositoryFactory over fixed repositories. Unset repositories are nil.
type Factory struct {
	Accounts   repository.AccountRepository
	Profiles   repository.ProfileRepository
	Dictionary repository.DictionaryRepository
	Words      repository.WordRepository
	Practice   repository.PracticeRepository
}

func (f *Factory) AccountRepo() repository.AccountRepository       { return f.Accounts }
func (f *Factory) ProfileRepo() repository.ProfileRepository       { return f.Profiles }
func (f *Factory) DictionaryRepo() repository.DictionaryRepository { return f.Dictionary }
func (f *Factory) WordRepo() repository.WordRepository             { return f.Words }
func (f *Factory) PracticeRepo() repository.PracticeRepository     { return f.Practice }
