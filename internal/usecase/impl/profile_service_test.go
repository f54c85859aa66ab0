package impl

import (
	"context"
	"testing"

	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/domain/repository"
	mockRepo "wordtrainer/internal/mocks/repository"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	txManager   *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		TxManager:   txManager,
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     svc,
		profileRepo: profileRepo,
		txManager:   txManager,
	}
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.profileRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.AccountID == accountID && p.Name == "Ana" && p.TargetLanguage == "de"
		})).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, accountID, &usecase.CreateProfileInput{
		Name:           "Ana",
		NativeLanguage: "en",
		TargetLanguage: "de",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, profile.AccountID)
	assert.Equal(t, "en", profile.NativeLanguage)
}

func TestProfileService_CreateProfile_AlreadyExists(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.WithStack(repository.ErrProfileAlreadyExists))

	profile, err := fx.service.CreateProfile(ctx, uuid.New(), &usecase.CreateProfileInput{Name: "Ana"})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestProfileService_GetProfile(t *testing.T) {
	accountID := uuid.New()
	stored := &entity.Profile{ID: uuid.New(), AccountID: accountID, Name: "Ana"}

	tests := []struct {
		name    string
		repoErr error
		want    *entity.Profile
		wantErr error
	}{
		{name: "found", want: stored},
		{name: "missing", repoErr: repository.ErrProfileNotFound, wantErr: domainerrors.ErrProfileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			ctx := context.Background()

			if tt.repoErr != nil {
				fx.profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(nil, tt.repoErr)
			} else {
				fx.profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(tt.want, nil)
			}

			got, err := fx.service.GetProfile(ctx, accountID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()
	existing := &entity.Profile{AccountID: accountID, Name: "Ana", NativeLanguage: "en", TargetLanguage: "de"}

	txProfiles := mockRepo.NewMockProfileRepository(t)
	txProfiles.EXPECT().FindByAccountID(ctx, accountID).Return(existing, nil)
	txProfiles.EXPECT().Update(ctx, existing).Return(nil)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(mockRepo.RunInTx(&mockRepo.Factory{Profiles: txProfiles}))

	profile, err := fx.service.UpdateProfile(ctx, accountID, &usecase.UpdateProfileInput{TargetLanguage: ptr("fr")})

	require.NoError(t, err)
	assert.Equal(t, "fr", profile.TargetLanguage)
	assert.Equal(t, "Ana", profile.Name, "unset fields stay untouched")
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	txProfiles := mockRepo.NewMockProfileRepository(t)
	txProfiles.EXPECT().FindByAccountID(ctx, accountID).Return(nil, repository.ErrProfileNotFound)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(mockRepo.RunInTx(&mockRepo.Factory{Profiles: txProfiles}))

	profile, err := fx.service.UpdateProfile(ctx, accountID, &usecase.UpdateProfileInput{Name: ptr("Bo")})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile_TransactionFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("failed to begin transaction"))

	_, err := fx.service.UpdateProfile(ctx, uuid.New(), &usecase.UpdateProfileInput{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
}
