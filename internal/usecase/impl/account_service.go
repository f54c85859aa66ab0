// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "wordtrainer/internal/delivery/context"
	"wordtrainer/internal/domain/constants"
	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/domain/repository"
	"wordtrainer/internal/domain/service"
	"wordtrainer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword is hashed at construction and compared against when the email is
// unknown, so both signin failure paths pay for one bcrypt comparison.
const dummyPassword = "wordtrainer-signin-dummy-password"

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	dummyHash    string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
// It fails when the dummy signin hash cannot be built.
func NewAccountService(params AccountServiceParams) (usecase.AccountUsecase, error) {
	dummyHash, err := params.Hasher.Hash(dummyPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy signin hash")
	}

	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		dummyHash:    dummyHash,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail trims surrounding whitespace. Case is preserved; emails match exactly.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// Signup creates an account. The pre-check gives a fast answer for the common case;
// the UNIQUE constraint decides concurrent signups for the same email.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.Account, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength.WithDetails(err.Error()), "password does not meet security requirements")
	}

	_, err := srv.accountRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Signup rejected, email already registered", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrDuplicateEmail, "email already registered")
	case !errors.Is(err, repository.ErrAccountNotFound):
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash password")
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountAlreadyExists) {
			srv.log(ctx).Warn("Signup lost race on email uniqueness", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrDuplicateEmail, "email already registered")
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.Any("accountID", account.ID))

	return account, nil
}

// Signin checks the credentials and issues an access token. Unknown email and wrong
// password fail with the same error; the field tag only tells the two apart in logs
// and for clients that opted into field-level errors.
func (srv *accountService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting signin", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(err, "failed to find account")
		}

		srv.hasher.Check(input.Password, srv.dummyHash)
		srv.log(ctx).Warn("Signin failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials.WithField(domainerrors.FieldEmail), "signin failed")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Signin failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials.WithField(domainerrors.FieldPassword), "signin failed")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Signin succeeded", slog.Any("accountID", account.ID))

	return &usecase.SigninOutput{
		AccessToken: accessToken,
		TokenType:   constants.TokenTypeBearer,
		ExpiresIn:   srv.tokenService.AccessTTL(),
	}, nil
}

// Authenticate resolves a bearer token to its account. The reason for a rejection is
// logged here; callers only ever see ErrUnauthorized.
func (srv *accountService) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	accountID, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Warn("Rejected access token", slog.String("reason", err.Error()))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "invalid access token")
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Rejected access token", slog.String("reason", "unknown account"), slog.Any("accountID", accountID))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject does not exist")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return account, nil
}
