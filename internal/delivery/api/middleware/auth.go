package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"wordtrainer/internal/delivery/api/response"
	deliverycontext "wordtrainer/internal/delivery/context"
	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	contextKeyAccount = "account"
	bearerScheme      = "bearer"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthMiddleware guards routes that need a signed-in account.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{accountUC: params.AccountUC, logger: params.Logger}
}

// Authenticate resolves the bearer token to an account and stores it on the context.
// Every token or account problem gets the same 401; storage failures go to the error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rejected request without bearer token", slog.String("path", c.Request().URL.Path))

			return unauthorized(c)
		}

		account, err := m.accountUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				return unauthorized(c)
			}

			return errors.WithStack(err)
		}

		c.Set(contextKeyAccount, account)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithAccountID(c.Request().Context(), account.ID, m.logger),
		))

		return next(c)
	}
}

// bearerToken extracts the token from an Authorization header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
}

// GetAccount returns the account stored by Authenticate.
func GetAccount(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(contextKeyAccount).(*entity.Account)

	return account, ok && account != nil
}

// GetAccountID returns the id of the account stored by Authenticate.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	account, ok := GetAccount(c)
	if !ok {
		return uuid.Nil, false
	}

	return account.ID, true
}

// RequireAccountID is GetAccountID for handlers behind Authenticate; a missing account is a 401.
func RequireAccountID(c echo.Context) (uuid.UUID, error) {
	accountID, ok := GetAccountID(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, domainerrors.ErrUnauthorized.Message())
	}

	return accountID, nil
}
