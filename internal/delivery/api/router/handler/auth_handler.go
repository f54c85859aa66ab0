// Package handler contains the HTTP handlers for the API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"wordtrainer/config"
	"wordtrainer/internal/delivery/api/middleware"
	"wordtrainer/internal/delivery/api/response"
	"wordtrainer/internal/delivery/api/validator"
	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AuthHandler serves signup, signin and the current-account endpoint.
type AuthHandler struct {
	accountUC         usecase.AccountUsecase
	legacyFieldErrors bool
	logger            *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	legacy := false
	if params.Config.Auth != nil {
		legacy = params.Config.Auth.LegacyFieldErrors
	}

	return &AuthHandler{
		accountUC:         params.AccountUC,
		legacyFieldErrors: legacy,
		logger:            params.Logger,
	}
}

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
}

// SigninRequest follows the OAuth2 password grant form: the email travels as username.
type SigninRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// TokenResponse is the bare OAuth2 token response returned by signin.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

func toAccountResponse(account *entity.Account, withCreatedAt bool) AccountResponse {
	resp := AccountResponse{ID: account.ID, Email: account.Email}
	if withCreatedAt && !account.CreatedAt.IsZero() {
		createdAt := account.CreatedAt
		resp.CreatedAt = &createdAt
	}

	return resp
}

// Signup handles account creation
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	account, err := h.accountUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account, false))
}

// Signin exchanges credentials for an access token
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signin input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	output, err := h.accountUC.Signin(c.Request().Context(), &usecase.SigninInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		if h.legacyFieldErrors {
			if handled, writeErr := h.writeLegacySigninError(c, err); handled {
				return writeErr
			}
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   int64(output.ExpiresIn / time.Second),
	})
}

// writeLegacySigninError renders an invalid-credentials failure with the failing field,
// which tells the caller whether the email is registered.
func (h *AuthHandler) writeLegacySigninError(c echo.Context, err error) (bool, error) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) || !errors.Is(err, domainerrors.ErrInvalidCredentials) || appErr.Field() == "" {
		return false, nil
	}

	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return true, response.ErrorWithDetails(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(),
		map[string]string{"field": appErr.Field()})
}

// Me returns the account resolved from the bearer token
func (h *AuthHandler) Me(c echo.Context) error {
	account, ok := middleware.GetAccount(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account, true))
}

func validationFailed(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		validator.Details(err),
	)
}
