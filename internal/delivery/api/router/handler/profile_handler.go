package handler

import (
	"log/slog"
	"net/http"
	"time"

	"wordtrainer/internal/delivery/api/middleware"
	"wordtrainer/internal/delivery/api/response"
	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// CreateProfileRequest represents the request body for creating a profile
type CreateProfileRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	NativeLanguage string `json:"native_language" validate:"required,max=10"`
	TargetLanguage string `json:"target_language" validate:"required,max=10"`
}

// UpdateProfileRequest represents the request body for a partial profile update
type UpdateProfileRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=100"`
	NativeLanguage *string `json:"native_language" validate:"omitempty,min=1,max=10"`
	TargetLanguage *string `json:"target_language" validate:"omitempty,min=1,max=10"`
}

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	AccountID      uuid.UUID `json:"account_id"`
	Name           string    `json:"name"`
	NativeLanguage string    `json:"native_language"`
	TargetLanguage string    `json:"target_language"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toProfileResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:             profile.ID,
		AccountID:      profile.AccountID,
		Name:           profile.Name,
		NativeLanguage: profile.NativeLanguage,
		TargetLanguage: profile.TargetLanguage,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}

// CreateProfile handles profile creation for the signed-in account
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	accountID, err := middleware.RequireAccountID(c)
	if err != nil {
		return err
	}

	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	profile, err := h.profileUC.CreateProfile(c.Request().Context(), accountID, &usecase.CreateProfileInput{
		Name:           req.Name,
		NativeLanguage: req.NativeLanguage,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProfileResponse(profile))
}

// GetProfile returns the signed-in account's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, err := middleware.RequireAccountID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile changes the fields present in the request body
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	accountID, err := middleware.RequireAccountID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), accountID, &usecase.UpdateProfileInput{
		Name:           req.Name,
		NativeLanguage: req.NativeLanguage,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}
