package handler

import (
	"log/slog"
	"net/http"
	"time"

	"wordtrainer/internal/delivery/api/middleware"
	"wordtrainer/internal/delivery/api/response"
	"wordtrainer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PracticeHandlerParams holds dependencies for PracticeHandler, injected by Fx.
type PracticeHandlerParams struct {
	fx.In

	PracticeUC usecase.PracticeUsecase
	Logger     *slog.Logger
}

// PracticeHandler records practice attempts and reports statistics
type PracticeHandler struct {
	practiceUC usecase.PracticeUsecase
	logger     *slog.Logger
}

// NewPracticeHandler is the constructor for PracticeHandler
func NewPracticeHandler(params PracticeHandlerParams) *PracticeHandler {
	return &PracticeHandler{
		practiceUC: params.PracticeUC,
		logger:     params.Logger,
	}
}

// PracticeRequest is the JSON form of a practice attempt
type PracticeRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

// StatsResponse summarizes a word's practice history.
type StatsResponse struct {
	TotalPractices int64      `json:"total_practices"`
	CorrectAnswers int64      `json:"correct_answers"`
	SuccessRate    float64    `json:"success_rate"`
	LastPracticed  *time.Time `json:"last_practiced"`
}

// RecordPractice stores one attempt. correct may come as a query parameter or in the JSON body.
func (h *PracticeHandler) RecordPractice(c echo.Context) error {
	accountID, err := middleware.RequireAccountID(c)
	if err != nil {
		return err
	}

	wordID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req PracticeRequest
	if c.QueryParam("correct") != "" {
		var correct bool
		if err := echo.QueryParamsBinder(c).Bool("correct", &correct).BindError(); err != nil {
			return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed",
				map[string]string{"correct": "boolean"})
		}
		req.Correct = &correct
	} else if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid practice input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	if _, err := h.practiceUC.RecordPractice(c.Request().Context(), accountID, wordID, *req.Correct); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"status": "success"})
}

// GetStats returns the practice statistics of one of the caller's words
func (h *PracticeHandler) GetStats(c echo.Context) error {
	accountID, err := middleware.RequireAccountID(c)
	if err != nil {
		return err
	}

	wordID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	stats, err := h.practiceUC.GetStats(c.Request().Context(), accountID, wordID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, StatsResponse{
		TotalPractices: stats.TotalPractices,
		CorrectAnswers: stats.CorrectAnswers,
		SuccessRate:    stats.SuccessRate(),
		LastPracticed:  stats.LastPracticed,
	})
}
