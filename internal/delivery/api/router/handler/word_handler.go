package handler

import (
	"log/slog"
	"net/http"
	"time"

	"wordtrainer/internal/delivery/api/middleware"
	"wordtrainer/internal/delivery/api/response"
	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/domain/repository"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WordHandlerParams holds dependencies for WordHandler, injected by Fx.
type WordHandlerParams struct {
	fx.In

	WordUC usecase.WordUsecase
	Logger *slog.Logger
}

// WordHandler serves the signed-in account's word list
type WordHandler struct {
	wordUC usecase.WordUsecase
	logger *slog.Logger
}

// NewWordHandler is the constructor for WordHandler
func NewWordHandler(params WordHandlerParams) *WordHandler {
	return &WordHandler{
		wordUC: params.WordUC,
		logger: params.Logger,
	}
}

// CreateWordRequest adds a dictionary entry to the list, optionally overriding its fields
type CreateWordRequest struct {
	DictionaryID int64              `json:"dictionary_id" validate:"required,min=1"`
	Text         *string            `json:"text" validate:"omitempty,min=1,max=255"`
	Meaning      *string            `json:"meaning" validate:"omitempty,min=1"`
	Difficulty   *entity.Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

// UpdateWordRequest changes the fields present in the body
type UpdateWordRequest struct {
	Text       *string            `json:"text" validate:"omitempty,min=1,max=255"`
	Meaning    *string            `json:"meaning" validate:"omitempty,min=1"`
	Difficulty *entity.Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type wordFilterQuery struct {
	Difficulty entity.Difficulty `query:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Search     string            `query:"search" validate:"omitempty,max=255"`
}

// WordResponse is the public view of a word.
type WordResponse struct {
	ID           int64             `json:"id"`
	AccountID    uuid.UUID         `json:"account_id"`
	DictionaryID int64             `json:"dictionary_id"`
	Text         string            `json:"text"`
	Meaning      string            `json:"meaning"`
	Difficulty   entity.Difficulty `json:"difficulty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func toWordResponse(word *entity.Word) WordResponse {
	return WordResponse{
		ID:           word.ID,
		AccountID:    word.AccountID,
		DictionaryID: word.DictionaryID,
		Text:         word.Text,
		Meaning:      word.Meaning,
		Difficulty:   word.Difficulty,
		CreatedAt:    word.CreatedAt,
		UpdatedAt:    word.UpdatedAt,
	}
}

// CreateWord adds a dictionary entry to the caller's list
func (h *WordHandler) CreateWord(c echo.Context) error {
	accountID, err := middleware.RequireAccountID(c)
	if err != nil {
		return err
	}

	var req CreateWordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid word input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	word, err := h.wordUC.CreateWord(c.Request().Context(), accountID, &usecase.CreateWordInput{
		DictionaryID: req.DictionaryID,
		Text:         req.Text,
		Meaning:      req.Meaning,
		Difficulty:   req.Difficulty,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWordResponse(word))
}

// ListWords returns a filtered page of the caller's words
func (h *WordHandler) ListWords(c echo.Context) error {
	accountID, err := middleware.RequireAccountID(c)
	if err != nil {
		return err
	}

	page, err := bindPage(c)
	if err != nil {
		return validationFailed(c, err)
	}

	var filter wordFilterQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid word filter")
	}

	if err := c.Validate(&filter); err != nil {
		return validationFailed(c, err)
	}

	words, err := h.wordUC.ListWords(c.Request().Context(), accountID, usecase.WordQuery{
		Filter: repository.WordFilter{Difficulty: filter.Difficulty, Search: filter.Search},
		Page:   page.toPage(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]WordResponse, 0, len(words))
	for _, word := range words {
		resp = append(resp, toWordResponse(word))
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetWord returns one of the caller's words
func (h *WordHandler) GetWord(c echo.Context) error {
	accountID, err := middleware.RequireAccountID(c)
	if err != nil {
		return err
	}

	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	word, err := h.wordUC.GetWord(c.Request().Context(), accountID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWordResponse(word))
}

// UpdateWord applies a partial update to one of the caller's words
func (h *WordHandler) UpdateWord(c echo.Context) error {
	accountID, err := middleware.RequireAccountID(c)
	if err != nil {
		return err
	}

	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateWordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid word input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	word, err := h.wordUC.UpdateWord(c.Request().Context(), accountID, id, &usecase.UpdateWordInput{
		Text:       req.Text,
		Meaning:    req.Meaning,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWordResponse(word))
}

// DeleteWord removes one of the caller's words
func (h *WordHandler) DeleteWord(c echo.Context) error {
	accountID, err := middleware.RequireAccountID(c)
	if err != nil {
		return err
	}

	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.wordUC.DeleteWord(c.Request().Context(), accountID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
