package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"wordtrainer/internal/delivery/api/response"
	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/domain/repository"
	"wordtrainer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DictionaryHandlerParams holds dependencies for DictionaryHandler, injected by Fx.
type DictionaryHandlerParams struct {
	fx.In

	DictionaryUC usecase.DictionaryUsecase
	Logger       *slog.Logger
}

// DictionaryHandler holds dependencies for dictionary-related handlers
type DictionaryHandler struct {
	dictionaryUC usecase.DictionaryUsecase
	logger       *slog.Logger
}

// NewDictionaryHandler is the constructor for DictionaryHandler
func NewDictionaryHandler(params DictionaryHandlerParams) *DictionaryHandler {
	return &DictionaryHandler{
		dictionaryUC: params.DictionaryUC,
		logger:       params.Logger,
	}
}

// DictionaryEntryRequest is the body for creating or replacing an entry
type DictionaryEntryRequest struct {
	Text          string            `json:"text" validate:"required,max=255"`
	Meaning       string            `json:"meaning" validate:"required"`
	Example       *string           `json:"example"`
	Pronunciation *string           `json:"pronunciation" validate:"omitempty,max=255"`
	Difficulty    entity.Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Language      string            `json:"language" validate:"omitempty,max=10"`
}

func (r *DictionaryEntryRequest) toInput() *usecase.DictionaryEntryInput {
	return &usecase.DictionaryEntryInput{
		Text:          r.Text,
		Meaning:       r.Meaning,
		Example:       r.Example,
		Pronunciation: r.Pronunciation,
		Difficulty:    r.Difficulty,
		Language:      r.Language,
	}
}

// dictionaryFilterQuery holds the list filters.
type dictionaryFilterQuery struct {
	Language   string            `query:"language" validate:"omitempty,max=10"`
	Difficulty entity.Difficulty `query:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Search     string            `query:"search" validate:"omitempty,max=255"`
}

// ResolveQRRequest carries the text scanned from a share card
type ResolveQRRequest struct {
	Data string `json:"data" validate:"required"`
}

// DictionaryEntryResponse is the public view of a dictionary entry.
type DictionaryEntryResponse struct {
	ID            int64             `json:"id"`
	Text          string            `json:"text"`
	Meaning       string            `json:"meaning"`
	Example       *string           `json:"example"`
	Pronunciation *string           `json:"pronunciation"`
	Difficulty    entity.Difficulty `json:"difficulty"`
	Language      string            `json:"language"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func toDictionaryEntryResponse(entry *entity.DictionaryEntry) DictionaryEntryResponse {
	return DictionaryEntryResponse{
		ID:            entry.ID,
		Text:          entry.Text,
		Meaning:       entry.Meaning,
		Example:       entry.Example,
		Pronunciation: entry.Pronunciation,
		Difficulty:    entry.Difficulty,
		Language:      entry.Language,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}

// CreateEntry adds an entry to the shared dictionary
func (h *DictionaryHandler) CreateEntry(c echo.Context) error {
	var req DictionaryEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dictionary entry input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	entry, err := h.dictionaryUC.CreateEntry(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDictionaryEntryResponse(entry))
}

// ListEntries returns a filtered page of the dictionary
func (h *DictionaryHandler) ListEntries(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return validationFailed(c, err)
	}

	var filter dictionaryFilterQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dictionary filter")
	}

	if err := c.Validate(&filter); err != nil {
		return validationFailed(c, err)
	}

	entries, err := h.dictionaryUC.ListEntries(c.Request().Context(), usecase.DictionaryQuery{
		Filter: repository.DictionaryFilter{
			Language:   filter.Language,
			Difficulty: filter.Difficulty,
			Search:     filter.Search,
		},
		Page: page.toPage(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]DictionaryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, toDictionaryEntryResponse(entry))
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetEntry returns one dictionary entry
func (h *DictionaryHandler) GetEntry(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	entry, err := h.dictionaryUC.GetEntry(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDictionaryEntryResponse(entry))
}

// UpdateEntry replaces every field of an entry
func (h *DictionaryHandler) UpdateEntry(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req DictionaryEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dictionary entry input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	entry, err := h.dictionaryUC.UpdateEntry(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDictionaryEntryResponse(entry))
}

// DeleteEntry removes an entry no word uses
func (h *DictionaryHandler) DeleteEntry(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.dictionaryUC.DeleteEntry(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// EntryQRCode renders the entry's share card as a PNG
func (h *DictionaryHandler) EntryQRCode(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	png, err := h.dictionaryUC.EntryQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "inline; filename=\"dictionary-"+strconv.FormatInt(id, 10)+".png\"")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveQRCode returns the entry a scanned share card points at
func (h *DictionaryHandler) ResolveQRCode(c echo.Context) error {
	var req ResolveQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	entry, err := h.dictionaryUC.ResolveQRCode(c.Request().Context(), req.Data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDictionaryEntryResponse(entry))
}
