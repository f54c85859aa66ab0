package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "wordtrainer/internal/delivery/context"
	domainerrors "wordtrainer/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]any
	}{
		{
			name:        "field tagged client error",
			err:         errors.Wrap(domainerrors.ErrDuplicateEmail, "email already registered"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "EMAIL_ALREADY_REGISTERED",
			wantMessage: "Email already registered",
			wantDetails: map[string]any{"field": "email"},
		},
		{
			name:        "client error with reason",
			err:         domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PASSWORD_STRENGTH",
			wantMessage: "Password does not meet the strength requirements",
			wantDetails: map[string]any{"field": "password", "reason": "password must be at least 8 characters"},
		},
		{
			name:        "unauthorized hides field",
			err:         errors.Wrap(domainerrors.ErrInvalidCredentials.WithField(domainerrors.FieldPassword), "signin failed"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "INVALID_CREDENTIALS",
			wantMessage: "Incorrect email or password",
		},
		{
			name:        "not found",
			err:         errors.Wrap(domainerrors.ErrWordNotFound, "failed to find word"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "WORD_NOT_FOUND",
			wantMessage: "Word not found",
		},
		{
			name:        "database error hides details",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("pq: relation missing"), "failed to find account"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "DATABASE_EXECUTE_FAILED",
			wantMessage: "Database execution failed",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "method not allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-1")

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.NotContains(t, rec.Body.String(), "details\":null")
		})
	}
}

func TestErrorMiddleware_UnauthorizedSetsChallenge(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(domainerrors.ErrUnauthorized, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}
