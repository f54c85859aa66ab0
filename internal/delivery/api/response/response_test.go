package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "wordtrainer/internal/delivery/context"
	domainerrors "wordtrainer/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestError_DetailsVisibility(t *testing.T) {
	details := map[string]string{"field": "email"}

	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusNotFound, wantDetails: true},
		{status: http.StatusUnauthorized, wantDetails: false},
		{status: http.StatusForbidden, wantDetails: false},
		{status: http.StatusInternalServerError, wantDetails: false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", details))

			body := decodeBody(t, rec)
			errInfo := body["error"].(map[string]any)
			_, hasDetails := errInfo["details"]
			assert.Equal(t, tt.wantDetails, hasDetails)
			assert.Equal(t, "req-1", body["meta"].(map[string]any)["request_id"])
		})
	}
}

func TestErrorWithDetails_KeepsDetailsOn401(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, ErrorWithDetails(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "nope",
		map[string]string{"field": "password"}))

	errInfo := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, map[string]any{"field": "password"}, errInfo["details"])
}

func TestError_EmptyDetailsOmitted(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, BadRequestWithDetails(c, "VALIDATION_FAILED", "bad", map[string]string(nil)))

	assert.NotContains(t, rec.Body.String(), "details")
}

func TestAppErrorDetails(t *testing.T) {
	assert.Nil(t, AppErrorDetails(domainerrors.ErrProfileNotFound))
	assert.Equal(t, map[string]string{"field": "email"}, AppErrorDetails(domainerrors.ErrDuplicateEmail))
	assert.Equal(t,
		map[string]string{"field": "password", "reason": "too short"},
		AppErrorDetails(domainerrors.ErrPasswordStrength.WithDetails("too short")),
	)
	assert.Nil(t, AppErrorDetails(domainerrors.ErrInternalError.WithDetails("db down")))
}
