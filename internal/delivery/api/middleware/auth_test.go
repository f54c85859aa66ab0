package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wordtrainer/internal/delivery/api/response"
	deliverycontext "wordtrainer/internal/delivery/context"
	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	mockUC "wordtrainer/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newGuardedEcho serves GET /me behind Authenticate and echoes the resolved account id
// followed by the one recorded on the request context.
func newGuardedEcho(t *testing.T) (*echo.Echo, *mockUC.MockAccountUsecase) {
	t.Helper()

	accountUC := mockUC.NewMockAccountUsecase(t)
	authMiddleware := NewAuthMiddleware(AuthMiddlewareParams{AccountUC: accountUC, Logger: newDiscardLogger()})

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.GET("/me", func(c echo.Context) error {
		accountID, err := RequireAccountID(c)
		if err != nil {
			return err
		}

		ctxAccountID, _ := deliverycontext.GetAccountIDFromContext(c.Request().Context())

		return c.String(http.StatusOK, accountID.String()+" "+ctxAccountID.String())
	}, authMiddleware.Authenticate)

	return e, accountUC
}

func serve(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body struct {
		Error response.ErrorInfo `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e, accountUC := newGuardedEcho(t)
	account := &entity.Account{ID: uuid.New(), Email: "a@x.com"}

	accountUC.EXPECT().Authenticate(mock.Anything, "good-token").Return(account, nil)

	rec := serve(e, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, account.ID.String()+" "+account.ID.String(), rec.Body.String())
}

func TestAuthMiddleware_RejectsUniformly(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		usecaseErr    error
	}{
		{name: "missing header"},
		{name: "wrong scheme", authorization: "Basic dXNlcjpwYXNz"},
		{name: "empty token", authorization: "Bearer "},
		{name: "invalid token", authorization: "Bearer bad", usecaseErr: errors.Wrap(domainerrors.ErrUnauthorized, "invalid access token")},
		{name: "unknown account", authorization: "bearer bad", usecaseErr: errors.Wrap(domainerrors.ErrUnauthorized, "token subject does not exist")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, accountUC := newGuardedEcho(t)
			if tt.usecaseErr != nil {
				accountUC.EXPECT().Authenticate(mock.Anything, "bad").Return(nil, tt.usecaseErr)
			}

			rec := serve(e, tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

			errInfo := decodeError(t, rec)
			assert.Equal(t, "UNAUTHORIZED", errInfo.Code)
			assert.Equal(t, "Could not validate credentials", errInfo.Message)
			assert.Nil(t, errInfo.Details)
		})
	}
}

func TestAuthMiddleware_StoreFailureIsInternal(t *testing.T) {
	e, accountUC := newGuardedEcho(t)

	accountUC.EXPECT().Authenticate(mock.Anything, "tok").Return(nil, errors.New("connection refused"))

	rec := serve(e, "Bearer tok")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{header: "bearer abc", want: "abc", ok: true},
		{header: "BEARER   abc  ", want: "abc", ok: true},
		{header: "", ok: false},
		{header: "Bearer", ok: false},
		{header: "Bearer ", ok: false},
		{header: "Basic dXNlcjpwYXNz", ok: false},
		{header: "abc.def.ghi", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := bearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetAccountID_WithoutAuthenticate(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetAccountID(c)
	assert.False(t, ok)

	_, err := RequireAccountID(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
