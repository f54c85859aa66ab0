package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		wantID int64
		wantOK bool
	}{
		{name: "positive", value: "42", wantID: 42, wantOK: true},
		{name: "zero", value: "0"},
		{name: "negative", value: "-3"},
		{name: "not a number", value: "abc"},
		{name: "overflows int64", value: "99999999999999999999"},
		{name: "empty", value: ""},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(tt.value)

			id, ok := parseID(c, "id")

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			} else {
				assert.Zero(t, id)
			}
		})
	}
}
