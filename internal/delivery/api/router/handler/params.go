package handler

import (
	"wordtrainer/internal/delivery/api/response"
	"wordtrainer/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultPageLimit = 10

// pageQuery is the skip/limit pair shared by list endpoints.
type pageQuery struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

func (q pageQuery) toPage() repository.Page {
	return repository.Page{Skip: q.Skip, Limit: q.Limit}
}

// bindPage reads skip and limit from the query string, defaulting limit when absent.
func bindPage(c echo.Context) (pageQuery, error) {
	page := pageQuery{Limit: defaultPageLimit}
	err := echo.QueryParamsBinder(c).
		Int("skip", &page.Skip).
		Int("limit", &page.Limit).
		BindError()
	if err != nil {
		return page, errors.WithStack(err)
	}

	return page, errors.WithStack(c.Validate(&page))
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, bool) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64(name, &id).BindError(); err != nil {
		return 0, false
	}

	return id, id > 0
}

func invalidID(c echo.Context) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid ID")
}
