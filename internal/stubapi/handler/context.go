package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryID reads the optional ?id= parameter. ok is false when it is absent.
func queryID(c echo.Context) (id int64, ok bool, err error) {
	raw := c.QueryParam("id")
	if raw == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return id, true, nil
}

// requireID is queryID for methods that cannot run without an id.
func requireID(c echo.Context, what string) (int64, error) {
	id, ok, err := queryID(c)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, echo.NewHTTPError(http.StatusBadRequest, what+" ID is required")
	}
	return id, nil
}

func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON payload")
	}
	return nil
}
