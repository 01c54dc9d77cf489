package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/ryoumen0412/sistema-dpm/services"
)

// PerPage is the fixed page size of every listing screen
const PerPage = 10

func render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// parsePage reads ?page= (min 1) and returns page plus the query offset
func parsePage(c echo.Context) (page, skip int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	return page, (page - 1) * PerPage
}

func totalPages(total int64) int {
	pages := int((total + PerPage - 1) / PerPage)
	if pages < 1 {
		pages = 1
	}
	return pages
}

func paramID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "recurso no encontrado")
	}
	return uint(id), nil
}

func queryUint(c echo.Context, name string) uint {
	v, _ := strconv.ParseUint(c.QueryParam(name), 10, 32)
	return uint(v)
}

func queryDate(c echo.Context, name string) *time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	t, err := services.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &t
}

// formUintPtr maps an empty or zero select value to nil
func formUintPtr(c echo.Context, name string) *uint {
	v, err := strconv.ParseUint(c.FormValue(name), 10, 32)
	if err != nil || v == 0 {
		return nil
	}
	u := uint(v)
	return &u
}

func formStrPtr(c echo.Context, name string) *string {
	v := c.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}
