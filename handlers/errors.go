package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ryoumen0412/sistema-dpm/templates"
)

// ErrorHandler renders the 404/500 pages instead of echo's JSON default
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}

		if code >= http.StatusInternalServerError {
			logger.Error("error no controlado",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
			)
		}

		c.Response().WriteHeader(code)
		page := templates.ServerError()
		if code == http.StatusNotFound {
			page = templates.NotFound()
		}
		if rerr := page.Render(c.Request().Context(), c.Response().Writer); rerr != nil {
			logger.Error("error al renderizar página de error", zap.Error(rerr))
		}
	}
}
