package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryoumen0412/sistema-dpm/config"
	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
)

const (
	// ContextKeyUser is the context key for the authenticated user
	ContextKeyUser = "user"
	// ContextKeyConfig is the context key for the loaded configuration
	ContextKeyConfig = "config"
)

// RequireAuth resolves the access-token cookie (or, failing that, the
// Authorization header) to a user and stores it in the request context. Any
// missing, expired, malformed or wrongly-signed token, and any token naming a
// user that no longer exists, sends the visitor back to the login form.
func RequireAuth(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if cookie, err := c.Cookie(services.TokenCookieName); err == nil {
				token = cookie.Value
			} else if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
				token = header
			}

			if token == "" {
				return c.Redirect(http.StatusSeeOther, "/auth/login")
			}

			username, err := services.ParseAccessToken(cfg, token)
			if err != nil {
				ClearTokenCookie(c)
				return c.Redirect(http.StatusSeeOther, "/auth/login")
			}

			user, err := services.GetUserByUsername(db.DB, username)
			if err != nil {
				ClearTokenCookie(c)
				return c.Redirect(http.StatusSeeOther, "/auth/login")
			}

			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// GetCurrentUser retrieves the authenticated user from context
func GetCurrentUser(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SetTokenCookie installs the access-token cookie. The value keeps the
// "Bearer " prefix the original municipal deployment used.
func SetTokenCookie(c echo.Context, cfg *config.Config, token string) {
	cookie := &http.Cookie{
		Name:     services.TokenCookieName,
		Value:    services.BearerPrefix + token,
		Path:     "/",
		MaxAge:   cfg.AccessTokenExpireMinutes * 60,
		HttpOnly: true,
		Secure:   cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
}

// ClearTokenCookie removes the access-token cookie (logout)
func ClearTokenCookie(c echo.Context) {
	cookie := &http.Cookie{
		Name:     services.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
}
