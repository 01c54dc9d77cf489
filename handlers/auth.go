package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryoumen0412/sistema-dpm/config"
	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/middleware"
	"github.com/ryoumen0412/sistema-dpm/services"
	"github.com/ryoumen0412/sistema-dpm/templates"
)

func appConfig(c echo.Context) *config.Config {
	cfg, _ := c.Get(middleware.ContextKeyConfig).(*config.Config)
	return cfg
}

// LoginFormHandler shows the login screen
func LoginFormHandler(c echo.Context) error {
	return render(c, templates.Login(appConfig(c).AppName, ""))
}

// LoginHandler validates credentials and sets the session cookie
func LoginHandler(c echo.Context) error {
	cfg := appConfig(c)
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := services.AuthenticateUser(db.DB, username, password)
	if err != nil {
		return render(c, templates.Login(cfg.AppName, "Usuario o contraseña incorrectos"))
	}

	token, err := services.CreateAccessToken(cfg, user.Usr)
	if err != nil {
		return render(c, templates.Login(cfg.AppName, "No fue posible iniciar sesión"))
	}
	middleware.SetTokenCookie(c, cfg, token)
	return c.Redirect(http.StatusSeeOther, "/")
}

// LogoutHandler clears the session cookie
func LogoutHandler(c echo.Context) error {
	middleware.ClearTokenCookie(c)
	return c.Redirect(http.StatusSeeOther, "/auth/login")
}
