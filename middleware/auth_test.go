package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ryoumen0412/sistema-dpm/config"
	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
)

func setupAuthTest(t *testing.T) *config.Config {
	t.Helper()

	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	db.DB = database

	if _, err := services.CreateUser(database, "secretaria", "ContraseñaSegura123"); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return &config.Config{
		SecretKey:                "clave-de-firma-solo-para-pruebas",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 480,
	}
}

func protectedEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.GET("/privado", func(c echo.Context) error {
		user := GetCurrentUser(c)
		return c.String(http.StatusOK, user.Usr)
	}, RequireAuth(cfg))
	return e
}

func TestRequireAuthRedirectsWithoutToken(t *testing.T) {
	cfg := setupAuthTest(t)
	e := protectedEcho(cfg)

	req := httptest.NewRequest(http.MethodGet, "/privado", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestRequireAuthAcceptsCookie(t *testing.T) {
	cfg := setupAuthTest(t)
	e := protectedEcho(cfg)

	token, err := services.CreateAccessToken(cfg, "secretaria")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/privado", nil)
	req.AddCookie(&http.Cookie{Name: services.TokenCookieName, Value: services.BearerPrefix + token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "secretaria", rec.Body.String())
}

func TestRequireAuthAcceptsAuthorizationHeader(t *testing.T) {
	cfg := setupAuthTest(t)
	e := protectedEcho(cfg)

	token, err := services.CreateAccessToken(cfg, "secretaria")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/privado", nil)
	req.Header.Set(echo.HeaderAuthorization, services.BearerPrefix+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	cfg := setupAuthTest(t)
	e := protectedEcho(cfg)

	req := httptest.NewRequest(http.MethodGet, "/privado", nil)
	req.AddCookie(&http.Cookie{Name: services.TokenCookieName, Value: "Bearer basura"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestRequireAuthRejectsUnknownUser(t *testing.T) {
	cfg := setupAuthTest(t)
	e := protectedEcho(cfg)

	// Valid signature but the user no longer exists
	token, err := services.CreateAccessToken(cfg, "borrada")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/privado", nil)
	req.AddCookie(&http.Cookie{Name: services.TokenCookieName, Value: services.BearerPrefix + token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestSetAndClearTokenCookie(t *testing.T) {
	cfg := setupAuthTest(t)
	cfg.Environment = "production"

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	SetTokenCookie(c, cfg, "abc123")

	header := rec.Header().Get(echo.HeaderSetCookie)
	assert.Contains(t, header, services.TokenCookieName+"=")
	assert.Contains(t, header, "Bearer")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "Secure")
	assert.True(t, strings.Contains(header, "Max-Age=28800"))

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	ClearTokenCookie(c)
	header = rec.Header().Get(echo.HeaderSetCookie)
	assert.Contains(t, header, "Max-Age=0")
}
