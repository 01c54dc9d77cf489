package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ryoumen0412/sistema-dpm/config"
	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
)

// setupApp boots the full application against a private in-memory database
// and returns the echo instance plus a logged-in session cookie.
func setupApp(t *testing.T) (*echo.Echo, *http.Cookie) {
	t.Helper()

	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := models.SetupJoinTables(database); err != nil {
		t.Fatalf("failed to register join tables: %v", err)
	}
	if err := database.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if err := services.SeedReferenceData(database); err != nil {
		t.Fatalf("failed to seed reference data: %v", err)
	}
	db.DB = database

	if _, err := services.CreateUser(database, "secretaria", "ContraseñaSegura123"); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	cfg := &config.Config{
		SecretKey:                "clave-de-firma-solo-para-pruebas",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 480,
		AppName:                  "Sistema DPM",
	}

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(zap.NewNop())
	RegisterRoutes(e, cfg)

	// Log in through the real handler to obtain the session cookie
	rec := postForm(e, nil, "/auth/login", url.Values{
		"username": {"secretaria"},
		"password": {"ContraseñaSegura123"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login failed with status %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a cookie")
	}
	return e, cookies[0]
}

func getPage(e *echo.Echo, cookie *http.Cookie, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postForm(e *echo.Echo, cookie *http.Cookie, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoginFlow(t *testing.T) {
	e, cookie := setupApp(t)

	// The login page is public
	rec := getPage(e, nil, "/auth/login")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ingresar")

	// Bad credentials re-render the form with the error
	rec = postForm(e, nil, "/auth/login", url.Values{
		"username": {"secretaria"},
		"password": {"incorrecta"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuario o contraseña incorrectos")

	// The dashboard opens with the session cookie
	rec = getPage(e, cookie, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Panel general")

	// And redirects without it
	rec = getPage(e, nil, "/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestLogout(t *testing.T) {
	e, cookie := setupApp(t)

	rec := postForm(e, cookie, "/auth/logout", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
	assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "Max-Age=0")
}

func TestPersonaCRUDRoutes(t *testing.T) {
	e, cookie := setupApp(t)

	// Create
	rec := postForm(e, cookie, "/personas/crear", url.Values{
		"per_rut":       {"12345678-9"},
		"per_nombre":    {"María"},
		"per_apellido":  {"González"},
		"per_birthdate": {"1950-06-15"},
		"per_direccion": {"Av. Principal 123"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	location := rec.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "/personas/"))

	// Detail
	rec = getPage(e, cookie, location)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "María González")
	assert.Contains(t, rec.Body.String(), "12345678-9")

	// List with search
	rec = getPage(e, cookie, "/personas/?search=Mar")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "María González")

	// Duplicate RUT re-renders the form with the error
	rec = postForm(e, cookie, "/personas/crear", url.Values{
		"per_rut":       {"12345678-9"},
		"per_nombre":    {"Otra"},
		"per_apellido":  {"Persona"},
		"per_birthdate": {"1950-06-15"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ya existe una persona registrada con ese RUT")

	// Update
	rec = postForm(e, cookie, location+"/editar", url.Values{
		"per_rut":       {"12345678-9"},
		"per_nombre":    {"María"},
		"per_apellido":  {"Pérez"},
		"per_birthdate": {"1950-06-15"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = getPage(e, cookie, location)
	assert.Contains(t, rec.Body.String(), "María Pérez")

	// Delete
	rec = postForm(e, cookie, location+"/eliminar", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/personas/", rec.Header().Get("Location"))

	rec = getPage(e, cookie, location)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPersonaCreateValidationError(t *testing.T) {
	e, cookie := setupApp(t)

	// Too young
	rec := postForm(e, cookie, "/personas/crear", url.Values{
		"per_rut":       {"12345678-9"},
		"per_nombre":    {"Joven"},
		"per_apellido":  {"Persona"},
		"per_birthdate": {"2000-01-01"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mayor de 60")
}

func TestMembresiaRoutes(t *testing.T) {
	e, cookie := setupApp(t)

	persona, err := services.CreatePersonaMayor(db.DB, services.PersonaMayorInput{
		PerRut: "12345678-9", PerNombre: "María", PerApellido: "González",
		PerBirthdate: fechaTest("1950-06-15"),
	})
	assert.NoError(t, err)
	taller, err := services.GetTalleres(db.DB, "", 0, 1)
	assert.NoError(t, err)

	base := "/personas/" + itoa(persona.ID)
	rec := postForm(e, cookie, base+"/talleres", url.Values{"id": {itoa(taller[0].ID)}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, base, rec.Header().Get("Location"))

	rec = getPage(e, cookie, base)
	assert.Contains(t, rec.Body.String(), taller[0].TalTaller)

	rec = postForm(e, cookie, base+"/talleres/"+itoa(taller[0].ID)+"/quitar", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestAtencionRoutes(t *testing.T) {
	e, cookie := setupApp(t)

	persona, err := services.CreatePersonaMayor(db.DB, services.PersonaMayorInput{
		PerRut: "12345678-9", PerNombre: "María", PerApellido: "González",
		PerBirthdate: fechaTest("1950-06-15"),
	})
	assert.NoError(t, err)

	rec := postForm(e, cookie, "/atenciones/crear", url.Values{
		"at_perid": {itoa(persona.ID)},
		"at_fecha": {"2025-01-10"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = getPage(e, cookie, "/atenciones/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "María González")

	// Missing persona re-renders with the error
	rec = postForm(e, cookie, "/atenciones/crear", url.Values{
		"at_fecha": {"2025-01-10"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "debe indicar una persona")
}

func TestReporteRoutes(t *testing.T) {
	e, cookie := setupApp(t)

	rec := getPage(e, cookie, "/reportes/")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = getPage(e, cookie, "/reportes/estadisticas")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Personas por género")

	rec = getPage(e, cookie, "/reportes/personas-sin-atencion?dias=30")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = getPage(e, cookie, "/reportes/busqueda-avanzada?buscar=1&nombre=x")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = getPage(e, cookie, "/reportes/atenciones-mensual?anio=2025&mes=1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = getPage(e, cookie, "/reportes/exportar")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "spreadsheetml")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
}

func TestNotFoundPage(t *testing.T) {
	e, cookie := setupApp(t)

	rec := getPage(e, cookie, "/personas/99999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func fechaTest(valor string) time.Time {
	t, err := services.ParseDate(valor)
	if err != nil {
		panic(err)
	}
	return t
}
