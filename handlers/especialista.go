package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/middleware"
	"github.com/ryoumen0412/sistema-dpm/services"
	"github.com/ryoumen0412/sistema-dpm/templates"
)

// ListEspecialistasHandler renders the specialist roster
func ListEspecialistasHandler(c echo.Context) error {
	f := services.EspecialistaFilters{
		Search:         c.QueryParam("search"),
		EspecialidadID: queryUint(c, "especialidad_id"),
	}
	page, skip := parsePage(c)

	especialistas, err := services.GetEspecialistas(db.DB, f, skip, PerPage)
	if err != nil {
		return err
	}
	total, err := services.CountEspecialistas(db.DB, f)
	if err != nil {
		return err
	}
	especialidades, err := services.GetEspecialidades(db.DB, "", 0, -1)
	if err != nil {
		return err
	}
	return render(c, templates.EspecialistasList(middleware.GetCurrentUser(c), especialistas, especialidades, f, page, totalPages(total)))
}

// NewEspecialistaFormHandler shows the registration form
func NewEspecialistaFormHandler(c echo.Context) error {
	especialidades, err := services.GetEspecialidades(db.DB, "", 0, -1)
	if err != nil {
		return err
	}
	return render(c, templates.EspecialistaForm(middleware.GetCurrentUser(c), nil, especialidades, ""))
}

// CreateEspecialistaHandler registers a specialist
func CreateEspecialistaHandler(c echo.Context) error {
	input := services.EspecialistaInput{
		EspRut:      c.FormValue("esp_rut"),
		EspNombre:   c.FormValue("esp_nombre"),
		EspApellido: c.FormValue("esp_apellido"),
		EspEspeid:   formUintPtr(c, "esp_espeid"),
	}
	if _, err := services.CreateEspecialista(db.DB, input); err != nil {
		especialidades, lerr := services.GetEspecialidades(db.DB, "", 0, -1)
		if lerr != nil {
			return lerr
		}
		return render(c, templates.EspecialistaForm(middleware.GetCurrentUser(c), nil, especialidades, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/especialistas/")
}

// EditEspecialistaFormHandler shows the edit form prefilled
func EditEspecialistaFormHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	especialista, err := services.GetEspecialista(db.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrEspecialistaNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	especialidades, err := services.GetEspecialidades(db.DB, "", 0, -1)
	if err != nil {
		return err
	}
	return render(c, templates.EspecialistaForm(middleware.GetCurrentUser(c), especialista, especialidades, ""))
}

// UpdateEspecialistaHandler applies the edit form
func UpdateEspecialistaHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	update := services.EspecialistaUpdate{
		EspRut:      services.Set(c.FormValue("esp_rut")),
		EspNombre:   services.Set(c.FormValue("esp_nombre")),
		EspApellido: services.Set(c.FormValue("esp_apellido")),
		EspEspeid:   services.Set(formUintPtr(c, "esp_espeid")),
	}
	if _, err := services.UpdateEspecialista(db.DB, id, update); err != nil {
		if errors.Is(err, services.ErrEspecialistaNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		especialista, lerr := services.GetEspecialista(db.DB, id)
		if lerr != nil {
			return lerr
		}
		especialidades, lerr := services.GetEspecialidades(db.DB, "", 0, -1)
		if lerr != nil {
			return lerr
		}
		return render(c, templates.EspecialistaForm(middleware.GetCurrentUser(c), especialista, especialidades, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/especialistas/")
}

// DeleteEspecialistaHandler removes a specialist; their atenciones keep the
// row with the reference cleared.
func DeleteEspecialistaHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := services.DeleteEspecialista(db.DB, id); err != nil {
		if errors.Is(err, services.ErrEspecialistaNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/especialistas/")
}
