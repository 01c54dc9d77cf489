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

func ListEspecialidadesHandler(c echo.Context) error {
	search := c.QueryParam("search")
	page, skip := parsePage(c)

	especialidades, err := services.GetEspecialidades(db.DB, search, skip, PerPage)
	if err != nil {
		return err
	}
	total, err := services.CountEspecialidades(db.DB, search)
	if err != nil {
		return err
	}
	return render(c, templates.EspecialidadesList(middleware.GetCurrentUser(c), especialidades, search, page, totalPages(total)))
}

func NewEspecialidadFormHandler(c echo.Context) error {
	return render(c, templates.EspecialidadForm(middleware.GetCurrentUser(c), nil, ""))
}

func CreateEspecialidadHandler(c echo.Context) error {
	if _, err := services.CreateEspecialidad(db.DB, c.FormValue("espe_especialidad")); err != nil {
		return render(c, templates.EspecialidadForm(middleware.GetCurrentUser(c), nil, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/especialidades/")
}

func EditEspecialidadFormHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	especialidad, err := services.GetEspecialidad(db.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrEspecialidadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return render(c, templates.EspecialidadForm(middleware.GetCurrentUser(c), especialidad, ""))
}

func UpdateEspecialidadHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	update := services.EspecialidadUpdate{EspeEspecialidad: services.Set(c.FormValue("espe_especialidad"))}
	if _, err := services.UpdateEspecialidad(db.DB, id, update); err != nil {
		if errors.Is(err, services.ErrEspecialidadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		especialidad, lerr := services.GetEspecialidad(db.DB, id)
		if lerr != nil {
			return lerr
		}
		return render(c, templates.EspecialidadForm(middleware.GetCurrentUser(c), especialidad, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/especialidades/")
}

// DeleteEspecialidadHandler removes a specialty; specialists keep their row
// with the reference cleared.
func DeleteEspecialidadHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := services.DeleteEspecialidad(db.DB, id); err != nil {
		if errors.Is(err, services.ErrEspecialidadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/especialidades/")
}
