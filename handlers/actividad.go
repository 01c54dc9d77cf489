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

func ListActividadesHandler(c echo.Context) error {
	search := c.QueryParam("search")
	page, skip := parsePage(c)

	actividades, err := services.GetActividades(db.DB, search, skip, PerPage)
	if err != nil {
		return err
	}
	total, err := services.CountActividades(db.DB, search)
	if err != nil {
		return err
	}
	return render(c, templates.ActividadesList(middleware.GetCurrentUser(c), actividades, search, page, totalPages(total)))
}

func NewActividadFormHandler(c echo.Context) error {
	return render(c, templates.ActividadForm(middleware.GetCurrentUser(c), nil, ""))
}

func CreateActividadHandler(c echo.Context) error {
	fechaAct, err := services.ParseDate(c.FormValue("act_fecha"))
	if err != nil {
		return render(c, templates.ActividadForm(middleware.GetCurrentUser(c), nil, "La fecha no es válida"))
	}
	input := services.ActividadInput{
		ActActividad: c.FormValue("act_actividad"),
		ActFecha:     fechaAct,
	}
	if _, err := services.CreateActividad(db.DB, input); err != nil {
		return render(c, templates.ActividadForm(middleware.GetCurrentUser(c), nil, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/actividades/")
}

func EditActividadFormHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	actividad, err := services.GetActividad(db.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrActividadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return render(c, templates.ActividadForm(middleware.GetCurrentUser(c), actividad, ""))
}

func UpdateActividadHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	fechaAct, err := services.ParseDate(c.FormValue("act_fecha"))
	if err != nil {
		return render(c, templates.ActividadForm(middleware.GetCurrentUser(c), nil, "La fecha no es válida"))
	}
	update := services.ActividadUpdate{
		ActActividad: services.Set(c.FormValue("act_actividad")),
		ActFecha:     services.Set(fechaAct),
	}
	if _, err := services.UpdateActividad(db.DB, id, update); err != nil {
		if errors.Is(err, services.ErrActividadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		actividad, lerr := services.GetActividad(db.DB, id)
		if lerr != nil {
			return lerr
		}
		return render(c, templates.ActividadForm(middleware.GetCurrentUser(c), actividad, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/actividades/")
}

func DeleteActividadHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := services.DeleteActividad(db.DB, id); err != nil {
		if errors.Is(err, services.ErrActividadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/actividades/")
}
