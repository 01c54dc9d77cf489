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

func ListViajesHandler(c echo.Context) error {
	search := c.QueryParam("search")
	page, skip := parsePage(c)

	viajes, err := services.GetViajes(db.DB, search, skip, PerPage)
	if err != nil {
		return err
	}
	total, err := services.CountViajes(db.DB, search)
	if err != nil {
		return err
	}
	return render(c, templates.ViajesList(middleware.GetCurrentUser(c), viajes, search, page, totalPages(total)))
}

func NewViajeFormHandler(c echo.Context) error {
	return render(c, templates.ViajeForm(middleware.GetCurrentUser(c), nil, ""))
}

func CreateViajeHandler(c echo.Context) error {
	fechaVia, err := services.ParseDate(c.FormValue("via_fecha"))
	if err != nil {
		return render(c, templates.ViajeForm(middleware.GetCurrentUser(c), nil, "La fecha no es válida"))
	}
	input := services.ViajeInput{
		ViaViaje:   c.FormValue("via_viaje"),
		ViaDestino: c.FormValue("via_destino"),
		ViaFecha:   fechaVia,
	}
	if _, err := services.CreateViaje(db.DB, input); err != nil {
		return render(c, templates.ViajeForm(middleware.GetCurrentUser(c), nil, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/viajes/")
}

func EditViajeFormHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	viaje, err := services.GetViaje(db.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrViajeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return render(c, templates.ViajeForm(middleware.GetCurrentUser(c), viaje, ""))
}

func UpdateViajeHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	fechaVia, err := services.ParseDate(c.FormValue("via_fecha"))
	if err != nil {
		return render(c, templates.ViajeForm(middleware.GetCurrentUser(c), nil, "La fecha no es válida"))
	}
	update := services.ViajeUpdate{
		ViaViaje:   services.Set(c.FormValue("via_viaje")),
		ViaDestino: services.Set(c.FormValue("via_destino")),
		ViaFecha:   services.Set(fechaVia),
	}
	if _, err := services.UpdateViaje(db.DB, id, update); err != nil {
		if errors.Is(err, services.ErrViajeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		viaje, lerr := services.GetViaje(db.DB, id)
		if lerr != nil {
			return lerr
		}
		return render(c, templates.ViajeForm(middleware.GetCurrentUser(c), viaje, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/viajes/")
}

func DeleteViajeHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := services.DeleteViaje(db.DB, id); err != nil {
		if errors.Is(err, services.ErrViajeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/viajes/")
}
