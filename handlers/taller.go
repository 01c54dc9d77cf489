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

func ListTalleresHandler(c echo.Context) error {
	search := c.QueryParam("search")
	page, skip := parsePage(c)

	talleres, err := services.GetTalleres(db.DB, search, skip, PerPage)
	if err != nil {
		return err
	}
	total, err := services.CountTalleres(db.DB, search)
	if err != nil {
		return err
	}
	return render(c, templates.TalleresList(middleware.GetCurrentUser(c), talleres, search, page, totalPages(total)))
}

func NewTallerFormHandler(c echo.Context) error {
	return render(c, templates.TallerForm(middleware.GetCurrentUser(c), nil, ""))
}

func CreateTallerHandler(c echo.Context) error {
	if _, err := services.CreateTaller(db.DB, c.FormValue("tal_taller")); err != nil {
		return render(c, templates.TallerForm(middleware.GetCurrentUser(c), nil, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/talleres/")
}

func EditTallerFormHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	taller, err := services.GetTaller(db.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrTallerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return render(c, templates.TallerForm(middleware.GetCurrentUser(c), taller, ""))
}

func UpdateTallerHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	update := services.TallerUpdate{TalTaller: services.Set(c.FormValue("tal_taller"))}
	if _, err := services.UpdateTaller(db.DB, id, update); err != nil {
		if errors.Is(err, services.ErrTallerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		taller, lerr := services.GetTaller(db.DB, id)
		if lerr != nil {
			return lerr
		}
		return render(c, templates.TallerForm(middleware.GetCurrentUser(c), taller, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/talleres/")
}

func DeleteTallerHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := services.DeleteTaller(db.DB, id); err != nil {
		if errors.Is(err, services.ErrTallerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/talleres/")
}
