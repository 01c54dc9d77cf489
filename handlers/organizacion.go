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

func ListOrganizacionesHandler(c echo.Context) error {
	search := c.QueryParam("search")
	page, skip := parsePage(c)

	organizaciones, err := services.GetOrganizaciones(db.DB, search, skip, PerPage)
	if err != nil {
		return err
	}
	total, err := services.CountOrganizaciones(db.DB, search)
	if err != nil {
		return err
	}
	return render(c, templates.OrganizacionesList(middleware.GetCurrentUser(c), organizaciones, search, page, totalPages(total)))
}

func NewOrganizacionFormHandler(c echo.Context) error {
	return render(c, templates.OrganizacionForm(middleware.GetCurrentUser(c), nil, ""))
}

func CreateOrganizacionHandler(c echo.Context) error {
	if _, err := services.CreateOrganizacion(db.DB, c.FormValue("org_comunitaria")); err != nil {
		return render(c, templates.OrganizacionForm(middleware.GetCurrentUser(c), nil, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/organizaciones/")
}

func EditOrganizacionFormHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	organizacion, err := services.GetOrganizacion(db.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrOrganizacionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return render(c, templates.OrganizacionForm(middleware.GetCurrentUser(c), organizacion, ""))
}

func UpdateOrganizacionHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	update := services.OrganizacionUpdate{OrgComunitaria: services.Set(c.FormValue("org_comunitaria"))}
	if _, err := services.UpdateOrganizacion(db.DB, id, update); err != nil {
		if errors.Is(err, services.ErrOrganizacionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		organizacion, lerr := services.GetOrganizacion(db.DB, id)
		if lerr != nil {
			return lerr
		}
		return render(c, templates.OrganizacionForm(middleware.GetCurrentUser(c), organizacion, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, "/organizaciones/")
}

func DeleteOrganizacionHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := services.DeleteOrganizacion(db.DB, id); err != nil {
		if errors.Is(err, services.ErrOrganizacionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/organizaciones/")
}
