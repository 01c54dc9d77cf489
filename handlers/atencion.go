package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/middleware"
	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
	"github.com/ryoumen0412/sistema-dpm/templates"
)

func atencionFiltersFromQuery(c echo.Context) services.AtencionFilters {
	return services.AtencionFilters{
		PersonaID:      queryUint(c, "persona_id"),
		EspecialistaID: queryUint(c, "especialista_id"),
		FechaDesde:     queryDate(c, "fecha_desde"),
		FechaHasta:     queryDate(c, "fecha_hasta"),
	}
}

func atencionFormData() ([]models.PersonaMayor, []models.Especialista, error) {
	personas, err := services.GetPersonasMayores(db.DB, services.PersonaFilters{}, 0, -1)
	if err != nil {
		return nil, nil, err
	}
	especialistas, err := services.GetEspecialistas(db.DB, services.EspecialistaFilters{}, 0, -1)
	if err != nil {
		return nil, nil, err
	}
	return personas, especialistas, nil
}

// ListAtencionesHandler renders the filtered visit log
func ListAtencionesHandler(c echo.Context) error {
	f := atencionFiltersFromQuery(c)
	page, skip := parsePage(c)

	atenciones, err := services.GetAtenciones(db.DB, f, skip, PerPage)
	if err != nil {
		return err
	}
	total, err := services.CountAtenciones(db.DB, f)
	if err != nil {
		return err
	}
	personas, especialistas, err := atencionFormData()
	if err != nil {
		return err
	}
	return render(c, templates.AtencionesList(middleware.GetCurrentUser(c), atenciones, personas, especialistas, f, page, totalPages(total)))
}

// NewAtencionFormHandler shows the registration form; ?persona_id= preselects
// the person.
func NewAtencionFormHandler(c echo.Context) error {
	personas, especialistas, err := atencionFormData()
	if err != nil {
		return err
	}
	return render(c, templates.AtencionForm(middleware.GetCurrentUser(c), nil, personas, especialistas, queryUint(c, "persona_id"), ""))
}

// CreateAtencionHandler registers a visit
func CreateAtencionHandler(c echo.Context) error {
	fechaAt, err := services.ParseDate(c.FormValue("at_fecha"))
	if err != nil {
		return renderAtencionFormError(c, "La fecha de la atención no es válida")
	}

	perid := formUintPtr(c, "at_perid")
	input := services.AtencionInput{
		AtEspid: formUintPtr(c, "at_espid"),
		AtFecha: fechaAt,
	}
	if perid != nil {
		input.AtPerid = *perid
	}

	if _, err := services.CreateAtencion(db.DB, input); err != nil {
		return renderAtencionFormError(c, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, "/atenciones/")
}

func renderAtencionFormError(c echo.Context, msg string) error {
	personas, especialistas, err := atencionFormData()
	if err != nil {
		return err
	}
	return render(c, templates.AtencionForm(middleware.GetCurrentUser(c), nil, personas, especialistas, 0, msg))
}

// EditAtencionFormHandler shows the edit form prefilled
func EditAtencionFormHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	atencion, err := services.GetAtencion(db.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrAtencionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	personas, especialistas, err := atencionFormData()
	if err != nil {
		return err
	}
	return render(c, templates.AtencionForm(middleware.GetCurrentUser(c), atencion, personas, especialistas, 0, ""))
}

// UpdateAtencionHandler applies the edit form
func UpdateAtencionHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	fechaAt, err := services.ParseDate(c.FormValue("at_fecha"))
	if err != nil {
		return renderAtencionFormError(c, "La fecha de la atención no es válida")
	}

	update := services.AtencionUpdate{
		AtEspid: services.Set(formUintPtr(c, "at_espid")),
		AtFecha: services.Set(fechaAt),
	}
	if perid := formUintPtr(c, "at_perid"); perid != nil {
		update.AtPerid = services.Set(*perid)
	}

	if _, err := services.UpdateAtencion(db.DB, id, update); err != nil {
		if errors.Is(err, services.ErrAtencionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return renderAtencionFormError(c, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, "/atenciones/")
}

// DeleteAtencionHandler removes one visit
func DeleteAtencionHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := services.DeleteAtencion(db.DB, id); err != nil {
		if errors.Is(err, services.ErrAtencionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/atenciones/")
}
