package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/middleware"
	"github.com/ryoumen0412/sistema-dpm/services"
	"github.com/ryoumen0412/sistema-dpm/templates"
)

const atencionesEnFicha = 20

func loadCatalogos() (templates.Catalogos, error) {
	var cat templates.Catalogos
	var err error
	if cat.Generos, err = services.GetGeneros(db.DB); err != nil {
		return cat, err
	}
	if cat.Nacionalidades, err = services.GetNacionalidades(db.DB); err != nil {
		return cat, err
	}
	if cat.Macrosectores, err = services.GetMacrosectores(db.DB); err != nil {
		return cat, err
	}
	if cat.UnidadesVecinales, err = services.GetUnidadesVecinales(db.DB); err != nil {
		return cat, err
	}
	if cat.Vinculos, err = services.GetVinculos(db.DB); err != nil {
		return cat, err
	}
	if cat.ProgramasCuidadores, err = services.GetProgramasCuidadores(db.DB); err != nil {
		return cat, err
	}
	if cat.Limpiezas, err = services.GetLimpiezasCalefaccion(db.DB); err != nil {
		return cat, err
	}
	return cat, nil
}

func personaFiltersFromQuery(c echo.Context) services.PersonaFilters {
	return services.PersonaFilters{
		Search:        c.QueryParam("search"),
		GeneroID:      queryUint(c, "genero_id"),
		MacrosectorID: queryUint(c, "macrosector_id"),
	}
}

// ListPersonasHandler renders the paginated registry
func ListPersonasHandler(c echo.Context) error {
	f := personaFiltersFromQuery(c)
	page, skip := parsePage(c)

	personas, err := services.GetPersonasMayores(db.DB, f, skip, PerPage)
	if err != nil {
		return err
	}
	total, err := services.CountPersonasMayores(db.DB, f)
	if err != nil {
		return err
	}
	cat, err := loadCatalogos()
	if err != nil {
		return err
	}
	return render(c, templates.PersonasList(middleware.GetCurrentUser(c), personas, cat, f, page, totalPages(total), total))
}

// NewPersonaFormHandler shows the empty registration form
func NewPersonaFormHandler(c echo.Context) error {
	cat, err := loadCatalogos()
	if err != nil {
		return err
	}
	return render(c, templates.PersonaForm(middleware.GetCurrentUser(c), nil, cat, ""))
}

func personaInputFromForm(c echo.Context) (services.PersonaMayorInput, error) {
	birthdate, err := services.ParseDate(c.FormValue("per_birthdate"))
	if err != nil {
		return services.PersonaMayorInput{}, errors.New("La fecha de nacimiento no es válida")
	}
	return services.PersonaMayorInput{
		PerRut:                 c.FormValue("per_rut"),
		PerNombre:              c.FormValue("per_nombre"),
		PerApellido:            c.FormValue("per_apellido"),
		PerBirthdate:           birthdate,
		PerDireccion:           formStrPtr(c, "per_direccion"),
		PerGenid:               formUintPtr(c, "per_genid"),
		PerNacid:               formUintPtr(c, "per_nacid"),
		PerMacid:               formUintPtr(c, "per_macid"),
		PerUniid:               formUintPtr(c, "per_uniid"),
		PerBenefvinculos:       formUintPtr(c, "per_benefvinculos"),
		PerBeneflimpieza:       formUintPtr(c, "per_beneflimpieza"),
		PerBenefprogcuidadores: formUintPtr(c, "per_benefprogcuidadores"),
	}, nil
}

// CreatePersonaHandler registers a new persona from the form
func CreatePersonaHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	cat, err := loadCatalogos()
	if err != nil {
		return err
	}

	input, err := personaInputFromForm(c)
	if err != nil {
		return render(c, templates.PersonaForm(user, nil, cat, err.Error()))
	}

	if existente, _ := services.GetPersonaMayorByRut(db.DB, input.PerRut); existente != nil {
		return render(c, templates.PersonaForm(user, nil, cat, "Ya existe una persona registrada con ese RUT"))
	}

	persona, err := services.CreatePersonaMayor(db.DB, input)
	if err != nil {
		return render(c, templates.PersonaForm(user, nil, cat, err.Error()))
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/personas/%d", persona.ID))
}

// PersonaDetailHandler renders the full card of one persona
func PersonaDetailHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	persona, err := services.GetPersonaMayor(db.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrPersonaNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}

	atenciones, err := services.GetAtencionesPersona(db.DB, id, atencionesEnFicha)
	if err != nil {
		return err
	}

	// Full catalogs feed the enroll selects
	actividades, err := services.GetActividades(db.DB, "", 0, -1)
	if err != nil {
		return err
	}
	talleres, err := services.GetTalleres(db.DB, "", 0, -1)
	if err != nil {
		return err
	}
	viajes, err := services.GetViajes(db.DB, "", 0, -1)
	if err != nil {
		return err
	}
	organizaciones, err := services.GetOrganizaciones(db.DB, "", 0, -1)
	if err != nil {
		return err
	}

	return render(c, templates.PersonaDetail(middleware.GetCurrentUser(c), persona, atenciones,
		actividades, talleres, viajes, organizaciones))
}

// EditPersonaFormHandler shows the edit form prefilled
func EditPersonaFormHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	persona, err := services.GetPersonaMayor(db.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrPersonaNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	cat, err := loadCatalogos()
	if err != nil {
		return err
	}
	return render(c, templates.PersonaForm(middleware.GetCurrentUser(c), persona, cat, ""))
}

// UpdatePersonaHandler applies the full edit form
func UpdatePersonaHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	birthdate, err := services.ParseDate(c.FormValue("per_birthdate"))
	if err != nil {
		return renderEditError(c, id, "La fecha de nacimiento no es válida")
	}

	update := services.PersonaMayorUpdate{
		PerRut:                 services.Set(c.FormValue("per_rut")),
		PerNombre:              services.Set(c.FormValue("per_nombre")),
		PerApellido:            services.Set(c.FormValue("per_apellido")),
		PerBirthdate:           services.Set(birthdate),
		PerDireccion:           services.Set(formStrPtr(c, "per_direccion")),
		PerGenid:               services.Set(formUintPtr(c, "per_genid")),
		PerNacid:               services.Set(formUintPtr(c, "per_nacid")),
		PerMacid:               services.Set(formUintPtr(c, "per_macid")),
		PerUniid:               services.Set(formUintPtr(c, "per_uniid")),
		PerBenefvinculos:       services.Set(formUintPtr(c, "per_benefvinculos")),
		PerBeneflimpieza:       services.Set(formUintPtr(c, "per_beneflimpieza")),
		PerBenefprogcuidadores: services.Set(formUintPtr(c, "per_benefprogcuidadores")),
	}

	if _, err := services.UpdatePersonaMayor(db.DB, id, update); err != nil {
		if errors.Is(err, services.ErrPersonaNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return renderEditError(c, id, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/personas/%d", id))
}

func renderEditError(c echo.Context, id uint, msg string) error {
	persona, err := services.GetPersonaMayor(db.DB, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "persona no encontrada")
	}
	cat, err := loadCatalogos()
	if err != nil {
		return err
	}
	return render(c, templates.PersonaForm(middleware.GetCurrentUser(c), persona, cat, msg))
}

// DeletePersonaHandler removes a persona; atenciones and memberships go with
// it.
func DeletePersonaHandler(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := services.DeletePersonaMayor(db.DB, id); err != nil {
		if errors.Is(err, services.ErrPersonaNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/personas/")
}

// Membership routes. Enrolling posts the target id in the "id" form field;
// removing carries both ids on the path.

func membresiaHandler(inscribir func(personaID, otroID uint) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		personaID, err := paramID(c)
		if err != nil {
			return err
		}
		otro := formUintPtr(c, "id")
		if otro == nil {
			return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/personas/%d", personaID))
		}
		if err := inscribir(personaID, *otro); err != nil {
			if errors.Is(err, services.ErrPersonaNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, err.Error())
			}
			return err
		}
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/personas/%d", personaID))
	}
}

func quitarHandler(param string, quitar func(personaID, otroID uint) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		personaID, err := paramID(c)
		if err != nil {
			return err
		}
		otroID, err := pathUint(c, param)
		if err != nil {
			return err
		}
		if err := quitar(personaID, otroID); err != nil {
			if errors.Is(err, services.ErrPersonaNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, err.Error())
			}
			return err
		}
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/personas/%d", personaID))
	}
}

func pathUint(c echo.Context, name string) (uint, error) {
	var v uint
	if _, err := fmt.Sscanf(c.Param(name), "%d", &v); err != nil || v == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "recurso no encontrado")
	}
	return v, nil
}

func InscribirActividadHandler(c echo.Context) error {
	return membresiaHandler(func(p, o uint) error { return services.InscribirActividad(db.DB, p, o) })(c)
}

func QuitarActividadHandler(c echo.Context) error {
	return quitarHandler("actividad_id", func(p, o uint) error { return services.QuitarActividad(db.DB, p, o) })(c)
}

func InscribirTallerHandler(c echo.Context) error {
	return membresiaHandler(func(p, o uint) error { return services.InscribirTaller(db.DB, p, o) })(c)
}

func QuitarTallerHandler(c echo.Context) error {
	return quitarHandler("taller_id", func(p, o uint) error { return services.QuitarTaller(db.DB, p, o) })(c)
}

func InscribirViajeHandler(c echo.Context) error {
	return membresiaHandler(func(p, o uint) error { return services.InscribirViaje(db.DB, p, o) })(c)
}

func QuitarViajeHandler(c echo.Context) error {
	return quitarHandler("viaje_id", func(p, o uint) error { return services.QuitarViaje(db.DB, p, o) })(c)
}

func InscribirOrganizacionHandler(c echo.Context) error {
	return membresiaHandler(func(p, o uint) error { return services.InscribirOrganizacion(db.DB, p, o) })(c)
}

func QuitarOrganizacionHandler(c echo.Context) error {
	return quitarHandler("organizacion_id", func(p, o uint) error { return services.QuitarOrganizacion(db.DB, p, o) })(c)
}
