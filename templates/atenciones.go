package templates

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
)

func AtencionesList(user *models.User, atenciones []models.Atencion, personas []models.PersonaMayor, especialistas []models.Especialista, f services.AtencionFilters, page, totalPages int) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Atenciones</h1>")
	b.WriteString("<p><a href=\"/atenciones/crear\">Registrar atención</a></p>")

	personaOpts := make([]opcion, 0, len(personas))
	for _, p := range personas {
		personaOpts = append(personaOpts, opcion{ID: p.ID, Label: p.NombreCompleto()})
	}
	espOpts := make([]opcion, 0, len(especialistas))
	for _, e := range especialistas {
		espOpts = append(espOpts, opcion{ID: e.ID, Label: e.NombreCompleto()})
	}

	b.WriteString("<form method=\"get\" action=\"/atenciones/\">")
	b.WriteString(selectField("persona_id", "Persona", personaOpts, uintPtrIfSet(f.PersonaID)))
	b.WriteString(selectField("especialista_id", "Especialista", espOpts, uintPtrIfSet(f.EspecialistaID)))
	b.WriteString(dateField("fecha_desde", "Desde", f.FechaDesde))
	b.WriteString(dateField("fecha_hasta", "Hasta", f.FechaHasta))
	b.WriteString("<button type=\"submit\">Filtrar</button></form>")

	rows := make([][]string, 0, len(atenciones))
	for _, a := range atenciones {
		persona := "--"
		if a.Persona != nil {
			persona = fmt.Sprintf("<a href=\"/personas/%d\">%s</a>", a.Persona.ID, esc(a.Persona.NombreCompleto()))
		}
		esp := "--"
		if a.Especialista != nil {
			esp = esc(a.Especialista.NombreCompleto())
		}
		rows = append(rows, []string{
			fecha(a.AtFecha),
			persona,
			esp,
			accionesFila("/atenciones", a.ID),
		})
	}
	b.WriteString(tabla([]string{"Fecha", "Persona", "Especialista", ""}, rows))

	q := url.Values{}
	if f.PersonaID != 0 {
		q.Set("persona_id", strconv.FormatUint(uint64(f.PersonaID), 10))
	}
	if f.EspecialistaID != 0 {
		q.Set("especialista_id", strconv.FormatUint(uint64(f.EspecialistaID), 10))
	}
	if f.FechaDesde != nil {
		q.Set("fecha_desde", f.FechaDesde.Format("2006-01-02"))
	}
	if f.FechaHasta != nil {
		q.Set("fecha_hasta", f.FechaHasta.Format("2006-01-02"))
	}
	b.WriteString(paginacion("/atenciones/", page, totalPages, q))

	return Layout("Atenciones", user, b.String())
}

func AtencionForm(user *models.User, a *models.Atencion, personas []models.PersonaMayor, especialistas []models.Especialista, preselectPersona uint, errMsg string) templ.Component {
	var b strings.Builder
	action := "/atenciones/crear"
	titulo := "Registrar atención"
	var perid, espid *uint
	var fechaAt *time.Time
	if a != nil {
		action = fmt.Sprintf("/atenciones/%d/editar", a.ID)
		titulo = "Editar atención"
		perid = &a.AtPerid
		espid = a.AtEspid
		fechaAt = &a.AtFecha
	} else if preselectPersona != 0 {
		perid = &preselectPersona
	}

	personaOpts := make([]opcion, 0, len(personas))
	for _, p := range personas {
		personaOpts = append(personaOpts, opcion{ID: p.ID, Label: p.NombreCompleto() + " (" + p.PerRut + ")"})
	}
	espOpts := make([]opcion, 0, len(especialistas))
	for _, e := range especialistas {
		espOpts = append(espOpts, opcion{ID: e.ID, Label: e.NombreCompleto()})
	}

	fmt.Fprintf(&b, "<h1>%s</h1>", esc(titulo))
	b.WriteString(errorBox(errMsg))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\">", action)
	b.WriteString(selectField("at_perid", "Persona", personaOpts, perid))
	b.WriteString(selectField("at_espid", "Especialista", espOpts, espid))
	b.WriteString(dateField("at_fecha", "Fecha", fechaAt))
	b.WriteString(submit("Guardar"))
	b.WriteString("</form>")
	return Layout(titulo, user, b.String())
}
