package templates

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// The remaining catalogs share one simple list/form layout.

func listaSimple(user *models.User, titulo, base, search string, headers []string, rows [][]string, page, totalPages int) templ.Component {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(titulo))
	fmt.Fprintf(&b, "<p><a href=\"%s/crear\">Agregar</a></p>", base)
	b.WriteString(searchForm(base+"/", search))
	b.WriteString(tabla(headers, rows))

	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	b.WriteString(paginacion(base+"/", page, totalPages, q))
	return Layout(titulo, user, b.String())
}

func ActividadesList(user *models.User, actividades []models.Actividad, search string, page, totalPages int) templ.Component {
	rows := make([][]string, 0, len(actividades))
	for _, a := range actividades {
		rows = append(rows, []string{esc(a.ActActividad), fecha(a.ActFecha), accionesFila("/actividades", a.ID)})
	}
	return listaSimple(user, "Actividades", "/actividades", search, []string{"Actividad", "Fecha", ""}, rows, page, totalPages)
}

func ActividadForm(user *models.User, a *models.Actividad, errMsg string) templ.Component {
	var b strings.Builder
	action, titulo, nombre := "/actividades/crear", "Agregar actividad", ""
	var f *time.Time
	if a != nil {
		action = fmt.Sprintf("/actividades/%d/editar", a.ID)
		titulo = "Editar actividad"
		nombre = a.ActActividad
		f = &a.ActFecha
	}
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(titulo))
	b.WriteString(errorBox(errMsg))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\">", action)
	b.WriteString(textField("act_actividad", "Actividad", nombre))
	b.WriteString(dateField("act_fecha", "Fecha", f))
	b.WriteString(submit("Guardar"))
	b.WriteString("</form>")
	return Layout(titulo, user, b.String())
}

func TalleresList(user *models.User, talleres []models.Taller, search string, page, totalPages int) templ.Component {
	rows := make([][]string, 0, len(talleres))
	for _, t := range talleres {
		rows = append(rows, []string{esc(t.TalTaller), accionesFila("/talleres", t.ID)})
	}
	return listaSimple(user, "Talleres", "/talleres", search, []string{"Taller", ""}, rows, page, totalPages)
}

func TallerForm(user *models.User, t *models.Taller, errMsg string) templ.Component {
	var b strings.Builder
	action, titulo, nombre := "/talleres/crear", "Agregar taller", ""
	if t != nil {
		action = fmt.Sprintf("/talleres/%d/editar", t.ID)
		titulo = "Editar taller"
		nombre = t.TalTaller
	}
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(titulo))
	b.WriteString(errorBox(errMsg))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\">", action)
	b.WriteString(textField("tal_taller", "Taller", nombre))
	b.WriteString(submit("Guardar"))
	b.WriteString("</form>")
	return Layout(titulo, user, b.String())
}

func ViajesList(user *models.User, viajes []models.Viaje, search string, page, totalPages int) templ.Component {
	rows := make([][]string, 0, len(viajes))
	for _, v := range viajes {
		rows = append(rows, []string{esc(v.ViaViaje), esc(v.ViaDestino), fecha(v.ViaFecha), accionesFila("/viajes", v.ID)})
	}
	return listaSimple(user, "Viajes", "/viajes", search, []string{"Viaje", "Destino", "Fecha", ""}, rows, page, totalPages)
}

func ViajeForm(user *models.User, v *models.Viaje, errMsg string) templ.Component {
	var b strings.Builder
	action, titulo, nombre, destino := "/viajes/crear", "Agregar viaje", "", ""
	var f *time.Time
	if v != nil {
		action = fmt.Sprintf("/viajes/%d/editar", v.ID)
		titulo = "Editar viaje"
		nombre, destino = v.ViaViaje, v.ViaDestino
		f = &v.ViaFecha
	}
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(titulo))
	b.WriteString(errorBox(errMsg))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\">", action)
	b.WriteString(textField("via_viaje", "Viaje", nombre))
	b.WriteString(textField("via_destino", "Destino", destino))
	b.WriteString(dateField("via_fecha", "Fecha", f))
	b.WriteString(submit("Guardar"))
	b.WriteString("</form>")
	return Layout(titulo, user, b.String())
}

func OrganizacionesList(user *models.User, organizaciones []models.OrganizacionComunitaria, search string, page, totalPages int) templ.Component {
	rows := make([][]string, 0, len(organizaciones))
	for _, o := range organizaciones {
		rows = append(rows, []string{esc(o.OrgComunitaria), accionesFila("/organizaciones", o.ID)})
	}
	return listaSimple(user, "Organizaciones comunitarias", "/organizaciones", search, []string{"Organización", ""}, rows, page, totalPages)
}

func OrganizacionForm(user *models.User, o *models.OrganizacionComunitaria, errMsg string) templ.Component {
	var b strings.Builder
	action, titulo, nombre := "/organizaciones/crear", "Agregar organización", ""
	if o != nil {
		action = fmt.Sprintf("/organizaciones/%d/editar", o.ID)
		titulo = "Editar organización"
		nombre = o.OrgComunitaria
	}
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(titulo))
	b.WriteString(errorBox(errMsg))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\">", action)
	b.WriteString(textField("org_comunitaria", "Organización", nombre))
	b.WriteString(submit("Guardar"))
	b.WriteString("</form>")
	return Layout(titulo, user, b.String())
}

func EspecialidadesList(user *models.User, especialidades []models.Especialidad, search string, page, totalPages int) templ.Component {
	rows := make([][]string, 0, len(especialidades))
	for _, e := range especialidades {
		rows = append(rows, []string{esc(e.EspeEspecialidad), accionesFila("/especialidades", e.ID)})
	}
	return listaSimple(user, "Especialidades", "/especialidades", search, []string{"Especialidad", ""}, rows, page, totalPages)
}

func EspecialidadForm(user *models.User, e *models.Especialidad, errMsg string) templ.Component {
	var b strings.Builder
	action, titulo, nombre := "/especialidades/crear", "Agregar especialidad", ""
	if e != nil {
		action = fmt.Sprintf("/especialidades/%d/editar", e.ID)
		titulo = "Editar especialidad"
		nombre = e.EspeEspecialidad
	}
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(titulo))
	b.WriteString(errorBox(errMsg))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\">", action)
	b.WriteString(textField("espe_especialidad", "Especialidad", nombre))
	b.WriteString(submit("Guardar"))
	b.WriteString("</form>")
	return Layout(titulo, user, b.String())
}
