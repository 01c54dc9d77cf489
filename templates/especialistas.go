package templates

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
)

func opcionesEspecialidades(es []models.Especialidad) []opcion {
	out := make([]opcion, 0, len(es))
	for _, e := range es {
		out = append(out, opcion{ID: e.ID, Label: e.EspeEspecialidad})
	}
	return out
}

func EspecialistasList(user *models.User, especialistas []models.Especialista, especialidades []models.Especialidad, f services.EspecialistaFilters, page, totalPages int) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Especialistas</h1>")
	b.WriteString("<p><a href=\"/especialistas/crear\">Registrar especialista</a></p>")

	b.WriteString("<form method=\"get\" action=\"/especialistas/\">")
	fmt.Fprintf(&b, "<input type=\"text\" name=\"search\" value=\"%s\" placeholder=\"Nombre, apellido o RUT\"> ", esc(f.Search))
	b.WriteString(selectField("especialidad_id", "Especialidad", opcionesEspecialidades(especialidades), uintPtrIfSet(f.EspecialidadID)))
	b.WriteString("<button type=\"submit\">Filtrar</button></form>")

	rows := make([][]string, 0, len(especialistas))
	for _, e := range especialistas {
		espe := "--"
		if e.Especialidad != nil {
			espe = esc(e.Especialidad.EspeEspecialidad)
		}
		rows = append(rows, []string{
			esc(e.NombreCompleto()),
			esc(e.EspRut),
			espe,
			accionesFila("/especialistas", e.ID),
		})
	}
	b.WriteString(tabla([]string{"Nombre", "RUT", "Especialidad", ""}, rows))

	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.EspecialidadID != 0 {
		q.Set("especialidad_id", strconv.FormatUint(uint64(f.EspecialidadID), 10))
	}
	b.WriteString(paginacion("/especialistas/", page, totalPages, q))

	return Layout("Especialistas", user, b.String())
}

func EspecialistaForm(user *models.User, e *models.Especialista, especialidades []models.Especialidad, errMsg string) templ.Component {
	var b strings.Builder
	action := "/especialistas/crear"
	titulo := "Registrar especialista"
	rut, nombre, apellido := "", "", ""
	var espeid *uint
	if e != nil {
		action = fmt.Sprintf("/especialistas/%d/editar", e.ID)
		titulo = "Editar especialista"
		rut, nombre, apellido, espeid = e.EspRut, e.EspNombre, e.EspApellido, e.EspEspeid
	}

	fmt.Fprintf(&b, "<h1>%s</h1>", esc(titulo))
	b.WriteString(errorBox(errMsg))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\">", action)
	b.WriteString(textField("esp_rut", "RUT", rut))
	b.WriteString(textField("esp_nombre", "Nombre", nombre))
	b.WriteString(textField("esp_apellido", "Apellido", apellido))
	b.WriteString(selectField("esp_espeid", "Especialidad", opcionesEspecialidades(especialidades), espeid))
	b.WriteString(submit("Guardar"))
	b.WriteString("</form>")
	return Layout(titulo, user, b.String())
}
