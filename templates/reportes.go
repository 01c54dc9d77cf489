package templates

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
)

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func ReportesMenu(user *models.User) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Reportes</h1><ul>")
	b.WriteString("<li><a href=\"/reportes/estadisticas\">Estadísticas generales</a></li>")
	b.WriteString("<li><a href=\"/reportes/personas-sin-atencion\">Personas sin atención reciente</a></li>")
	b.WriteString("<li><a href=\"/reportes/busqueda-avanzada\">Búsqueda avanzada</a></li>")
	b.WriteString("<li><a href=\"/reportes/atenciones-mensual\">Atenciones por mes</a></li>")
	b.WriteString("<li><a href=\"/reportes/exportar\">Exportar registro (Excel)</a></li>")
	b.WriteString("</ul>")
	return Layout("Reportes", user, b.String())
}

func Estadisticas(user *models.User, stats *services.Estadisticas, resumen []services.ResumenPersona) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Estadísticas generales</h1>")
	fmt.Fprintf(&b, "<ul><li>Personas mayores: %d</li>", stats.TotalPersonas)
	fmt.Fprintf(&b, "<li>Atenciones: %d</li>", stats.TotalAtenciones)
	fmt.Fprintf(&b, "<li>Actividades: %d</li>", stats.TotalActividades)
	fmt.Fprintf(&b, "<li>Viajes: %d</li></ul>", stats.TotalViajes)

	b.WriteString("<h2>Personas por género</h2>")
	rows := make([][]string, 0, len(stats.PersonasPorGenero))
	for _, label := range sortedKeys(stats.PersonasPorGenero) {
		rows = append(rows, []string{esc(label), strconv.FormatInt(stats.PersonasPorGenero[label], 10)})
	}
	b.WriteString(tabla([]string{"Género", "Personas"}, rows))

	b.WriteString("<h2>Personas por macrosector</h2>")
	rows = rows[:0]
	for _, label := range sortedKeys(stats.PersonasPorMacrosector) {
		rows = append(rows, []string{esc(label), strconv.FormatInt(stats.PersonasPorMacrosector[label], 10)})
	}
	b.WriteString(tabla([]string{"Macrosector", "Personas"}, rows))

	b.WriteString("<h2>Resumen por persona</h2>")
	rows = rows[:0]
	for _, r := range resumen {
		ultima := "--"
		if r.UltimaAtencion != nil {
			ultima = fecha(*r.UltimaAtencion)
		}
		rows = append(rows, []string{
			esc(r.NombreCompleto),
			esc(r.Rut),
			strconv.Itoa(r.Edad),
			esc(r.Genero),
			esc(r.Macrosector),
			strconv.FormatInt(r.TotalAtenciones, 10),
			ultima,
		})
	}
	b.WriteString(tabla([]string{"Nombre", "RUT", "Edad", "Género", "Macrosector", "Atenciones", "Última atención"}, rows))

	return Layout("Estadísticas generales", user, b.String())
}

func PersonasSinAtencion(user *models.User, personas []models.PersonaMayor, dias int) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Personas sin atención reciente</h1>")
	b.WriteString("<form method=\"get\" action=\"/reportes/personas-sin-atencion\">")
	fmt.Fprintf(&b, "<label>Días sin atención <input type=\"number\" name=\"dias\" value=\"%d\" min=\"1\"></label> ", dias)
	b.WriteString("<button type=\"submit\">Consultar</button></form>")

	fmt.Fprintf(&b, "<p>%d personas sin atención en los últimos %d días</p>", len(personas), dias)
	rows := make([][]string, 0, len(personas))
	for _, p := range personas {
		macro := "--"
		if p.Macrosector != nil {
			macro = esc(p.Macrosector.Macrosector)
		}
		rows = append(rows, []string{
			fmt.Sprintf("<a href=\"/personas/%d\">%s</a>", p.ID, esc(p.NombreCompleto())),
			esc(p.PerRut),
			macro,
		})
	}
	b.WriteString(tabla([]string{"Nombre", "RUT", "Macrosector"}, rows))
	return Layout("Personas sin atención reciente", user, b.String())
}

func BusquedaAvanzada(user *models.User, p services.BusquedaAvanzadaParams, personas []models.PersonaMayor, generos []models.Genero, macrosectores []models.Macrosector, buscado bool) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Búsqueda avanzada</h1>")

	edadMin, edadMax := "", ""
	if p.EdadMin != nil {
		edadMin = strconv.Itoa(*p.EdadMin)
	}
	if p.EdadMax != nil {
		edadMax = strconv.Itoa(*p.EdadMax)
	}

	b.WriteString("<form method=\"get\" action=\"/reportes/busqueda-avanzada\">")
	b.WriteString(textField("nombre", "Nombre", p.Nombre))
	b.WriteString(textField("apellido", "Apellido", p.Apellido))
	b.WriteString(textField("rut", "RUT", p.Rut))
	fmt.Fprintf(&b, "<p><label>Edad mínima <input type=\"number\" name=\"edad_min\" value=\"%s\"></label> ", edadMin)
	fmt.Fprintf(&b, "<label>Edad máxima <input type=\"number\" name=\"edad_max\" value=\"%s\"></label></p>", edadMax)
	b.WriteString(selectField("genero_id", "Género", opcionesGeneros(generos), uintPtrIfSet(p.GeneroID)))
	b.WriteString(selectField("macrosector_id", "Macrosector", opcionesMacrosectores(macrosectores), uintPtrIfSet(p.MacrosectorID)))

	conAt := ""
	if p.ConAtenciones != nil {
		if *p.ConAtenciones {
			conAt = "si"
		} else {
			conAt = "no"
		}
	}
	b.WriteString("<p><label>Con atenciones <select name=\"con_atenciones\">")
	for _, o := range []struct{ v, label string }{{"", "--"}, {"si", "Sí"}, {"no", "No"}} {
		sel := ""
		if o.v == conAt {
			sel = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>", o.v, sel, o.label)
	}
	b.WriteString("</select></label></p>")
	b.WriteString("<input type=\"hidden\" name=\"buscar\" value=\"1\">")
	b.WriteString(submit("Buscar"))
	b.WriteString("</form>")

	if buscado {
		fmt.Fprintf(&b, "<p>%d resultados</p>", len(personas))
		rows := make([][]string, 0, len(personas))
		for _, per := range personas {
			genero := "--"
			if per.Genero != nil {
				genero = esc(per.Genero.Genero)
			}
			rows = append(rows, []string{
				fmt.Sprintf("<a href=\"/personas/%d\">%s</a>", per.ID, esc(per.NombreCompleto())),
				esc(per.PerRut),
				strconv.Itoa(services.Age(per.PerBirthdate)),
				genero,
			})
		}
		b.WriteString(tabla([]string{"Nombre", "RUT", "Edad", "Género"}, rows))
	}
	return Layout("Búsqueda avanzada", user, b.String())
}

func AtencionesMensual(user *models.User, atenciones []models.Atencion, anio, mes int) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Atenciones por mes</h1>")
	b.WriteString("<form method=\"get\" action=\"/reportes/atenciones-mensual\">")
	fmt.Fprintf(&b, "<label>Año <input type=\"number\" name=\"anio\" value=\"%d\"></label> ", anio)
	fmt.Fprintf(&b, "<label>Mes <input type=\"number\" name=\"mes\" value=\"%d\" min=\"1\" max=\"12\"></label> ", mes)
	b.WriteString("<button type=\"submit\">Consultar</button></form>")

	fmt.Fprintf(&b, "<p>%d atenciones en %02d-%d</p>", len(atenciones), mes, anio)
	rows := make([][]string, 0, len(atenciones))
	for _, a := range atenciones {
		persona := "--"
		if a.Persona != nil {
			persona = esc(a.Persona.NombreCompleto())
		}
		esp := "--"
		if a.Especialista != nil {
			esp = esc(a.Especialista.NombreCompleto())
		}
		rows = append(rows, []string{fecha(a.AtFecha), persona, esp})
	}
	b.WriteString(tabla([]string{"Fecha", "Persona", "Especialista"}, rows))
	return Layout("Atenciones por mes", user, b.String())
}
