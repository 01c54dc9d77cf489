package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
)

func Dashboard(user *models.User, stats *services.Estadisticas, recientes []models.PersonaMayor, atenciones []models.Atencion, sinAtencion int) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Panel general</h1>")

	fmt.Fprintf(&b, "<ul><li>Personas mayores registradas: %d</li>", stats.TotalPersonas)
	fmt.Fprintf(&b, "<li>Atenciones realizadas: %d</li>", stats.TotalAtenciones)
	fmt.Fprintf(&b, "<li>Actividades: %d</li>", stats.TotalActividades)
	fmt.Fprintf(&b, "<li>Viajes: %d</li>", stats.TotalViajes)
	fmt.Fprintf(&b, "<li>Personas sin atención en los últimos 30 días: %d</li></ul>", sinAtencion)

	b.WriteString("<h2>Últimos registros</h2>")
	rows := make([][]string, 0, len(recientes))
	for _, p := range recientes {
		rows = append(rows, []string{
			fmt.Sprintf("<a href=\"/personas/%d\">%s</a>", p.ID, esc(p.NombreCompleto())),
			esc(p.PerRut),
			fecha(p.PerBirthdate),
		})
	}
	b.WriteString(tabla([]string{"Nombre", "RUT", "Fecha de nacimiento"}, rows))

	b.WriteString("<h2>Últimas atenciones</h2>")
	rows = rows[:0]
	for _, a := range atenciones {
		esp := "--"
		if a.Especialista != nil {
			esp = esc(a.Especialista.NombreCompleto())
		}
		rows = append(rows, []string{
			fecha(a.AtFecha),
			esc(a.Persona.NombreCompleto()),
			esp,
		})
	}
	b.WriteString(tabla([]string{"Fecha", "Persona", "Especialista"}, rows))

	return Layout("Panel general", user, b.String())
}
