package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// The screens are intentionally plain: tables and forms with no styling
// pipeline. Views are built as templ components so handlers keep the usual
// Render contract.

func esc(s string) string {
	return templ.EscapeString(s)
}

func fecha(t time.Time) string {
	return t.Format("02-01-2006")
}

func component(body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	})
}

// Layout wraps a body in the shared HTML shell with the navigation bar
func Layout(title string, user *models.User, body string) templ.Component {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html lang=\"es\"><head><meta charset=\"utf-8\">")
	fmt.Fprintf(&b, "<title>%s</title></head><body>", esc(title))

	if user != nil {
		b.WriteString("<nav><a href=\"/\">Inicio</a> | <a href=\"/personas/\">Personas</a> | ")
		b.WriteString("<a href=\"/atenciones/\">Atenciones</a> | <a href=\"/especialistas/\">Especialistas</a> | ")
		b.WriteString("<a href=\"/especialidades/\">Especialidades</a> | <a href=\"/actividades/\">Actividades</a> | ")
		b.WriteString("<a href=\"/talleres/\">Talleres</a> | <a href=\"/viajes/\">Viajes</a> | ")
		b.WriteString("<a href=\"/organizaciones/\">Organizaciones</a> | <a href=\"/reportes/\">Reportes</a>")
		fmt.Fprintf(&b, " <form method=\"post\" action=\"/auth/logout\" style=\"display:inline\"><span>%s</span> <button type=\"submit\">Salir</button></form>", esc(user.Usr))
		b.WriteString("</nav><hr>")
	}

	b.WriteString(body)
	b.WriteString("</body></html>")
	return component(b.String())
}

func errorBox(msg string) string {
	if msg == "" {
		return ""
	}
	return fmt.Sprintf("<p class=\"error\">%s</p>", esc(msg))
}

func tabla(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("<table border=\"1\"><thead><tr>")
	for _, h := range headers {
		fmt.Fprintf(&b, "<th>%s</th>", esc(h))
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			// Cells may carry markup (action links) built by the views
			fmt.Fprintf(&b, "<td>%s</td>", cell)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// paginacion renders prev/next links preserving the current query
func paginacion(base string, page, totalPages int, query url.Values) string {
	if totalPages <= 1 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<p>")
	link := func(p int, label string) {
		q := url.Values{}
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		q.Set("page", fmt.Sprintf("%d", p))
		fmt.Fprintf(&b, "<a href=\"%s?%s\">%s</a> ", base, q.Encode(), esc(label))
	}
	if page > 1 {
		link(page-1, "Anterior")
	}
	fmt.Fprintf(&b, "Página %d de %d ", page, totalPages)
	if page < totalPages {
		link(page+1, "Siguiente")
	}
	b.WriteString("</p>")
	return b.String()
}

type opcion struct {
	ID    uint
	Label string
}

// selectField renders a select with a blank first option; selected may be nil
func selectField(name, label string, opciones []opcion, selected *uint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p><label>%s <select name=\"%s\"><option value=\"0\">--</option>", esc(label), esc(name))
	for _, o := range opciones {
		sel := ""
		if selected != nil && *selected == o.ID {
			sel = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%d\"%s>%s</option>", o.ID, sel, esc(o.Label))
	}
	b.WriteString("</select></label></p>")
	return b.String()
}

func textField(name, label, value string) string {
	return fmt.Sprintf("<p><label>%s <input type=\"text\" name=\"%s\" value=\"%s\"></label></p>",
		esc(label), esc(name), esc(value))
}

func dateField(name, label string, value *time.Time) string {
	v := ""
	if value != nil {
		v = value.Format("2006-01-02")
	}
	return fmt.Sprintf("<p><label>%s <input type=\"date\" name=\"%s\" value=\"%s\"></label></p>",
		esc(label), esc(name), v)
}

func submit(label string) string {
	return fmt.Sprintf("<p><button type=\"submit\">%s</button></p>", esc(label))
}

func accionesFila(base string, id uint) string {
	return fmt.Sprintf("<a href=\"%s/%d/editar\">Editar</a> <form method=\"post\" action=\"%s/%d/eliminar\" style=\"display:inline\"><button type=\"submit\">Eliminar</button></form>",
		base, id, base, id)
}

func searchForm(base, search string) string {
	return fmt.Sprintf("<form method=\"get\" action=\"%s\"><input type=\"text\" name=\"search\" value=\"%s\" placeholder=\"Buscar\"> <button type=\"submit\">Buscar</button></form>",
		base, esc(search))
}
