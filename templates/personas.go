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

// Catalogos bundles the lookup tables every persona form needs
type Catalogos struct {
	Generos             []models.Genero
	Nacionalidades      []models.Nacionalidad
	Macrosectores       []models.Macrosector
	UnidadesVecinales   []models.UnidadVecinal
	Vinculos            []models.Vinculo
	ProgramasCuidadores []models.ProgramaCuidadores
	Limpiezas           []models.LimpiezaCalefaccion
}

func opcionesGeneros(gs []models.Genero) []opcion {
	out := make([]opcion, 0, len(gs))
	for _, g := range gs {
		out = append(out, opcion{ID: g.ID, Label: g.Genero})
	}
	return out
}

func opcionesMacrosectores(ms []models.Macrosector) []opcion {
	out := make([]opcion, 0, len(ms))
	for _, m := range ms {
		out = append(out, opcion{ID: m.ID, Label: m.Macrosector})
	}
	return out
}

// PersonasList renders the paginated registry with the search and filter bar
func PersonasList(user *models.User, personas []models.PersonaMayor, cat Catalogos, f services.PersonaFilters, page, totalPages int, total int64) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Personas mayores</h1>")
	b.WriteString("<p><a href=\"/personas/crear\">Registrar persona</a></p>")

	b.WriteString("<form method=\"get\" action=\"/personas/\">")
	fmt.Fprintf(&b, "<input type=\"text\" name=\"search\" value=\"%s\" placeholder=\"Nombre, apellido o RUT\"> ", esc(f.Search))
	b.WriteString(selectField("genero_id", "Género", opcionesGeneros(cat.Generos), uintPtrIfSet(f.GeneroID)))
	b.WriteString(selectField("macrosector_id", "Macrosector", opcionesMacrosectores(cat.Macrosectores), uintPtrIfSet(f.MacrosectorID)))
	b.WriteString("<button type=\"submit\">Filtrar</button></form>")

	fmt.Fprintf(&b, "<p>%d personas registradas</p>", total)

	rows := make([][]string, 0, len(personas))
	for _, p := range personas {
		genero := "--"
		if p.Genero != nil {
			genero = esc(p.Genero.Genero)
		}
		macro := "--"
		if p.Macrosector != nil {
			macro = esc(p.Macrosector.Macrosector)
		}
		rows = append(rows, []string{
			fmt.Sprintf("<a href=\"/personas/%d\">%s</a>", p.ID, esc(p.NombreCompleto())),
			esc(p.PerRut),
			strconv.Itoa(services.Age(p.PerBirthdate)),
			genero,
			macro,
			accionesFila("/personas", p.ID),
		})
	}
	b.WriteString(tabla([]string{"Nombre", "RUT", "Edad", "Género", "Macrosector", ""}, rows))

	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.GeneroID != 0 {
		q.Set("genero_id", strconv.FormatUint(uint64(f.GeneroID), 10))
	}
	if f.MacrosectorID != 0 {
		q.Set("macrosector_id", strconv.FormatUint(uint64(f.MacrosectorID), 10))
	}
	b.WriteString(paginacion("/personas/", page, totalPages, q))

	return Layout("Personas mayores", user, b.String())
}

func uintPtrIfSet(v uint) *uint {
	if v == 0 {
		return nil
	}
	return &v
}

// PersonaForm renders both the create and the edit form; persona is nil on
// create.
func PersonaForm(user *models.User, persona *models.PersonaMayor, cat Catalogos, errMsg string) templ.Component {
	var b strings.Builder
	action := "/personas/crear"
	titulo := "Registrar persona"
	rut, nombre, apellido, direccion := "", "", "", ""
	var birthdate *time.Time
	if persona != nil {
		action = fmt.Sprintf("/personas/%d/editar", persona.ID)
		titulo = "Editar persona"
		rut = persona.PerRut
		nombre = persona.PerNombre
		apellido = persona.PerApellido
		if persona.PerDireccion != nil {
			direccion = *persona.PerDireccion
		}
		birthdate = &persona.PerBirthdate
	}

	fmt.Fprintf(&b, "<h1>%s</h1>", esc(titulo))
	b.WriteString(errorBox(errMsg))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\">", action)
	b.WriteString(textField("per_rut", "RUT", rut))
	b.WriteString(textField("per_nombre", "Nombre", nombre))
	b.WriteString(textField("per_apellido", "Apellido", apellido))
	b.WriteString(dateField("per_birthdate", "Fecha de nacimiento", birthdate))
	b.WriteString(textField("per_direccion", "Dirección", direccion))

	var genid, nacid, macid, uniid, vinid, proid, limid *uint
	if persona != nil {
		genid, nacid, macid, uniid = persona.PerGenid, persona.PerNacid, persona.PerMacid, persona.PerUniid
		vinid, proid, limid = persona.PerBenefvinculos, persona.PerBenefprogcuidadores, persona.PerBeneflimpieza
	}
	b.WriteString(selectField("per_genid", "Género", opcionesGeneros(cat.Generos), genid))

	nacs := make([]opcion, 0, len(cat.Nacionalidades))
	for _, n := range cat.Nacionalidades {
		nacs = append(nacs, opcion{ID: n.ID, Label: n.Nacionalidad})
	}
	b.WriteString(selectField("per_nacid", "Nacionalidad", nacs, nacid))
	b.WriteString(selectField("per_macid", "Macrosector", opcionesMacrosectores(cat.Macrosectores), macid))

	unis := make([]opcion, 0, len(cat.UnidadesVecinales))
	for _, u := range cat.UnidadesVecinales {
		unis = append(unis, opcion{ID: u.ID, Label: u.Unidadvecinal})
	}
	b.WriteString(selectField("per_uniid", "Unidad vecinal", unis, uniid))

	vins := make([]opcion, 0, len(cat.Vinculos))
	for _, v := range cat.Vinculos {
		vins = append(vins, opcion{ID: v.ID, Label: v.VinVinculo})
	}
	b.WriteString(selectField("per_benefvinculos", "Beneficio Vínculos", vins, vinid))

	pros := make([]opcion, 0, len(cat.ProgramasCuidadores))
	for _, p := range cat.ProgramasCuidadores {
		pros = append(pros, opcion{ID: p.ID, Label: p.ProProcui})
	}
	b.WriteString(selectField("per_benefprogcuidadores", "Programa cuidadores", pros, proid))

	lims := make([]opcion, 0, len(cat.Limpiezas))
	for _, l := range cat.Limpiezas {
		lims = append(lims, opcion{ID: l.ID, Label: l.LimLimpieza})
	}
	b.WriteString(selectField("per_beneflimpieza", "Limpieza y calefacción", lims, limid))

	b.WriteString(submit("Guardar"))
	b.WriteString("</form>")
	return Layout(titulo, user, b.String())
}

// PersonaDetail renders the full card: data, visits, and the four membership
// blocks with their enroll selects.
func PersonaDetail(user *models.User, p *models.PersonaMayor, atenciones []models.Atencion,
	actividades []models.Actividad, talleres []models.Taller, viajes []models.Viaje,
	organizaciones []models.OrganizacionComunitaria) templ.Component {

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(p.NombreCompleto()))
	fmt.Fprintf(&b, "<p><a href=\"/personas/%d/editar\">Editar</a></p>", p.ID)

	fmt.Fprintf(&b, "<ul><li>RUT: %s</li>", esc(p.PerRut))
	fmt.Fprintf(&b, "<li>Fecha de nacimiento: %s (%d años)</li>", fecha(p.PerBirthdate), services.Age(p.PerBirthdate))
	if p.PerDireccion != nil {
		fmt.Fprintf(&b, "<li>Dirección: %s</li>", esc(*p.PerDireccion))
	}
	if p.Genero != nil {
		fmt.Fprintf(&b, "<li>Género: %s</li>", esc(p.Genero.Genero))
	}
	if p.Nacionalidad != nil {
		fmt.Fprintf(&b, "<li>Nacionalidad: %s</li>", esc(p.Nacionalidad.Nacionalidad))
	}
	if p.Macrosector != nil {
		fmt.Fprintf(&b, "<li>Macrosector: %s</li>", esc(p.Macrosector.Macrosector))
	}
	if p.UnidadVecinal != nil {
		fmt.Fprintf(&b, "<li>Unidad vecinal: %s</li>", esc(p.UnidadVecinal.Unidadvecinal))
	}
	if p.BeneficioVinculos != nil {
		fmt.Fprintf(&b, "<li>Beneficio Vínculos: %s</li>", esc(p.BeneficioVinculos.VinVinculo))
	}
	if p.BeneficioProgCuidadores != nil {
		fmt.Fprintf(&b, "<li>Programa cuidadores: %s</li>", esc(p.BeneficioProgCuidadores.ProProcui))
	}
	if p.BeneficioLimpieza != nil {
		fmt.Fprintf(&b, "<li>Limpieza y calefacción: %s</li>", esc(p.BeneficioLimpieza.LimLimpieza))
	}
	b.WriteString("</ul>")

	b.WriteString("<h2>Atenciones</h2>")
	fmt.Fprintf(&b, "<p><a href=\"/atenciones/crear?persona_id=%d\">Registrar atención</a></p>", p.ID)
	rows := make([][]string, 0, len(atenciones))
	for _, a := range atenciones {
		esp := "--"
		if a.Especialista != nil {
			esp = esc(a.Especialista.NombreCompleto())
		}
		rows = append(rows, []string{fecha(a.AtFecha), esp})
	}
	b.WriteString(tabla([]string{"Fecha", "Especialista"}, rows))

	b.WriteString(membresiaBlock("Actividades", p.ID, "actividades",
		func() ([]opcion, []membresiaItem) {
			inscritas := make(map[uint]bool, len(p.Actividades))
			items := make([]membresiaItem, 0, len(p.Actividades))
			for _, a := range p.Actividades {
				inscritas[a.ID] = true
				items = append(items, membresiaItem{ID: a.ID, Label: a.ActActividad + " (" + fecha(a.ActFecha) + ")"})
			}
			opts := make([]opcion, 0, len(actividades))
			for _, a := range actividades {
				if !inscritas[a.ID] {
					opts = append(opts, opcion{ID: a.ID, Label: a.ActActividad})
				}
			}
			return opts, items
		}))

	b.WriteString(membresiaBlock("Talleres", p.ID, "talleres",
		func() ([]opcion, []membresiaItem) {
			inscritos := make(map[uint]bool, len(p.Talleres))
			items := make([]membresiaItem, 0, len(p.Talleres))
			for _, t := range p.Talleres {
				inscritos[t.ID] = true
				items = append(items, membresiaItem{ID: t.ID, Label: t.TalTaller})
			}
			opts := make([]opcion, 0, len(talleres))
			for _, t := range talleres {
				if !inscritos[t.ID] {
					opts = append(opts, opcion{ID: t.ID, Label: t.TalTaller})
				}
			}
			return opts, items
		}))

	b.WriteString(membresiaBlock("Viajes", p.ID, "viajes",
		func() ([]opcion, []membresiaItem) {
			inscritos := make(map[uint]bool, len(p.Viajes))
			items := make([]membresiaItem, 0, len(p.Viajes))
			for _, v := range p.Viajes {
				inscritos[v.ID] = true
				items = append(items, membresiaItem{ID: v.ID, Label: v.ViaViaje + " - " + v.ViaDestino})
			}
			opts := make([]opcion, 0, len(viajes))
			for _, v := range viajes {
				if !inscritos[v.ID] {
					opts = append(opts, opcion{ID: v.ID, Label: v.ViaViaje + " - " + v.ViaDestino})
				}
			}
			return opts, items
		}))

	b.WriteString(membresiaBlock("Organizaciones", p.ID, "organizaciones",
		func() ([]opcion, []membresiaItem) {
			inscritas := make(map[uint]bool, len(p.Organizaciones))
			items := make([]membresiaItem, 0, len(p.Organizaciones))
			for _, o := range p.Organizaciones {
				inscritas[o.ID] = true
				items = append(items, membresiaItem{ID: o.ID, Label: o.OrgComunitaria})
			}
			opts := make([]opcion, 0, len(organizaciones))
			for _, o := range organizaciones {
				if !inscritas[o.ID] {
					opts = append(opts, opcion{ID: o.ID, Label: o.OrgComunitaria})
				}
			}
			return opts, items
		}))

	return Layout(p.NombreCompleto(), user, b.String())
}

type membresiaItem struct {
	ID    uint
	Label string
}

// membresiaBlock renders one association section: current memberships with a
// remove button each, plus the enroll select over the not-yet-enrolled rows.
func membresiaBlock(titulo string, personaID uint, ruta string, build func() ([]opcion, []membresiaItem)) string {
	opts, items := build()
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2><ul>", esc(titulo))
	for _, it := range items {
		fmt.Fprintf(&b, "<li>%s <form method=\"post\" action=\"/personas/%d/%s/%d/quitar\" style=\"display:inline\"><button type=\"submit\">Quitar</button></form></li>",
			esc(it.Label), personaID, ruta, it.ID)
	}
	b.WriteString("</ul>")
	if len(opts) > 0 {
		fmt.Fprintf(&b, "<form method=\"post\" action=\"/personas/%d/%s\">", personaID, ruta)
		b.WriteString(selectField("id", "Inscribir en", opts, nil))
		b.WriteString(submit("Inscribir"))
		b.WriteString("</form>")
	}
	return b.String()
}
