package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// Estadisticas aggregates the dashboard/report numbers: global totals plus
// person counts per genero and per macrosector (zero-filled for catalogs
// nobody belongs to).
type Estadisticas struct {
	TotalPersonas    int64
	TotalAtenciones  int64
	TotalActividades int64
	TotalViajes      int64

	PersonasPorGenero      map[string]int64
	PersonasPorMacrosector map[string]int64
}

type groupCount struct {
	Label string
	Total int64
}

// GetEstadisticasGenerales computes the report totals in one pass per table
func GetEstadisticasGenerales(db *gorm.DB) (*Estadisticas, error) {
	stats := &Estadisticas{
		PersonasPorGenero:      map[string]int64{},
		PersonasPorMacrosector: map[string]int64{},
	}

	if err := db.Model(&models.PersonaMayor{}).Count(&stats.TotalPersonas).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Atencion{}).Count(&stats.TotalAtenciones).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Actividad{}).Count(&stats.TotalActividades).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Viaje{}).Count(&stats.TotalViajes).Error; err != nil {
		return nil, err
	}

	// Outer join from the catalog side so empty groups show up as zero
	var porGenero []groupCount
	err := db.Model(&models.Genero{}).
		Select("gen_genero.genero AS label, COUNT(per_mayores.id) AS total").
		Joins("LEFT JOIN per_mayores ON per_mayores.per_genid = gen_genero.id").
		Group("gen_genero.id, gen_genero.genero").
		Scan(&porGenero).Error
	if err != nil {
		return nil, err
	}
	for _, g := range porGenero {
		stats.PersonasPorGenero[g.Label] = g.Total
	}

	var porMacrosector []groupCount
	err = db.Model(&models.Macrosector{}).
		Select("mac_macrosector.macrosector AS label, COUNT(per_mayores.id) AS total").
		Joins("LEFT JOIN per_mayores ON per_mayores.per_macid = mac_macrosector.id").
		Group("mac_macrosector.id, mac_macrosector.macrosector").
		Scan(&porMacrosector).Error
	if err != nil {
		return nil, err
	}
	for _, m := range porMacrosector {
		stats.PersonasPorMacrosector[m.Label] = m.Total
	}

	return stats, nil
}

// GetPersonasSinAtencionReciente returns persons whose latest atencion is
// older than dias days, together with those who never had one.
func GetPersonasSinAtencionReciente(db *gorm.DB, dias int) ([]models.PersonaMayor, error) {
	fechaLimite := time.Now().AddDate(0, 0, -dias)

	sub := db.Model(&models.Atencion{}).
		Select("at_perid, MAX(at_fecha) AS ultima_atencion").
		Group("at_perid")

	var personas []models.PersonaMayor
	err := db.Model(&models.PersonaMayor{}).
		Select("per_mayores.*").
		Joins("LEFT JOIN (?) ult ON per_mayores.id = ult.at_perid", sub).
		Where("ult.ultima_atencion < ? OR ult.ultima_atencion IS NULL", fechaLimite).
		Preload("Genero").
		Preload("Macrosector").
		Find(&personas).Error
	return personas, err
}

// BusquedaAvanzadaParams are the advanced-search criteria. Age bounds and the
// has-visit flag cannot be expressed as column filters (age derives from the
// birthdate and today) and are applied in a second in-memory pass.
type BusquedaAvanzadaParams struct {
	Nombre        string
	Apellido      string
	Rut           string
	EdadMin       *int
	EdadMax       *int
	MacrosectorID uint
	GeneroID      uint
	ConAtenciones *bool
	Skip          int
	Limit         int
}

// BuscarPersonasAvanzado runs the advanced registry search
func BuscarPersonasAvanzado(db *gorm.DB, p BusquedaAvanzadaParams) ([]models.PersonaMayor, error) {
	query := db.Model(&models.PersonaMayor{}).
		Preload("Genero").
		Preload("Macrosector")

	if p.Nombre != "" {
		query = query.Where("per_nombre LIKE ?", "%"+p.Nombre+"%")
	}
	if p.Apellido != "" {
		query = query.Where("per_apellido LIKE ?", "%"+p.Apellido+"%")
	}
	if p.Rut != "" {
		query = query.Where("per_rut LIKE ?", "%"+p.Rut+"%")
	}
	if p.MacrosectorID != 0 {
		query = query.Where("per_macid = ?", p.MacrosectorID)
	}
	if p.GeneroID != 0 {
		query = query.Where("per_genid = ?", p.GeneroID)
	}

	var personas []models.PersonaMayor
	if err := query.Order("id").Offset(p.Skip).Limit(p.Limit).Find(&personas).Error; err != nil {
		return nil, err
	}

	if p.EdadMin == nil && p.EdadMax == nil && p.ConAtenciones == nil {
		return personas, nil
	}

	resultado := make([]models.PersonaMayor, 0, len(personas))
	for _, persona := range personas {
		edad := Age(persona.PerBirthdate)
		if p.EdadMin != nil && edad < *p.EdadMin {
			continue
		}
		if p.EdadMax != nil && edad > *p.EdadMax {
			continue
		}
		if p.ConAtenciones != nil {
			var count int64
			if err := db.Model(&models.Atencion{}).Where("at_perid = ?", persona.ID).Count(&count).Error; err != nil {
				return nil, err
			}
			tiene := count > 0
			if *p.ConAtenciones != tiene {
				continue
			}
		}
		resultado = append(resultado, persona)
	}
	return resultado, nil
}

// ResumenPersona is one row of the per-person visit summary report
type ResumenPersona struct {
	ID              uint
	NombreCompleto  string
	Rut             string
	Edad            int
	Genero          string
	Macrosector     string
	TotalAtenciones int64
	UltimaAtencion  *time.Time
}

type resumenRow struct {
	ID              uint
	PerNombre       string
	PerApellido     string
	PerRut          string
	PerBirthdate    time.Time
	Genero          *string
	Macrosector     *string
	TotalAtenciones int64
	UltimaAtencion  *time.Time
}

// GetPersonasConResumen returns persons with their visit count and most
// recent visit date.
func GetPersonasConResumen(db *gorm.DB, skip, limit int) ([]ResumenPersona, error) {
	var rows []resumenRow
	err := db.Model(&models.PersonaMayor{}).
		Select(`per_mayores.id,
			per_mayores.per_nombre,
			per_mayores.per_apellido,
			per_mayores.per_rut,
			per_mayores.per_birthdate,
			gen_genero.genero AS genero,
			mac_macrosector.macrosector AS macrosector,
			COUNT(at_atenciones.id) AS total_atenciones,
			MAX(at_atenciones.at_fecha) AS ultima_atencion`).
		Joins("LEFT JOIN gen_genero ON gen_genero.id = per_mayores.per_genid").
		Joins("LEFT JOIN mac_macrosector ON mac_macrosector.id = per_mayores.per_macid").
		Joins("LEFT JOIN at_atenciones ON at_atenciones.at_perid = per_mayores.id").
		Group("per_mayores.id, per_mayores.per_nombre, per_mayores.per_apellido, per_mayores.per_rut, per_mayores.per_birthdate, gen_genero.genero, mac_macrosector.macrosector").
		Order("per_mayores.id").
		Offset(skip).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	resumen := make([]ResumenPersona, 0, len(rows))
	for _, r := range rows {
		item := ResumenPersona{
			ID:              r.ID,
			NombreCompleto:  r.PerNombre + " " + r.PerApellido,
			Rut:             r.PerRut,
			Edad:            Age(r.PerBirthdate),
			TotalAtenciones: r.TotalAtenciones,
			UltimaAtencion:  r.UltimaAtencion,
		}
		if r.Genero != nil {
			item.Genero = *r.Genero
		}
		if r.Macrosector != nil {
			item.Macrosector = *r.Macrosector
		}
		resumen = append(resumen, item)
	}
	return resumen, nil
}

// GetReporteAtencionesMensual returns the atenciones of one calendar month in
// chronological order.
func GetReporteAtencionesMensual(db *gorm.DB, anio, mes int) ([]models.Atencion, error) {
	inicio := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	fin := inicio.AddDate(0, 1, 0)

	var atenciones []models.Atencion
	err := db.Preload("Persona").
		Preload("Especialista").
		Where("at_fecha >= ? AND at_fecha < ?", inicio, fin).
		Order("at_fecha").
		Find(&atenciones).Error
	return atenciones, err
}
