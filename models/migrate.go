package models

import "gorm.io/gorm"

// All returns every model in migration-safe order (referenced tables first).
func All() []interface{} {
	return []interface{}{
		&User{},
		&Genero{},
		&Nacionalidad{},
		&Macrosector{},
		&UnidadVecinal{},
		&Vinculo{},
		&ProgramaCuidadores{},
		&LimpiezaCalefaccion{},
		&Especialidad{},
		&Especialista{},
		&PersonaMayor{},
		&Atencion{},
		&Actividad{},
		&Taller{},
		&Viaje{},
		&OrganizacionComunitaria{},
		&CentroComunitario{},
		&ActividadAsistencia{},
		&TallerAsistencia{},
		&ViajeAsistencia{},
		&MembresiaOrganizacion{},
	}
}

// SetupJoinTables registers the explicit association models so GORM uses the
// municipal join-table column names instead of its defaults. Must run before
// AutoMigrate.
func SetupJoinTables(db *gorm.DB) error {
	joins := []struct {
		model interface{}
		field string
		join  interface{}
	}{
		{&PersonaMayor{}, "Actividades", &ActividadAsistencia{}},
		{&PersonaMayor{}, "Talleres", &TallerAsistencia{}},
		{&PersonaMayor{}, "Viajes", &ViajeAsistencia{}},
		{&PersonaMayor{}, "Organizaciones", &MembresiaOrganizacion{}},
		{&Actividad{}, "Personas", &ActividadAsistencia{}},
		{&Taller{}, "Personas", &TallerAsistencia{}},
		{&Viaje{}, "Personas", &ViajeAsistencia{}},
		{&OrganizacionComunitaria{}, "Personas", &MembresiaOrganizacion{}},
	}

	for _, j := range joins {
		if err := db.SetupJoinTable(j.model, j.field, j.join); err != nil {
			return err
		}
	}
	return nil
}
