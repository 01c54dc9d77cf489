package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEstadisticasGenerales(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, SeedReferenceData(db))

	generos, _ := GetGeneros(db)
	macros, _ := GetMacrosectores(db)

	_, err := CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "11111111-1", PerNombre: "María", PerApellido: "González",
		PerBirthdate: birthdateConEdad(70),
		PerGenid:     &generos[1].ID, PerMacid: &macros[0].ID,
	})
	assert.NoError(t, err)
	p2, err := CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "22222222-2", PerNombre: "Pedro", PerApellido: "Soto",
		PerBirthdate: birthdateConEdad(75),
		PerGenid:     &generos[1].ID,
	})
	assert.NoError(t, err)

	_, err = CreateAtencion(db, AtencionInput{AtPerid: p2.ID, AtFecha: fechaDe(2025, 1, 10)})
	assert.NoError(t, err)

	stats, err := GetEstadisticasGenerales(db)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalPersonas)
	assert.EqualValues(t, 1, stats.TotalAtenciones)

	// Group counts, zero-filled for empty catalog rows
	assert.EqualValues(t, 2, stats.PersonasPorGenero[generos[1].Genero])
	assert.EqualValues(t, 0, stats.PersonasPorGenero[generos[0].Genero])
	assert.Len(t, stats.PersonasPorGenero, len(generos))

	assert.EqualValues(t, 1, stats.PersonasPorMacrosector[macros[0].Macrosector])
	assert.EqualValues(t, 0, stats.PersonasPorMacrosector[macros[1].Macrosector])
}

func TestGetPersonasSinAtencionReciente(t *testing.T) {
	db := setupTestDB(t)

	conReciente := crearPersonaTest(t, db, "11111111-1", "María", "González", 70)
	conAntigua := crearPersonaTest(t, db, "22222222-2", "Pedro", "Soto", 75)
	sinAtencion := crearPersonaTest(t, db, "33333333-3", "Rosa", "Díaz", 80)

	hoy := time.Now()
	_, err := CreateAtencion(db, AtencionInput{AtPerid: conReciente.ID, AtFecha: hoy.AddDate(0, 0, -5)})
	assert.NoError(t, err)
	// An old visit followed by nothing in the window
	_, err = CreateAtencion(db, AtencionInput{AtPerid: conAntigua.ID, AtFecha: hoy.AddDate(0, 0, -120)})
	assert.NoError(t, err)

	personas, err := GetPersonasSinAtencionReciente(db, 90)
	assert.NoError(t, err)

	ids := make(map[uint]bool)
	for _, p := range personas {
		ids[p.ID] = true
	}
	assert.False(t, ids[conReciente.ID])
	assert.True(t, ids[conAntigua.ID])
	assert.True(t, ids[sinAtencion.ID])
}

func TestBuscarPersonasAvanzado(t *testing.T) {
	db := setupTestDB(t)

	joven := crearPersonaTest(t, db, "11111111-1", "María", "González", 62)
	mayor := crearPersonaTest(t, db, "22222222-2", "María", "Soto", 85)
	otro := crearPersonaTest(t, db, "33333333-3", "Pedro", "Díaz", 70)

	_, err := CreateAtencion(db, AtencionInput{AtPerid: mayor.ID, AtFecha: fechaDe(2025, 1, 10)})
	assert.NoError(t, err)

	// Name filter
	personas, err := BuscarPersonasAvanzado(db, BusquedaAvanzadaParams{Nombre: "maría", Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, personas, 2)

	// Age window
	min, max := 80, 90
	personas, err = BuscarPersonasAvanzado(db, BusquedaAvanzadaParams{EdadMin: &min, EdadMax: &max, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, personas, 1)
	assert.Equal(t, mayor.ID, personas[0].ID)

	// Con atenciones
	si := true
	personas, err = BuscarPersonasAvanzado(db, BusquedaAvanzadaParams{ConAtenciones: &si, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, personas, 1)
	assert.Equal(t, mayor.ID, personas[0].ID)

	no := false
	personas, err = BuscarPersonasAvanzado(db, BusquedaAvanzadaParams{ConAtenciones: &no, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, personas, 2)

	// Combined
	personas, err = BuscarPersonasAvanzado(db, BusquedaAvanzadaParams{Nombre: "maría", ConAtenciones: &no, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, personas, 1)
	assert.Equal(t, joven.ID, personas[0].ID)

	_ = otro
}

func TestGetPersonasConResumen(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, SeedReferenceData(db))

	generos, _ := GetGeneros(db)
	persona, err := CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "11111111-1", PerNombre: "María", PerApellido: "González",
		PerBirthdate: birthdateConEdad(70),
		PerGenid:     &generos[1].ID,
	})
	assert.NoError(t, err)

	_, err = CreateAtencion(db, AtencionInput{AtPerid: persona.ID, AtFecha: fechaDe(2024, 6, 1)})
	assert.NoError(t, err)
	_, err = CreateAtencion(db, AtencionInput{AtPerid: persona.ID, AtFecha: fechaDe(2025, 1, 15)})
	assert.NoError(t, err)

	resumen, err := GetPersonasConResumen(db, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, resumen, 1)

	r := resumen[0]
	assert.Equal(t, "María González", r.NombreCompleto)
	assert.Equal(t, 70, r.Edad)
	assert.Equal(t, generos[1].Genero, r.Genero)
	assert.EqualValues(t, 2, r.TotalAtenciones)
	assert.NotNil(t, r.UltimaAtencion)
	assert.Equal(t, 2025, r.UltimaAtencion.Year())
}

func TestGetReporteAtencionesMensual(t *testing.T) {
	db := setupTestDB(t)
	persona := crearPersonaTest(t, db, "11111111-1", "María", "González", 70)

	for _, f := range []time.Time{
		fechaDe(2025, 1, 1),
		fechaDe(2025, 1, 31),
		fechaDe(2025, 2, 1),
		fechaDe(2024, 12, 31),
	} {
		_, err := CreateAtencion(db, AtencionInput{AtPerid: persona.ID, AtFecha: f})
		assert.NoError(t, err)
	}

	atenciones, err := GetReporteAtencionesMensual(db, 2025, 1)
	assert.NoError(t, err)
	assert.Len(t, atenciones, 2)

	// Chronological within the month
	assert.True(t, atenciones[0].AtFecha.Before(atenciones[1].AtFecha))
}
