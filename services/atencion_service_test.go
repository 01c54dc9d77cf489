package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAtencion(t *testing.T) {
	db := setupTestDB(t)
	persona := crearPersonaTest(t, db, "12345678-9", "María", "González", 70)

	atencion, err := CreateAtencion(db, AtencionInput{
		AtPerid: persona.ID,
		AtFecha: fechaDe(2025, 1, 10),
	})
	assert.NoError(t, err)
	assert.NotZero(t, atencion.ID)
	assert.Nil(t, atencion.AtEspid)

	// Without a persona
	_, err = CreateAtencion(db, AtencionInput{AtFecha: fechaDe(2025, 1, 10)})
	assert.ErrorIs(t, err, ErrPersonaRequerida)
}

func TestGetAtencionesFilters(t *testing.T) {
	db := setupTestDB(t)

	p1 := crearPersonaTest(t, db, "11111111-1", "María", "González", 70)
	p2 := crearPersonaTest(t, db, "22222222-2", "Pedro", "Soto", 75)
	esp, err := CreateEspecialista(db, EspecialistaInput{
		EspRut: "98765432-1", EspNombre: "Carla", EspApellido: "Muñoz",
	})
	assert.NoError(t, err)

	fechas := []struct {
		perid uint
		espid *uint
		dia   int
	}{
		{p1.ID, &esp.ID, 5},
		{p1.ID, nil, 15},
		{p2.ID, &esp.ID, 25},
	}
	for _, f := range fechas {
		_, err := CreateAtencion(db, AtencionInput{AtPerid: f.perid, AtEspid: f.espid, AtFecha: fechaDe(2025, 1, f.dia)})
		assert.NoError(t, err)
	}

	// By persona
	atenciones, err := GetAtenciones(db, AtencionFilters{PersonaID: p1.ID}, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, atenciones, 2)

	// Ordered most recent first
	assert.True(t, atenciones[0].AtFecha.After(atenciones[1].AtFecha))

	// By especialista
	atenciones, err = GetAtenciones(db, AtencionFilters{EspecialistaID: esp.ID}, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, atenciones, 2)

	// Date window, inclusive on both ends
	desde := fechaDe(2025, 1, 15)
	hasta := fechaDe(2025, 1, 25)
	atenciones, err = GetAtenciones(db, AtencionFilters{FechaDesde: &desde, FechaHasta: &hasta}, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, atenciones, 2)

	total, err := CountAtenciones(db, AtencionFilters{PersonaID: p1.ID})
	assert.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestUpdateAtencion(t *testing.T) {
	db := setupTestDB(t)
	persona := crearPersonaTest(t, db, "12345678-9", "María", "González", 70)
	atencion, err := CreateAtencion(db, AtencionInput{AtPerid: persona.ID, AtFecha: fechaDe(2025, 1, 10)})
	assert.NoError(t, err)

	cambiada, err := UpdateAtencion(db, atencion.ID, AtencionUpdate{AtFecha: Set(fechaDe(2025, 2, 1))})
	assert.NoError(t, err)
	assert.Equal(t, fechaDe(2025, 2, 1), cambiada.AtFecha)
	assert.Equal(t, persona.ID, cambiada.AtPerid)

	_, err = UpdateAtencion(db, 9999, AtencionUpdate{})
	assert.ErrorIs(t, err, ErrAtencionNotFound)
}

func TestDeleteEspecialistaKeepsAtencion(t *testing.T) {
	db := setupTestDB(t)
	persona := crearPersonaTest(t, db, "12345678-9", "María", "González", 70)
	esp, err := CreateEspecialista(db, EspecialistaInput{
		EspRut: "98765432-1", EspNombre: "Carla", EspApellido: "Muñoz",
	})
	assert.NoError(t, err)

	atencion, err := CreateAtencion(db, AtencionInput{AtPerid: persona.ID, AtEspid: &esp.ID, AtFecha: fechaDe(2025, 1, 10)})
	assert.NoError(t, err)

	_, err = DeleteEspecialista(db, esp.ID)
	assert.NoError(t, err)

	// The visit remains, with the reference cleared
	cargada, err := GetAtencion(db, atencion.ID)
	assert.NoError(t, err)
	assert.Nil(t, cargada.AtEspid)
}
