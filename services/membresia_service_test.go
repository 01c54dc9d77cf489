package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMembresiasActividad(t *testing.T) {
	db := setupTestDB(t)
	persona := crearPersonaTest(t, db, "12345678-9", "María", "González", 70)

	actividad, err := CreateActividad(db, ActividadInput{ActActividad: "Paseo al parque", ActFecha: fechaDe(2025, 3, 1)})
	assert.NoError(t, err)

	assert.NoError(t, InscribirActividad(db, persona.ID, actividad.ID))

	cargada, err := GetPersonaMayor(db, persona.ID)
	assert.NoError(t, err)
	assert.Len(t, cargada.Actividades, 1)
	assert.Equal(t, "Paseo al parque", cargada.Actividades[0].ActActividad)

	assert.NoError(t, QuitarActividad(db, persona.ID, actividad.ID))
	cargada, err = GetPersonaMayor(db, persona.ID)
	assert.NoError(t, err)
	assert.Empty(t, cargada.Actividades)

	// The activity itself is untouched
	_, err = GetActividad(db, actividad.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, InscribirActividad(db, 9999, actividad.ID), ErrPersonaNotFound)
}

func TestMembresiasViajeYOrganizacion(t *testing.T) {
	db := setupTestDB(t)
	persona := crearPersonaTest(t, db, "12345678-9", "María", "González", 70)

	viaje, err := CreateViaje(db, ViajeInput{ViaViaje: "Viaje de verano", ViaDestino: "La Serena", ViaFecha: fechaDe(2025, 2, 1)})
	assert.NoError(t, err)
	org, err := CreateOrganizacion(db, "Club Adulto Mayor Esperanza")
	assert.NoError(t, err)

	assert.NoError(t, InscribirViaje(db, persona.ID, viaje.ID))
	assert.NoError(t, InscribirOrganizacion(db, persona.ID, org.ID))

	cargada, err := GetPersonaMayor(db, persona.ID)
	assert.NoError(t, err)
	assert.Len(t, cargada.Viajes, 1)
	assert.Len(t, cargada.Organizaciones, 1)

	assert.NoError(t, QuitarViaje(db, persona.ID, viaje.ID))
	assert.NoError(t, QuitarOrganizacion(db, persona.ID, org.ID))

	cargada, err = GetPersonaMayor(db, persona.ID)
	assert.NoError(t, err)
	assert.Empty(t, cargada.Viajes)
	assert.Empty(t, cargada.Organizaciones)
}
