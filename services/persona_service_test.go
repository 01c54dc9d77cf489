package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ryoumen0412/sistema-dpm/models"
)

func TestCreatePersonaMayor(t *testing.T) {
	db := setupTestDB(t)

	direccion := "Av. Principal 123"
	persona, err := CreatePersonaMayor(db, PersonaMayorInput{
		PerRut:       "12345678-k",
		PerNombre:    "  María  ",
		PerApellido:  "González",
		PerBirthdate: birthdateConEdad(70),
		PerDireccion: &direccion,
	})
	assert.NoError(t, err)
	assert.NotZero(t, persona.ID)
	assert.Equal(t, "12345678-K", persona.PerRut)
	assert.Equal(t, "María", persona.PerNombre)
	assert.Equal(t, "María González", persona.NombreCompleto())

	cargada, err := GetPersonaMayorByRut(db, "12345678-K")
	assert.NoError(t, err)
	assert.Equal(t, persona.ID, cargada.ID)
}

func TestCreatePersonaMayorValidation(t *testing.T) {
	db := setupTestDB(t)

	// RUT too short
	_, err := CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "123", PerNombre: "Ana", PerApellido: "Rojas",
		PerBirthdate: birthdateConEdad(70),
	})
	assert.ErrorIs(t, err, ErrRutInvalido)

	// Under the minimum age: 59 fails, 60 passes
	_, err = CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "11111111-1", PerNombre: "Ana", PerApellido: "Rojas",
		PerBirthdate: birthdateConEdad(59),
	})
	assert.ErrorIs(t, err, ErrEdadInsuficiente)

	_, err = CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "11111111-1", PerNombre: "Ana", PerApellido: "Rojas",
		PerBirthdate: birthdateConEdad(60),
	})
	assert.NoError(t, err)

	// Future birthdate
	_, err = CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "22222222-2", PerNombre: "Ana", PerApellido: "Rojas",
		PerBirthdate: time.Now().AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrFechaFutura)

	// Blank name
	_, err = CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "33333333-3", PerNombre: "   ", PerApellido: "Rojas",
		PerBirthdate: birthdateConEdad(70),
	})
	assert.ErrorIs(t, err, ErrNombreRequerido)
}

func TestCreatePersonaMayorDuplicateRut(t *testing.T) {
	db := setupTestDB(t)

	crearPersonaTest(t, db, "12345678-9", "María", "González", 70)
	_, err := CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "12345678-9", PerNombre: "Otra", PerApellido: "Persona",
		PerBirthdate: birthdateConEdad(65),
	})
	assert.Error(t, err)
}

func TestGetPersonasMayoresSearchAndFilters(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, SeedReferenceData(db))

	generos, _ := GetGeneros(db)
	macros, _ := GetMacrosectores(db)

	p1, err := CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "11111111-1", PerNombre: "María", PerApellido: "González",
		PerBirthdate: birthdateConEdad(70),
		PerGenid:     &generos[0].ID, PerMacid: &macros[0].ID,
	})
	assert.NoError(t, err)
	_, err = CreatePersonaMayor(db, PersonaMayorInput{
		PerRut: "22222222-2", PerNombre: "Pedro", PerApellido: "Soto",
		PerBirthdate: birthdateConEdad(80),
		PerGenid:     &generos[1].ID, PerMacid: &macros[1].ID,
	})
	assert.NoError(t, err)

	// Case-insensitive search over nombre
	encontradas, err := GetPersonasMayores(db, PersonaFilters{Search: "maría"}, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, encontradas, 1)
	assert.Equal(t, p1.ID, encontradas[0].ID)

	// Search by RUT fragment
	encontradas, err = GetPersonasMayores(db, PersonaFilters{Search: "2222"}, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, encontradas, 1)
	assert.Equal(t, "Pedro", encontradas[0].PerNombre)

	// Filter by genero and macrosector combined
	encontradas, err = GetPersonasMayores(db, PersonaFilters{GeneroID: generos[0].ID, MacrosectorID: macros[0].ID}, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, encontradas, 1)
	assert.Equal(t, p1.ID, encontradas[0].ID)

	// No matches
	encontradas, err = GetPersonasMayores(db, PersonaFilters{Search: "inexistente"}, 0, 10)
	assert.NoError(t, err)
	assert.Empty(t, encontradas)
}

func TestGetPersonasMayoresPagination(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 25; i++ {
		crearPersonaTest(t, db, ruts(i), "Persona", "Numero", 65+i%20)
	}

	total, err := CountPersonasMayores(db, PersonaFilters{})
	assert.NoError(t, err)
	assert.EqualValues(t, 25, total)

	// Pages tile the set without overlap
	vistos := make(map[uint]bool)
	for skip := 0; skip < 25; skip += 10 {
		pagina, err := GetPersonasMayores(db, PersonaFilters{}, skip, 10)
		assert.NoError(t, err)
		for _, p := range pagina {
			assert.False(t, vistos[p.ID])
			vistos[p.ID] = true
		}
	}
	assert.Len(t, vistos, 25)

	// Past the end
	pagina, err := GetPersonasMayores(db, PersonaFilters{}, 30, 10)
	assert.NoError(t, err)
	assert.Empty(t, pagina)
}

func ruts(i int) string {
	return string(rune('A'+i%26)) + "1234567"
}

func TestUpdatePersonaMayorPartial(t *testing.T) {
	db := setupTestDB(t)
	persona := crearPersonaTest(t, db, "12345678-9", "María", "González", 70)

	// Empty update changes nothing
	igual, err := UpdatePersonaMayor(db, persona.ID, PersonaMayorUpdate{})
	assert.NoError(t, err)
	assert.Equal(t, "María", igual.PerNombre)
	assert.Equal(t, "12345678-9", igual.PerRut)

	// Only the supplied field changes
	cambiada, err := UpdatePersonaMayor(db, persona.ID, PersonaMayorUpdate{
		PerApellido: Set("Pérez"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "María", cambiada.PerNombre)
	assert.Equal(t, "Pérez", cambiada.PerApellido)

	// Invalid birthdate is rejected on update too
	_, err = UpdatePersonaMayor(db, persona.ID, PersonaMayorUpdate{
		PerBirthdate: Set(time.Now().AddDate(0, 0, 1)),
	})
	assert.ErrorIs(t, err, ErrFechaFutura)

	// A reference can be cleared by supplying nil
	cambiada, err = UpdatePersonaMayor(db, persona.ID, PersonaMayorUpdate{
		PerGenid: Set[*uint](nil),
	})
	assert.NoError(t, err)
	assert.Nil(t, cambiada.PerGenid)

	_, err = UpdatePersonaMayor(db, 9999, PersonaMayorUpdate{})
	assert.ErrorIs(t, err, ErrPersonaNotFound)
}

func TestDeletePersonaMayorCascades(t *testing.T) {
	db := setupTestDB(t)

	persona := crearPersonaTest(t, db, "12345678-9", "María", "González", 70)
	especialista, err := CreateEspecialista(db, EspecialistaInput{
		EspRut: "98765432-1", EspNombre: "Carla", EspApellido: "Muñoz",
	})
	assert.NoError(t, err)

	_, err = CreateAtencion(db, AtencionInput{
		AtPerid: persona.ID, AtEspid: &especialista.ID, AtFecha: fechaDe(2025, 1, 10),
	})
	assert.NoError(t, err)

	taller, err := CreateTaller(db, "Gimnasia")
	assert.NoError(t, err)
	assert.NoError(t, InscribirTaller(db, persona.ID, taller.ID))

	_, err = DeletePersonaMayor(db, persona.ID)
	assert.NoError(t, err)

	_, err = GetPersonaMayor(db, persona.ID)
	assert.ErrorIs(t, err, ErrPersonaNotFound)

	// Dependent rows went with the persona
	var atenciones int64
	db.Model(&models.Atencion{}).Count(&atenciones)
	assert.EqualValues(t, 0, atenciones)

	var inscripciones int64
	db.Model(&models.TallerAsistencia{}).Count(&inscripciones)
	assert.EqualValues(t, 0, inscripciones)

	// The specialist and the workshop survive
	_, err = GetEspecialista(db, especialista.ID)
	assert.NoError(t, err)
	_, err = GetTaller(db, taller.ID)
	assert.NoError(t, err)

	_, err = DeletePersonaMayor(db, persona.ID)
	assert.ErrorIs(t, err, ErrPersonaNotFound)
}
