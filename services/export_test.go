package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportPersonasExcel(t *testing.T) {
	db := setupTestDB(t)

	persona := crearPersonaTest(t, db, "12345678-9", "María", "González", 70)
	_, err := CreateAtencion(db, AtencionInput{AtPerid: persona.ID, AtFecha: fechaDe(2025, 1, 10)})
	assert.NoError(t, err)

	archivo, err := ExportPersonasExcel(db)
	assert.NoError(t, err)

	filas, err := archivo.GetRows("Registro")
	assert.NoError(t, err)
	assert.Len(t, filas, 2)

	assert.Equal(t, "RUT", filas[0][1])
	assert.Equal(t, "12345678-9", filas[1][1])
	assert.Contains(t, filas[1][2], "María")
}
