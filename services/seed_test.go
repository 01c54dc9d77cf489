package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryoumen0412/sistema-dpm/models"
)

func TestSeedReferenceData(t *testing.T) {
	db := setupTestDB(t)

	assert.NoError(t, SeedReferenceData(db))

	generos, err := GetGeneros(db)
	assert.NoError(t, err)
	assert.Len(t, generos, 3)

	nacionalidades, err := GetNacionalidades(db)
	assert.NoError(t, err)
	assert.Len(t, nacionalidades, 5)

	macros, err := GetMacrosectores(db)
	assert.NoError(t, err)
	assert.Len(t, macros, 5)

	vinculos, err := GetVinculos(db)
	assert.NoError(t, err)
	assert.Len(t, vinculos, 2)
	assert.Equal(t, "SI", vinculos[0].VinVinculo)

	talleres, err := GetTalleres(db, "", 0, -1)
	assert.NoError(t, err)
	assert.Len(t, talleres, 5)

	// Running again does not duplicate anything
	assert.NoError(t, SeedReferenceData(db))
	var count int64
	db.Model(&models.Genero{}).Count(&count)
	assert.EqualValues(t, 3, count)
}
