package services

import (
	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// Reference catalogs used to populate form selects. No CRUD surface: they are
// seeded once and read in full.

// GetGeneros returns every genero
func GetGeneros(db *gorm.DB) ([]models.Genero, error) {
	var generos []models.Genero
	err := db.Order("id").Find(&generos).Error
	return generos, err
}

// GetNacionalidades returns every nacionalidad
func GetNacionalidades(db *gorm.DB) ([]models.Nacionalidad, error) {
	var nacionalidades []models.Nacionalidad
	err := db.Order("id").Find(&nacionalidades).Error
	return nacionalidades, err
}

// GetMacrosectores returns every macrosector
func GetMacrosectores(db *gorm.DB) ([]models.Macrosector, error) {
	var macrosectores []models.Macrosector
	err := db.Order("id").Find(&macrosectores).Error
	return macrosectores, err
}

// GetUnidadesVecinales returns every unidad vecinal
func GetUnidadesVecinales(db *gorm.DB) ([]models.UnidadVecinal, error) {
	var unidades []models.UnidadVecinal
	err := db.Order("id").Find(&unidades).Error
	return unidades, err
}

// GetVinculos returns the vinculos benefit catalog
func GetVinculos(db *gorm.DB) ([]models.Vinculo, error) {
	var vinculos []models.Vinculo
	err := db.Order("id").Find(&vinculos).Error
	return vinculos, err
}

// GetProgramasCuidadores returns the caregiver-program benefit catalog
func GetProgramasCuidadores(db *gorm.DB) ([]models.ProgramaCuidadores, error) {
	var programas []models.ProgramaCuidadores
	err := db.Order("id").Find(&programas).Error
	return programas, err
}

// GetLimpiezasCalefaccion returns the cleaning/heating benefit catalog
func GetLimpiezasCalefaccion(db *gorm.DB) ([]models.LimpiezaCalefaccion, error) {
	var limpiezas []models.LimpiezaCalefaccion
	err := db.Order("id").Find(&limpiezas).Error
	return limpiezas, err
}
