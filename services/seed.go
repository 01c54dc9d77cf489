package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// SeedReferenceData populates the reference catalogs when they are empty.
// Idempotent: an already-seeded database is left untouched.
func SeedReferenceData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Genero{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check reference data: %w", err)
	}
	if count > 0 {
		return nil
	}

	generos := []models.Genero{
		{Genero: "Masculino"},
		{Genero: "Femenino"},
		{Genero: "Otro"},
	}
	nacionalidades := []models.Nacionalidad{
		{Nacionalidad: "Chilena"},
		{Nacionalidad: "Peruana"},
		{Nacionalidad: "Boliviana"},
		{Nacionalidad: "Argentina"},
		{Nacionalidad: "Otro"},
	}
	macrosectores := []models.Macrosector{
		{Macrosector: "Norte"},
		{Macrosector: "Sur"},
		{Macrosector: "Centro"},
		{Macrosector: "Oriente"},
		{Macrosector: "Poniente"},
	}
	unidadesVecinales := []models.UnidadVecinal{
		{Unidadvecinal: "UV-01 Centro"},
		{Unidadvecinal: "UV-02 Las Flores"},
		{Unidadvecinal: "UV-03 Villa España"},
		{Unidadvecinal: "UV-04 El Bosque"},
		{Unidadvecinal: "UV-05 San Pedro"},
	}
	especialidades := []models.Especialidad{
		{EspeEspecialidad: "Medicina General"},
		{EspeEspecialidad: "Kinesiología"},
		{EspeEspecialidad: "Trabajo Social"},
		{EspeEspecialidad: "Psicología"},
		{EspeEspecialidad: "Enfermería"},
	}
	vinculos := []models.Vinculo{
		{VinVinculo: "SI"},
		{VinVinculo: "NO"},
	}
	progCuidadores := []models.ProgramaCuidadores{
		{ProProcui: "SI"},
		{ProProcui: "NO"},
	}
	limpiezaCalef := []models.LimpiezaCalefaccion{
		{LimLimpieza: "SI"},
		{LimLimpieza: "NO"},
	}
	talleres := []models.Taller{
		{TalTaller: "Yoga para Adultos Mayores"},
		{TalTaller: "Manualidades"},
		{TalTaller: "Computación Básica"},
		{TalTaller: "Baile Entretenido"},
		{TalTaller: "Cocina Saludable"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&generos).Error; err != nil {
			return err
		}
		if err := tx.Create(&nacionalidades).Error; err != nil {
			return err
		}
		if err := tx.Create(&macrosectores).Error; err != nil {
			return err
		}
		if err := tx.Create(&unidadesVecinales).Error; err != nil {
			return err
		}
		if err := tx.Create(&especialidades).Error; err != nil {
			return err
		}
		if err := tx.Create(&vinculos).Error; err != nil {
			return err
		}
		if err := tx.Create(&progCuidadores).Error; err != nil {
			return err
		}
		if err := tx.Create(&limpiezaCalef).Error; err != nil {
			return err
		}
		if err := tx.Create(&talleres).Error; err != nil {
			return err
		}
		log.Println("Reference data seeded")
		return nil
	})
}
