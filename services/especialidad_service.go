package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// ErrEspecialidadNotFound indicates the requested especialidad does not exist
var ErrEspecialidadNotFound = errors.New("especialidad no encontrada")

// ErrEspecialidadRequerida rejects a blank specialty name
var ErrEspecialidadRequerida = errors.New("El nombre de la especialidad es obligatorio")

func especialidadQuery(db *gorm.DB, search string) *gorm.DB {
	query := db.Model(&models.Especialidad{})
	if search != "" {
		query = query.Where("espe_especialidad LIKE ?", "%"+search+"%")
	}
	return query
}

// GetEspecialidad retrieves one especialidad
func GetEspecialidad(db *gorm.DB, id uint) (*models.Especialidad, error) {
	var especialidad models.Especialidad
	if err := db.First(&especialidad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEspecialidadNotFound
		}
		return nil, err
	}
	return &especialidad, nil
}

// GetEspecialidades returns a page of especialidades in primary-key order
func GetEspecialidades(db *gorm.DB, search string, skip, limit int) ([]models.Especialidad, error) {
	var especialidades []models.Especialidad
	err := especialidadQuery(db, search).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&especialidades).Error
	return especialidades, err
}

// CountEspecialidades returns total rows matching the same predicate as
// GetEspecialidades
func CountEspecialidades(db *gorm.DB, search string) (int64, error) {
	var total int64
	err := especialidadQuery(db, search).Count(&total).Error
	return total, err
}

// CreateEspecialidad persists a new especialidad
func CreateEspecialidad(db *gorm.DB, nombre string) (*models.Especialidad, error) {
	nombre = SanitizeText(nombre)
	if nombre == "" {
		return nil, ErrEspecialidadRequerida
	}
	especialidad := &models.Especialidad{EspeEspecialidad: nombre}
	if err := db.Create(especialidad).Error; err != nil {
		return nil, fmt.Errorf("Error al crear especialidad: %w", err)
	}
	return especialidad, nil
}

// EspecialidadUpdate is the partial-update shape for especialidades
type EspecialidadUpdate struct {
	EspeEspecialidad Optional[string]
}

// UpdateEspecialidad applies the supplied fields and persists
func UpdateEspecialidad(db *gorm.DB, id uint, update EspecialidadUpdate) (*models.Especialidad, error) {
	var especialidad models.Especialidad
	if err := db.First(&especialidad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEspecialidadNotFound
		}
		return nil, err
	}

	if update.EspeEspecialidad.Valid {
		nombre := SanitizeText(update.EspeEspecialidad.Value)
		if nombre == "" {
			return nil, ErrEspecialidadRequerida
		}
		especialidad.EspeEspecialidad = nombre
	}

	if err := db.Save(&especialidad).Error; err != nil {
		return nil, fmt.Errorf("Error al actualizar especialidad: %w", err)
	}
	return &especialidad, nil
}

// DeleteEspecialidad removes an especialidad; especialistas keep their rows
// with the reference set to null.
func DeleteEspecialidad(db *gorm.DB, id uint) (*models.Especialidad, error) {
	var especialidad models.Especialidad
	if err := db.First(&especialidad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEspecialidadNotFound
		}
		return nil, err
	}
	if err := db.Delete(&especialidad).Error; err != nil {
		return nil, fmt.Errorf("Error al eliminar especialidad: %w", err)
	}
	return &especialidad, nil
}
