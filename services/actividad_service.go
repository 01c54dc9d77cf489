package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// ErrActividadNotFound indicates the requested actividad does not exist
var ErrActividadNotFound = errors.New("actividad no encontrada")

// ErrActividadRequerida rejects a blank activity name
var ErrActividadRequerida = errors.New("El nombre de la actividad es obligatorio")

func actividadQuery(db *gorm.DB, search string) *gorm.DB {
	query := db.Model(&models.Actividad{})
	if search != "" {
		query = query.Where("act_actividad LIKE ?", "%"+search+"%")
	}
	return query
}

// GetActividad retrieves one actividad
func GetActividad(db *gorm.DB, id uint) (*models.Actividad, error) {
	var actividad models.Actividad
	if err := db.First(&actividad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActividadNotFound
		}
		return nil, err
	}
	return &actividad, nil
}

// GetActividades returns a page of actividades ordered by date descending
func GetActividades(db *gorm.DB, search string, skip, limit int) ([]models.Actividad, error) {
	var actividades []models.Actividad
	err := actividadQuery(db, search).
		Order("act_fecha DESC").
		Offset(skip).
		Limit(limit).
		Find(&actividades).Error
	return actividades, err
}

// CountActividades returns total rows matching the same predicate as
// GetActividades
func CountActividades(db *gorm.DB, search string) (int64, error) {
	var total int64
	err := actividadQuery(db, search).Count(&total).Error
	return total, err
}

// ActividadInput is the validated shape for creating an actividad
type ActividadInput struct {
	ActActividad string
	ActFecha     time.Time
}

// CreateActividad persists a new actividad
func CreateActividad(db *gorm.DB, input ActividadInput) (*models.Actividad, error) {
	nombre := SanitizeText(input.ActActividad)
	if nombre == "" {
		return nil, ErrActividadRequerida
	}
	actividad := &models.Actividad{
		ActActividad: nombre,
		ActFecha:     input.ActFecha,
	}
	if err := db.Create(actividad).Error; err != nil {
		return nil, fmt.Errorf("Error al crear actividad: %w", err)
	}
	return actividad, nil
}

// ActividadUpdate is the partial-update shape for actividades
type ActividadUpdate struct {
	ActActividad Optional[string]
	ActFecha     Optional[time.Time]
}

// UpdateActividad applies the supplied fields and persists
func UpdateActividad(db *gorm.DB, id uint, update ActividadUpdate) (*models.Actividad, error) {
	var actividad models.Actividad
	if err := db.First(&actividad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActividadNotFound
		}
		return nil, err
	}

	if update.ActActividad.Valid {
		nombre := SanitizeText(update.ActActividad.Value)
		if nombre == "" {
			return nil, ErrActividadRequerida
		}
		actividad.ActActividad = nombre
	}
	if update.ActFecha.Valid {
		actividad.ActFecha = update.ActFecha.Value
	}

	if err := db.Save(&actividad).Error; err != nil {
		return nil, fmt.Errorf("Error al actualizar actividad: %w", err)
	}
	return &actividad, nil
}

// DeleteActividad removes an actividad and its attendance rows
func DeleteActividad(db *gorm.DB, id uint) (*models.Actividad, error) {
	var actividad models.Actividad
	if err := db.First(&actividad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActividadNotFound
		}
		return nil, err
	}
	if err := db.Delete(&actividad).Error; err != nil {
		return nil, fmt.Errorf("Error al eliminar actividad: %w", err)
	}
	return &actividad, nil
}
