package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// ErrEspecialistaNotFound indicates the requested especialista does not exist
var ErrEspecialistaNotFound = errors.New("especialista no encontrado")

// EspecialistaFilters holds filter options for querying especialistas
type EspecialistaFilters struct {
	Search         string
	EspecialidadID uint
}

func especialistaQuery(db *gorm.DB, f EspecialistaFilters) *gorm.DB {
	query := db.Model(&models.Especialista{})
	if f.Search != "" {
		kw := "%" + f.Search + "%"
		query = query.Where(
			db.Where("esp_nombre LIKE ?", kw).
				Or("esp_apellido LIKE ?", kw).
				Or("esp_rut LIKE ?", kw),
		)
	}
	if f.EspecialidadID != 0 {
		query = query.Where("esp_espeid = ?", f.EspecialidadID)
	}
	return query
}

// GetEspecialista retrieves one especialista with its especialidad preloaded
func GetEspecialista(db *gorm.DB, id uint) (*models.Especialista, error) {
	var especialista models.Especialista
	err := db.Preload("Especialidad").First(&especialista, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEspecialistaNotFound
		}
		return nil, err
	}
	return &especialista, nil
}

// GetEspecialistas returns a page of especialistas in primary-key order
func GetEspecialistas(db *gorm.DB, f EspecialistaFilters, skip, limit int) ([]models.Especialista, error) {
	var especialistas []models.Especialista
	err := especialistaQuery(db, f).
		Preload("Especialidad").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&especialistas).Error
	return especialistas, err
}

// CountEspecialistas returns total rows matching the same predicate as
// GetEspecialistas
func CountEspecialistas(db *gorm.DB, f EspecialistaFilters) (int64, error) {
	var total int64
	err := especialistaQuery(db, f).Count(&total).Error
	return total, err
}

// EspecialistaInput is the validated shape for creating an especialista
type EspecialistaInput struct {
	EspRut      string
	EspNombre   string
	EspApellido string
	EspEspeid   *uint
}

// CreateEspecialista validates the input and persists a new especialista
func CreateEspecialista(db *gorm.DB, input EspecialistaInput) (*models.Especialista, error) {
	rut, err := NormalizeRut(input.EspRut)
	if err != nil {
		return nil, err
	}
	nombre := SanitizeText(input.EspNombre)
	apellido := SanitizeText(input.EspApellido)
	if nombre == "" || apellido == "" {
		return nil, ErrNombreRequerido
	}

	especialista := &models.Especialista{
		EspRut:      rut,
		EspNombre:   nombre,
		EspApellido: apellido,
		EspEspeid:   input.EspEspeid,
	}
	if err := db.Create(especialista).Error; err != nil {
		return nil, fmt.Errorf("Error al crear especialista: %w", err)
	}
	return especialista, nil
}

// EspecialistaUpdate is the partial-update shape for especialistas
type EspecialistaUpdate struct {
	EspRut      Optional[string]
	EspNombre   Optional[string]
	EspApellido Optional[string]
	EspEspeid   Optional[*uint]
}

// UpdateEspecialista applies the supplied fields and persists
func UpdateEspecialista(db *gorm.DB, id uint, update EspecialistaUpdate) (*models.Especialista, error) {
	var especialista models.Especialista
	if err := db.First(&especialista, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEspecialistaNotFound
		}
		return nil, err
	}

	if update.EspRut.Valid {
		rut, err := NormalizeRut(update.EspRut.Value)
		if err != nil {
			return nil, err
		}
		especialista.EspRut = rut
	}
	if update.EspNombre.Valid {
		if nombre := SanitizeText(update.EspNombre.Value); nombre != "" {
			especialista.EspNombre = nombre
		} else {
			return nil, ErrNombreRequerido
		}
	}
	if update.EspApellido.Valid {
		if apellido := SanitizeText(update.EspApellido.Value); apellido != "" {
			especialista.EspApellido = apellido
		} else {
			return nil, ErrNombreRequerido
		}
	}
	if update.EspEspeid.Valid {
		especialista.EspEspeid = update.EspEspeid.Value
	}

	if err := db.Save(&especialista).Error; err != nil {
		return nil, fmt.Errorf("Error al actualizar especialista: %w", err)
	}
	return &especialista, nil
}

// DeleteEspecialista removes an especialista; their atenciones keep the row
// with the reference set to null.
func DeleteEspecialista(db *gorm.DB, id uint) (*models.Especialista, error) {
	var especialista models.Especialista
	if err := db.First(&especialista, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEspecialistaNotFound
		}
		return nil, err
	}
	if err := db.Delete(&especialista).Error; err != nil {
		return nil, fmt.Errorf("Error al eliminar especialista: %w", err)
	}
	return &especialista, nil
}
