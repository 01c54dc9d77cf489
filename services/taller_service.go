package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// ErrTallerNotFound indicates the requested taller does not exist
var ErrTallerNotFound = errors.New("taller no encontrado")

// ErrTallerRequerido rejects a blank workshop name
var ErrTallerRequerido = errors.New("El nombre del taller es obligatorio")

func tallerQuery(db *gorm.DB, search string) *gorm.DB {
	query := db.Model(&models.Taller{})
	if search != "" {
		query = query.Where("tal_taller LIKE ?", "%"+search+"%")
	}
	return query
}

// GetTaller retrieves one taller
func GetTaller(db *gorm.DB, id uint) (*models.Taller, error) {
	var taller models.Taller
	if err := db.First(&taller, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTallerNotFound
		}
		return nil, err
	}
	return &taller, nil
}

// GetTalleres returns a page of talleres in primary-key order
func GetTalleres(db *gorm.DB, search string, skip, limit int) ([]models.Taller, error) {
	var talleres []models.Taller
	err := tallerQuery(db, search).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&talleres).Error
	return talleres, err
}

// CountTalleres returns total rows matching the same predicate as GetTalleres
func CountTalleres(db *gorm.DB, search string) (int64, error) {
	var total int64
	err := tallerQuery(db, search).Count(&total).Error
	return total, err
}

// CreateTaller persists a new taller
func CreateTaller(db *gorm.DB, nombre string) (*models.Taller, error) {
	nombre = SanitizeText(nombre)
	if nombre == "" {
		return nil, ErrTallerRequerido
	}
	taller := &models.Taller{TalTaller: nombre}
	if err := db.Create(taller).Error; err != nil {
		return nil, fmt.Errorf("Error al crear taller: %w", err)
	}
	return taller, nil
}

// TallerUpdate is the partial-update shape for talleres
type TallerUpdate struct {
	TalTaller Optional[string]
}

// UpdateTaller applies the supplied fields and persists
func UpdateTaller(db *gorm.DB, id uint, update TallerUpdate) (*models.Taller, error) {
	var taller models.Taller
	if err := db.First(&taller, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTallerNotFound
		}
		return nil, err
	}

	if update.TalTaller.Valid {
		nombre := SanitizeText(update.TalTaller.Value)
		if nombre == "" {
			return nil, ErrTallerRequerido
		}
		taller.TalTaller = nombre
	}

	if err := db.Save(&taller).Error; err != nil {
		return nil, fmt.Errorf("Error al actualizar taller: %w", err)
	}
	return &taller, nil
}

// DeleteTaller removes a taller and its enrollment rows
func DeleteTaller(db *gorm.DB, id uint) (*models.Taller, error) {
	var taller models.Taller
	if err := db.First(&taller, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTallerNotFound
		}
		return nil, err
	}
	if err := db.Delete(&taller).Error; err != nil {
		return nil, fmt.Errorf("Error al eliminar taller: %w", err)
	}
	return &taller, nil
}
