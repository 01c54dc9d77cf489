package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// ErrViajeNotFound indicates the requested viaje does not exist
var ErrViajeNotFound = errors.New("viaje no encontrado")

// ErrViajeRequerido rejects a trip without name or destination
var ErrViajeRequerido = errors.New("Nombre y destino del viaje son obligatorios")

func viajeQuery(db *gorm.DB, search string) *gorm.DB {
	query := db.Model(&models.Viaje{})
	if search != "" {
		kw := "%" + search + "%"
		query = query.Where(
			db.Where("via_viaje LIKE ?", kw).
				Or("via_destino LIKE ?", kw),
		)
	}
	return query
}

// GetViaje retrieves one viaje
func GetViaje(db *gorm.DB, id uint) (*models.Viaje, error) {
	var viaje models.Viaje
	if err := db.First(&viaje, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrViajeNotFound
		}
		return nil, err
	}
	return &viaje, nil
}

// GetViajes returns a page of viajes ordered by date descending
func GetViajes(db *gorm.DB, search string, skip, limit int) ([]models.Viaje, error) {
	var viajes []models.Viaje
	err := viajeQuery(db, search).
		Order("via_fecha DESC").
		Offset(skip).
		Limit(limit).
		Find(&viajes).Error
	return viajes, err
}

// CountViajes returns total rows matching the same predicate as GetViajes
func CountViajes(db *gorm.DB, search string) (int64, error) {
	var total int64
	err := viajeQuery(db, search).Count(&total).Error
	return total, err
}

// ViajeInput is the validated shape for creating a viaje
type ViajeInput struct {
	ViaViaje   string
	ViaDestino string
	ViaFecha   time.Time
}

// CreateViaje persists a new viaje
func CreateViaje(db *gorm.DB, input ViajeInput) (*models.Viaje, error) {
	nombre := SanitizeText(input.ViaViaje)
	destino := SanitizeText(input.ViaDestino)
	if nombre == "" || destino == "" {
		return nil, ErrViajeRequerido
	}
	viaje := &models.Viaje{
		ViaViaje:   nombre,
		ViaDestino: destino,
		ViaFecha:   input.ViaFecha,
	}
	if err := db.Create(viaje).Error; err != nil {
		return nil, fmt.Errorf("Error al crear viaje: %w", err)
	}
	return viaje, nil
}

// ViajeUpdate is the partial-update shape for viajes
type ViajeUpdate struct {
	ViaViaje   Optional[string]
	ViaDestino Optional[string]
	ViaFecha   Optional[time.Time]
}

// UpdateViaje applies the supplied fields and persists
func UpdateViaje(db *gorm.DB, id uint, update ViajeUpdate) (*models.Viaje, error) {
	var viaje models.Viaje
	if err := db.First(&viaje, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrViajeNotFound
		}
		return nil, err
	}

	if update.ViaViaje.Valid {
		nombre := SanitizeText(update.ViaViaje.Value)
		if nombre == "" {
			return nil, ErrViajeRequerido
		}
		viaje.ViaViaje = nombre
	}
	if update.ViaDestino.Valid {
		destino := SanitizeText(update.ViaDestino.Value)
		if destino == "" {
			return nil, ErrViajeRequerido
		}
		viaje.ViaDestino = destino
	}
	if update.ViaFecha.Valid {
		viaje.ViaFecha = update.ViaFecha.Value
	}

	if err := db.Save(&viaje).Error; err != nil {
		return nil, fmt.Errorf("Error al actualizar viaje: %w", err)
	}
	return &viaje, nil
}

// DeleteViaje removes a viaje and its attendance rows
func DeleteViaje(db *gorm.DB, id uint) (*models.Viaje, error) {
	var viaje models.Viaje
	if err := db.First(&viaje, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrViajeNotFound
		}
		return nil, err
	}
	if err := db.Delete(&viaje).Error; err != nil {
		return nil, fmt.Errorf("Error al eliminar viaje: %w", err)
	}
	return &viaje, nil
}
