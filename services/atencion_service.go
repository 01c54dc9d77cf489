package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// ErrAtencionNotFound indicates the requested atencion does not exist
var ErrAtencionNotFound = errors.New("atención no encontrada")

// ErrPersonaRequerida rejects an atencion without a persona
var ErrPersonaRequerida = errors.New("La atención debe indicar una persona")

// AtencionFilters holds filter options for querying atenciones. All filters
// combine with AND.
type AtencionFilters struct {
	PersonaID      uint
	EspecialistaID uint
	FechaDesde     *time.Time
	FechaHasta     *time.Time
}

func atencionQuery(db *gorm.DB, f AtencionFilters) *gorm.DB {
	query := db.Model(&models.Atencion{})
	if f.PersonaID != 0 {
		query = query.Where("at_perid = ?", f.PersonaID)
	}
	if f.EspecialistaID != 0 {
		query = query.Where("at_espid = ?", f.EspecialistaID)
	}
	if f.FechaDesde != nil {
		query = query.Where("at_fecha >= ?", f.FechaDesde)
	}
	if f.FechaHasta != nil {
		query = query.Where("at_fecha <= ?", f.FechaHasta)
	}
	return query
}

// GetAtencion retrieves one atencion with persona and especialista preloaded
func GetAtencion(db *gorm.DB, id uint) (*models.Atencion, error) {
	var atencion models.Atencion
	err := db.Preload("Persona").Preload("Especialista").First(&atencion, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAtencionNotFound
		}
		return nil, err
	}
	return &atencion, nil
}

// GetAtenciones returns a page of atenciones ordered by date descending
func GetAtenciones(db *gorm.DB, f AtencionFilters, skip, limit int) ([]models.Atencion, error) {
	var atenciones []models.Atencion
	err := atencionQuery(db, f).
		Preload("Persona").
		Preload("Especialista").
		Order("at_fecha DESC").
		Offset(skip).
		Limit(limit).
		Find(&atenciones).Error
	return atenciones, err
}

// CountAtenciones returns total rows matching the same predicate as
// GetAtenciones
func CountAtenciones(db *gorm.DB, f AtencionFilters) (int64, error) {
	var total int64
	err := atencionQuery(db, f).Count(&total).Error
	return total, err
}

// GetAtencionesPersona returns the latest atenciones of one persona
func GetAtencionesPersona(db *gorm.DB, personaID uint, limit int) ([]models.Atencion, error) {
	var atenciones []models.Atencion
	err := db.Where("at_perid = ?", personaID).
		Preload("Especialista").
		Order("at_fecha DESC").
		Limit(limit).
		Find(&atenciones).Error
	return atenciones, err
}

// AtencionInput is the validated shape for creating an atencion
type AtencionInput struct {
	AtPerid uint
	AtEspid *uint
	AtFecha time.Time
}

// CreateAtencion persists a new atencion
func CreateAtencion(db *gorm.DB, input AtencionInput) (*models.Atencion, error) {
	if input.AtPerid == 0 {
		return nil, ErrPersonaRequerida
	}
	atencion := &models.Atencion{
		AtPerid: input.AtPerid,
		AtEspid: input.AtEspid,
		AtFecha: input.AtFecha,
	}
	if err := db.Create(atencion).Error; err != nil {
		return nil, fmt.Errorf("Error al crear atención: %w", err)
	}
	return atencion, nil
}

// AtencionUpdate is the partial-update shape for atenciones
type AtencionUpdate struct {
	AtPerid Optional[uint]
	AtEspid Optional[*uint]
	AtFecha Optional[time.Time]
}

// UpdateAtencion applies the supplied fields and persists
func UpdateAtencion(db *gorm.DB, id uint, update AtencionUpdate) (*models.Atencion, error) {
	var atencion models.Atencion
	if err := db.First(&atencion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAtencionNotFound
		}
		return nil, err
	}

	if update.AtPerid.Valid {
		if update.AtPerid.Value == 0 {
			return nil, ErrPersonaRequerida
		}
		atencion.AtPerid = update.AtPerid.Value
	}
	if update.AtEspid.Valid {
		atencion.AtEspid = update.AtEspid.Value
	}
	if update.AtFecha.Valid {
		atencion.AtFecha = update.AtFecha.Value
	}

	if err := db.Save(&atencion).Error; err != nil {
		return nil, fmt.Errorf("Error al actualizar atención: %w", err)
	}
	return &atencion, nil
}

// DeleteAtencion removes an atencion
func DeleteAtencion(db *gorm.DB, id uint) (*models.Atencion, error) {
	var atencion models.Atencion
	if err := db.First(&atencion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAtencionNotFound
		}
		return nil, err
	}
	if err := db.Delete(&atencion).Error; err != nil {
		return nil, fmt.Errorf("Error al eliminar atención: %w", err)
	}
	return &atencion, nil
}
