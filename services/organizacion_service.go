package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// ErrOrganizacionNotFound indicates the requested organizacion does not exist
var ErrOrganizacionNotFound = errors.New("organización no encontrada")

// ErrOrganizacionRequerida rejects a blank organization name
var ErrOrganizacionRequerida = errors.New("El nombre de la organización es obligatorio")

func organizacionQuery(db *gorm.DB, search string) *gorm.DB {
	query := db.Model(&models.OrganizacionComunitaria{})
	if search != "" {
		query = query.Where("org_comunitaria LIKE ?", "%"+search+"%")
	}
	return query
}

// GetOrganizacion retrieves one organizacion
func GetOrganizacion(db *gorm.DB, id uint) (*models.OrganizacionComunitaria, error) {
	var org models.OrganizacionComunitaria
	if err := db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizacionNotFound
		}
		return nil, err
	}
	return &org, nil
}

// GetOrganizaciones returns a page of organizaciones in primary-key order
func GetOrganizaciones(db *gorm.DB, search string, skip, limit int) ([]models.OrganizacionComunitaria, error) {
	var orgs []models.OrganizacionComunitaria
	err := organizacionQuery(db, search).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&orgs).Error
	return orgs, err
}

// CountOrganizaciones returns total rows matching the same predicate as
// GetOrganizaciones
func CountOrganizaciones(db *gorm.DB, search string) (int64, error) {
	var total int64
	err := organizacionQuery(db, search).Count(&total).Error
	return total, err
}

// CreateOrganizacion persists a new organizacion
func CreateOrganizacion(db *gorm.DB, nombre string) (*models.OrganizacionComunitaria, error) {
	nombre = SanitizeText(nombre)
	if nombre == "" {
		return nil, ErrOrganizacionRequerida
	}
	org := &models.OrganizacionComunitaria{OrgComunitaria: nombre}
	if err := db.Create(org).Error; err != nil {
		return nil, fmt.Errorf("Error al crear organización: %w", err)
	}
	return org, nil
}

// OrganizacionUpdate is the partial-update shape for organizaciones
type OrganizacionUpdate struct {
	OrgComunitaria Optional[string]
}

// UpdateOrganizacion applies the supplied fields and persists
func UpdateOrganizacion(db *gorm.DB, id uint, update OrganizacionUpdate) (*models.OrganizacionComunitaria, error) {
	var org models.OrganizacionComunitaria
	if err := db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizacionNotFound
		}
		return nil, err
	}

	if update.OrgComunitaria.Valid {
		nombre := SanitizeText(update.OrgComunitaria.Value)
		if nombre == "" {
			return nil, ErrOrganizacionRequerida
		}
		org.OrgComunitaria = nombre
	}

	if err := db.Save(&org).Error; err != nil {
		return nil, fmt.Errorf("Error al actualizar organización: %w", err)
	}
	return &org, nil
}

// DeleteOrganizacion removes an organizacion and its membership rows
func DeleteOrganizacion(db *gorm.DB, id uint) (*models.OrganizacionComunitaria, error) {
	var org models.OrganizacionComunitaria
	if err := db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizacionNotFound
		}
		return nil, err
	}
	if err := db.Delete(&org).Error; err != nil {
		return nil, fmt.Errorf("Error al eliminar organización: %w", err)
	}
	return &org, nil
}
