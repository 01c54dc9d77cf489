package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// Attendance and membership management for the four many-to-many
// associations. Rows live in the municipal join tables and are removed in
// cascade when either side is deleted.

func loadPersona(db *gorm.DB, personaID uint) (*models.PersonaMayor, error) {
	var persona models.PersonaMayor
	if err := db.First(&persona, personaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNotFound
		}
		return nil, err
	}
	return &persona, nil
}

// InscribirActividad registers a persona as attendee of an activity
func InscribirActividad(db *gorm.DB, personaID, actividadID uint) error {
	persona, err := loadPersona(db, personaID)
	if err != nil {
		return err
	}
	var actividad models.Actividad
	if err := db.First(&actividad, actividadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActividadNotFound
		}
		return err
	}
	if err := db.Model(persona).Association("Actividades").Append(&actividad); err != nil {
		return fmt.Errorf("Error al inscribir en actividad: %w", err)
	}
	return nil
}

// QuitarActividad removes a persona from an activity's attendance
func QuitarActividad(db *gorm.DB, personaID, actividadID uint) error {
	persona, err := loadPersona(db, personaID)
	if err != nil {
		return err
	}
	return db.Model(persona).Association("Actividades").Delete(&models.Actividad{ID: actividadID})
}

// InscribirTaller enrolls a persona in a workshop
func InscribirTaller(db *gorm.DB, personaID, tallerID uint) error {
	persona, err := loadPersona(db, personaID)
	if err != nil {
		return err
	}
	var taller models.Taller
	if err := db.First(&taller, tallerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTallerNotFound
		}
		return err
	}
	if err := db.Model(persona).Association("Talleres").Append(&taller); err != nil {
		return fmt.Errorf("Error al inscribir en taller: %w", err)
	}
	return nil
}

// QuitarTaller removes a persona's workshop enrollment
func QuitarTaller(db *gorm.DB, personaID, tallerID uint) error {
	persona, err := loadPersona(db, personaID)
	if err != nil {
		return err
	}
	return db.Model(persona).Association("Talleres").Delete(&models.Taller{ID: tallerID})
}

// InscribirViaje registers a persona on a trip
func InscribirViaje(db *gorm.DB, personaID, viajeID uint) error {
	persona, err := loadPersona(db, personaID)
	if err != nil {
		return err
	}
	var viaje models.Viaje
	if err := db.First(&viaje, viajeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrViajeNotFound
		}
		return err
	}
	if err := db.Model(persona).Association("Viajes").Append(&viaje); err != nil {
		return fmt.Errorf("Error al inscribir en viaje: %w", err)
	}
	return nil
}

// QuitarViaje removes a persona from a trip
func QuitarViaje(db *gorm.DB, personaID, viajeID uint) error {
	persona, err := loadPersona(db, personaID)
	if err != nil {
		return err
	}
	return db.Model(persona).Association("Viajes").Delete(&models.Viaje{ID: viajeID})
}

// InscribirOrganizacion registers a persona as member of an organization
func InscribirOrganizacion(db *gorm.DB, personaID, organizacionID uint) error {
	persona, err := loadPersona(db, personaID)
	if err != nil {
		return err
	}
	var org models.OrganizacionComunitaria
	if err := db.First(&org, organizacionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrganizacionNotFound
		}
		return err
	}
	if err := db.Model(persona).Association("Organizaciones").Append(&org); err != nil {
		return fmt.Errorf("Error al registrar membresía: %w", err)
	}
	return nil
}

// QuitarOrganizacion removes a persona's membership in an organization
func QuitarOrganizacion(db *gorm.DB, personaID, organizacionID uint) error {
	persona, err := loadPersona(db, personaID)
	if err != nil {
		return err
	}
	return db.Model(persona).Association("Organizaciones").Delete(&models.OrganizacionComunitaria{ID: organizacionID})
}
