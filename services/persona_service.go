package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// ErrPersonaNotFound indicates the requested persona does not exist
var ErrPersonaNotFound = errors.New("persona no encontrada")

// PersonaFilters holds the filter options for querying the registry. Search
// matches nombre, apellido or RUT; the id filters narrow by catalog.
type PersonaFilters struct {
	Search        string
	MacrosectorID uint
	GeneroID      uint
}

func personaQuery(db *gorm.DB, f PersonaFilters) *gorm.DB {
	query := db.Model(&models.PersonaMayor{})

	if f.Search != "" {
		kw := "%" + f.Search + "%"
		query = query.Where(
			db.Where("per_nombre LIKE ?", kw).
				Or("per_apellido LIKE ?", kw).
				Or("per_rut LIKE ?", kw),
		)
	}
	if f.MacrosectorID != 0 {
		query = query.Where("per_macid = ?", f.MacrosectorID)
	}
	if f.GeneroID != 0 {
		query = query.Where("per_genid = ?", f.GeneroID)
	}
	return query
}

// GetPersonaMayor retrieves one persona with its catalog relations preloaded
func GetPersonaMayor(db *gorm.DB, id uint) (*models.PersonaMayor, error) {
	var persona models.PersonaMayor
	err := db.
		Preload("Genero").
		Preload("Nacionalidad").
		Preload("Macrosector").
		Preload("UnidadVecinal").
		Preload("BeneficioVinculos").
		Preload("BeneficioLimpieza").
		Preload("BeneficioProgCuidadores").
		Preload("Actividades").
		Preload("Talleres").
		Preload("Viajes").
		Preload("Organizaciones").
		First(&persona, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNotFound
		}
		return nil, err
	}
	return &persona, nil
}

// GetPersonaMayorByRut retrieves one persona by RUT
func GetPersonaMayorByRut(db *gorm.DB, rut string) (*models.PersonaMayor, error) {
	var persona models.PersonaMayor
	err := db.Where("per_rut = ?", rut).First(&persona).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNotFound
		}
		return nil, err
	}
	return &persona, nil
}

// GetPersonasMayores returns a page of personas in primary-key order with
// catalog relations preloaded
func GetPersonasMayores(db *gorm.DB, f PersonaFilters, skip, limit int) ([]models.PersonaMayor, error) {
	var personas []models.PersonaMayor
	err := personaQuery(db, f).
		Preload("Genero").
		Preload("Nacionalidad").
		Preload("Macrosector").
		Preload("UnidadVecinal").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&personas).Error
	return personas, err
}

// CountPersonasMayores returns the total rows matching the same predicate as
// GetPersonasMayores
func CountPersonasMayores(db *gorm.DB, f PersonaFilters) (int64, error) {
	var total int64
	err := personaQuery(db, f).Count(&total).Error
	return total, err
}

// PersonaMayorInput is the validated shape for creating a persona
type PersonaMayorInput struct {
	PerRut       string
	PerNombre    string
	PerApellido  string
	PerBirthdate time.Time
	PerDireccion *string

	PerGenid *uint
	PerNacid *uint
	PerMacid *uint
	PerUniid *uint

	PerBenefvinculos       *uint
	PerBeneflimpieza       *uint
	PerBenefprogcuidadores *uint
}

// CreatePersonaMayor validates the input, persists a new row and returns it
// with the generated id.
func CreatePersonaMayor(db *gorm.DB, input PersonaMayorInput) (*models.PersonaMayor, error) {
	rut, err := NormalizeRut(input.PerRut)
	if err != nil {
		return nil, err
	}

	nombre := SanitizeText(input.PerNombre)
	apellido := SanitizeText(input.PerApellido)
	if nombre == "" || apellido == "" {
		return nil, ErrNombreRequerido
	}

	if err := ValidateBirthdate(input.PerBirthdate, time.Now()); err != nil {
		return nil, err
	}

	persona := &models.PersonaMayor{
		PerRut:                 rut,
		PerNombre:              nombre,
		PerApellido:            apellido,
		PerBirthdate:           input.PerBirthdate,
		PerGenid:               input.PerGenid,
		PerNacid:               input.PerNacid,
		PerMacid:               input.PerMacid,
		PerUniid:               input.PerUniid,
		PerBenefvinculos:       input.PerBenefvinculos,
		PerBeneflimpieza:       input.PerBeneflimpieza,
		PerBenefprogcuidadores: input.PerBenefprogcuidadores,
	}
	if input.PerDireccion != nil {
		direccion := SanitizeText(*input.PerDireccion)
		persona.PerDireccion = &direccion
	}

	if err := db.Create(persona).Error; err != nil {
		return nil, fmt.Errorf("Error al crear persona: %w", err)
	}
	return persona, nil
}

// PersonaMayorUpdate is the partial-update shape: only fields explicitly
// supplied overwrite the stored attributes.
type PersonaMayorUpdate struct {
	PerRut       Optional[string]
	PerNombre    Optional[string]
	PerApellido  Optional[string]
	PerBirthdate Optional[time.Time]
	PerDireccion Optional[*string]

	PerGenid Optional[*uint]
	PerNacid Optional[*uint]
	PerMacid Optional[*uint]
	PerUniid Optional[*uint]

	PerBenefvinculos       Optional[*uint]
	PerBeneflimpieza       Optional[*uint]
	PerBenefprogcuidadores Optional[*uint]
}

// UpdatePersonaMayor loads the persona, applies the supplied fields (with the
// same validation as create) and persists. Returns ErrPersonaNotFound when
// the id does not exist.
func UpdatePersonaMayor(db *gorm.DB, id uint, update PersonaMayorUpdate) (*models.PersonaMayor, error) {
	var persona models.PersonaMayor
	if err := db.First(&persona, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNotFound
		}
		return nil, err
	}

	if update.PerRut.Valid {
		rut, err := NormalizeRut(update.PerRut.Value)
		if err != nil {
			return nil, err
		}
		persona.PerRut = rut
	}
	if update.PerNombre.Valid {
		if nombre := SanitizeText(update.PerNombre.Value); nombre != "" {
			persona.PerNombre = nombre
		} else {
			return nil, ErrNombreRequerido
		}
	}
	if update.PerApellido.Valid {
		if apellido := SanitizeText(update.PerApellido.Value); apellido != "" {
			persona.PerApellido = apellido
		} else {
			return nil, ErrNombreRequerido
		}
	}
	if update.PerBirthdate.Valid {
		if err := ValidateBirthdate(update.PerBirthdate.Value, time.Now()); err != nil {
			return nil, err
		}
		persona.PerBirthdate = update.PerBirthdate.Value
	}
	if update.PerDireccion.Valid {
		if update.PerDireccion.Value != nil {
			direccion := SanitizeText(*update.PerDireccion.Value)
			persona.PerDireccion = &direccion
		} else {
			persona.PerDireccion = nil
		}
	}
	if update.PerGenid.Valid {
		persona.PerGenid = update.PerGenid.Value
	}
	if update.PerNacid.Valid {
		persona.PerNacid = update.PerNacid.Value
	}
	if update.PerMacid.Valid {
		persona.PerMacid = update.PerMacid.Value
	}
	if update.PerUniid.Valid {
		persona.PerUniid = update.PerUniid.Value
	}
	if update.PerBenefvinculos.Valid {
		persona.PerBenefvinculos = update.PerBenefvinculos.Value
	}
	if update.PerBeneflimpieza.Valid {
		persona.PerBeneflimpieza = update.PerBeneflimpieza.Value
	}
	if update.PerBenefprogcuidadores.Valid {
		persona.PerBenefprogcuidadores = update.PerBenefprogcuidadores.Value
	}

	if err := db.Save(&persona).Error; err != nil {
		return nil, fmt.Errorf("Error al actualizar persona: %w", err)
	}
	return &persona, nil
}

// DeletePersonaMayor removes a persona. Atenciones and association rows go
// with it through the schema's CASCADE rules.
func DeletePersonaMayor(db *gorm.DB, id uint) (*models.PersonaMayor, error) {
	var persona models.PersonaMayor
	if err := db.First(&persona, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNotFound
		}
		return nil, err
	}
	if err := db.Delete(&persona).Error; err != nil {
		return nil, fmt.Errorf("Error al eliminar persona: %w", err)
	}
	return &persona, nil
}
