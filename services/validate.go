package services

import (
	"errors"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const (
	// MinRutLength is the minimum accepted length for a RUT
	MinRutLength = 7
	// EdadMinima is the minimum age for registration in the program
	EdadMinima = 60
)

// Validation errors shown verbatim as form errors
var (
	ErrRutInvalido         = errors.New("RUT debe tener al menos 7 caracteres")
	ErrFechaFutura         = errors.New("Fecha de nacimiento no puede ser futura")
	ErrEdadInsuficiente    = errors.New("La persona debe ser mayor de 60 años")
	ErrNombreRequerido     = errors.New("Nombre y apellido son obligatorios")
)

// textPolicy strips any markup from free-text form fields before storage
var textPolicy = bluemonday.StrictPolicy()

// SanitizeText trims and strips markup from a free-text form value
func SanitizeText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}

// NormalizeRut validates and canonicalizes a RUT: at least MinRutLength
// characters, stored uppercase.
func NormalizeRut(rut string) (string, error) {
	rut = strings.TrimSpace(rut)
	if len(rut) < MinRutLength {
		return "", ErrRutInvalido
	}
	return strings.ToUpper(rut), nil
}

// ValidateBirthdate enforces the registration rules against a reference date:
// not in the future, and at least EdadMinima full years old. The rule is only
// checked when a birthdate is written; records aging past it later are never
// re-examined.
func ValidateBirthdate(birthdate, ref time.Time) error {
	if birthdate.After(ref) {
		return ErrFechaFutura
	}
	if AgeAt(birthdate, ref) < EdadMinima {
		return ErrEdadInsuficiente
	}
	return nil
}
