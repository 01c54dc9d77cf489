package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRut(t *testing.T) {
	rut, err := NormalizeRut("12345678-k")
	assert.NoError(t, err)
	assert.Equal(t, "12345678-K", rut)

	rut, err = NormalizeRut("  ab12345  ")
	assert.NoError(t, err)
	assert.Equal(t, "AB12345", rut)

	_, err = NormalizeRut("123456")
	assert.ErrorIs(t, err, ErrRutInvalido)

	_, err = NormalizeRut("")
	assert.ErrorIs(t, err, ErrRutInvalido)
}

func TestValidateBirthdate(t *testing.T) {
	ref := fechaDe(2025, 3, 15)

	// Future date
	assert.ErrorIs(t, ValidateBirthdate(fechaDe(2025, 3, 16), ref), ErrFechaFutura)

	// One day short of 60
	assert.ErrorIs(t, ValidateBirthdate(fechaDe(1965, 3, 16), ref), ErrEdadInsuficiente)

	// Exactly 60 on the reference day
	assert.NoError(t, ValidateBirthdate(fechaDe(1965, 3, 15), ref))

	assert.NoError(t, ValidateBirthdate(fechaDe(1940, 1, 1), ref))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "María", SanitizeText("  María  "))
	assert.Equal(t, "hola", SanitizeText("<script>alert(1)</script>hola"))
	assert.Equal(t, "negrita", SanitizeText("<b>negrita</b>"))
}
