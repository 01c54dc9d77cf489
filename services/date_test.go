package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2000-03-15")
	assert.NoError(t, err)
	assert.Equal(t, 2000, parsed.Year())
	assert.Equal(t, 3, int(parsed.Month()))
	assert.Equal(t, 15, parsed.Day())

	_, err = ParseDate("15-03-2000")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestAgeAt(t *testing.T) {
	nacimiento := fechaDe(2000, 3, 15)

	// Day before the birthday the year has not completed yet
	assert.Equal(t, 24, AgeAt(nacimiento, fechaDe(2025, 3, 14)))
	assert.Equal(t, 25, AgeAt(nacimiento, fechaDe(2025, 3, 15)))
	assert.Equal(t, 25, AgeAt(nacimiento, fechaDe(2025, 3, 16)))

	// Month boundary
	assert.Equal(t, 24, AgeAt(nacimiento, fechaDe(2025, 2, 28)))
	assert.Equal(t, 25, AgeAt(nacimiento, fechaDe(2025, 12, 31)))

	// Same day
	assert.Equal(t, 0, AgeAt(nacimiento, nacimiento))
}
