package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "secretaria", "ContraseñaSegura123")
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "secretaria", user.Usr)

	// Stored hashed, never in the clear
	assert.NotEqual(t, "ContraseñaSegura123", user.Psswrd)
	assert.True(t, CheckPassword("ContraseñaSegura123", user.Psswrd))

	cargado, err := GetUserByUsername(db, "secretaria")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, cargado.ID)

	_, err = GetUserByUsername(db, "nadie")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = GetUser(db, user.ID)
	assert.NoError(t, err)
	_, err = GetUser(db, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
