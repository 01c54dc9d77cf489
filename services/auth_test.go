package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryoumen0412/sistema-dpm/config"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                "clave-de-firma-solo-para-pruebas",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 480,
	}
}

func TestPasswordHashing(t *testing.T) {
	password := "ContraseñaSegura123"

	hash, err := HashPassword(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, CheckPassword(password, hash))
	assert.False(t, CheckPassword("otra", hash))
}

func TestAuthenticateUser(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreateUser(db, "secretaria", "ContraseñaSegura123")
	assert.NoError(t, err)

	user, err := AuthenticateUser(db, "secretaria", "ContraseñaSegura123")
	assert.NoError(t, err)
	assert.Equal(t, "secretaria", user.Usr)

	_, err = AuthenticateUser(db, "secretaria", "incorrecta")
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)

	_, err = AuthenticateUser(db, "desconocido", "ContraseñaSegura123")
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := CreateAccessToken(cfg, "secretaria")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	username, err := ParseAccessToken(cfg, token)
	assert.NoError(t, err)
	assert.Equal(t, "secretaria", username)

	// The cookie stores the token behind a Bearer prefix
	username, err = ParseAccessToken(cfg, BearerPrefix+token)
	assert.NoError(t, err)
	assert.Equal(t, "secretaria", username)
}

func TestAccessTokenRejections(t *testing.T) {
	cfg := testConfig()

	_, err := ParseAccessToken(cfg, "no-es-un-token")
	assert.ErrorIs(t, err, ErrTokenInvalido)

	// Expired
	expiredCfg := testConfig()
	expiredCfg.AccessTokenExpireMinutes = -1
	token, err := CreateAccessToken(expiredCfg, "secretaria")
	assert.NoError(t, err)
	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrTokenInvalido)

	// Signed with a different key
	otherCfg := testConfig()
	otherCfg.SecretKey = "otra-clave-distinta-para-firmar"
	token, err = CreateAccessToken(otherCfg, "secretaria")
	assert.NoError(t, err)
	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestStripBearer(t *testing.T) {
	assert.Equal(t, "abc", StripBearer("Bearer abc"))
	assert.Equal(t, "abc", StripBearer("abc"))
}
