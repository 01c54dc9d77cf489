package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/config"
	"github.com/ryoumen0412/sistema-dpm/models"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10
	// TokenCookieName is the cookie carrying the access token
	TokenCookieName = "access_token"
	// BearerPrefix prefixes the token inside the cookie and the
	// Authorization header
	BearerPrefix = "Bearer "
)

// Auth errors
var (
	ErrCredencialesInvalidas = errors.New("Usuario o contraseña incorrectos")
	ErrTokenInvalido         = errors.New("token inválido o expirado")
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword verifies a password against a bcrypt hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// AuthenticateUser checks the submitted credentials against the stored hash
// and returns the user on success.
func AuthenticateUser(db *gorm.DB, username, password string) (*models.User, error) {
	user, err := GetUserByUsername(db, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}
	if !CheckPassword(password, user.Psswrd) {
		return nil, ErrCredencialesInvalidas
	}
	return user, nil
}

// CreateAccessToken issues a signed, time-limited token naming the user.
// Lifetime and signing key come from the configuration loaded at startup.
func CreateAccessToken(cfg *config.Config, username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute)),
	}

	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm %q", cfg.Algorithm)
	}

	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates a token and returns the username it names.
// Expired, malformed, unsigned or wrongly-signed tokens all come back as
// ErrTokenInvalido.
func ParseAccessToken(cfg *config.Config, tokenStr string) (string, error) {
	tokenStr = StripBearer(tokenStr)

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.SecretKey), nil
	}, jwt.WithValidMethods([]string{cfg.Algorithm}))
	if err != nil {
		return "", ErrTokenInvalido
	}
	if claims.Subject == "" {
		return "", ErrTokenInvalido
	}
	return claims.Subject, nil
}

// StripBearer removes the "Bearer " prefix the cookie value carries
func StripBearer(token string) string {
	return strings.TrimPrefix(token, BearerPrefix)
}
