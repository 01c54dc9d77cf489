package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// MinSecretKeyLength is the minimum required length for the signing key in production
	MinSecretKeyLength = 32
)

// Config holds the process-wide settings. It is loaded once at startup and
// passed by reference to the components that need it; nothing mutates it
// after Load returns.
type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	DBPath      string `env:"DB_PATH" envDefault:"db/sistema_dpm.db"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Token signing
	SecretKey                string `env:"SECRET_KEY"`
	Algorithm                string `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"480"`

	Debug   bool   `env:"DEBUG" envDefault:"false"`
	AppName string `env:"APP_NAME" envDefault:"Sistema Municipal - Dirección de Personas Mayores"`
}

// Load reads configuration from the environment (and a local .env file when
// present) into an immutable Config.
func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("Failed to parse environment configuration: %v", err)
	}

	ValidateSecretKey(cfg.SecretKey, cfg.Environment)

	// In development, generate a secure secret if none provided
	if cfg.SecretKey == "" && cfg.Environment != "production" {
		cfg.SecretKey = GenerateSecureSecret()
		log.Println("[INFO] Generated temporary signing secret for development. Set SECRET_KEY env var for persistence.")
	}

	return cfg
}

// ValidateSecretKey validates the signing secret meets security requirements.
// In production, it must be at least 32 bytes and not a known insecure default.
func ValidateSecretKey(secret string, environment string) error {
	insecureDefaults := []string{
		"your-secret-key-here-change-in-production",
		"change-me",
		"secret",
		"development",
		"test",
		"",
	}

	for _, insecure := range insecureDefaults {
		if strings.EqualFold(secret, insecure) {
			if environment == "production" {
				log.Fatal("[CRITICAL] SECRET_KEY is set to an insecure default value. Generate a secure random secret with: openssl rand -base64 32")
			}
			log.Printf("[WARNING] SECRET_KEY is set to an insecure default value. This is acceptable only in development.")
			return nil
		}
	}

	if environment == "production" {
		if len(secret) < MinSecretKeyLength {
			log.Fatalf("[CRITICAL] SECRET_KEY must be at least %d characters in production (current: %d). Generate with: openssl rand -base64 32", MinSecretKeyLength, len(secret))
		}
	}

	return nil
}

// GenerateSecureSecret generates a cryptographically secure random secret.
// This is used only for development when no secret is provided.
func GenerateSecureSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Printf("[WARNING] Failed to generate secure secret: %v", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(bytes)
}
