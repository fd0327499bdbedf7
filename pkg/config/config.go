package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string `validate:"required,numeric"`
	LogLevel       string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	LogFormat      string `validate:"oneof=json pretty"`
	UploadDir      string `validate:"required"`
	MaxUploadBytes int64  `validate:"gt=0"`

	SkillMatchMode string `validate:"oneof=substring word"`
	CatalogSource  string `validate:"oneof=builtin file postgres"`
	CatalogFile    string
	DatabaseURL    string

	AuthEnabled            bool
	AuthClientID           string
	AuthClientPasswordHash string
	JWTSecret              string
	JWTIssuer              string
	JWTTTLMinutes          int `validate:"gt=0"`
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "json")),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 15<<20)),

		SkillMatchMode: strings.ToLower(getEnv("SKILL_MATCH_MODE", "substring")),
		CatalogSource:  strings.ToLower(getEnv("CATALOG_SOURCE", "builtin")),
		CatalogFile:    os.Getenv("CATALOG_FILE"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		AuthEnabled:            getEnvBool("AUTH_ENABLED", false),
		AuthClientID:           os.Getenv("AUTH_CLIENT_ID"),
		AuthClientPasswordHash: os.Getenv("AUTH_CLIENT_PASSWORD_HASH"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		JWTIssuer:              getEnv("JWT_ISSUER", "resume-analyzer"),
		JWTTTLMinutes:          getEnvInt("JWT_TTL_MINUTES", 60),
	}
}

// Validate проверяет значения и связки полей.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var errs []error
	if c.CatalogSource == "file" && c.CatalogFile == "" {
		errs = append(errs, errors.New("CATALOG_FILE is required when CATALOG_SOURCE=file"))
	}
	if c.CatalogSource == "postgres" && c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required when CATALOG_SOURCE=postgres"))
	}
	if c.AuthEnabled {
		if c.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required when AUTH_ENABLED=true"))
		}
		if c.AuthClientID == "" || c.AuthClientPasswordHash == "" {
			errs = append(errs, errors.New("AUTH_CLIENT_ID and AUTH_CLIENT_PASSWORD_HASH are required when AUTH_ENABLED=true"))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
