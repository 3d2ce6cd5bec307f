package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults point at the public test catalog.
const (
	DefaultTokenURL   = "https://blue-bottle-api-test.herokuapp.com/v1/tokens"
	DefaultCatalogURL = "https://blue-bottle-api-test.herokuapp.com/v1/coffee_shops"
)

// Config for the finder service.
type Config struct {
	TokenURL    string        `validate:"required,http_url"`
	CatalogURL  string        `validate:"required,http_url"`
	Port        string        `validate:"required,numeric"`
	HTTPTimeout time.Duration `validate:"gt=0"`
	ResultCount int           `validate:"min=1,max=100"`
	LogLevel    string        `validate:"oneof=debug info warn error"`
}

// Config for the local catalog stand-in.
type CatalogConfig struct {
	Port        string        `validate:"required,numeric"`
	DBPath      string        `validate:"required_without=DatabaseURL"`
	DatabaseURL string        `validate:"omitempty,url"`
	SeedPath    string
	SigningKey  string        `validate:"required,min=16"`
	TokenTTL    time.Duration `validate:"gt=0"`
	LogLevel    string        `validate:"oneof=debug info warn error"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadDotEnv reads an optional .env file into the environment.
// A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LOG_LEVEL", "info")
	return v
}

// Load reads the finder configuration from the environment.
func Load() (*Config, error) {
	v := newViper()
	v.SetDefault("TOKEN_URL", DefaultTokenURL)
	v.SetDefault("CATALOG_URL", DefaultCatalogURL)
	v.SetDefault("PORT", "8080")
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("RESULT_COUNT", 3)

	cfg := &Config{
		TokenURL:    strings.TrimSpace(v.GetString("TOKEN_URL")),
		CatalogURL:  strings.TrimSpace(v.GetString("CATALOG_URL")),
		Port:        strings.TrimSpace(v.GetString("PORT")),
		HTTPTimeout: v.GetDuration("HTTP_TIMEOUT"),
		ResultCount: v.GetInt("RESULT_COUNT"),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// LoadCatalog reads the catalog stand-in configuration from the environment.
func LoadCatalog() (*CatalogConfig, error) {
	v := newViper()
	v.SetDefault("CATALOG_PORT", "8081")
	v.SetDefault("DB_PATH", "data/catalog.db")
	v.SetDefault("SEED_PATH", "data/seeds/coffee_shops.json")
	v.SetDefault("TOKEN_TTL", "1h")

	cfg := &CatalogConfig{
		Port:        strings.TrimSpace(v.GetString("CATALOG_PORT")),
		DBPath:      strings.TrimSpace(v.GetString("DB_PATH")),
		DatabaseURL: strings.TrimSpace(v.GetString("DATABASE_URL")),
		SeedPath:    strings.TrimSpace(v.GetString("SEED_PATH")),
		SigningKey:  v.GetString("TOKEN_SIGNING_KEY"),
		TokenTTL:    v.GetDuration("TOKEN_TTL"),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("load catalog config: %w", err)
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
