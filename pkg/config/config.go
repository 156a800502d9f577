package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	AppHost      string
	AppPort      string
	IsProduction bool

	PostgresHost     string
	PostgresPort     string
	PostgresDB       string
	PostgresUser     string
	PostgresPassword string
	// PostgresEcho enables statement-level query logging.
	PostgresEcho bool

	// ExposeErrorDetails controls whether raw storage error text is included in
	// client-visible responses. Keep false outside local debugging.
	ExposeErrorDetails bool

	// RateLimit is an ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("APP_HOST", "0.0.0.0")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("POSTGRES_HOST", "postgresql")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_DB", "banking_system")
	viper.SetDefault("POSTGRES_USER", "admin")
	viper.SetDefault("POSTGRES_PASSWORD", "adminAdmin123!")
	viper.SetDefault("POSTGRES_ECHO", false)
	viper.SetDefault("EXPOSE_ERROR_DETAILS", false)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{
		AppHost:            viper.GetString("APP_HOST"),
		AppPort:            viper.GetString("APP_PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		PostgresHost:       viper.GetString("POSTGRES_HOST"),
		PostgresPort:       viper.GetString("POSTGRES_PORT"),
		PostgresDB:         viper.GetString("POSTGRES_DB"),
		PostgresUser:       viper.GetString("POSTGRES_USER"),
		PostgresPassword:   viper.GetString("POSTGRES_PASSWORD"),
		PostgresEcho:       viper.GetBool("POSTGRES_ECHO"),
		ExposeErrorDetails: viper.GetBool("EXPOSE_ERROR_DETAILS"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
	}

	if cfg.PostgresPassword == "adminAdmin123!" {
		log.Println("Warning: POSTGRES_PASSWORD not set. Using default credentials. THIS IS NOT FOR PRODUCTION.")
	}
	if cfg.ExposeErrorDetails {
		log.Println("Warning: EXPOSE_ERROR_DETAILS is enabled. Raw storage errors will be visible to clients.")
	}

	return cfg, nil
}

// DatabaseURL assembles the PostgreSQL connection string from the individual
// POSTGRES_* settings.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// ListenAddr returns the host:port pair the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return c.AppHost + ":" + c.AppPort
}
