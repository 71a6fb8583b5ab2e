// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds every runtime setting the server needs. Values come from the
// environment; a .env file is honored in development.
type Config struct {
	// Port is the listen port for the HTTP server.
	Port string

	// DBUser, DBPassword, DBHost, DBPort and DBName configure the MySQL connection.
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// DBInstance is the Cloud SQL instance connection name. When set, the
	// connection goes through the unix socket instead of TCP.
	DBInstance string

	// RedisHost and RedisPort locate the optional Redis session backend.
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// JWTSecret signs session tokens. It must be supplied by the deployment
	// environment; the server refuses to start without it.
	JWTSecret string

	// BcryptCost is the work factor for password hashing.
	BcryptCost int

	// RunMigrations enables schema auto-migration at startup.
	RunMigrations bool
}

// ErrMissingJWTSecret is returned when JWT_SECRET is not set.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present (development convenience; real
// deployments set the variables directly).
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded configuration from .env file")
	}

	cfg := &Config{
		Port:          getenvDefault("PORT", "8080"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        getenvDefault("DB_HOST", "127.0.0.1"),
		DBPort:        getenvDefault("DB_PORT", "3306"),
		DBName:        os.Getenv("DB_NAME"),
		DBInstance:    os.Getenv("INSTANCE_CONNECTION_NAME"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenvDefault("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		BcryptCost:    bcrypt.DefaultCost,
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil || cost < bcrypt.DefaultCost || cost > bcrypt.MaxCost {
			// Never allow a cost below the default; a weaker setting silently
			// degrades every stored hash going forward.
			slog.Warn("ignoring invalid BCRYPT_COST", "value", v)
		} else {
			cfg.BcryptCost = cost
		}
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
