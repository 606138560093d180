package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// Config holds the shared application state opened at startup.
type Config struct {
	DB         *sql.DB
	ListenAddr string
	JWTSecret  string
}

var AppConfig *Config

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init opens the database connection pool from environment variables and
// populates AppConfig. DATABASE_URL takes precedence over the discrete
// DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME variables.
func Init() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			envOr("DB_HOST", "localhost"),
			envOr("DB_PORT", "5432"),
			envOr("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			envOr("DB_NAME", "super20"),
			envOr("DB_SSLMODE", "disable"),
		)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	AppConfig = &Config{
		DB:         db,
		ListenAddr: envOr("LISTEN_ADDR", ":8080"),
		JWTSecret:  envOr("JWT_SECRET", "super20-academy-secret-key"),
	}
	return nil
}

// GetDB returns the shared connection pool.
func GetDB() *sql.DB {
	return AppConfig.DB
}

// JWTSecret returns the session signing key.
func JWTSecret() []byte {
	return []byte(AppConfig.JWTSecret)
}
