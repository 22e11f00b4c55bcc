package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Port           string
	StorageBackend string
	AllowedOrigins []string
	DB             DBConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func Load(log *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system env")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendMemory),
		AllowedOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "nutriemp"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	if cfg.StorageBackend != BackendMemory && cfg.StorageBackend != BackendPostgres {
		log.Error("Unknown STORAGE_BACKEND", zap.String("value", cfg.StorageBackend))
		panic("unknown storage backend: " + cfg.StorageBackend)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return fallback
}
