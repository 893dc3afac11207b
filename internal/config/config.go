package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APP_PORT       string
	DB_DRIVER      string
	DB_HOST        string
	DB_PORT        string
	DB_USER        string
	DB_PASSWORD    string
	DB_NAME        string
	SQLITE_PATH    string
	UPLOAD_DIR     string
	ALLOWED_ORIGIN string
	ADMIN_USERNAME string
	ADMIN_PASSWORD string
	KAFKA_ADDRESS  string
	LOG_LEVEL      string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		APP_PORT:       getEnvDefault("APP_PORT", "8080"),
		DB_DRIVER:      getEnvDefault("DB_DRIVER", "sqlite"),
		DB_HOST:        os.Getenv("DB_HOST"),
		DB_PORT:        getEnvDefault("DB_PORT", "5432"),
		DB_USER:        os.Getenv("DB_USER"),
		DB_PASSWORD:    os.Getenv("DB_PASSWORD"),
		DB_NAME:        os.Getenv("DB_NAME"),
		SQLITE_PATH:    getEnvDefault("SQLITE_PATH", "admin_backend.db"),
		UPLOAD_DIR:     getEnvDefault("UPLOAD_DIR", "uploads"),
		ALLOWED_ORIGIN: os.Getenv("ALLOWED_ORIGIN"),
		ADMIN_USERNAME: getEnvDefault("ADMIN_USERNAME", "admin"),
		ADMIN_PASSWORD: getEnvDefault("ADMIN_PASSWORD", "admin123"),
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:      os.Getenv("LOG_LEVEL"),
	}

	return config, nil
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
