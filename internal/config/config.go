package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config zawiera ustawienia aplikacji demonstracyjnej
type Config struct {
	LogLevel       string
	LogFormat      string
	ServiceName    string
	CampusFile     string // Opcjonalny plik YAML z definicją kampusu
	MetricsEnabled bool
}

// Load wczytuje plik .env (jeśli istnieje) i zmienne środowiskowe
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	return FromEnv()
}

// FromEnv buduje konfigurację wyłącznie ze zmiennych środowiskowych
func FromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		ServiceName:    getEnv("SERVICE_NAME", "campus"),
		CampusFile:     os.Getenv("CAMPUS_FILE"),
		MetricsEnabled: true,
	}

	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("nieprawidłowa wartość METRICS_ENABLED %q: %w", v, err)
		}
		cfg.MetricsEnabled = enabled
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
