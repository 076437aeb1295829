package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Shift timing defaults
const (
	DefaultWorkingHoursStart = "10:00"
	DefaultWorkingHours      = 12
)

// ShiftConfig describes the daily working shift used for revenue reporting.
type ShiftConfig struct {
	Start string // "HH:MM", start of the working day
	Hours int    // shift duration in hours
}

type Config struct {
	Port    string
	GinMode string
	DB      DBConfig
	Shift   ShiftConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Load reads the process configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "make_this_order"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Shift: ShiftConfig{
			Start: getEnv("WORKING_HOURS_START", DefaultWorkingHoursStart),
			Hours: DefaultWorkingHours,
		},
	}

	if raw := os.Getenv("WORKING_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid WORKING_HOURS %q: %w", raw, err)
		}
		cfg.Shift.Hours = hours
	}
	if _, err := time.Parse("15:04", cfg.Shift.Start); err != nil {
		return nil, fmt.Errorf("invalid WORKING_HOURS_START %q: %w", cfg.Shift.Start, err)
	}
	if cfg.Shift.Hours <= 0 || cfg.Shift.Hours > 24 {
		return nil, fmt.Errorf("WORKING_HOURS must be between 1 and 24, got %d", cfg.Shift.Hours)
	}
	return cfg, nil
}

// InitDB opens the Postgres connection used by the application.
func InitDB(cfg DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
