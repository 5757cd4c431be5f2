package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database    DatabaseConfig
	App         AppConfig
	Timekeeping TimekeepingConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// TimekeepingConfig holds the monthly summary policy knobs. The defaults
// match the standard Vietnamese labor arrangement of 26 working days at
// 8 hours per day.
type TimekeepingConfig struct {
	DailyHourCap            float64
	MinMonthlyHours         float64
	MinDailyHoursForWorkDay float64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "onebiz-timekeeping"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Timekeeping policy configuration
	dailyHourCap, err := getEnvFloat("TK_DAILY_HOUR_CAP", "8")
	if err != nil {
		return nil, fmt.Errorf("invalid TK_DAILY_HOUR_CAP: %w", err)
	}

	minMonthlyHours, err := getEnvFloat("TK_MIN_MONTHLY_HOURS", "208")
	if err != nil {
		return nil, fmt.Errorf("invalid TK_MIN_MONTHLY_HOURS: %w", err)
	}

	minDailyHours, err := getEnvFloat("TK_MIN_DAILY_HOURS_FOR_WORK_DAY", "7")
	if err != nil {
		return nil, fmt.Errorf("invalid TK_MIN_DAILY_HOURS_FOR_WORK_DAY: %w", err)
	}

	config.Timekeeping = TimekeepingConfig{
		DailyHourCap:            dailyHourCap,
		MinMonthlyHours:         minMonthlyHours,
		MinDailyHoursForWorkDay: minDailyHours,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Timekeeping.DailyHourCap <= 0 {
		return fmt.Errorf("TK_DAILY_HOUR_CAP must be positive")
	}
	if c.Timekeeping.MinDailyHoursForWorkDay <= 0 {
		return fmt.Errorf("TK_MIN_DAILY_HOURS_FOR_WORK_DAY must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key, fallback string) (float64, error) {
	return strconv.ParseFloat(getEnv(key, fallback), 64)
}
