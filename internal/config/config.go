package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis availability cache (optional; empty address disables caching)
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	CacheTTLSec   int    `mapstructure:"CACHE_TTL_SEC"`

	// Scheduling policy. These were hardcoded constants in the legacy
	// validation service; they are deliberately configuration here.
	BufferMinutes           int `mapstructure:"BUFFER_MINUTES"`
	MaxPatientPerDay        int `mapstructure:"MAX_PATIENT_APPOINTMENTS_PER_DAY"`
	MaxPatientPerMonth      int `mapstructure:"MAX_PATIENT_APPOINTMENTS_PER_MONTH"`
	MaxAdvanceBookingMonths int `mapstructure:"MAX_ADVANCE_BOOKING_MONTHS"`
	MinAppointmentMinutes   int `mapstructure:"MIN_APPOINTMENT_MINUTES"`
	MaxAppointmentMinutes   int `mapstructure:"MAX_APPOINTMENT_MINUTES"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "clinic_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Redis defaults (disabled unless an address is configured)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL_SEC", 60)

	// Scheduling policy defaults
	viper.SetDefault("BUFFER_MINUTES", 5)
	viper.SetDefault("MAX_PATIENT_APPOINTMENTS_PER_DAY", 3)
	viper.SetDefault("MAX_PATIENT_APPOINTMENTS_PER_MONTH", 10)
	viper.SetDefault("MAX_ADVANCE_BOOKING_MONTHS", 6)
	viper.SetDefault("MIN_APPOINTMENT_MINUTES", 15)
	viper.SetDefault("MAX_APPOINTMENT_MINUTES", 180)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.BufferMinutes < 0 {
		return fmt.Errorf("BUFFER_MINUTES must not be negative")
	}
	if config.MinAppointmentMinutes <= 0 || config.MaxAppointmentMinutes < config.MinAppointmentMinutes {
		return fmt.Errorf("invalid appointment duration bounds")
	}

	return nil
}

// SchedulingPolicy groups the booking rules consumed by the validator and
// slot generator.
type SchedulingPolicy struct {
	BufferMinutes           int
	MaxPatientPerDay        int
	MaxPatientPerMonth      int
	MaxAdvanceBookingMonths int
	MinAppointmentMinutes   int
	MaxAppointmentMinutes   int
}

// Policy returns the scheduling policy derived from configuration
func (c *Config) Policy() SchedulingPolicy {
	return SchedulingPolicy{
		BufferMinutes:           c.BufferMinutes,
		MaxPatientPerDay:        c.MaxPatientPerDay,
		MaxPatientPerMonth:      c.MaxPatientPerMonth,
		MaxAdvanceBookingMonths: c.MaxAdvanceBookingMonths,
		MinAppointmentMinutes:   c.MinAppointmentMinutes,
		MaxAppointmentMinutes:   c.MaxAppointmentMinutes,
	}
}

// DefaultSchedulingPolicy mirrors the configuration defaults; used by tests
// and as a fallback when no config is wired.
func DefaultSchedulingPolicy() SchedulingPolicy {
	return SchedulingPolicy{
		BufferMinutes:           5,
		MaxPatientPerDay:        3,
		MaxPatientPerMonth:      10,
		MaxAdvanceBookingMonths: 6,
		MinAppointmentMinutes:   15,
		MaxAppointmentMinutes:   180,
	}
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
