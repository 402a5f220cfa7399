// Package config provides configuration management for Libris.
// Configuration can be loaded from YAML files and environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Library  LibraryConfig  `mapstructure:"library"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DatabaseConfig holds SQLite connection settings.
type DatabaseConfig struct {
	// Path is the path to the SQLite database file.
	Path string `mapstructure:"path"`

	// JournalMode sets the SQLite journal mode (WAL recommended).
	JournalMode string `mapstructure:"journal_mode"`

	// BusyTimeout sets the busy timeout in milliseconds.
	BusyTimeout int `mapstructure:"busy_timeout"`

	// SynchronousMode sets the synchronous mode (NORMAL, FULL, OFF).
	SynchronousMode string `mapstructure:"synchronous_mode"`

	// MaxOpenConns sets the maximum number of open connections.
	MaxOpenConns int `mapstructure:"max_open_conns"`

	// MaxIdleConns sets the maximum number of idle connections.
	MaxIdleConns int `mapstructure:"max_idle_conns"`

	// ConnMaxLifetime sets the maximum connection lifetime.
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// LibraryConfig holds the lending policy.
type LibraryConfig struct {
	// LoanDays is the default loan duration in days.
	LoanDays int `mapstructure:"loan_days"`

	// ReservationDays is the default reservation lifetime in days.
	ReservationDays int `mapstructure:"reservation_days"`

	// FinePerDay is the fine charged per whole day of late return.
	FinePerDay float64 `mapstructure:"fine_per_day"`

	// MaxLoans caps a user's simultaneous active loans. Zero disables the cap.
	MaxLoans int `mapstructure:"max_loans"`

	// MaxReservations caps a user's simultaneous active reservations.
	// Zero disables the cap.
	MaxReservations int `mapstructure:"max_reservations"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the specified file and environment variables.
// Environment variables take precedence over file values and are prefixed
// with LIBRIS_ using _ as separator.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("LIBRIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/libris")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is acceptable - use defaults and env vars.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "./data/libris.db")
	v.SetDefault("database.journal_mode", "WAL")
	v.SetDefault("database.busy_timeout", 5000)
	v.SetDefault("database.synchronous_mode", "NORMAL")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("library.loan_days", 15)
	v.SetDefault("library.reservation_days", 3)
	v.SetDefault("library.fine_per_day", 50.0)
	v.SetDefault("library.max_loans", 3)
	v.SetDefault("library.max_reservations", 2)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Validate checks the configuration for required values and valid ranges.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if c.Library.LoanDays < 1 {
		return fmt.Errorf("library.loan_days must be at least 1")
	}
	if c.Library.ReservationDays < 1 {
		return fmt.Errorf("library.reservation_days must be at least 1")
	}
	if c.Library.FinePerDay < 0 {
		return fmt.Errorf("library.fine_per_day cannot be negative")
	}
	if c.Library.MaxLoans < 0 || c.Library.MaxReservations < 0 {
		return fmt.Errorf("library limits cannot be negative")
	}

	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of: trace, debug, info, warn, error, fatal, panic")
	}

	return nil
}

// MustLoad loads configuration or panics on error.
// Useful for main function initialization.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
