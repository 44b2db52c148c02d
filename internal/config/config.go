package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the chronopulse application
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Display     DisplayConfig     `yaml:"display"`
	Validation  ValidationConfig  `yaml:"validation"`
	Seed        SeedConfig        `yaml:"seed"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Dir            string        `yaml:"dir" env:"CHRONO_STORAGE_DIR"`
	Filename       string        `yaml:"filename" env:"CHRONO_STORAGE_FILENAME"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"CHRONO_STORAGE_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"CHRONO_STORAGE_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `yaml:"time_format" env:"CHRONO_TIME_FORMAT"`
	DateFormat string `yaml:"date_format" env:"CHRONO_DATE_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	NameMinLength int `yaml:"name_min_length" env:"CHRONO_VALIDATION_NAME_MIN"`
	NameMaxLength int `yaml:"name_max_length" env:"CHRONO_VALIDATION_NAME_MAX"`
	NoteMaxLength int `yaml:"note_max_length" env:"CHRONO_VALIDATION_NOTE_MAX"`
	PINLength     int `yaml:"pin_length" env:"CHRONO_VALIDATION_PIN_LENGTH"`
}

// SeedConfig holds the names used to seed empty collections on first run
type SeedConfig struct {
	ProjectName  string `yaml:"project_name" env:"CHRONO_SEED_PROJECT"`
	ActivityName string `yaml:"activity_name" env:"CHRONO_SEED_ACTIVITY"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"CHRONO_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"CHRONO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".chronopulse")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultDir,
			Filename:       "chronopulse.db",
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04:05",
			DateFormat: "02/01/2006",
		},
		Validation: ValidationConfig{
			NameMinLength: 1,
			NameMaxLength: 255,
			NoteMaxLength: 1000,
			PINLength:     4,
		},
		Seed: SeedConfig{
			ProjectName:  "Standard Project",
			ActivityName: "Standard Work",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStoragePath returns the full path to the key-value store file
func (c *Config) GetStoragePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetWriteTimeout returns the persistence write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Storage.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("CHRONO_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("CHRONO_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if timeout := os.Getenv("CHRONO_STORAGE_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.WriteTimeout = d
		}
	}
	if perms := os.Getenv("CHRONO_STORAGE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	// Display configuration
	if format := os.Getenv("CHRONO_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if format := os.Getenv("CHRONO_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	// Validation configuration
	if minLen := os.Getenv("CHRONO_VALIDATION_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.NameMinLength = n
		}
	}
	if maxLen := os.Getenv("CHRONO_VALIDATION_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.NameMaxLength = n
		}
	}
	if maxLen := os.Getenv("CHRONO_VALIDATION_NOTE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.NoteMaxLength = n
		}
	}
	if pinLen := os.Getenv("CHRONO_VALIDATION_PIN_LENGTH"); pinLen != "" {
		if n, err := strconv.Atoi(pinLen); err == nil {
			c.Validation.PINLength = n
		}
	}

	// Seed configuration
	if name := os.Getenv("CHRONO_SEED_PROJECT"); name != "" {
		c.Seed.ProjectName = name
	}
	if name := os.Getenv("CHRONO_SEED_ACTIVITY"); name != "" {
		c.Seed.ActivityName = name
	}

	// Application configuration
	if timeout := os.Getenv("CHRONO_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("CHRONO_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	if c.Validation.NameMinLength < 1 {
		return &ConfigError{Field: "validation.name_min_length", Message: "name minimum length must be at least 1"}
	}
	if c.Validation.NameMaxLength < c.Validation.NameMinLength {
		return &ConfigError{Field: "validation.name_max_length", Message: "name maximum length must be greater than minimum length"}
	}
	if c.Validation.NoteMaxLength < 0 {
		return &ConfigError{Field: "validation.note_max_length", Message: "note maximum length cannot be negative"}
	}
	if c.Validation.PINLength < 4 {
		return &ConfigError{Field: "validation.pin_length", Message: "PIN length must be at least 4"}
	}

	if c.Seed.ProjectName == "" {
		return &ConfigError{Field: "seed.project_name", Message: "seed project name cannot be empty"}
	}
	if c.Seed.ActivityName == "" {
		return &ConfigError{Field: "seed.activity_name", Message: "seed activity name cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
