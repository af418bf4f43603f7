package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/helpers"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
)

// DefaultPath is used when no --config flag or CONFIG_PATH is given.
const DefaultPath = "configs/config.yaml"

// Server modes
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeTest        = "test"
)

// Default server timeouts
const (
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string   `yaml:"port" env:"SERVER_PORT"`
		Mode            string   `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string   `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string   `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string   `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
		TrustedProxies  []string `yaml:"trusted_proxies" env:"SERVER_TRUSTED_PROXIES"`
	} `yaml:"server"`

	Site struct {
		Brand       string `yaml:"brand" env:"SITE_BRAND"`
		CatalogPath string `yaml:"catalog_path" env:"SITE_CATALOG_PATH"`
		NavLimit    int    `yaml:"nav_limit" env:"SITE_NAV_LIMIT"`
	} `yaml:"site"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and environment apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Warn().Str("path", configPath).Msg("Config file not found, using defaults and environment")
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = ModeDevelopment
	config.Server.ReadTimeout = DefaultReadTimeout.String()
	config.Server.WriteTimeout = DefaultWriteTimeout.String()
	config.Server.ShutdownTimeout = DefaultShutdownTimeout.String()

	// Site defaults
	config.Site.Brand = string(models.BrandDeepjyoti)
	config.Site.NavLimit = 3

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch config.Server.Mode {
	case ModeDevelopment, ModeProduction, ModeTest:
	default:
		return fmt.Errorf("unknown server mode %q", config.Server.Mode)
	}

	for name, value := range map[string]string{
		"read timeout":     config.Server.ReadTimeout,
		"write timeout":    config.Server.WriteTimeout,
		"shutdown timeout": config.Server.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid server %s format: %w", name, err)
		}
	}

	if config.Site.CatalogPath == "" && !models.Brand(config.Site.Brand).Valid() {
		return fmt.Errorf("unknown site brand %q and no catalog path set", config.Site.Brand)
	}

	if _, err := logger.ParseLevel(config.Logging.Level); err != nil {
		return err
	}

	switch logger.Format(config.Logging.Format) {
	case logger.FormatJSON, logger.FormatConsole:
	default:
		return fmt.Errorf("unknown log format %q", config.Logging.Format)
	}

	return nil
}

// ReadTimeout returns the parsed server read timeout
func (c *Config) ReadTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.ReadTimeout, DefaultReadTimeout)
}

// WriteTimeout returns the parsed server write timeout
func (c *Config) WriteTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.WriteTimeout, DefaultWriteTimeout)
}

// ShutdownTimeout returns the parsed graceful shutdown timeout
func (c *Config) ShutdownTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.ShutdownTimeout, DefaultShutdownTimeout)
}

// Brand returns the configured site brand
func (c *Config) Brand() models.Brand {
	return models.Brand(c.Site.Brand)
}

// LoggerConfig converts the logging section for logger.Configure
func (c *Config) LoggerConfig() logger.Config {
	level, err := logger.ParseLevel(c.Logging.Level)
	if err != nil {
		level = logger.InfoLevel
	}
	return logger.Config{
		Level:  level,
		Format: logger.Format(c.Logging.Format),
	}
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
