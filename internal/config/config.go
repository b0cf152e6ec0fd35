package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Reviews   ReviewsConfig   `yaml:"reviews"`
	Payment   PaymentConfig   `yaml:"payment"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogConfig contains equipment catalog source settings
type CatalogConfig struct {
	Path string `yaml:"path"` // JSON file holding the equipment records
}

// ReviewsConfig contains review persistence settings
type ReviewsConfig struct {
	DBPath string `yaml:"db_path"` // BoltDB file for customer reviews
}

// PaymentConfig contains mock payment settings
type PaymentConfig struct {
	ProcessingDelayMillis int `yaml:"processing_delay_millis"`
}

// SMTPConfig contains email service settings. Leave the host empty to
// disable outbound mail entirely.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ReloadCatalog string `yaml:"reload_catalog"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Catalog
	if val := os.Getenv("CATALOG_PATH"); val != "" {
		c.Catalog.Path = val
	}

	// Reviews
	if val := os.Getenv("REVIEWS_DB_PATH"); val != "" {
		c.Reviews.DBPath = val
	}

	// Payment
	if val := os.Getenv("PAYMENT_DELAY_MILLIS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Payment.ProcessingDelayMillis)
	}

	// SMTP
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}
	if val := os.Getenv("SMTP_FROM"); val != "" {
		c.SMTP.From = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Catalog validation
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required")
	}

	// Reviews validation
	if c.Reviews.DBPath == "" {
		return fmt.Errorf("reviews database path is required")
	}

	// Payment defaults — the mock gateway simulates a 2 second charge
	if c.Payment.ProcessingDelayMillis <= 0 {
		c.Payment.ProcessingDelayMillis = 2000
	}

	// Scheduler defaults
	if c.Scheduler.ReloadCatalog == "" {
		c.Scheduler.ReloadCatalog = "0 0 * * * *" // Hourly at minute 0
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
