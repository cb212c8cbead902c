package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server       ServerConfig
	Upstream     UpstreamConfig
	Registration RegistrationConfig
	Payment      PaymentConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UpstreamConfig holds Open Food Facts API configuration
type UpstreamConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// RegistrationConfig holds the service-discovery metadata published at
// the well-known path
type RegistrationConfig struct {
	ServiceName   string `mapstructure:"service_name"`
	Description   string `mapstructure:"description"`
	BaseURL       string `mapstructure:"base_url"`
	IconPath      string `mapstructure:"icon_path"`
	SampleBarcode string `mapstructure:"sample_barcode"`
}

// PaymentConfig declares the payment protocol the external gate speaks
type PaymentConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Protocol string `mapstructure:"protocol"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/nutrigate/")

	// Environment variable settings. Nested keys use underscores in the
	// environment, e.g. upstream.base_url -> NUTRIGATE_UPSTREAM_BASE_URL.
	v.SetEnvPrefix("NUTRIGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Upstream defaults
	v.SetDefault("upstream.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("upstream.user_agent", "NutriGate/1.0")
	v.SetDefault("upstream.timeout", "30s")

	// Registration defaults
	v.SetDefault("registration.service_name", "NutriGate")
	v.SetDefault("registration.description", "Metered food and nutrition data gateway backed by Open Food Facts")
	v.SetDefault("registration.base_url", "http://localhost:8080")
	v.SetDefault("registration.icon_path", "./icon.png")
	v.SetDefault("registration.sample_barcode", "3017620422003")

	// Payment defaults
	v.SetDefault("payment.enabled", true)
	v.SetDefault("payment.protocol", "x402")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL is required (set NUTRIGATE_UPSTREAM_BASE_URL)")
	}

	if config.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got: %s", config.Upstream.Timeout)
	}

	if config.Registration.BaseURL == "" {
		return fmt.Errorf("registration base URL is required")
	}

	return nil
}
