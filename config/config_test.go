package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("NUTRIGATE_SERVER_PORT")
		os.Unsetenv("NUTRIGATE_SERVER_ENVIRONMENT")
		os.Unsetenv("NUTRIGATE_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("NUTRIGATE_UPSTREAM_BASE_URL")
		os.Unsetenv("NUTRIGATE_UPSTREAM_USER_AGENT")
		os.Unsetenv("NUTRIGATE_UPSTREAM_TIMEOUT")
		os.Unsetenv("NUTRIGATE_REGISTRATION_SERVICE_NAME")
		os.Unsetenv("NUTRIGATE_REGISTRATION_BASE_URL")
		os.Unsetenv("NUTRIGATE_REGISTRATION_SAMPLE_BARCODE")
		os.Unsetenv("NUTRIGATE_PAYMENT_ENABLED")
		os.Unsetenv("NUTRIGATE_PAYMENT_PROTOCOL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Upstream.BaseURL != "https://world.openfoodfacts.org" {
			t.Errorf("Upstream.BaseURL = %s, want https://world.openfoodfacts.org", cfg.Upstream.BaseURL)
		}
		if cfg.Upstream.UserAgent != "NutriGate/1.0" {
			t.Errorf("Upstream.UserAgent = %s, want NutriGate/1.0", cfg.Upstream.UserAgent)
		}
		if cfg.Upstream.Timeout != 30*time.Second {
			t.Errorf("Upstream.Timeout = %v, want 30s", cfg.Upstream.Timeout)
		}
		if cfg.Registration.ServiceName != "NutriGate" {
			t.Errorf("Registration.ServiceName = %s, want NutriGate", cfg.Registration.ServiceName)
		}
		if cfg.Registration.SampleBarcode != "3017620422003" {
			t.Errorf("Registration.SampleBarcode = %s, want 3017620422003", cfg.Registration.SampleBarcode)
		}
		if !cfg.Payment.Enabled {
			t.Error("Payment.Enabled = false, want true")
		}
		if cfg.Payment.Protocol != "x402" {
			t.Errorf("Payment.Protocol = %s, want x402", cfg.Payment.Protocol)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("NUTRIGATE_SERVER_PORT", "9090")
		os.Setenv("NUTRIGATE_SERVER_ENVIRONMENT", "production")
		os.Setenv("NUTRIGATE_UPSTREAM_BASE_URL", "https://world.openfoodfacts.net")
		os.Setenv("NUTRIGATE_UPSTREAM_TIMEOUT", "10s")
		os.Setenv("NUTRIGATE_REGISTRATION_SERVICE_NAME", "CustomGate")
		os.Setenv("NUTRIGATE_PAYMENT_PROTOCOL", "l402")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Upstream.BaseURL != "https://world.openfoodfacts.net" {
			t.Errorf("Upstream.BaseURL = %s, want override", cfg.Upstream.BaseURL)
		}
		if cfg.Upstream.Timeout != 10*time.Second {
			t.Errorf("Upstream.Timeout = %v, want 10s", cfg.Upstream.Timeout)
		}
		if cfg.Registration.ServiceName != "CustomGate" {
			t.Errorf("Registration.ServiceName = %s, want CustomGate", cfg.Registration.ServiceName)
		}
		if cfg.Payment.Protocol != "l402" {
			t.Errorf("Payment.Protocol = %s, want l402", cfg.Payment.Protocol)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Upstream: UpstreamConfig{
				BaseURL: "https://world.openfoodfacts.org",
				Timeout: 30 * time.Second,
			},
			Registration: RegistrationConfig{
				BaseURL: "http://localhost:8080",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing upstream base URL",
			mutate:  func(c *Config) { c.Upstream.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "non-positive upstream timeout",
			mutate:  func(c *Config) { c.Upstream.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "missing registration base URL",
			mutate:  func(c *Config) { c.Registration.BaseURL = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
