package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	Stripe      StripeConfig
	SMTP        SMTPConfig
	Checkout    CheckoutConfig
	Admin       AdminConfig
	LogLevel    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type CheckoutConfig struct {
	ShippingFee float64
	// AutoCreateProducts enables the test fixture strategy that creates
	// missing product rows before writing order items. Ignored in production.
	AutoCreateProducts bool
}

type AdminConfig struct {
	APIKeyHash string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("STRIPE_CURRENCY", "usd")
	viper.SetDefault("SHIPPING_FEE", "12.99")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	shippingFee, err := strconv.ParseFloat(getEnvOrViper("SHIPPING_FEE", "12.99"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SHIPPING_FEE: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "storefront"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Stripe: StripeConfig{
			SecretKey: getEnvOrViper("STRIPE_SECRET_KEY", ""),
			Currency:  getEnvOrViper("STRIPE_CURRENCY", "usd"),
		},
		SMTP: SMTPConfig{
			Host:     getEnvOrViper("SMTP_HOST", ""),
			Port:     getEnvOrViper("SMTP_PORT", "587"),
			Username: getEnvOrViper("SMTP_USERNAME", ""),
			Password: getEnvOrViper("SMTP_PASSWORD", ""),
			From:     getEnvOrViper("SMTP_FROM", "no-reply@mapcraft.example"),
		},
		Checkout: CheckoutConfig{
			ShippingFee:        shippingFee,
			AutoCreateProducts: getEnvOrViper("AUTO_CREATE_PRODUCTS", "false") == "true",
		},
		Admin: AdminConfig{
			APIKeyHash: getEnvOrViper("ADMIN_API_KEY_HASH", ""),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Stripe.SecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}

	// The fixture strategy must never run against a production store
	if cfg.Environment == "production" {
		cfg.Checkout.AutoCreateProducts = false
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with the production profile
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
