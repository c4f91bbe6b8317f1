package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	Env         string `mapstructure:"ENV"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	RedisURL    string `mapstructure:"REDIS_URL"`
	InvoiceDir  string `mapstructure:"INVOICE_DIR"`
	SMTPHost    string `mapstructure:"SMTP_HOST"`
	SMTPPort    int    `mapstructure:"SMTP_PORT"`
	SMTPUser    string `mapstructure:"SMTP_USER"`
	SMTPPass    string `mapstructure:"SMTP_PASS"`
}

// Load reads configuration from a .env file when present and from the
// environment otherwise. DATABASE_URL is the only required setting;
// Redis and SMTP stay optional.
func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("INVOICE_DIR", "output/invoices")
	v.SetDefault("SMTP_PORT", 587)

	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("REDIS_URL")
	v.BindEnv("INVOICE_DIR")
	v.BindEnv("SMTP_HOST")
	v.BindEnv("SMTP_PORT")
	v.BindEnv("SMTP_USER")
	v.BindEnv("SMTP_PASS")

	// A missing .env file is fine; the environment still applies.
	_ = v.ReadInConfig()

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

// IsDev reports whether the process runs in development mode, which
// turns on verbose SQL logging.
func (c *AppConfig) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Redis cache should be wired in.
func (c *AppConfig) CacheEnabled() bool {
	return c.RedisURL != ""
}

// SMTPConfigured reports whether invoice email delivery is available.
func (c *AppConfig) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != ""
}
