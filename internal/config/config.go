// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmynk/splitledger/internal/quota"
	"github.com/mmynk/splitledger/pkg/logging"
)

var validate = validator.New()

// Config holds application configuration.
type Config struct {
	LogLevel          string
	DailyExpenseLimit int
	DefaultCurrency   string
	DefaultLanguage   string
	Seed              bool
	StrictValidation  bool
	MetricsAddr       string
}

// Load reads configuration from the environment and a .env file if present.
// Real environment variables win over .env values, which win over defaults.
func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LEDGER_DAILY_EXPENSE_LIMIT", quota.DefaultDailyLimit)
	v.SetDefault("LEDGER_DEFAULT_CURRENCY", "USD")
	v.SetDefault("LEDGER_DEFAULT_LANGUAGE", "en")
	v.SetDefault("LEDGER_SEED", true)
	v.SetDefault("LEDGER_STRICT_VALIDATION", false)
	v.SetDefault("METRICS_ADDR", "")
	v.AutomaticEnv()

	cfg := &Config{
		LogLevel:          v.GetString("LOG_LEVEL"),
		DailyExpenseLimit: v.GetInt("LEDGER_DAILY_EXPENSE_LIMIT"),
		DefaultCurrency:   strings.ToUpper(strings.TrimSpace(v.GetString("LEDGER_DEFAULT_CURRENCY"))),
		DefaultLanguage:   v.GetString("LEDGER_DEFAULT_LANGUAGE"),
		Seed:              v.GetBool("LEDGER_SEED"),
		StrictValidation:  v.GetBool("LEDGER_STRICT_VALIDATION"),
		MetricsAddr:       v.GetString("METRICS_ADDR"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if c.DailyExpenseLimit < 1 {
		errs = append(errs, fmt.Errorf("LEDGER_DAILY_EXPENSE_LIMIT must be at least 1, got %d", c.DailyExpenseLimit))
	}
	if err := validate.Var(c.DefaultCurrency, "required,iso4217"); err != nil {
		errs = append(errs, fmt.Errorf("LEDGER_DEFAULT_CURRENCY must be an ISO 4217 code, got %q", c.DefaultCurrency))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	return errors.Join(errs...)
}
