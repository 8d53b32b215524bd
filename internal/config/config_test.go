package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no stray .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3, cfg.DailyExpenseLimit)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.True(t, cfg.Seed)
	assert.False(t, cfg.StrictValidation)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LEDGER_DAILY_EXPENSE_LIMIT", "5")
	t.Setenv("LEDGER_DEFAULT_CURRENCY", "eur")
	t.Setenv("LEDGER_SEED", "false")
	t.Setenv("LEDGER_STRICT_VALIDATION", "true")
	t.Setenv("METRICS_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.DailyExpenseLimit)
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
	assert.False(t, cfg.Seed)
	assert.True(t, cfg.StrictValidation)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LEDGER_DEFAULT_LANGUAGE=es\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LEDGER_DEFAULT_LANGUAGE") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.DefaultLanguage)
}

func TestLoadRejectsInvalid(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LEDGER_DAILY_EXPENSE_LIMIT", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "LEDGER_DAILY_EXPENSE_LIMIT")
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "info", DailyExpenseLimit: 3, DefaultCurrency: "USD"}
	assert.NoError(t, valid.Validate())

	bad := Config{LogLevel: "loud", DailyExpenseLimit: 0, DefaultCurrency: "US"}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "LEDGER_DAILY_EXPENSE_LIMIT")
	assert.ErrorContains(t, err, "LEDGER_DEFAULT_CURRENCY")
	assert.ErrorContains(t, err, "LOG_LEVEL")
}

func TestLoadRejectsUnknownCurrency(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LEDGER_DEFAULT_CURRENCY", "QQQ")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "LEDGER_DEFAULT_CURRENCY")
}

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		currency string
		wantErr  bool
	}{
		{currency: "USD"},
		{currency: "EUR"},
		{currency: "JPY"},
		{currency: "QQQ", wantErr: true},
		{currency: "US", wantErr: true},
		{currency: "usd", wantErr: true},
		{currency: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			cfg := Config{LogLevel: "info", DailyExpenseLimit: 3, DefaultCurrency: tt.currency}
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorContains(t, err, "LEDGER_DEFAULT_CURRENCY")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
