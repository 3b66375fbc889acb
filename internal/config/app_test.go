package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	cfg, err := LoadAppConfig(NewViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "console", cfg.DefaultFormat)
	assert.Empty(t, cfg.RatesFile)
}

func TestLoadAppConfig_Environment(t *testing.T) {
	t.Setenv("TAXFOOTPRINT_ADDR", ":9090")
	t.Setenv("TAXFOOTPRINT_LOG_LEVEL", "DEBUG")
	t.Setenv("TAXFOOTPRINT_LOG_FORMAT", "json")

	cfg, err := LoadAppConfig(NewViper())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadAppConfig_OverrideBeatsEnvironment(t *testing.T) {
	t.Setenv("TAXFOOTPRINT_FORMAT", "csv")

	v := NewViper()
	v.Set(KeyDefaultFormat, "markdown")

	cfg, err := LoadAppConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.DefaultFormat)
}

func TestLoadAppConfig_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyLogFormat, "xml")

	_, err := LoadAppConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log format")

	v.Set(KeyLogFormat, "text")
	v.Set(KeyAddr, "")
	_, err = LoadAppConfig(v)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv("definitely-missing.env"))

	path := writeTemp(t, "test.env", "TAXFOOTPRINT_RATES=/tmp/custom-rates.yaml\n")
	t.Setenv("TAXFOOTPRINT_RATES", "")
	require.NoError(t, os.Unsetenv("TAXFOOTPRINT_RATES"))
	require.NoError(t, LoadDotEnv(path))

	cfg, err := LoadAppConfig(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-rates.yaml", cfg.RatesFile)
}

func TestAppConfigRateTable(t *testing.T) {
	cfg := &AppConfig{}
	rates, err := cfg.RateTable()
	require.NoError(t, err)
	assert.Equal(t, "2025/26", rates.TaxYear)

	cfg.RatesFile = writeTemp(t, "rates.yaml", "tax_year: \"2030/31\"\n")
	rates, err = cfg.RateTable()
	require.NoError(t, err)
	assert.Equal(t, "2030/31", rates.TaxYear)

	cfg.RatesFile = "nonexistent_rates.yaml"
	_, err = cfg.RateTable()
	assert.Error(t, err)
}
