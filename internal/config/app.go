package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// EnvPrefix namespaces the environment variables the binaries read.
const EnvPrefix = "TAXFOOTPRINT"

// Setting keys shared by flags, environment and config files.
const (
	KeyAddr          = "addr"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
	KeyRatesFile     = "rates"
	KeyDefaultFormat = "format"
)

// AppConfig holds process-level settings for the CLI and HTTP server.
type AppConfig struct {
	Addr          string
	LogLevel      string
	LogFormat     string
	RatesFile     string
	DefaultFormat string
}

// SetDefaults registers the built-in setting values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyRatesFile, "")
	v.SetDefault(KeyDefaultFormat, "console")
}

// NewViper returns a viper instance bound to TAXFOOTPRINT_* variables, so
// TAXFOOTPRINT_LOG_LEVEL sets "log-level".
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are named. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// LoadAppConfig resolves settings from v. Flags bound to v take precedence
// over the environment, which takes precedence over defaults.
func LoadAppConfig(v *viper.Viper) (*AppConfig, error) {
	cfg := &AppConfig{
		Addr:          v.GetString(KeyAddr),
		LogLevel:      strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:     strings.ToLower(v.GetString(KeyLogFormat)),
		RatesFile:     v.GetString(KeyRatesFile),
		DefaultFormat: v.GetString(KeyDefaultFormat),
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("listen address cannot be empty")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("log format must be 'text' or 'json', got %q", cfg.LogFormat)
	}
	return cfg, nil
}

// RateTable returns the rate table named by cfg, or the built-in table when
// no rates file is configured.
func (cfg *AppConfig) RateTable() (domain.RateTable, error) {
	if cfg.RatesFile == "" {
		return domain.DefaultRateTable(), nil
	}
	rates, err := NewRatesLoader().LoadFromFile(cfg.RatesFile)
	if err != nil {
		return domain.RateTable{}, err
	}
	return *rates, nil
}
