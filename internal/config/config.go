// Package config loads romawi settings from defaults, an optional config
// file, an optional .env file and ROMAWI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/i18n"
)

const envPrefix = "ROMAWI"

// ModeAuto lets the detector choose the direction per input.
const ModeAuto = "auto"

type Config struct {
	Locale  string `mapstructure:"locale"`
	Mode    string `mapstructure:"mode"`
	Workers int    `mapstructure:"workers"`
}

// New returns a viper instance with romawi's defaults and environment
// binding. Callers bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("locale", i18n.DefaultLocale)
	v.SetDefault("mode", internal.RomanToText.String())
	v.SetDefault("workers", 0)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. When cfgFile is empty, $HOME/.romawi.yaml
// and ./.romawi.yaml are tried and a missing file is not an error. A .env
// file in the working directory is loaded first if present.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; variables may come from the environment directly.
		slog.Debug("no .env file loaded", "error", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".romawi")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		slog.Debug("config file loaded", "path", v.ConfigFileUsed())
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !i18n.IsSupported(c.Locale) {
		return fmt.Errorf("config: unsupported locale %q (supported: %s)", c.Locale, strings.Join(i18n.SupportedLocales, ", "))
	}
	if c.Mode != ModeAuto {
		if _, err := internal.ParseMode(c.Mode); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// ParsedMode returns the configured mode and whether auto detection was
// requested. With auto, the returned mode is the fallback direction.
func (c *Config) ParsedMode() (internal.Mode, bool) {
	if c.Mode == ModeAuto {
		return internal.RomanToText, true
	}
	mode, _ := internal.ParseMode(c.Mode)
	return mode, false
}
