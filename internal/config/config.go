// Package config loads runtime configuration from defaults, an optional
// pandamj.yaml file and PANDAMJ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PANDAMJ_LOG_LEVEL.
const EnvPrefix = "PANDAMJ"

// Config holds all runtime configuration.
type Config struct {
	DB  DBConfig  `mapstructure:"db"`
	Log LogConfig `mapstructure:"log"`
	UI  UIConfig  `mapstructure:"ui"`
}

// DBConfig holds storage configuration.
type DBConfig struct {
	// Path of the SQLite file. Empty means the XDG data directory.
	Path string `mapstructure:"path"`
}

// UIConfig holds terminal UI preferences that are not per-learner.
type UIConfig struct {
	SkipSplash bool `mapstructure:"skip_splash"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // text or json
	File       string `mapstructure:"file"`   // empty logs to stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Load reads configuration into a Config. When configFile is empty,
// pandamj.yaml is looked up in the working directory and the XDG config
// directory, and a missing file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("pandamj")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	var errs []string
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format: must be text or json, got %q", c.Log.Format))
	}
	if c.Log.MaxSizeMB < 0 {
		errs = append(errs, "log.max_size_mb: must not be negative")
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, "log.max_backups: must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("ui.skip_splash", false)
}

// configDir returns $XDG_CONFIG_HOME/pandamj, falling back to ~/.config/pandamj.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pandamj"), nil
}
