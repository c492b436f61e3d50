package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "PHOTOACTIVATION"

// Config holds the plugin settings the host applies to the photoactivation panel.
type Config struct {
	// Lasers populates the "Laser" combobox.
	Lasers []string `mapstructure:"lasers"`
	// Patterns populates the "Pattern" combobox.
	Patterns []string `mapstructure:"patterns"`
	// Defaults holds initial field values keyed by field key (e.g. "power").
	Defaults map[string]string `mapstructure:"defaults"`
	Log      LogConfig         `mapstructure:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix PHOTOACTIVATION_.
// An explicit file named by PHOTOACTIVATION_CONFIG must exist; the default location is optional.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("lasers", []string{"488nm", "562nm", "642nm"})
	v.SetDefault("patterns", []string{"Point", "Line", "Square"})
	v.SetDefault("defaults", map[string]string{})
	v.SetDefault("log.level", "info")

	v.SetConfigType("yaml")

	cfgPath := os.Getenv(envPrefix + "_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(userConfigDir(), "photoactivation"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Defaults == nil {
		c.Defaults = map[string]string{}
	}
	return c, nil
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}
