package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Mode     string
	CrashLog CrashLogConfig
}

// CrashLogConfig controls the local sqlite crash log.
type CrashLogConfig struct {
	Enabled bool
	Path    string
}

// Load reads configuration from file and env. Env var overrides use prefix TEAGUARD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("mode", "production")
	v.SetDefault("crashlog.enabled", false)
	v.SetDefault("crashlog.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "teaguard", "crash.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TEAGUARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "teaguard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TEAGUARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
