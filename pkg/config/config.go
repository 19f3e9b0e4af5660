package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"othctl/pkg/blackboard"
	"othctl/pkg/mensa"
	"othctl/pkg/web"

	"github.com/spf13/viper"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	BlackboardURL    string `json:"blackboard_url,omitempty" mapstructure:"blackboard_url"`
	MensaURLTemplate string `json:"mensa_url_template,omitempty" mapstructure:"mensa_url_template"`
	Format           string `json:"format,omitempty" mapstructure:"format"`
	AccentColor      string `json:"accent_color,omitempty" mapstructure:"accent_color"`
	CacheMenus       bool   `json:"cache_menus,omitempty" mapstructure:"cache_menus"`
	Parallelism      int    `json:"parallelism,omitempty" mapstructure:"parallelism"`
	Timeout          string `json:"timeout,omitempty" mapstructure:"timeout"` // Go duration, e.g. "10s"
	UserAgent        string `json:"user_agent,omitempty" mapstructure:"user_agent"`
}

// Defaults returns the settings used when neither the file nor the environment sets a value
func Defaults() AppConfig {
	return AppConfig{
		BlackboardURL:    blackboard.DefaultURL,
		MensaURLTemplate: mensa.DefaultURLTemplate,
		Format:           "text",
		AccentColor:      "99",
		Parallelism:      blackboard.DefaultParallelism,
		Timeout:          web.DefaultTimeout.String(),
		UserAgent:        web.DefaultUserAgent,
	}
}

// RequestTimeout parses Timeout, falling back to 10 seconds
func (c *AppConfig) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return web.DefaultTimeout
	}
	return d
}

// getConfigPath returns the absolute path to ~/.othctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".othctl.json"), nil
}

// Load reads the configuration from ~/.othctl.json.
// Missing files yield the defaults; OTHCTL_* environment variables override both.
func Load() (*AppConfig, error) {
	return LoadFrom("")
}

// LoadFrom reads the configuration from path, or from ~/.othctl.json when path is empty
func LoadFrom(path string) (*AppConfig, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("OTHCTL")
	v.AutomaticEnv()

	return readConfig(v, path)
}

// LoadFile reads only the settings stored in the file at path, without defaults or environment overrides.
// A missing file yields an empty config.
func LoadFile(path string) (*AppConfig, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return readConfig(viper.New(), path)
}

func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return getConfigPath()
}

func readConfig(v *viper.Viper, path string) (*AppConfig, error) {
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("blackboard_url", d.BlackboardURL)
	v.SetDefault("mensa_url_template", d.MensaURLTemplate)
	v.SetDefault("format", d.Format)
	v.SetDefault("accent_color", d.AccentColor)
	v.SetDefault("cache_menus", d.CacheMenus)
	v.SetDefault("parallelism", d.Parallelism)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("user_agent", d.UserAgent)
}

// Save writes the application configuration to ~/.othctl.json.
func Save(cfg *AppConfig) error {
	return SaveTo("", cfg)
}

// SaveTo writes the application configuration to path, or to ~/.othctl.json when path is empty.
// Use Update to change single settings of a config that was loaded with LoadFrom.
func SaveTo(path string, cfg *AppConfig) error {
	path, err := resolvePath(path)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Update applies edit to the settings stored in the file and writes them back.
// Values that only come from defaults or OTHCTL_* variables are not persisted.
func Update(path string, edit func(*AppConfig)) error {
	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}
	edit(cfg)
	return SaveTo(path, cfg)
}
