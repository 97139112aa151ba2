package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
	Seed SeedConfig `mapstructure:"seed"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ToastTTL       time.Duration `mapstructure:"toast_ttl"`
	CurrencySymbol string        `mapstructure:"currency_symbol"`
	Width          int           `mapstructure:"width"`
}

// LogConfig holds the log file settings. The terminal belongs to the UI,
// so logs never go to stdout.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// SeedConfig points at an optional mock-data document.
type SeedConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix SERVIHOGAR_.
// An explicit path wins over SERVIHOGAR_CONFIG and must exist.
func Load(path string) (Config, error) {
	return load(path, false)
}

// LoadOrDefaults is Load, except that a missing explicit file yields the
// defaults plus env overrides. Used when the file is about to be created.
func LoadOrDefaults(path string) (Config, error) {
	return load(path, true)
}

func load(path string, allowMissing bool) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("SERVIHOGAR_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "servihogar"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SERVIHOGAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path == "" && errors.As(err, &notFound):
		case path != "" && allowMissing && errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.ToastTTL <= 0 {
		c.UI.ToastTTL = defaultToastTTL
	}
	if c.UI.Width < minWidth {
		c.UI.Width = minWidth
	}
	return c, nil
}

const (
	defaultToastTTL = 3 * time.Second
	minWidth        = 40
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.toast_ttl", defaultToastTTL)
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.width", 60)
	v.SetDefault("log.path", filepath.Join(homeDir(), ".local", "state", "servihogar", "servihogar.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.path", "")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.toast_ttl", cfg.UI.ToastTTL.String())
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.width", cfg.UI.Width)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("seed.path", cfg.Seed.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultPath is SERVIHOGAR_CONFIG when set, else the per-user config file.
func DefaultPath() string {
	if p := os.Getenv("SERVIHOGAR_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".config", "servihogar", "config.toml")
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}
