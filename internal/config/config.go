package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverYAML   = "yaml"
)

// UI modes.
const (
	UIModeLine = "line"
	UIModeTUI  = "tui"
	UIModeAuto = "auto"
)

// Config holds application configuration.
type Config struct {
	Store StoreConfig
	Log   LogConfig
	UI    UIConfig
}

// StoreConfig selects where the record set lives. An empty Path means
// the driver's default file under ~/.tally.
type StoreConfig struct {
	Driver string
	Path   string
}

type LogConfig struct {
	Enabled bool
}

type UIConfig struct {
	Mode string
}

// Load reads configuration from file and env. Env var overrides use
// prefix TALLY_, e.g. TALLY_STORE_DRIVER=yaml.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.path", "")
	v.SetDefault("log.enabled", false)
	v.SetDefault("ui.mode", UIModeLine)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TALLY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tally"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TALLY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing default config file is fine; an explicit one must load.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.normalize(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	c.UI.Mode = strings.ToLower(strings.TrimSpace(c.UI.Mode))

	switch c.Store.Driver {
	case DriverSQLite, DriverYAML:
	default:
		return fmt.Errorf("store.driver %q: must be %q or %q", c.Store.Driver, DriverSQLite, DriverYAML)
	}
	switch c.UI.Mode {
	case UIModeLine, UIModeTUI, UIModeAuto:
	default:
		return fmt.Errorf("ui.mode %q: must be %q, %q or %q", c.UI.Mode, UIModeLine, UIModeTUI, UIModeAuto)
	}

	if c.Store.Path == "" {
		p, err := DefaultStorePath(c.Store.Driver)
		if err != nil {
			return err
		}
		c.Store.Path = p
	}
	return nil
}

// DefaultStorePath is ~/.tally/tally.db for sqlite and
// ~/.tally/records.yaml for yaml.
func DefaultStorePath(driver string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	name := "tally.db"
	if driver == DriverYAML {
		name = "records.yaml"
	}
	return filepath.Join(home, ".tally", name), nil
}
