// Package config loads dateboard settings from defaults, a TOML file and
// DATEBOARD_* environment variables, in that order of precedence (lowest
// first). CLI flags are applied on top by the cli package.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const envPrefix = "DATEBOARD"

// Config holds application configuration.
type Config struct {
	Seed SeedConfig `mapstructure:"seed" toml:"seed"`
	UI   UIConfig   `mapstructure:"ui" toml:"ui"`
	Log  LogConfig  `mapstructure:"log" toml:"log"`
}

// SeedConfig points at an optional seed file.
type SeedConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme           string `mapstructure:"theme" toml:"theme"` // classic, neon, mono
	Color           string `mapstructure:"color" toml:"color"` // auto, always, never
	SidebarExpanded bool   `mapstructure:"sidebar_expanded" toml:"sidebar_expanded"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
	File   string `mapstructure:"file" toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI:  UIConfig{Theme: "classic", Color: "auto", SidebarExpanded: true},
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

// Path returns the config file location: DATEBOARD_CONFIG when set, else
// config.toml under the user config directory.
func Path() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "dateboard", "config.toml")
}

// Load reads configuration from path (Path() when empty) and the environment.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("seed.path", d.Seed.Path)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.color", d.UI.Color)
	v.SetDefault("ui.sidebar_expanded", d.UI.SidebarExpanded)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)

	if path == "" {
		path = Path()
	}
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch strings.ToLower(c.UI.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q (want classic, neon or mono)", c.UI.Theme)
	}
	switch strings.ToLower(c.UI.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("ui.color: unknown mode %q (want auto, always or never)", c.UI.Color)
	}
	return nil
}

// Encode writes c as TOML.
func Encode(w io.Writer, c Config) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
