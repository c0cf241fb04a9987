// Package config loads savealloc settings from a TOML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"
)

// Config holds all savealloc configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
}

// GeneralConfig holds data and prompting preferences.
type GeneralConfig struct {
	DataFile    string `toml:"data_file"`
	PromptStyle string `toml:"prompt_style"`
}

// DisplayConfig holds output formatting settings.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Theme    string `toml:"theme"`
}

// envOverrides are applied on top of the file. Unset variables leave the
// file value alone.
type envOverrides struct {
	DataFile    string `env:"SAVEALLOC_DATA_FILE"`
	PromptStyle string `env:"SAVEALLOC_PROMPT_STYLE"`
	Currency    string `env:"SAVEALLOC_CURRENCY"`
	Theme       string `env:"SAVEALLOC_THEME"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DataFile:    "userdata.txt",
			PromptStyle: "auto",
		},
		Display: DisplayConfig{
			Currency: "$",
			Theme:    "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "savealloc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "savealloc")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies SAVEALLOC_* environment overrides.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads only the config file, without environment overrides.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	if ov.DataFile != "" {
		cfg.General.DataFile = ov.DataFile
	}
	if ov.PromptStyle != "" {
		cfg.General.PromptStyle = ov.PromptStyle
	}
	if ov.Currency != "" {
		cfg.Display.Currency = ov.Currency
	}
	if ov.Theme != "" {
		cfg.Display.Theme = ov.Theme
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
