package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Window bounds for the lookahead, in weeks. The engine projects any
// window it is given; these bounds are enforced here at the application
// boundary.
const (
	MinWindowWeeks     = 5
	MaxWindowWeeks     = 12
	DefaultWindowWeeks = 5
)

// DefaultBuffer is the safety margin subtracted from the projected lowest
// balance when deriving the "safe to spend" number.
const DefaultBuffer = 250.0

// Config holds all clearahead configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	WindowWeeks int     `toml:"window_weeks"`
	Buffer      float64 `toml:"buffer"`
	Currency    string  `toml:"currency"`
	DataPath    string  `toml:"data_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			WindowWeeks: DefaultWindowWeeks,
			Buffer:      DefaultBuffer,
			Currency:    "£",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ClampWindow pins a requested lookahead to the supported range.
func ClampWindow(weeks int) int {
	if weeks < MinWindowWeeks {
		return MinWindowWeeks
	}
	if weeks > MaxWindowWeeks {
		return MaxWindowWeeks
	}
	return weeks
}

// SafeNumber is the display-level "safe to spend" figure: the projected
// lowest balance minus the buffer, clamped at zero. The projection itself
// stays overdraft-aware; only this derived number is clamped.
func SafeNumber(lowest, buffer float64) float64 {
	if v := lowest - buffer; v > 0 {
		return v
	}
	return 0
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "clearahead")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "clearahead")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataPath returns the profile database path: the configured override if
// set, otherwise an XDG data-dir default.
func DataPath(cfg Config) string {
	if cfg.General.DataPath != "" {
		return cfg.General.DataPath
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "clearahead", "clearahead.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "clearahead", "clearahead.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
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

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
