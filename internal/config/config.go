// Package config reads the optional presentation settings file. It is
// stored at ~/.config/season-renamer/config.toml; every setting has a
// default, so the file never needs to exist.
//
// Nothing in it changes what gets renamed: the walk always starts at the
// working directory and every plan is still confirmed by hand.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds application configuration
type Config struct {
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig controls the review screens
type DisplayConfig struct {
	// ClearScreen pushes old output off screen before each plan.
	ClearScreen bool `toml:"clear_screen"`

	// DetectTheme reads colours from the terminal's own config and
	// reloads them when that config changes.
	DetectTheme bool `toml:"detect_theme"`
}

// LogConfig controls diagnostic output on stderr
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Display: DisplayConfig{
			ClearScreen: true,
			DetectTheme: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "season-renamer", "config.toml")
}

// Load reads the config file or returns defaults.
func Load() (Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads config from path. A missing file is not an error. On any
// other failure the defaults are returned along with the error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// SlogLevel converts Log.Level to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return level, nil
}
