package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultTheme          = "nord"
	DefaultSplashSeconds  = 5
)

var (
	// ErrInvalidTheme is returned for a theme name that is not built in
	ErrInvalidTheme = errors.New("unknown theme")
	// ErrInvalidSplash is returned for a negative splash duration
	ErrInvalidSplash = errors.New("splash_seconds must not be negative")
)

// Themes lists the theme names a config may select
var Themes = []string{"nord", "dracula", "gruvbox", "catppuccin"}

type Config struct {
	Theme          string `toml:"theme"`
	SplashSeconds  int    `toml:"splash_seconds"`
	SeedDemo       bool   `toml:"seed_demo"`
	SingleInstance bool   `toml:"single_instance"`
	RuntimeDir     string `toml:"runtime_dir"`
	LogPath        string `toml:"log_path"`
	LogLevel       string `toml:"log_level"`
}

// SplashDuration returns how long the splash screen stays up
func (c Config) SplashDuration() time.Duration {
	return time.Duration(c.SplashSeconds) * time.Second
}

// Validate checks values a hand-edited file could get wrong
func (c Config) Validate() error {
	known := false
	for _, name := range Themes {
		if name == c.Theme {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}
	if c.SplashSeconds < 0 {
		return ErrInvalidSplash
	}
	return nil
}

// ResolveConfigPath returns the default config file location
func ResolveConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "dayly", DefaultConfigFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(home, ".config", "dayly", DefaultConfigFileName)
}

// DefaultRuntimeDir returns where the instance lock lives
func DefaultRuntimeDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "dayly")
	}
	return filepath.Join(os.TempDir(), "dayly")
}

// LoadOrCreate reads the config at path, writing defaults first when the
// file does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("failed to write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.RuntimeDir == "" {
		cfg.RuntimeDir = DefaultRuntimeDir()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Theme:          DefaultTheme,
		SplashSeconds:  DefaultSplashSeconds,
		SeedDemo:       false,
		SingleInstance: true,
		RuntimeDir:     DefaultRuntimeDir(),
		LogPath:        "",
		LogLevel:       "info",
	}
}
