package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings. Key bindings are fixed and not part of it.
type Config struct {
	WindowTitle     string  `yaml:"window_title"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	Opacity         float64 `yaml:"opacity"`          // layered window alpha, 0-1
	BackgroundAlpha float64 `yaml:"background_alpha"` // view background alpha, 0-1
	StartX          int     `yaml:"start_x"`          // -1 = framework placement
	StartY          int     `yaml:"start_y"`
	QueueCapacity   int     `yaml:"queue_capacity"`
	ShowTray        bool    `yaml:"show_tray"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		WindowTitle:     "Hotkey Overlay",
		Width:           300,
		Height:          200,
		Opacity:         0.85,
		BackgroundAlpha: 0.6,
		StartX:          -1,
		StartY:          -1,
		QueueCapacity:   100,
		ShowTray:        true,
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var errs []error
	if c.WindowTitle == "" {
		errs = append(errs, errors.New("window_title must not be empty"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Opacity <= 0 || c.Opacity > 1 {
		errs = append(errs, fmt.Errorf("opacity must be in (0, 1], got %v", c.Opacity))
	}
	if c.BackgroundAlpha < 0 || c.BackgroundAlpha > 1 {
		errs = append(errs, fmt.Errorf("background_alpha must be in [0, 1], got %v", c.BackgroundAlpha))
	}
	if c.QueueCapacity < 1 {
		errs = append(errs, fmt.Errorf("queue_capacity must be at least 1, got %d", c.QueueCapacity))
	}
	return errors.Join(errs...)
}

// HasStartPosition reports whether an explicit start position is configured
func (c *Config) HasStartPosition() bool {
	return c.StartX >= 0 && c.StartY >= 0
}

// DefaultConfigPath returns the path to the config file.
// Uses platform-appropriate directories:
//   - Windows: %APPDATA%\HotkeyOverlay\config.yaml
//   - macOS:   ~/Library/Application Support/HotkeyOverlay/config.yaml
//   - Linux:   ~/.config/hotkey-overlay/config.yaml (XDG_CONFIG_HOME)
func DefaultConfigPath() (string, error) {
	var dir string

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		dir = filepath.Join(appData, "HotkeyOverlay")

	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, "Library", "Application Support", "HotkeyOverlay")

	default: // linux and others
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			configHome = filepath.Join(home, ".config")
		}
		dir = filepath.Join(configHome, "hotkey-overlay")
	}

	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config from the default location
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the config at path over the defaults. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
