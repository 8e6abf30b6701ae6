package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName      = "jewelrybox"
	settingsFile = "config.yaml"
)

// Settings holds the appliance tunables. Everything is optional; zero values
// are replaced by defaults so an absent file behaves like a default install.
type Settings struct {
	// MessageFontSize is the point size used for inbound text messages.
	MessageFontSize int `yaml:"message_font_size"`
	// WelcomeFontSize is the smaller point size kept for secondary text.
	WelcomeFontSize int `yaml:"welcome_font_size"`
	// PollTimeoutSeconds is the long-poll timeout for the Telegram updates
	// channel.
	PollTimeoutSeconds int `yaml:"poll_timeout_seconds"`
	// SPIPort is the periph.io SPI port name for the display HAT. Empty
	// selects the platform default port (/dev/spidev0.0 on a Pi).
	SPIPort string `yaml:"spi_port"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		MessageFontSize:    24,
		WelcomeFontSize:    18,
		PollTimeoutSeconds: 30,
		SPIPort:            "",
	}
}

// DefaultSettingsPath returns the platform config file location,
// $XDG_CONFIG_HOME/jewelrybox/config.yaml or $HOME/.config/jewelrybox/config.yaml.
func DefaultSettingsPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, settingsFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, settingsFile), nil
}

// LoadSettings reads the YAML settings file at path, overlaying it on the
// defaults. When path is empty the default location is used. A missing file
// yields the defaults; a malformed file or invalid values are errors.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path == "" {
		var err error
		if path, err = DefaultSettingsPath(); err != nil {
			return s, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if file.MessageFontSize != 0 {
		s.MessageFontSize = file.MessageFontSize
	}
	if file.WelcomeFontSize != 0 {
		s.WelcomeFontSize = file.WelcomeFontSize
	}
	if file.PollTimeoutSeconds != 0 {
		s.PollTimeoutSeconds = file.PollTimeoutSeconds
	}
	if file.SPIPort != "" {
		s.SPIPort = file.SPIPort
	}

	if err := s.validate(); err != nil {
		return DefaultSettings(), fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.MessageFontSize <= 0 {
		return fmt.Errorf("message_font_size must be positive, got %d", s.MessageFontSize)
	}
	if s.WelcomeFontSize <= 0 {
		return fmt.Errorf("welcome_font_size must be positive, got %d", s.WelcomeFontSize)
	}
	if s.PollTimeoutSeconds <= 0 {
		return fmt.Errorf("poll_timeout_seconds must be positive, got %d", s.PollTimeoutSeconds)
	}
	return nil
}
