package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvSessionPopup  = "TMUX_STATUS_SESSION_POPUP"
	EnvCalendarPopup = "TMUX_STATUS_CALENDAR_POPUP"
	EnvLogPath       = "TMUX_STATUS_LOG"

	defaultSessionPopup  = "~/.config/tmux/popup-switch-session.sh"
	defaultCalendarPopup = "~/.config/tmux/popup-cal.sh"
)

// Settings are the knobs that do not change between invocations.
type Settings struct {
	SessionPopup  string
	CalendarPopup string
	LogPath       string
}

func DefaultSettings() Settings {
	return Settings{
		SessionPopup:  defaultSessionPopup,
		CalendarPopup: defaultCalendarPopup,
	}
}

func DefaultSettingsPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tmux", "tmux-status.env"), nil
}

// LoadSettings reads the dotenv file at path on top of the defaults, then
// applies non-empty values from getenv. A missing file is not an error. On
// a malformed file the defaults plus environment are still returned along
// with the error.
func LoadSettings(path string, getenv func(string) string) (Settings, error) {
	s := DefaultSettings()
	if getenv == nil {
		getenv = os.Getenv
	}

	var loadErr error
	if path != "" {
		values, err := godotenv.Read(path)
		switch {
		case err == nil:
			s.apply(func(key string) string { return values[key] })
		case errors.Is(err, os.ErrNotExist):
		default:
			loadErr = fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	s.apply(getenv)
	return s, loadErr
}

func (s *Settings) apply(lookup func(string) string) {
	if v := strings.TrimSpace(lookup(EnvSessionPopup)); v != "" {
		s.SessionPopup = v
	}
	if v := strings.TrimSpace(lookup(EnvCalendarPopup)); v != "" {
		s.CalendarPopup = v
	}
	if v := strings.TrimSpace(lookup(EnvLogPath)); v != "" {
		s.LogPath = v
	}
}
