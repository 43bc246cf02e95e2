// Package settings manages the display configuration consumed by the
// GUI: auto-advance interval, display mode and translation visibility.
// Settings persist to a JSON file and write through on every change.
package settings

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Recognized settings keys.
const (
	KeyDisplayInterval = "display_interval"
	KeyDisplayMode     = "display_mode"
	KeyShowChinese     = "show_chinese"
)

// Display modes.
const (
	ModeRandom     = "random"
	ModeSequential = "sequential"
)

// Manager loads, exposes and persists the application settings. A
// missing or malformed settings file falls back to defaults.
type Manager struct {
	filepath string
	v        *viper.Viper
}

// NewManager creates a settings manager backed by the given JSON file.
func NewManager(filepath string) *Manager {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("json")

	v.SetDefault(KeyDisplayInterval, 3)
	v.SetDefault(KeyDisplayMode, ModeRandom)
	v.SetDefault(KeyShowChinese, true)

	// Missing or corrupt files are tolerated; defaults apply and user
	// values merge over them when the file is readable.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: could not read settings file %s: %v\n", filepath, err)
		}
	}

	return &Manager{filepath: filepath, v: v}
}

// DisplayInterval returns the auto-advance interval in seconds.
// Zero disables auto-advance.
func (m *Manager) DisplayInterval() int {
	return m.v.GetInt(KeyDisplayInterval)
}

// DisplayMode returns "random" or "sequential".
func (m *Manager) DisplayMode() string {
	return m.v.GetString(KeyDisplayMode)
}

// ShowChinese reports whether the translation should be displayed.
func (m *Manager) ShowChinese() bool {
	return m.v.GetBool(KeyShowChinese)
}

// Set stores a value and immediately writes the settings file.
func (m *Manager) Set(key string, value any) error {
	m.v.Set(key, value)
	if err := m.v.WriteConfigAs(m.filepath); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", m.filepath, err)
	}
	return nil
}
