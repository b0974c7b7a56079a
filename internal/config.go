// Package internal provides the terminal portfolio application: the
// Bubble Tea model, the page chrome and persistent user preferences.
//
// The configuration part of the package handles:
//   - Saving and loading display preferences across sessions
//   - Configuration file management with proper error handling
//   - Default configuration setup for new users
//
// Preferences persist so a reader who turns reduced motion on, or
// forces ASCII glyphs, keeps that choice the next time they open the
// page.
package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// settingsVersion is the config format version written to disk
const settingsVersion = "1.0"

// Settings represents persistent display preferences.
// This structure is saved to disk to remember user choices between sessions.
type Settings struct {
	// Metadata
	Version     string    `json:"version"`      // Config format version for migration
	LastUpdated time.Time `json:"last_updated"` // When this config was last saved

	// Display preferences
	ReducedMotion bool `json:"reduced_motion"` // Skip scroll springs, reveals and the typed headline
	ASCII         bool `json:"ascii"`          // Force the ASCII glyph set
}

// DefaultSettings returns the configuration for a first-time reader.
func DefaultSettings() *Settings {
	return &Settings{
		Version:     settingsVersion,
		LastUpdated: time.Now(),
	}
}

// getConfigDir returns the appropriate configuration directory for the current user.
// Uses XDG specification on Linux: ~/.config/folio/
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %v", err)
	}

	configDir := filepath.Join(homeDir, ".config", "folio")

	// Create config directory if it doesn't exist
	err = os.MkdirAll(configDir, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %v", err)
	}

	return configDir, nil
}

// getSettingsPath returns the full path to the settings file.
func getSettingsPath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "settings.json"), nil
}

// SaveSettings persists the current preferences to disk.
func SaveSettings(s *Settings) error {
	settingsPath, err := getSettingsPath()
	if err != nil {
		return fmt.Errorf("failed to get settings path: %v", err)
	}

	s.Version = settingsVersion
	s.LastUpdated = time.Now()

	// Marshal to JSON with pretty printing for readability
	jsonData, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %v", err)
	}

	// Write to file atomically (write to temp file, then rename)
	tempPath := settingsPath + ".tmp"
	err = os.WriteFile(tempPath, jsonData, 0644)
	if err != nil {
		return fmt.Errorf("failed to write temp settings file: %v", err)
	}

	// Atomic rename
	err = os.Rename(tempPath, settingsPath)
	if err != nil {
		os.Remove(tempPath) // Clean up temp file on failure
		return fmt.Errorf("failed to rename settings file: %v", err)
	}

	return nil
}

// LoadSettings restores previously saved preferences.
// Returns defaults if nothing was saved yet.
func LoadSettings() (*Settings, error) {
	settingsPath, err := getSettingsPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings path: %v", err)
	}

	// Check if settings file exists
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		// No saved settings - first time use
		return DefaultSettings(), nil
	}

	// Read existing settings file
	jsonData, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %v", err)
	}

	// Parse JSON
	var s Settings
	err = json.Unmarshal(jsonData, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON: %v", err)
	}

	return &s, nil
}

// GetSettingsSummary returns a human-readable summary of the saved
// configuration. Useful for debugging and user feedback.
func GetSettingsSummary() (string, error) {
	s, err := LoadSettings()
	if err != nil {
		return "", err
	}

	summary := fmt.Sprintf(`Settings Summary:
  Version: %s
  Last Updated: %s
  Reduced Motion: %v
  ASCII Glyphs: %v`,
		s.Version,
		s.LastUpdated.Format("2006-01-02 15:04:05"),
		s.ReducedMotion,
		s.ASCII)

	return summary, nil
}

// ResetSettings clears all saved preferences.
// Useful for starting fresh or debugging purposes.
func ResetSettings() error {
	settingsPath, err := getSettingsPath()
	if err != nil {
		return fmt.Errorf("failed to get settings path: %v", err)
	}

	// Simply remove the settings file
	err = os.Remove(settingsPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove settings file: %v", err)
	}

	return nil
}
