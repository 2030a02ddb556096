package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flexarea/log"
)

const (
	ConfigFileName = "config.json"

	defaultMinRows          = 1
	defaultMaxRows          = 8
	defaultResizeDurationMs = 200
	defaultPlaceholder      = "Type a message..."
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".flexarea"), nil
}

// Config represents the application configuration
type Config struct {
	// MinRows is the composer's minimum height in text rows. Zero means
	// unbounded.
	MinRows int `json:"min_rows"`
	// MaxRows is the composer's maximum height in text rows. Zero means
	// unbounded.
	MaxRows int `json:"max_rows"`
	// ResizeDurationMs is the length of the height transition in
	// milliseconds. Zero disables animation.
	ResizeDurationMs int `json:"resize_duration_ms"`
	// Placeholder is shown in the empty composer.
	Placeholder string `json:"placeholder"`
	// ShowScrollIndicator controls the scrollbar column when the composer is
	// pinned at its max height.
	ShowScrollIndicator bool `json:"show_scroll_indicator"`
	// MouseWheel enables mouse support in the terminal.
	MouseWheel bool `json:"mouse_wheel"`
	// BoundsPreset remembers the last preset chosen in the bounds selector.
	BoundsPreset string `json:"bounds_preset"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MinRows:             defaultMinRows,
		MaxRows:             defaultMaxRows,
		ResizeDurationMs:    defaultResizeDurationMs,
		Placeholder:         defaultPlaceholder,
		ShowScrollIndicator: true,
		MouseWheel:          true,
		BoundsPreset:        "",
	}
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		// Log the error with more context about what failed
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	return &config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
