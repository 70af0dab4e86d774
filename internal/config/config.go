package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/tablero/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// ThemeFileEnv names the environment variable pointing at an extra theme file
const ThemeFileEnv = "TABLERO_THEME_FILE"

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
	Dashboard   DashboardSettings  `yaml:"dashboard"`
}

// DashboardSettings controls how a session's dashboard is built
type DashboardSettings struct {
	// IDStrategy selects widget id generation: "sequence" or "uuid"
	IDStrategy string `yaml:"id_strategy"`

	// LayoutFile optionally replaces the built-in categories and widgets
	LayoutFile string `yaml:"layout_file"`

	// MarkdownStyle is the glamour style used by the widget detail view
	MarkdownStyle string `yaml:"markdown_style"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: *colors.Default(),
		Dashboard:   DefaultDashboardSettings(),
	}
	return config
}

// DefaultDashboardSettings returns the default dashboard settings
func DefaultDashboardSettings() DashboardSettings {
	return DashboardSettings{
		IDStrategy:    "sequence",
		MarkdownStyle: "dark",
	}
}

// loadThemeFile loads and merges theme from TABLERO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path
// Returns default config if the file doesn't exist
func LoadFile(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Load theme from TABLERO_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if _, err := PresetColorScheme(config.ColorScheme.Preset); err != nil {
		return nil, fmt.Errorf("load %s: %w", configPath, err)
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config to an explicit path
func (c *Config) SaveFile(configPath string) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the config file location Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	c.Dashboard.applyDefaults()
}

func (d *DashboardSettings) applyDefaults() {
	defaults := DefaultDashboardSettings()
	if d.IDStrategy == "" {
		d.IDStrategy = defaults.IDStrategy
	}
	if d.MarkdownStyle == "" {
		d.MarkdownStyle = defaults.MarkdownStyle
	}
}
