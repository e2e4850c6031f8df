package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/wraxau/AC-laba3/internal/imgproc"
	"github.com/wraxau/AC-laba3/internal/util"
)

const (
	defaultConfigName = ".darkroom"
	defaultConfigDir  = ".darkroom"
)

// Default values applied when the config file leaves a field unset
const (
	DefaultInputDir     = "input_images"
	DefaultOutputDir    = "output_images"
	DefaultWorkers      = 4
	DefaultOutputFormat = "table"
	DefaultSettle       = 500 * time.Millisecond
)

// DefaultExtensions returns the file extensions treated as images unless
// configured otherwise
func DefaultExtensions() []string {
	return []string{".jpg", ".jpeg", ".png"}
}

// Manager handles darkroom configuration
type Manager struct {
	configPath string
	config     *Config
	viper      *viper.Viper
}

// NewManager creates a new configuration manager
// An empty configPath means the default locations are searched:
// ~/.darkroom/config.yaml, then ~/.darkroom.yaml
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		config:     &Config{},
	}
}

// Load loads the darkroom configuration from file
// A missing file is not an error; the defaults are returned instead
func (m *Manager) Load() (*Config, error) {
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		// Check ~/.darkroom/config.yaml first, the location Save writes to,
		// then fall back to ~/.darkroom.yaml
		primary := filepath.Join(home, defaultConfigDir, "config.yaml")
		if _, err := os.Stat(primary); err == nil {
			m.viper.SetConfigFile(primary)
		} else {
			m.viper.AddConfigPath(home)
			m.viper.SetConfigName(defaultConfigName)
			m.viper.SetConfigType("yaml")
		}
	}

	// Set environment variable support
	m.viper.SetEnvPrefix("DARKROOM")
	m.viper.AutomaticEnv()

	// Initialize config to ensure defaults are set even for empty configs
	m.config = &Config{}

	if err := m.viper.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		m.applyDefaults()
		return m.config, nil
	}

	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	m.applyDefaults()

	return m.config, nil
}

// Save saves the current configuration to file
func (m *Manager) Save() error {
	if m.configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		configDir := filepath.Join(home, defaultConfigDir)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		m.configPath = filepath.Join(configDir, "config.yaml")
	}

	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := m.viper.WriteConfigAs(m.configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *Config {
	return m.config
}

// Set records a value so a following Save writes it out
func (m *Manager) Set(key string, value interface{}) {
	m.viper.Set(key, value)
}

// ConfigPath returns the path the configuration was loaded from or will be
// saved to; empty until a default location is resolved by Save
func (m *Manager) ConfigPath() string {
	if m.configPath != "" {
		return m.configPath
	}
	return m.viper.ConfigFileUsed()
}

// applyDefaults sets default values for configuration
func (m *Manager) applyDefaults() {
	if m.config == nil {
		return
	}

	if m.config.InputDir == "" {
		m.config.InputDir = DefaultInputDir
	}

	if m.config.OutputDir == "" {
		m.config.OutputDir = DefaultOutputDir
	}

	if m.config.Workers == 0 {
		m.config.Workers = DefaultWorkers
	}

	if m.config.Transform == "" {
		m.config.Transform = string(imgproc.DefaultTransform)
	}

	if len(m.config.Extensions) == 0 {
		m.config.Extensions = DefaultExtensions()
	}

	if m.config.Quality == 0 {
		m.config.Quality = imgproc.DefaultQuality
	}

	if m.config.OutputFormat == "" {
		m.config.OutputFormat = DefaultOutputFormat
	}

	if m.config.Watch.Settle == 0 {
		m.config.Watch.Settle = DefaultSettle
	}
}

// Validate checks the configuration for values no run could work with
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", util.ErrInvalidConfig, c.Workers)
	}

	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality must be between 1 and 100, got %d", util.ErrInvalidConfig, c.Quality)
	}

	if _, err := imgproc.ParseTransform(c.Transform); err != nil {
		return err
	}

	switch c.OutputFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: unknown output format %q", util.ErrInvalidConfig, c.OutputFormat)
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: at least one file extension is required", util.ErrInvalidConfig)
	}

	if c.Watch.Settle < 0 {
		return fmt.Errorf("%w: watch settle must not be negative", util.ErrInvalidConfig)
	}

	return nil
}
