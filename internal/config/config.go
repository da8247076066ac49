package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	// EnvStorage overrides storage.backend
	EnvStorage = "KANBANNED_STORAGE"
	// EnvThemeFile points at a YAML file whose theme section is merged in
	EnvThemeFile = "KANBANNED_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Log         LogConfig         `yaml:"log"`
	KeyMappings KeyMappings       `yaml:"key_mappings"`
	ColorScheme ColorScheme       `yaml:"theme"`
}

// StorageConfig selects where board data lives
type StorageConfig struct {
	// Backend is one of sqlite, file, redis, memory, none
	Backend string `yaml:"backend"`
	// Path is the sqlite database file or the file-store directory
	Path       string      `yaml:"path"`
	QuotaBytes int         `yaml:"quota_bytes"`
	Redis      RedisConfig `yaml:"redis"`
}

// RedisConfig configures the redis backend
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// PersistenceConfig tunes saving
type PersistenceConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Debounce returns the debounce window as a duration
func (p PersistenceConfig) Debounce() time.Duration {
	return time.Duration(p.DebounceMS) * time.Millisecond
}

// LogConfig configures the log file
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from KANBANNED_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

func applyEnv(config *Config) {
	if backend := strings.TrimSpace(os.Getenv(EnvStorage)); backend != "" {
		config.Storage.Backend = strings.ToLower(backend)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return finish(&Config{}), nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return finish(&Config{}), nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return finish(&config), nil
}

// finish layers the theme file and environment over a parsed config, then
// fills whatever is still missing
func finish(config *Config) *Config {
	loadThemeFile(config)
	applyEnv(config)
	config.applyDefaults()
	return config
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the config file location
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanbanned", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanbanned", "config.yaml"), nil
}

// DataDir returns ~/.kanbanned, where data and logs live by default
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".kanbanned"
	}
	return filepath.Join(homeDir, ".kanbanned")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Storage.applyDefaults()
	if c.Persistence.DebounceMS <= 0 {
		c.Persistence.DebounceMS = 300
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func (s *StorageConfig) applyDefaults() {
	if s.Backend == "" {
		s.Backend = "sqlite"
	}
	if s.Path == "" {
		switch s.Backend {
		case "file":
			s.Path = filepath.Join(DataDir(), "data")
		default:
			s.Path = filepath.Join(DataDir(), "kanbanned.db")
		}
	}
	if s.QuotaBytes == 0 {
		s.QuotaBytes = 5 * 1024 * 1024
	}
	if s.Redis.Addr == "" {
		s.Redis.Addr = "localhost:6379"
	}
	if s.Redis.Prefix == "" {
		s.Redis.Prefix = "kanbanned:"
	}
}
