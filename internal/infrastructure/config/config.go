// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for declog configuration.
	DefaultConfigDir = ".declog"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultSessionFile is the persisted session bookkeeping file name.
	DefaultSessionFile = "session.yaml"
	// DefaultDocumentCache is the cached copy of the open document.
	DefaultDocumentCache = "open.json"
	// DefaultTokenEnv is the environment variable holding the bearer token.
	DefaultTokenEnv = "DECLOG_TOKEN"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Remote RemoteConfig `yaml:"remote,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
}

// RemoteConfig holds configuration for the remote file-storage service.
type RemoteConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	Account string `yaml:"account,omitempty"`
	// TokenEnv names the environment variable that holds the bearer token.
	// The token itself is never stored in the config file.
	TokenEnv       string `yaml:"token_env,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Pretty bool   `yaml:"pretty,omitempty"`
}

// Timeout returns the remote request timeout as a duration.
func (r RemoteConfig) Timeout() time.Duration {
	if r.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Remote: RemoteConfig{
			TokenEnv:       DefaultTokenEnv,
			TimeoutSeconds: 15,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the .declog directory in the given path.
// A .env file in the base path is loaded first, so the token environment
// variable can live there during development.
func Load(basePath string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(basePath, ".env"))

	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'declog init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("DECLOG_REMOTE_URL"); url != "" {
		c.Remote.BaseURL = url
	}
	if account := os.Getenv("DECLOG_ACCOUNT"); account != "" {
		c.Remote.Account = account
	}
	if level := os.Getenv("DECLOG_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// Validate checks that the config is usable for remote operations.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Remote.BaseURL) == "" {
		return fmt.Errorf("remote.base_url is required (or set DECLOG_REMOTE_URL)")
	}
	if strings.TrimSpace(c.Remote.Account) == "" {
		return fmt.Errorf("remote.account is required (or set DECLOG_ACCOUNT)")
	}
	return nil
}

// ConfigDir returns the path to the .declog config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// SessionFilePath returns the path to the persisted session file.
func SessionFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultSessionFile)
}

// DocumentCachePath returns the path to the cached copy of the open
// document. The cache is what mutating commands edit between saves.
func DocumentCachePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultDocumentCache)
}

// Exists checks if a declog config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}

// SanitizeAccount converts an account identifier to the slug embedded in
// journal file names.
func SanitizeAccount(name string) string {
	// Convert to lowercase
	name = strings.ToLower(name)

	// Replace separators with underscores
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	name = strings.ReplaceAll(name, "@", "_")

	// Remove any characters that aren't alphanumeric or underscore
	name = reNonAlphanumeric.ReplaceAllString(name, "")

	// Collapse consecutive underscores
	name = reMultipleUnderscores.ReplaceAllString(name, "_")

	// Trim leading/trailing underscores
	name = strings.Trim(name, "_")

	if name == "" {
		return "default"
	}

	return name
}
