// Package config loads the application configuration
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFeedURL is the habit feed used when no config file overrides it.
const DefaultFeedURL = "https://67e227a797fc65f53534c8a2.mockapi.io/apiTodo/habits"

// Config represents the application configuration
type Config struct {
	// FeedURL is the remote habit feed queried by the import command
	FeedURL string `yaml:"feed_url"`
	// Database is the path to the SQLite database file
	Database string `yaml:"database"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		FeedURL:  DefaultFeedURL,
		Database: defaultDatabasePath(),
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. The RUTINA_FEED_URL
// environment variable overrides the feed URL either way.
func Load() (*Config, error) {
	cfg := Default()

	configPath, err := getConfigPath()
	if err == nil {
		if data, readErr := os.ReadFile(configPath); readErr == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
			cfg.applyDefaults()
		}
	}

	if url := os.Getenv("RUTINA_FEED_URL"); url != "" {
		cfg.FeedURL = url
	}

	return cfg, nil
}

// applyDefaults fills in any values the config file left empty.
func (c *Config) applyDefaults() {
	if c.FeedURL == "" {
		c.FeedURL = DefaultFeedURL
	}
	if c.Database == "" {
		c.Database = defaultDatabasePath()
	}
}

// getConfigPath returns the path to the config file (~/.config/rutina/config.yaml)
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "rutina", "config.yaml"), nil
}

// defaultDatabasePath returns ~/.rutina/habits.db, falling back to a
// relative path when the home directory cannot be determined.
func defaultDatabasePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "habits.db"
	}
	return filepath.Join(homeDir, ".rutina", "habits.db")
}
