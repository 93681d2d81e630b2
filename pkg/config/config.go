// Package config provides centralized configuration management for the SQLite bridge.
package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// Config holds the complete configuration for the application
type Config struct {
	// Database configuration
	Database struct {
		Path string
	}

	// Seed dataset imported at startup
	Seed struct {
		CSVPath   string
		TableName string
	}

	// Fallback dataset used when a requested CSV path does not exist
	DefaultDatasetPath string
}

var (
	once   sync.Once
	config *Config
)

// Load initializes and loads the configuration from environment variables
func Load() *Config {
	once.Do(func() {
		v := viper.New()

		// Set default values matching the documented bootstrap behavior
		v.SetDefault("database_path", "database/new_created_db.db")
		v.SetDefault("csv_path", "data/input.csv")
		v.SetDefault("table_name", "imported_table")
		v.SetDefault("default_dataset_path", "data/youtube_2025_dataset.csv")

		// Load from environment variables
		v.AutomaticEnv()

		config = &Config{}
		config.Database.Path = v.GetString("database_path")
		config.Seed.CSVPath = v.GetString("csv_path")
		config.Seed.TableName = v.GetString("table_name")
		config.DefaultDatasetPath = v.GetString("default_dataset_path")
	})

	return config
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	// List of validation errors
	var errors []string

	if c.Database.Path == "" {
		errors = append(errors, "database path must not be empty")
	}

	if c.Seed.TableName == "" {
		errors = append(errors, "seed table name must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}
