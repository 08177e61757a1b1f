// Package config loads application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
}

type StorageConfig struct {
	// Backend selects the persistence implementation: "sqlite" for the
	// durable database, "memory" for a throwaway in-process store.
	Backend string `mapstructure:"backend"`
	// Path is the SQLite database file. Ignored by the memory backend.
	Path string `mapstructure:"path"`
}

// Load reads configuration from configFile, or from
// ~/.studyplan/config.yaml and the working directory when empty.
// STUDYPLAN_DB and STUDYPLAN_BACKEND override the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.studyplan")
	}

	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.path", defaultDBPath())

	if err := v.BindEnv("storage.path", "STUDYPLAN_DB"); err != nil {
		return nil, fmt.Errorf("binding STUDYPLAN_DB: %w", err)
	}
	if err := v.BindEnv("storage.backend", "STUDYPLAN_BACKEND"); err != nil {
		return nil, fmt.Errorf("binding STUDYPLAN_BACKEND: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if cfg.Storage.Backend != "sqlite" && cfg.Storage.Backend != "memory" {
		return nil, fmt.Errorf("unknown storage backend %q (want sqlite or memory)", cfg.Storage.Backend)
	}

	return &cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "studyplan.db"
	}
	return filepath.Join(home, ".studyplan", "studyplan.db")
}
