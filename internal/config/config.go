// Package config loads daemon configuration from a JSON file in the XDG
// config directory, with FOLIO_* environment variables taking precedence.
// A .env file in the working directory is honored if present.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Chat    ChatConfig
	Visits  VisitsConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type ChatConfig struct {
	// ThinkingDelayMS is how long the chat endpoint pauses before replying,
	// so the widget's typing indicator has something to show.
	ThinkingDelayMS int
}

type VisitsConfig struct {
	RetentionDays int
	// PruneInterval is a time.ParseDuration string, e.g. "1h".
	PruneInterval string
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server:  ServerConfig{Port: 8080},
		Chat:    ChatConfig{ThinkingDelayMS: 500},
		Visits:  VisitsConfig{RetentionDays: 180, PruneInterval: "1h"},
		Storage: StorageConfig{DataDir: defaultDataDir()},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads configuration from the JSON file backend at
// $XDG_CONFIG_HOME/foliobot/config.json, then applies FOLIO_* environment
// overrides. Variables from ./.env are loaded first if the file exists.
func Load() (Config, error) {
	_ = godotenv.Load()
	return loadWith(newFileBackend())
}

func loadWith(b ConfigBackend) (Config, error) {
	cfg := defaults()
	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func defaultDataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "share")
		} else {
			return "foliobot-data"
		}
	}
	return filepath.Join(dir, "foliobot")
}
