// Package config resolves client configuration from ~/.fincoach/config.toml
// and the environment. The base URL points at the coaching backend's
// /api/v1 prefix.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".fincoach"

	configFileMode = 0o600
	configDirMode  = 0o700

	baseURLKey      = "api.base_url"
	historyLimitKey = "agent.history_limit"

	DefaultBaseURL      = "http://localhost:8000/api/v1"
	DefaultHistoryLimit = 10
)

type Config struct {
	APIBaseURL   string
	HistoryLimit int
	TokenPath    string
}

// Load reads the config file when present and applies env overrides
// (FINCOACH_API_URL). A missing config file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetDefault(baseURLKey, DefaultBaseURL)
	cfg.SetDefault(historyLimitKey, DefaultHistoryLimit)
	if err := cfg.BindEnv(baseURLKey, "FINCOACH_API_URL"); err != nil {
		return Config{}, fmt.Errorf("bind api url env: %w", err)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	baseURL := cfg.GetString(baseURLKey)
	if baseURL == "" {
		return Config{}, errors.New("api base url is empty")
	}

	return Config{
		APIBaseURL:   baseURL,
		HistoryLimit: cfg.GetInt(historyLimitKey),
		TokenPath:    filepath.Join(dir, "token"),
	}, nil
}

// Dir returns the per-user config directory, honoring FINCOACH_CONFIG_DIR
// so tests and scripts can relocate all durable state.
func Dir() (string, error) {
	if dir := os.Getenv("FINCOACH_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir), nil
}

type configFile struct {
	API struct {
		BaseURL string `toml:"base_url"`
	} `toml:"api"`
	Agent struct {
		HistoryLimit int `toml:"history_limit"`
	} `toml:"agent"`
}

// WriteDefault creates the config file with defaults, refusing to clobber
// an existing one.
func WriteDefault() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, configName+"."+configType)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists at %s", path)
	}

	var file configFile
	file.API.BaseURL = DefaultBaseURL
	file.Agent.HistoryLimit = DefaultHistoryLimit

	encoded, err := toml.Marshal(file)
	if err != nil {
		return "", fmt.Errorf("encode default config: %w", err)
	}

	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, encoded, configFileMode); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return path, nil
}
