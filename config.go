// ABOUTME: Configuration management for simplefin-status.
// ABOUTME: Loads and saves the access URL and Apprise settings, and reads environment overrides.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/samber/mo"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AccessURL  string `json:"access_url" yaml:"access_url"`
	AppriseURL string `json:"apprise_url" yaml:"apprise_url"`
	AppriseTag string `json:"apprise_tag" yaml:"apprise_tag"`
}

// HasAccess reports whether setup has produced an access URL.
func (c Config) HasAccess() bool {
	return strings.TrimSpace(c.AccessURL) != ""
}

// Settings are process-level overrides read from the environment (and an optional .env file).
type Settings struct {
	ConfigPath string `env:"SFIN_CONFIG" envDefault:"config.json"`
	StartDate  string `env:"SFIN_START_DATE" envDefault:"2023-11-01"`
	EndDate    string `env:"SFIN_END_DATE" envDefault:"2023-11-02"`
}

func loadSettings() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("could not load .env: %w", err)
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ConfigStore persists a Config as a single JSON document, or YAML when the path says so.
type ConfigStore struct {
	path string
}

func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{path: path}
}

func (s *ConfigStore) Path() string {
	return s.path
}

func (s *ConfigStore) isYAML() bool {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load returns None when the file does not exist. A file that exists but
// cannot be decoded is an error.
func (s *ConfigStore) Load() (mo.Option[Config], error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return mo.None[Config](), nil
		}
		return mo.None[Config](), err
	}

	var cfg Config
	if s.isYAML() {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return mo.None[Config](), fmt.Errorf("could not parse %s: %w", s.path, err)
	}

	return mo.Some(cfg), nil
}

// Save overwrites the file with cfg.
func (s *ConfigStore) Save(cfg Config) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	var (
		data []byte
		err  error
	)
	if s.isYAML() {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.Marshal(cfg)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}
