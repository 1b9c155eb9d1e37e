// Package config reads and writes the fitfriend configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/fitfriend/fitfriend/internal/storage"
	"github.com/joho/godotenv"
)

const (
	EnvHome    = "FITFRIEND_HOME"
	EnvBackend = "FITFRIEND_BACKEND"
)

// Config is the persisted configuration in ~/.fitfriend/config.json.
type Config struct {
	Roster     []string `json:"roster"`
	Backend    string   `json:"backend"`
	QuotaBytes int      `json:"quota_bytes"`
}

// Keys lists the configuration keys in display order.
var Keys = []string{"roster", "backend", "quota_bytes"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Roster:  append([]string(nil), attendance.DefaultRoster...),
		Backend: storage.KindFile,
	}
}

// Dir returns the fitfriend directory under homeDir.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".fitfriend")
}

// Path returns the path to config.json.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.json")
}

// DataDir returns the directory used by the file and sqlite backends.
func DataDir(homeDir string) string {
	return filepath.Join(Dir(homeDir), "data")
}

// LoadEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment take precedence.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// HomeDir resolves the base directory: $FITFRIEND_HOME, or the user's home.
func HomeDir() (string, error) {
	if h := os.Getenv(EnvHome); h != "" {
		return h, nil
	}
	return os.UserHomeDir()
}

// Read reads the configuration for homeDir. A missing file yields Default.
// Empty fields fall back to their defaults.
func Read(homeDir string) (*Config, error) {
	data, err := os.ReadFile(Path(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("reading %s: %w", Path(homeDir), err)
	}

	def := Default()
	if len(cfg.Roster) == 0 {
		cfg.Roster = def.Roster
	}
	if cfg.Backend == "" {
		cfg.Backend = def.Backend
	}
	if !storage.ValidKind(cfg.Backend) {
		return nil, fmt.Errorf("unknown backend %q in %s", cfg.Backend, Path(homeDir))
	}
	return &cfg, nil
}

// Write writes the configuration, creating the directory if needed.
func Write(homeDir string, cfg *Config) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(homeDir), data, 0644)
}

// ApplyEnv overrides fields from the environment.
func ApplyEnv(cfg *Config) error {
	if b := os.Getenv(EnvBackend); b != "" {
		b = strings.ToLower(strings.TrimSpace(b))
		if !storage.ValidKind(b) {
			return fmt.Errorf("invalid %s %q (expected one of %s)", EnvBackend, b, strings.Join(storage.Kinds, ", "))
		}
		cfg.Backend = b
	}
	return nil
}

// Get returns the display value of key.
func Get(cfg *Config, key string) (string, error) {
	switch key {
	case "roster":
		return strings.Join(cfg.Roster, ", "), nil
	case "backend":
		return cfg.Backend, nil
	case "quota_bytes":
		return strconv.Itoa(cfg.QuotaBytes), nil
	}
	return "", fmt.Errorf("unknown config key '%s'", key)
}

// Set updates a settable key. The roster is fixed and can only be changed
// by editing the file.
func Set(cfg *Config, key, value string) error {
	switch key {
	case "backend":
		v := strings.ToLower(strings.TrimSpace(value))
		if !storage.ValidKind(v) {
			return fmt.Errorf("invalid backend %q (expected one of %s)", value, strings.Join(storage.Kinds, ", "))
		}
		cfg.Backend = v
		return nil
	case "quota_bytes":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return fmt.Errorf("invalid quota_bytes %q (expected a non-negative number)", value)
		}
		cfg.QuotaBytes = n
		return nil
	case "roster":
		return fmt.Errorf("roster is read-only; edit the config file to change it")
	}
	return fmt.Errorf("unknown config key '%s'", key)
}
