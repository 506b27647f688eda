package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boardbank/banker/internal/model"
)

// FileName is the default config file name.
const FileName = "banker.yaml"

// EnvSnapshot overrides the snapshot path when set.
const EnvSnapshot = "BANKER_DATA"

// Config represents the top-level banker.yaml configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Defaults PlayerDefaults `yaml:"defaults"`
}

// DataConfig locates the persisted session snapshot.
type DataConfig struct {
	Snapshot string `yaml:"snapshot"`
}

// PlayerDefaults are applied to new players created without explicit
// values.
type PlayerDefaults struct {
	InitialBalance int    `yaml:"initial_balance"`
	Avatar         string `yaml:"avatar"`
	Color          string `yaml:"color"`
}

// Load reads a banker.yaml file. A missing file yields the defaults; the
// BANKER_DATA environment variable overrides the snapshot path either way.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	if env := os.Getenv(EnvSnapshot); env != "" {
		cfg.Data.Snapshot = env
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Snapshot: "banker.json",
		},
		Defaults: PlayerDefaults{
			InitialBalance: 1500,
			Avatar:         model.DefaultAvatar,
			Color:          model.DefaultColor,
		},
	}
}
