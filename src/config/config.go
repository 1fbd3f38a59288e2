// Package config loads the optional portforge tool configuration. This is
// the tool's own settings file, not the project spec: it carries defaults
// for where to find the spec and how to run builds.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".portforge.yml"

// Config is the top-level portforge configuration.
type Config struct {
	// SpecFile is the default project spec path, relative to the working
	// directory.
	SpecFile string `yaml:"spec_file"`
	// Jobs bounds concurrent platform builds; 1 means sequential.
	Jobs int `yaml:"jobs"`
	// Color controls terminal color: auto, always, or never.
	Color string `yaml:"color"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		SpecFile: "spec.toml",
		Jobs:     1,
		Color:    "auto",
	}
}

func validate(cfg *Config) error {
	if cfg.Jobs < 1 {
		return fmt.Errorf("jobs: must be at least 1, got %d", cfg.Jobs)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color: must be auto, always, or never, got %q", cfg.Color)
	}
	return nil
}
