// Package config loads viewer settings from a YAML file and merges them
// with command-line flags (flags win).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds viewer settings. Zero values mean "use the default".
type Config struct {
	// Data is the path to the people file (JSON, JSONL, or GEDCOM).
	Data string `yaml:"data"`

	// AncestryDepth and ProgenyDepth bound the visible tree; <=0 means
	// unlimited.
	AncestryDepth int `yaml:"ancestry_depth"`
	ProgenyDepth  int `yaml:"progeny_depth"`

	// HideSiblings suppresses the focal person's sibling cards.
	HideSiblings bool `yaml:"hide_siblings"`

	// NodeSep and LevelSep are layout spacing in cells.
	NodeSep  int `yaml:"node_sep"`
	LevelSep int `yaml:"level_sep"`

	// Watch enables live reload when the dataset file changes.
	Watch bool `yaml:"watch"`

	// Theme is "dark" or "light".
	Theme string `yaml:"theme"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Watch: true, Theme: "dark"}
}

// DefaultPath is the conventional config location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "kinview", "config.yaml")
}

// Load reads a config file over the defaults. A missing file at the
// default path is fine; an explicitly requested file must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
