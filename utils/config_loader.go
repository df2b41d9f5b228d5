package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ─── Section configs ────────────────────────────────────────────────────

type LogConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
	File  string `yaml:"file"`
}

type SampleConfig struct {
	DebugEcho bool   `yaml:"debug_echo"`
	Format    string `yaml:"format"` // "text" or "csv"
}

type LessonsConfig struct {
	// Enabled lists lesson names to run; empty means all, in canonical order.
	Enabled []string `yaml:"enabled"`
}

// TourConfig is the top-level structure of the optional tour.yaml.
type TourConfig struct {
	Log     LogConfig     `yaml:"log"`
	Sample  SampleConfig  `yaml:"sample"`
	Lessons LessonsConfig `yaml:"lessons"`
}

// DefaultTourConfig is used when no config file is given.
func DefaultTourConfig() *TourConfig {
	return &TourConfig{
		Log:    LogConfig{Level: "info"},
		Sample: SampleConfig{Format: "text"},
	}
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadTourConfig reads and parses tour.yaml on top of the defaults.
// An empty path returns the defaults unchanged.
func LoadTourConfig(path string) (*TourConfig, error) {
	cfg := DefaultTourConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tour config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse tour config: %w", err)
	}
	return cfg, nil
}
