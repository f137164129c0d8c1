package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config.yaml"

type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Debug  bool   `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Width:  960,
		Height: 540,
		Title:  "blazed",
	}
}

// LoadConfig reads a YAML config file on top of the defaults. With an empty
// path the default location is tried and a missing file is not an error; an
// explicitly given path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	optional := path == ""
	if optional {
		path = defaultConfigPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("%s: window size %dx%d out of range", path, cfg.Width, cfg.Height)
	}

	return cfg, nil
}
