// Package config loads the CLI formatter configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tagforge.json"

	// DefaultIndent is the indentation unit for pretty output.
	DefaultIndent = "  "
)

// Config represents the complete tagforge.json configuration.
type Config struct {
	// Pretty enables indented output from the formatter.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation unit in pretty mode.
	Indent string `json:"indent,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Pretty: true,
		Indent: DefaultIndent,
	}
}

// Load reads tagforge.json from dir, walking up parent directories until a
// file is found. Missing configuration is not an error; defaults apply.
func Load(dir string) (Config, error) {
	path, ok := find(dir)
	if !ok {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read %s: %w", path, err)
	}

	config := Default()
	if err := json.Unmarshal(data, &config); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if config.Indent == "" {
		config.Indent = DefaultIndent
	}
	return config, nil
}

// find walks from dir to the filesystem root looking for the config file.
func find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
