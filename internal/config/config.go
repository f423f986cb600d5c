// Package config handles store configuration and defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDataFile = "data/task_data.json"
	ConfigFileName  = "task-cli.toml"
)

// Config holds the configuration for task-cli. It is built once at
// startup and passed to the store explicitly; nothing reads it from
// ambient globals.
type Config struct {
	// DataFile is the path of the persisted task file, relative to
	// the working directory unless absolute.
	DataFile string `toml:"data_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataFile: DefaultDataFile,
	}
}

// Load reads ConfigFileName from the working directory, falling back
// to defaults when the file is absent. Fields missing from the file
// keep their default values.
func Load() (Config, error) {
	return LoadFile(ConfigFileName)
}

// LoadFile reads configuration from the given path.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}

	return cfg, nil
}
