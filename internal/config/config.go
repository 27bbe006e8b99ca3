package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the auction server.
type Config struct {
	Addr         string `yaml:"addr"`
	SnapshotPath string `yaml:"snapshot_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:         ":8080",
		SnapshotPath: "auction.db",
	}
}

// Load reads configuration from an optional YAML file and applies environment
// overrides (PORT, SNAPSHOT_PATH). A missing file is not an error; a malformed
// one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if p := os.Getenv("PORT"); p != "" {
		cfg.Addr = ":" + p
	}
	if p := os.Getenv("SNAPSHOT_PATH"); p != "" {
		cfg.SnapshotPath = p
	}

	return cfg, nil
}
