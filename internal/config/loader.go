package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPaths are tried in order when no path is given.
var defaultPaths = []string{"./config.yaml", "./configs/config.yaml"}

// Load reads the configuration named by CONFIG_PATH. See LoadFile.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile reads configuration with the priority ENV > file > env-default
// tags, then validates it. An explicit path must exist. With an empty path
// the first existing default path is used, and without one the configuration
// comes from the environment alone.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		path = firstExisting(defaultPaths)
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Usage renders the environment variables understood by Config.
func Usage() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		} else if !errors.Is(err, fs.ErrNotExist) {
			return p
		}
	}
	return ""
}
