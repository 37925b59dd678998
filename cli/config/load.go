package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, expands environment variables, and
// unmarshals into a Config struct.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	expanded := ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadDefault searches DefaultPaths and loads the first config file that
// exists. A missing file is not an error: the zero Config is returned so
// flags and built-in defaults apply.
func LoadDefault() (*Config, error) {
	for _, path := range DefaultPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return Load(path)
	}
	return &Config{}, nil
}
