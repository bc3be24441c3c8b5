package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amp-labs/tuples/internal/gen"
)

const defaultConfigFile = "tuplegen.yaml"

// config mirrors the tuplegen.yaml file. Flags override whatever the file
// provides.
type config struct {
	MaxArity int    `yaml:"maxArity"`
	Dir      string `yaml:"dir"`
}

func defaultConfig() config {
	return config{
		MaxArity: gen.DefaultMaxArity,
		Dir:      "tuple",
	}
}

// loadConfig reads the given config file. A missing file at the default path
// is not an error; the defaults apply.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == defaultConfigFile {
			return cfg, nil
		}

		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

func (c config) save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec,mnd
		return fmt.Errorf("writing config %s: %w", path, err)
	}

	return nil
}
